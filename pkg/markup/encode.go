package markup

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

var (
	// ErrRootKeyCount is returned when the root mapping does not hold exactly one key.
	ErrRootKeyCount = errors.New("markup: root mapping must have exactly one key")
	// ErrEmptyName is returned for an element whose name is blank.
	ErrEmptyName = errors.New("markup: element name is empty")
	// ErrInvalidName is returned for an element name that is not an XML Name.
	ErrInvalidName = errors.New("markup: invalid element name")
	// ErrSequenceRoot is returned when the root value is a sequence.
	ErrSequenceRoot = errors.New("markup: root value cannot be a sequence")
)

// Marshal renders root as a compact XML document.
func Marshal(root Mapping) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, root, ""); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent renders root with each nested element on its own line.
func MarshalIndent(root Mapping, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, root, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes the document for root to w. Nothing is written when root is invalid.
func Encode(w io.Writer, root Mapping, indent string) error {
	if len(root) != 1 {
		return fmt.Errorf("%w (got %d)", ErrRootKeyCount, len(root))
	}
	field := root[0]
	if _, ok := deref(field.Value).(Sequence); ok {
		return ErrSequenceRoot
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	if indent != "" {
		enc.Indent("", indent)
	}
	if err := encodeElement(enc, field.Key, field.Value); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return fmt.Errorf("markup: flush: %w", err)
	}
	if indent != "" {
		buf.WriteByte('\n')
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// encodeElement emits the element(s) produced by name=value. A sequence
// yields one sibling element per item instead of a single container.
func encodeElement(enc *xml.Encoder, name string, value Node) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if !validName(name) {
		return fmt.Errorf("%w %q", ErrInvalidName, name)
	}
	value = deref(value)

	if seq, ok := value.(Sequence); ok {
		for _, item := range seq {
			if err := encodeElement(enc, name, item); err != nil {
				return err
			}
		}
		return nil
	}

	start := xml.StartElement{Name: xml.Name{Local: name}}
	if err := enc.EncodeToken(start); err != nil {
		return fmt.Errorf("markup: element %q: %w", name, err)
	}

	switch v := value.(type) {
	case Mapping:
		for _, f := range v {
			if err := encodeElement(enc, f.Key, f.Value); err != nil {
				return err
			}
		}
	case Scalar:
		if text := v.Text(); text != "" {
			if err := enc.EncodeToken(xml.CharData(text)); err != nil {
				return fmt.Errorf("markup: text of %q: %w", name, err)
			}
		}
	case nil:
	default:
		return fmt.Errorf("markup: element %q: unsupported node %T", name, value)
	}

	if err := enc.EncodeToken(start.End()); err != nil {
		return fmt.Errorf("markup: element %q: %w", name, err)
	}
	return nil
}

// validName reports whether name matches the XML Name production: a letter,
// '_' or ':' followed by letters, digits, '-', '.', '_' or ':'.
func validName(name string) bool {
	for i, r := range name {
		switch {
		case unicode.IsLetter(r), r == '_', r == ':':
		case i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return name != ""
}
