// Package markup converts nested mapping/sequence/scalar structures into XML
// documents with a single root element.
package markup

import (
	"fmt"
	"reflect"
	"sort"
)

// Node is one value of a structure: a Mapping, a Sequence or a Scalar.
type Node interface {
	isNode()
}

// Field is a single keyed entry of a Mapping.
type Field struct {
	Key   string
	Value Node
}

// Mapping expands into one child element per field, in order.
type Mapping []Field

// Sequence replaces its owning element with one sibling element per item.
type Sequence []Node

// Scalar becomes the text content of its element.
type Scalar struct {
	Value any
}

func (Mapping) isNode()  {}
func (Sequence) isNode() {}
func (Scalar) isNode()   {}

// Text returns the string form written into the document.
func (s Scalar) Text() string {
	if s.Value == nil {
		return ""
	}
	return fmt.Sprint(s.Value)
}

// deref replaces pointers to node values with the values themselves. A nil
// pointer becomes an empty Scalar.
func deref(n Node) Node {
	switch t := n.(type) {
	case *Mapping:
		if t == nil {
			return Scalar{}
		}
		return *t
	case *Sequence:
		if t == nil {
			return Scalar{}
		}
		return *t
	case *Scalar:
		if t == nil {
			return Scalar{}
		}
		return *t
	}
	return n
}

// Set appends a field, or replaces the value of an existing field with the same key.
func (m Mapping) Set(key string, value Node) Mapping {
	for i := range m {
		if m[i].Key == key {
			m[i].Value = value
			return m
		}
	}
	return append(m, Field{Key: key, Value: value})
}

// Len returns the number of fields.
func (m Mapping) Len() int { return len(m) }

// From converts plain Go data into a Node. Maps keyed by strings become
// Mappings with sorted keys, slices and arrays become Sequences and
// everything else is kept as a Scalar.
func From(v any) Node {
	switch t := v.(type) {
	case Node:
		return deref(t)
	case nil:
		return Scalar{}
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(Mapping, 0, len(keys))
		for _, k := range keys {
			out = append(out, Field{Key: k, Value: From(t[k])})
		}
		return out
	case map[string]string:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(Mapping, 0, len(keys))
		for _, k := range keys {
			out = append(out, Field{Key: k, Value: Scalar{Value: t[k]}})
		}
		return out
	case []any:
		out := make(Sequence, 0, len(t))
		for _, item := range t {
			out = append(out, From(item))
		}
		return out
	case []string:
		out := make(Sequence, 0, len(t))
		for _, item := range t {
			out = append(out, Scalar{Value: item})
		}
		return out
	case []byte:
		return Scalar{Value: string(t)}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make(Sequence, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, From(rv.Index(i).Interface()))
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Scalar{Value: v}
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		out := make(Mapping, 0, len(keys))
		for _, k := range keys {
			val := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
			out = append(out, Field{Key: k, Value: From(val.Interface())})
		}
		return out
	}
	return Scalar{Value: v}
}
