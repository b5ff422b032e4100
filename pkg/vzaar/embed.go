package vzaar

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

type embedCapture struct {
	key   string
	depth int
	text  strings.Builder
}

// parseEmbedXML collects the text of the first element named by each key.
func parseEmbedXML(body []byte, keys []string) (EmbedMetadata, error) {
	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		wanted[k] = true
	}

	dec := xml.NewDecoder(bytes.NewReader(body))
	dec.Entity = xml.HTMLEntity

	out := make(EmbedMetadata, len(keys))
	var open []*embedCapture
	depth := 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("vzaar: parse embed xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if name := t.Name.Local; wanted[name] {
				wanted[name] = false
				open = append(open, &embedCapture{key: name, depth: depth})
			}
		case xml.CharData:
			for _, c := range open {
				if c.depth == depth {
					c.text.Write(t)
				}
			}
		case xml.EndElement:
			if n := len(open); n > 0 && open[n-1].depth == depth {
				c := open[n-1]
				out[c.key] = strings.TrimSpace(c.text.String())
				open = open[:n-1]
			}
			depth--
		}
	}

	var missing []string
	for _, k := range keys {
		if _, ok := out[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: embed fields missing: %s", ErrMalformedResponse, strings.Join(missing, ", "))
	}
	return out, nil
}
