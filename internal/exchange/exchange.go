// Package exchange converts settings to and from nested YAML or JSON
// documents of the form {category: {key: value}}.
//
// yaml.v3 and encoding/json both emit map keys in sorted order, so exports
// are deterministic and diff-friendly.
package exchange

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"catconf/internal/setting"

	"gopkg.in/yaml.v3"
)

// Format is a document format.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// ParseFormat accepts "yaml", "yml" or "json" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	default:
		return "", fmt.Errorf("invalid format %q (valid: yaml, json)", s)
	}
}

// document is the nested category -> key -> value shape.
type document map[string]map[string]string

// Export writes settings to w in the given format.
func Export(w io.Writer, settings []setting.Setting, format Format) error {
	doc := make(document)
	for _, s := range settings {
		if doc[s.Category()] == nil {
			doc[s.Category()] = make(map[string]string)
		}
		doc[s.Category()][s.Key()] = s.String()
	}

	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// Import reads a {category: {key: value}} document from r. Scalar values of
// any type are converted to their textual form. The result is sorted by
// category then key.
func Import(r io.Reader, format Format) ([]*setting.Setting, error) {
	raw := make(map[string]map[string]any)

	switch format {
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	case JSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil && err != io.EOF {
			return nil, fmt.Errorf("parsing json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	var out []*setting.Setting
	for category, keys := range raw {
		for key, value := range keys {
			switch value.(type) {
			case map[string]any, []any:
				return nil, fmt.Errorf("%s.%s: nested values are not supported", category, key)
			}
			out = append(out, setting.New(category, key, value))
		}
	}
	slices.SortFunc(out, func(a, b *setting.Setting) int {
		return setting.Compare(*a, *b)
	})
	return out, nil
}
