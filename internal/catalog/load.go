package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a catalog source.
type Format string

const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

//go:embed default.json
var defaultCatalog []byte

// LoadError reports a catalog source that could not be read or did not have
// the expected shape.
type LoadError struct {
	Source string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("load catalog")
	if e.Source != "" {
		b.WriteString(" ")
		b.WriteString(e.Source)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatAuto, fmt.Errorf("unsupported catalog format %q", name)
}

// FormatForPath guesses the format from a file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and parses the catalog at path. FormatAuto picks the format
// from the file extension.
func Load(path string, format Format) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Reason: "unreadable source", Err: err}
	}
	defer f.Close()
	if format == FormatAuto {
		format = FormatForPath(path)
	}
	c, err := Parse(f, format)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) && le.Source == "" {
			le.Source = path
		}
		return nil, err
	}
	return c, nil
}

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	c, err := Parse(bytes.NewReader(defaultCatalog), FormatJSON)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Source = "(built-in)"
		}
		return nil, err
	}
	return c, nil
}

// Parse decodes a category-to-entries mapping from r. Category order in the
// source becomes menu order.
func Parse(r io.Reader, format Format) (*Catalog, error) {
	var (
		categories []Category
		err        error
	)
	switch format {
	case FormatYAML:
		categories, err = parseYAML(r)
	case FormatJSON, FormatAuto:
		categories, err = parseJSON(r)
	default:
		return nil, &LoadError{Reason: fmt.Sprintf("unsupported format %q", format)}
	}
	if err != nil {
		return nil, err
	}
	c, err := New(categories)
	if err != nil {
		return nil, &LoadError{Reason: "invalid catalog", Err: err}
	}
	return c, nil
}

// rawEntry keeps pointers so a missing field can be told apart from an
// empty one.
type rawEntry struct {
	Key   *string `json:"key" yaml:"key"`
	Value *string `json:"value" yaml:"value"`
}

func (r rawEntry) entry(category string, idx int) (Entry, error) {
	if r.Key == nil {
		return Entry{}, &LoadError{Reason: fmt.Sprintf("category %q entry %d: missing key", category, idx)}
	}
	if r.Value == nil {
		return Entry{}, &LoadError{Reason: fmt.Sprintf("category %q entry %d: missing value", category, idx)}
	}
	return Entry{Key: *r.Key, Value: *r.Value}, nil
}

func parseJSON(r io.Reader) ([]Category, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Reason: "empty source"}
		}
		return nil, &LoadError{Reason: "malformed JSON", Err: err}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &LoadError{Reason: "top level must map category names to entry lists"}
	}
	var categories []Category
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, &LoadError{Reason: "malformed JSON", Err: err}
		}
		name, ok := tok.(string)
		if !ok {
			return nil, &LoadError{Reason: "category name must be a string"}
		}
		var msg json.RawMessage
		if err := dec.Decode(&msg); err != nil {
			return nil, &LoadError{Reason: fmt.Sprintf("category %q: malformed JSON", name), Err: err}
		}
		if body := bytes.TrimSpace(msg); len(body) == 0 || body[0] != '[' {
			return nil, &LoadError{Reason: fmt.Sprintf("category %q must be a sequence of {key, value} records", name)}
		}
		var raw []rawEntry
		if err := json.Unmarshal(msg, &raw); err != nil {
			return nil, &LoadError{Reason: fmt.Sprintf("category %q entries must be {key, value} records of strings", name), Err: err}
		}
		cat := Category{Name: name, Entries: make([]Entry, 0, len(raw))}
		for i, re := range raw {
			entry, err := re.entry(name, i)
			if err != nil {
				return nil, err
			}
			cat.Entries = append(cat.Entries, entry)
		}
		categories = append(categories, cat)
	}
	if _, err := dec.Token(); err != nil {
		return nil, &LoadError{Reason: "malformed JSON", Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &LoadError{Reason: "unexpected data after catalog object"}
	}
	return categories, nil
}

func parseYAML(r io.Reader) ([]Category, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Reason: "empty source"}
		}
		return nil, &LoadError{Reason: "malformed YAML", Err: err}
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, &LoadError{Reason: "top level must map category names to entry lists"}
	}
	categories := make([]Category, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, &LoadError{Reason: fmt.Sprintf("line %d: category name must be a string", keyNode.Line)}
		}
		name := keyNode.Value
		if valueNode.Kind != yaml.SequenceNode {
			return nil, &LoadError{Reason: fmt.Sprintf("category %q must be a sequence of {key, value} records", name)}
		}
		cat := Category{Name: name, Entries: make([]Entry, 0, len(valueNode.Content))}
		for idx, item := range valueNode.Content {
			if item.Kind != yaml.MappingNode {
				return nil, &LoadError{Reason: fmt.Sprintf("category %q entry %d must be a {key, value} record", name, idx)}
			}
			var re rawEntry
			if err := item.Decode(&re); err != nil {
				return nil, &LoadError{Reason: fmt.Sprintf("category %q entry %d", name, idx), Err: err}
			}
			entry, err := re.entry(name, idx)
			if err != nil {
				return nil, err
			}
			cat.Entries = append(cat.Entries, entry)
		}
		categories = append(categories, cat)
	}
	return categories, nil
}
