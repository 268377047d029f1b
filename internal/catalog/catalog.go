// Package catalog holds the emoji index the picker works from: categories of
// key/glyph entries, the flattened "_all" aggregate, and the pure functions
// that filter and browse it. A Catalog never changes after it is built.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// AllCategory names the synthetic category that concatenates every real
// category in declaration order.
const AllCategory = "_all"

// ErrUnknownCategory is returned when a category lookup misses.
var ErrUnknownCategory = errors.New("unknown category")

// Entry is a single emoji record. Key is the descriptive name used for
// matching and display; Value is the glyph that gets copied.
type Entry struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Category is a named, ordered group of entries.
type Category struct {
	Name    string
	Entries []Entry
}

// Catalog is the immutable index built at startup.
type Catalog struct {
	order      []string
	categories map[string]Category
	all        Category
}

// New validates the supplied categories and builds a catalog, including the
// "_all" aggregate. The input slices are copied.
func New(categories []Category) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, errors.New("catalog has no categories")
	}
	c := &Catalog{
		order:      make([]string, 0, len(categories)),
		categories: make(map[string]Category, len(categories)),
		all:        Category{Name: AllCategory},
	}
	total := 0
	for _, cat := range categories {
		total += len(cat.Entries)
	}
	c.all.Entries = make([]Entry, 0, total)
	for _, cat := range categories {
		name := cat.Name
		if strings.TrimSpace(name) == "" {
			return nil, errors.New("category name must not be empty")
		}
		if name == AllCategory {
			return nil, fmt.Errorf("category name %q is reserved", AllCategory)
		}
		if _, dup := c.categories[name]; dup {
			return nil, fmt.Errorf("duplicate category %q", name)
		}
		for i, entry := range cat.Entries {
			if entry.Key == "" {
				return nil, fmt.Errorf("category %q entry %d: key must not be empty", name, i)
			}
			if entry.Value == "" {
				return nil, fmt.Errorf("category %q entry %d (%s): value must not be empty", name, i, entry.Key)
			}
		}
		entries := CloneEntries(cat.Entries)
		c.order = append(c.order, name)
		c.categories[name] = Category{Name: name, Entries: entries}
		c.all.Entries = append(c.all.Entries, entries...)
	}
	return c, nil
}

// Names lists the real categories in menu order. The "_all" aggregate is not
// included.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// Category returns a copy of the named category. AllCategory resolves to the
// flattened aggregate.
func (c *Catalog) Category(name string) (Category, bool) {
	if c == nil {
		return Category{}, false
	}
	if name == AllCategory {
		return Category{Name: AllCategory, Entries: CloneEntries(c.all.Entries)}, true
	}
	cat, ok := c.categories[name]
	if !ok {
		return Category{}, false
	}
	return Category{Name: cat.Name, Entries: CloneEntries(cat.Entries)}, true
}

// Has reports whether name is a real category.
func (c *Catalog) Has(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.categories[name]
	return ok
}

// All returns a copy of the flattened "_all" entries.
func (c *Catalog) All() []Entry {
	if c == nil {
		return nil
	}
	return CloneEntries(c.all.Entries)
}

// Len reports the number of entries across all categories.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.all.Entries)
}

// CloneEntries produces a shallow copy of the provided entries.
func CloneEntries(entries []Entry) []Entry {
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
