package catalog

import (
	"fmt"
	"strings"
)

const (
	// LabelWidth is the number of characters of a key shown before truncation.
	LabelWidth = 15
	// LabelMarker is appended to keys that were truncated.
	LabelMarker = ".."
)

// hiddenMarkers flag skin-tone variants and family glyphs, which are kept in
// the catalog but never shown.
var hiddenMarkers = []string{"type", "family"}

// FilterFunc selects entries from a catalog for a query.
type FilterFunc func(c *Catalog, query string) []Entry

// Filter returns the "_all" entries whose key contains query, in catalog
// order. Matching is case-sensitive. An empty query returns every entry.
func Filter(c *Catalog, query string) []Entry {
	return filterAll(c, query, func(key string) bool {
		return strings.Contains(key, query)
	})
}

// FilterFold behaves like Filter but ignores case.
func FilterFold(c *Catalog, query string) []Entry {
	lower := strings.ToLower(query)
	return filterAll(c, query, func(key string) bool {
		return strings.Contains(strings.ToLower(key), lower)
	})
}

func filterAll(c *Catalog, query string, match func(string) bool) []Entry {
	if c == nil {
		return nil
	}
	if query == "" {
		return CloneEntries(c.all.Entries)
	}
	filtered := make([]Entry, 0, len(c.all.Entries))
	for _, entry := range c.all.Entries {
		if match(entry.Key) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// Hidden reports whether an entry with this key is excluded from display.
func Hidden(key string) bool {
	for _, marker := range hiddenMarkers {
		if strings.Contains(key, marker) {
			return true
		}
	}
	return false
}

// Visible drops entries that should not be displayed, preserving order.
func Visible(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if Hidden(entry.Key) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// DisplayLabel shortens key to LabelWidth characters, appending LabelMarker
// when anything was cut.
func DisplayLabel(key string) string {
	runes := []rune(key)
	if len(runes) <= LabelWidth {
		return key
	}
	return string(runes[:LabelWidth]) + LabelMarker
}

// Browse returns the displayable entries of a real category. The "_all"
// aggregate is only reachable through an empty Filter query.
func Browse(c *Catalog, name string) ([]Entry, error) {
	if c == nil || name == AllCategory {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	cat, ok := c.categories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return Visible(cat.Entries), nil
}
