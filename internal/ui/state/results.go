package state

import (
	"fmt"

	"github.com/atomicstack/emoji-picker/internal/catalog"
)

// Results tracks the entry grid: where its entries came from, the filter
// text that produced them, and the cursor/viewport over the grid.
type Results struct {
	Source       string
	Items        []catalog.Entry
	Filter       string
	FilterCursor int
	Cursor       int
	Columns      int
	RowOffset    int
	// JumpToBest lands the cursor on the closest match after each refilter
	// instead of the first entry.
	JumpToBest bool

	catalog *catalog.Catalog
	match   catalog.FilterFunc
}

// NewResults binds the grid state to a catalog. A nil match uses the
// case-sensitive catalog.Filter.
func NewResults(c *catalog.Catalog, match catalog.FilterFunc) *Results {
	if match == nil {
		match = catalog.Filter
	}
	return &Results{
		Source:  catalog.AllCategory,
		Columns: 1,
		catalog: c,
		match:   match,
	}
}

// Browse replaces the grid with the visible entries of a category. The
// filter text is left untouched.
func (r *Results) Browse(name string) error {
	entries, err := catalog.Browse(r.catalog, name)
	if err != nil {
		return err
	}
	r.Source = name
	r.setItems(entries)
	r.Cursor = 0
	r.RowOffset = 0
	return nil
}

// Refilter recomputes the grid from the current filter text over the whole
// catalog.
func (r *Results) Refilter() {
	r.Source = catalog.AllCategory
	r.setItems(catalog.Visible(r.match(r.catalog, r.Filter)))
	r.Cursor = 0
	r.RowOffset = 0
	if r.JumpToBest && r.Filter != "" && len(r.Items) > 0 {
		if idx := BestMatchIndex(r.Items, r.Filter); idx >= 0 {
			r.Cursor = idx
		}
	}
}

// Selected returns the entry under the cursor.
func (r *Results) Selected() (catalog.Entry, bool) {
	if r.Cursor < 0 || r.Cursor >= len(r.Items) {
		return catalog.Entry{}, false
	}
	return r.Items[r.Cursor], true
}

// Title describes where the grid contents came from.
func (r *Results) Title() string {
	if r.Source != catalog.AllCategory {
		return r.Source
	}
	if r.Filter == "" {
		return "All"
	}
	return fmt.Sprintf("Matches for %q", r.Filter)
}

func (r *Results) setItems(entries []catalog.Entry) {
	r.Items = entries
	if len(r.Items) == 0 {
		r.Cursor = 0
		r.RowOffset = 0
	}
}
