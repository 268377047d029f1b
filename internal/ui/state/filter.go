package state

import (
	"strings"
	"unicode"

	"github.com/atomicstack/emoji-picker/internal/catalog"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter updates the filter query and cursor position and recomputes the
// grid from the whole catalog.
func (r *Results) SetFilter(query string, cursor int) {
	r.Filter = query
	runes := []rune(r.Filter)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	r.FilterCursor = cursor
	r.Refilter()
}

// FilterCursorPos returns the rune offset of the filter cursor.
func (r *Results) FilterCursorPos() int {
	runes := []rune(r.Filter)
	if r.FilterCursor < 0 {
		return 0
	}
	if r.FilterCursor > len(runes) {
		return len(runes)
	}
	return r.FilterCursor
}

// InsertFilterText inserts text into the filter at the cursor position.
func (r *Results) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(r.Filter)
	pos := r.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	r.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes a rune before the filter cursor.
func (r *Results) DeleteFilterRuneBackward() bool {
	runes := []rune(r.Filter)
	pos := r.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	r.SetFilter(string(updated), pos-1)
	return true
}

// DeleteFilterWordBackward deletes the word preceding the cursor. Underscores
// separate words as well as spaces, since keys are snake_case.
func (r *Results) DeleteFilterWordBackward() bool {
	runes := []rune(r.Filter)
	pos := r.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStartBefore(runes, pos)
	updated := append(runes[:i], runes[pos:]...)
	r.SetFilter(string(updated), i)
	return true
}

// MoveFilterCursorStart moves the filter cursor to the start.
func (r *Results) MoveFilterCursorStart() bool {
	if r.FilterCursorPos() == 0 {
		return false
	}
	r.FilterCursor = 0
	return true
}

// MoveFilterCursorEnd moves the filter cursor to the end.
func (r *Results) MoveFilterCursorEnd() bool {
	end := len([]rune(r.Filter))
	if r.FilterCursorPos() == end {
		return false
	}
	r.FilterCursor = end
	return true
}

// MoveFilterCursorWordBackward moves the filter cursor one word backward.
func (r *Results) MoveFilterCursorWordBackward() bool {
	runes := []rune(r.Filter)
	pos := r.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStartBefore(runes, pos)
	if i == pos {
		return false
	}
	r.FilterCursor = i
	return true
}

// MoveFilterCursorWordForward moves the filter cursor one word forward.
func (r *Results) MoveFilterCursorWordForward() bool {
	runes := []rune(r.Filter)
	pos := r.FilterCursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !isWordSeparator(runes[i]) {
		i++
	}
	for i < len(runes) && isWordSeparator(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	r.FilterCursor = i
	return true
}

// MoveFilterCursorRuneBackward moves the filter cursor one rune backward.
func (r *Results) MoveFilterCursorRuneBackward() bool {
	if r.FilterCursorPos() == 0 {
		return false
	}
	r.FilterCursor = r.FilterCursorPos() - 1
	return true
}

// MoveFilterCursorRuneForward moves the filter cursor one rune forward.
func (r *Results) MoveFilterCursorRuneForward() bool {
	runes := []rune(r.Filter)
	pos := r.FilterCursorPos()
	if pos >= len(runes) {
		return false
	}
	r.FilterCursor = pos + 1
	return true
}

func wordStartBefore(runes []rune, pos int) int {
	i := pos
	for i > 0 && isWordSeparator(runes[i-1]) {
		i--
	}
	for i > 0 && !isWordSeparator(runes[i-1]) {
		i--
	}
	return i
}

func isWordSeparator(r rune) bool {
	return r == '_' || unicode.IsSpace(r)
}

// BestMatchIndex picks where the cursor should land among already-filtered
// entries: an exact key first, then a key prefix, then the closest fuzzy
// rank. It never changes which entries are shown.
func BestMatchIndex(entries []catalog.Entry, query string) int {
	if len(entries) == 0 {
		return -1
	}
	if query == "" {
		return 0
	}
	for i, entry := range entries {
		if strings.EqualFold(entry.Key, query) {
			return i
		}
	}
	lower := strings.ToLower(query)
	for i, entry := range entries {
		if strings.HasPrefix(strings.ToLower(entry.Key), lower) {
			return i
		}
	}
	keys := make([]string, len(entries))
	for i, entry := range entries {
		keys[i] = entry.Key
	}
	ranks := fuzzy.RankFindNormalizedFold(query, keys)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(entries) {
		return 0
	}
	return best.OriginalIndex
}
