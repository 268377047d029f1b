// Package grid lays fixed-width cells out in rows, measuring text in terminal
// cells rather than runes so wide glyphs line up.
package grid

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Columns returns how many cells of cellWidth fit into width when separated
// by gap spaces. At least one column is always returned.
func Columns(width, cellWidth, gap int) int {
	if cellWidth <= 0 || width <= cellWidth {
		return 1
	}
	if gap < 0 {
		gap = 0
	}
	return (width + gap) / (cellWidth + gap)
}

// Pad truncates text to width cells and right-pads it with spaces so every
// cell occupies exactly width columns.
func Pad(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) > width {
		text = runewidth.Truncate(text, width, "")
	}
	return runewidth.FillRight(text, width)
}

// Width reports the display width of text.
func Width(text string) int {
	return runewidth.StringWidth(text)
}

// Join groups already-rendered cells into rows of cols, separated by gap
// spaces.
func Join(cells []string, cols, gap int) []string {
	if len(cells) == 0 {
		return nil
	}
	if cols < 1 {
		cols = 1
	}
	sep := strings.Repeat(" ", max(gap, 0))
	rows := make([]string, 0, RowCount(len(cells), cols))
	for start := 0; start < len(cells); start += cols {
		end := min(start+cols, len(cells))
		rows = append(rows, strings.Join(cells[start:end], sep))
	}
	return rows
}

// RowCount returns the number of rows n cells occupy at cols per row.
func RowCount(n, cols int) int {
	if n <= 0 {
		return 0
	}
	if cols < 1 {
		cols = 1
	}
	return (n + cols - 1) / cols
}
