package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/emoji-picker/internal/catalog"
	"github.com/atomicstack/emoji-picker/internal/format/grid"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	menuWidth     = 12
	menuGap       = 2
	cellWidth     = 21
	cellGap       = 1
	fallbackWidth = 80

	// screen rows above the body: filter prompt and column headers
	bodyTop = 2
	// status line below the body
	bodyBottom = 1
	footerRows = 2
)

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]string, 0, 16)
	lines = append(lines, m.filterPrompt())
	lines = append(lines, m.headerLine())
	lines = append(lines, m.bodyLines()...)
	lines = append(lines, m.statusLine())
	if m.showFooter {
		lines = append(lines, "", m.footerLine())
	}
	if m.width > 0 {
		for i, line := range lines {
			if lipgloss.Width(line) > m.width {
				lines[i] = truncate.String(line, uint(m.width))
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) headerLine() string {
	left := grid.Pad("Categories", menuWidth)
	right := m.results.Title()
	if n := len(m.results.Items); n > 0 {
		right = fmt.Sprintf("%s (%d)", right, n)
	}
	if styles.Header != nil {
		left = styles.Header.Render(left)
		right = styles.Header.Render(right)
	}
	return left + strings.Repeat(" ", menuGap) + right
}

func (m *Model) bodyLines() []string {
	menuCol := m.menuLines()
	gridCol := m.gridLines()
	n := m.bodyRows()
	if n <= 0 {
		n = max(len(menuCol), len(gridCol))
	}
	blankMenu := strings.Repeat(" ", menuWidth)
	sep := strings.Repeat(" ", menuGap)
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		left := blankMenu
		if i < len(menuCol) {
			left = menuCol[i]
		}
		right := ""
		if i < len(gridCol) {
			right = gridCol[i]
		}
		out = append(out, strings.TrimRight(left+sep+right, " "))
	}
	return out
}

func (m *Model) menuLines() []string {
	names := m.menu.Names
	start := m.menu.Offset
	end := len(names)
	if rows := m.bodyRows(); rows > 0 && start+rows < end {
		end = start + rows
	}
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		name := names[i]
		text := grid.Pad(name, menuWidth)
		style := styles.Category
		switch {
		case i == m.menu.Cursor && m.phase == PhaseBrowsing:
			style = styles.FocusedCategory
		case name == m.menu.Active:
			style = styles.ActiveCategory
		}
		if style != nil {
			text = style.Render(text)
		}
		lines = append(lines, text)
	}
	return lines
}

func (m *Model) gridLines() []string {
	r := m.results
	if len(r.Items) == 0 {
		msg := "(no entries)"
		if r.Filter != "" && r.Source == catalog.AllCategory {
			msg = fmt.Sprintf("No matches for %q", r.Filter)
		}
		if styles.Info != nil {
			msg = styles.Info.Render(msg)
		}
		return []string{msg}
	}
	cols := r.Columns
	if cols < 1 {
		cols = 1
	}
	start := r.RowOffset * cols
	end := len(r.Items)
	if rows := m.bodyRows(); rows > 0 && start+rows*cols < end {
		end = start + rows*cols
	}
	showCursor := m.phase == PhaseSelecting || m.phase == PhaseDone
	cells := make([]string, 0, end-start)
	for idx := start; idx < end; idx++ {
		style := styles.Cell
		if showCursor && idx == r.Cursor {
			style = styles.FocusedCell
		}
		text := cellText(r.Items[idx])
		if style != nil {
			text = style.Render(text)
		}
		cells = append(cells, text)
	}
	return grid.Join(cells, cols, cellGap)
}

// cellText renders one grid cell: the glyph followed by its shortened key.
func cellText(entry catalog.Entry) string {
	return grid.Pad(entry.Value+" "+catalog.DisplayLabel(entry.Key), cellWidth)
}

func (m *Model) statusLine() string {
	switch {
	case m.errMsg != "":
		text := "Error: " + m.errMsg
		if styles.Error != nil {
			text = styles.Error.Render(text)
		}
		return text
	case m.phase == PhaseDone:
		text := "Copying…"
		if entry, ok := m.results.Selected(); ok {
			text = fmt.Sprintf("Copying %s %s…", entry.Value, entry.Key)
		}
		if styles.Info != nil {
			text = styles.Info.Render(text)
		}
		return text
	}
	return ""
}

func (m *Model) footerLine() string {
	bindings := m.keys.footerHelp(m.phase)
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	text := strings.Join(parts, "  ")
	if styles.Footer != nil {
		text = styles.Footer.Render(text)
	}
	return text
}

// bodyRows is the number of screen rows available to the menu and grid, or
// -1 when the height is unknown.
func (m *Model) bodyRows() int {
	if m.height <= 0 {
		return -1
	}
	used := bodyTop + bodyBottom
	if m.showFooter {
		used += footerRows
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

// gridWidth is the width left for the grid beside the category menu.
func (m *Model) gridWidth() int {
	width := m.width
	if width <= 0 {
		width = fallbackWidth
	}
	return max(width-menuWidth-menuGap, cellWidth)
}
