package ui

import (
	"unicode"

	"github.com/atomicstack/emoji-picker/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	filterLabel       = "Filter: "
	filterPlaceholder = "(type to search)"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.results.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// handleTextInput applies an editing keystroke to the filter. Every change
// to the text refilters the whole catalog.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	current := m.results
	switch msg.String() {
	case "ctrl+u":
		if current.Filter == "" {
			return false
		}
		before := current.FilterCursorPos()
		current.SetFilter("", 0)
		m.noteFilterCursorChange(before)
		m.errMsg = ""
		events.Filter.Cleared()
		m.afterRefilter()
		return true
	case "ctrl+w":
		before := current.FilterCursorPos()
		if !current.DeleteFilterWordBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		m.errMsg = ""
		events.Filter.WordBackspace(current.Filter, len(current.Items))
		m.afterRefilter()
		return true
	case "ctrl+a", "home":
		before := current.FilterCursorPos()
		if !current.MoveFilterCursorStart() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(current.FilterCursor)
		return true
	case "ctrl+e", "end":
		before := current.FilterCursorPos()
		if !current.MoveFilterCursorEnd() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(current.FilterCursor)
		return true
	case "alt+b":
		before := current.FilterCursorPos()
		if !current.MoveFilterCursorWordBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.CursorWord(current.FilterCursor)
		return true
	case "alt+f":
		before := current.FilterCursorPos()
		if !current.MoveFilterCursorWordForward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.CursorWord(current.FilterCursor)
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune()
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyLeft:
		before := current.FilterCursorPos()
		if !current.MoveFilterCursorRuneBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(current.FilterCursor)
		return true
	case tea.KeyRight:
		before := current.FilterCursorPos()
		if !current.MoveFilterCursorRuneForward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(current.FilterCursor)
		return true
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	if text == "" {
		return false
	}
	before := m.results.FilterCursorPos()
	if !m.results.InsertFilterText(text) {
		return false
	}
	m.noteFilterCursorChange(before)
	m.errMsg = ""
	events.Filter.Append(m.results.Filter, len(m.results.Items))
	m.afterRefilter()
	return true
}

func (m *Model) removeFilterRune() bool {
	before := m.results.FilterCursorPos()
	if !m.results.DeleteFilterRuneBackward() {
		return false
	}
	m.noteFilterCursorChange(before)
	m.errMsg = ""
	events.Filter.Backspace(m.results.Filter, len(m.results.Items))
	m.afterRefilter()
	return true
}

// afterRefilter drops the menu highlight: the grid now shows filter results
// rather than a browsed category.
func (m *Model) afterRefilter() {
	m.menu.Active = ""
	m.syncViewport()
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	prompt := render(styles.FilterPrompt, filterLabel)
	text := m.results.Filter
	editing := m.phase == PhaseEditing
	if text == "" {
		if !editing {
			return prompt + render(styles.FilterPlaceholder, filterPlaceholder)
		}
		runes := []rune(filterPlaceholder)
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = *styles.FilterPlaceholder
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = *styles.Filter
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	if !editing {
		return prompt + render(styles.Filter, text)
	}
	runes := []rune(text)
	pos := m.results.FilterCursorPos()
	head := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + head + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
