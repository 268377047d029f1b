package ui

import (
	"github.com/atomicstack/emoji-picker/internal/catalog"
	"github.com/atomicstack/emoji-picker/internal/format/grid"
	"github.com/atomicstack/emoji-picker/internal/logging/events"
	"github.com/atomicstack/emoji-picker/internal/ui/command"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		if m.phase == PhaseDone {
			events.UI.Abandon()
		}
		return tea.Quit
	}
	// Done waits for the copy result; only quit is processed.
	if m.phase == PhaseDone {
		return nil
	}
	switch m.phase {
	case PhaseBrowsing:
		return m.handleBrowsingKey(keyMsg)
	case PhaseEditing:
		return m.handleEditingKey(keyMsg)
	case PhaseSelecting:
		return m.handleSelectingKey(keyMsg)
	}
	return nil
}

func (m *Model) handleBrowsingKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.menu.MoveUp() {
			events.UI.Cursor("menu", m.menu.Cursor)
		}
		m.syncViewport()
	case key.Matches(msg, m.keys.Down):
		if m.menu.MoveDown() {
			events.UI.Cursor("menu", m.menu.Cursor)
		}
		m.syncViewport()
	case key.Matches(msg, m.keys.Activate):
		if name, ok := m.menu.Current(); ok {
			m.browse(name)
		}
	case key.Matches(msg, m.keys.Filter):
		return m.focusFilter()
	case msg.Type == tea.KeyRunes && !msg.Alt:
		// Typing from the menu starts a filter edit with that text.
		cmd := m.focusFilter()
		m.handleTextInput(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleEditingKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyEnter:
		events.UI.Focus("results")
		m.syncViewport()
		return m.setPhase(PhaseSelecting)
	case key.Matches(msg, m.keys.Back):
		events.UI.Focus("menu")
		return m.setPhase(PhaseBrowsing)
	}
	m.handleTextInput(msg)
	return nil
}

func (m *Model) handleSelectingKey(msg tea.KeyMsg) tea.Cmd {
	r := m.results
	rows := m.bodyRows()
	moved := false
	switch {
	case key.Matches(msg, m.keys.Commit):
		return m.commit()
	case key.Matches(msg, m.keys.Filter):
		return m.focusFilter()
	case key.Matches(msg, m.keys.Up):
		moved = r.MoveCursorUp()
	case key.Matches(msg, m.keys.Down):
		moved = r.MoveCursorDown()
	case key.Matches(msg, m.keys.Left):
		moved = r.MoveCursorLeft()
	case key.Matches(msg, m.keys.Right):
		moved = r.MoveCursorRight()
	case key.Matches(msg, m.keys.PageUp):
		moved = r.MoveCursorPageUp(rows)
	case key.Matches(msg, m.keys.PageDown):
		moved = r.MoveCursorPageDown(rows)
	case key.Matches(msg, m.keys.Home):
		moved = r.MoveCursorHome()
	case key.Matches(msg, m.keys.End):
		moved = r.MoveCursorEnd()
	}
	if moved {
		events.UI.Cursor("results", r.Cursor)
		m.syncViewport()
	}
	return nil
}

func (m *Model) focusFilter() tea.Cmd {
	events.UI.Focus("filter")
	m.filterCursorDirty = true
	return m.setPhase(PhaseEditing)
}

// browse shows a category's visible entries. The filter text is kept.
func (m *Model) browse(name string) {
	if err := m.results.Browse(name); err != nil {
		events.Category.Error(name, err)
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.menu.Active = name
	if idx := m.menu.IndexOf(name); idx >= 0 {
		m.menu.Cursor = idx
	}
	events.Category.Browse(name, len(m.results.Items))
	m.syncViewport()
}

// commit moves to Done and hands the entry under the cursor to the sink.
func (m *Model) commit() tea.Cmd {
	entry, ok := m.results.Selected()
	if !ok {
		return nil
	}
	cmd := m.bus.Commit(entry)
	if cmd == nil {
		return nil
	}
	m.setPhase(PhaseDone)
	return cmd
}

func (m *Model) handleCopiedMsg(msg tea.Msg) tea.Cmd {
	copied, ok := msg.(command.CopiedMsg)
	if !ok {
		return nil
	}
	m.outcome = Outcome{Selected: true, Entry: copied.Entry, Err: copied.Err}
	if copied.Err != nil {
		m.errMsg = copied.Err.Error()
	}
	return tea.Quit
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || m.phase == PhaseDone {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if m.phase != PhaseSelecting {
			return nil
		}
		move := m.results.MoveCursorDown
		if ev.Button == tea.MouseButtonWheelUp {
			move = m.results.MoveCursorUp
		}
		if move() {
			events.UI.Cursor("results", m.results.Cursor)
			m.syncViewport()
		}
		return nil
	case tea.MouseButtonLeft:
		if ev.Action != tea.MouseActionPress {
			return nil
		}
	default:
		return nil
	}
	name, ok := m.menuNameAt(ev.X, ev.Y)
	if !ok {
		return nil
	}
	m.browse(name)
	if m.phase != PhaseBrowsing {
		events.UI.Focus("menu")
		return m.setPhase(PhaseBrowsing)
	}
	return nil
}

// menuNameAt maps a screen position onto a category row.
func (m *Model) menuNameAt(x, y int) (string, bool) {
	if x < 0 || x >= menuWidth || y < bodyTop {
		return "", false
	}
	row := y - bodyTop
	if rows := m.bodyRows(); rows > 0 && row >= rows {
		return "", false
	}
	idx := m.menu.Offset + row
	if idx < 0 || idx >= len(m.menu.Names) {
		return "", false
	}
	return m.menu.Names[idx], true
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

// syncViewport recomputes grid columns for the current width and keeps both
// cursors on screen.
func (m *Model) syncViewport() {
	m.results.SetColumns(grid.Columns(m.gridWidth(), cellWidth, cellGap))
	rows := m.bodyRows()
	m.results.EnsureCursorVisible(rows)
	m.menu.EnsureCursorVisible(rows)
}

// Selected returns the entry under the grid cursor.
func (m *Model) Selected() (catalog.Entry, bool) {
	return m.results.Selected()
}
