package ui

import (
	"reflect"
	"testing"

	"github.com/atomicstack/emoji-picker/internal/catalog"
	tea "github.com/charmbracelet/bubbletea"
)

func TestBrowsingActivatesCategory(t *testing.T) {
	h, rec, _ := newTestHarness(t, Options{})
	h.Press(tea.KeyDown)
	m := h.Model()
	if m.results.Source != "People" {
		t.Fatalf("expected menu movement alone to keep People, got %q", m.results.Source)
	}
	h.Press(tea.KeyEnter)
	if m.Phase() != PhaseBrowsing {
		t.Fatalf("expected browsing after activation, got %s", m.Phase())
	}
	if got := itemKeys(m); !reflect.DeepEqual(got, []string{"fox", "cat_face", "cat"}) {
		t.Fatalf("expected Nature entries, got %v", got)
	}
	if m.menu.Active != "Nature" {
		t.Fatalf("expected Nature highlighted, got %q", m.menu.Active)
	}

	h.Press(tea.KeyUp)
	h.Press(tea.KeyUp)
	if m.menu.Cursor != 2 {
		t.Fatalf("expected menu to wrap to Food, got %d", m.menu.Cursor)
	}
	h.Press(tea.KeySpace)
	if got := itemKeys(m); !reflect.DeepEqual(got, []string{"pizza"}) {
		t.Fatalf("expected Food entries, got %v", got)
	}
	if len(rec.Values()) != 0 {
		t.Fatalf("expected browsing never to copy")
	}
}

func TestBrowseKeepsFilterText(t *testing.T) {
	h, _, _ := newTestHarness(t, Options{})
	h.Type("/fox")
	h.Press(tea.KeyShiftTab)
	m := h.Model()
	if m.Phase() != PhaseBrowsing {
		t.Fatalf("expected browsing, got %s", m.Phase())
	}
	if m.menu.Active != "" {
		t.Fatalf("expected no active category while filtered, got %q", m.menu.Active)
	}
	h.Press(tea.KeyEnter)
	if m.results.Source != "People" {
		t.Fatalf("expected People browsed, got %q", m.results.Source)
	}
	if m.results.Filter != "fox" {
		t.Fatalf("expected filter text kept, got %q", m.results.Filter)
	}
}

func TestSelectingNavigatesGrid(t *testing.T) {
	h, _, _ := newTestHarness(t, Options{Width: 80, Height: 10})
	h.Type("/x")
	h.Press(tea.KeyBackspace)
	h.Press(tea.KeyEnter)
	m := h.Model()
	if len(m.results.Items) != 8 {
		t.Fatalf("expected every visible entry, got %v", itemKeys(m))
	}
	if m.Phase() != PhaseSelecting {
		t.Fatalf("expected selecting, got %s", m.Phase())
	}
	if m.results.Columns != 3 {
		t.Fatalf("expected 3 columns at width 80, got %d", m.results.Columns)
	}
	if m.results.Cursor != 0 {
		t.Fatalf("expected cursor at first entry, got %d", m.results.Cursor)
	}
	h.Press(tea.KeyRight)
	h.Press(tea.KeyDown)
	if m.results.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", m.results.Cursor)
	}
	h.Press(tea.KeyEnd)
	if m.results.Cursor != len(m.results.Items)-1 {
		t.Fatalf("expected cursor on last entry, got %d", m.results.Cursor)
	}
	h.Press(tea.KeyHome)
	if m.results.Cursor != 0 {
		t.Fatalf("expected cursor on first entry, got %d", m.results.Cursor)
	}
	h.Press(tea.KeyPgDown)
	if m.results.Cursor == 0 {
		t.Fatalf("expected page down to move the cursor")
	}

	h.Type("/")
	if m.Phase() != PhaseEditing {
		t.Fatalf("expected filter refocused, got %s", m.Phase())
	}
}

func TestSelectingEmptyGridDoesNotCommit(t *testing.T) {
	h, rec, _ := newTestHarness(t, Options{})
	h.Type("/zzz")
	h.Press(tea.KeyEnter)
	h.Press(tea.KeyEnter)
	m := h.Model()
	if m.Phase() != PhaseSelecting {
		t.Fatalf("expected to stay selecting, got %s", m.Phase())
	}
	if len(rec.Values()) != 0 || m.Outcome().Selected {
		t.Fatalf("expected nothing copied from an empty grid")
	}
}

func TestEditingEnterFocusesFirstMatch(t *testing.T) {
	h, rec, _ := newTestHarness(t, Options{})
	h.Type("/cat")
	h.Press(tea.KeyEnter)
	entry, ok := h.Model().Selected()
	if !ok || entry.Key != "grinning_cat" {
		t.Fatalf("expected first match under cursor, got %#v", entry)
	}
	h.Press(tea.KeyEnter)
	if got := rec.Values(); !reflect.DeepEqual(got, []string{"😺"}) {
		t.Fatalf("expected first match copied, got %v", got)
	}
}

func TestEditingEnterKeepsBestMatchWhenEnabled(t *testing.T) {
	h, _, _ := newTestHarness(t, Options{JumpToBestMatch: true})
	h.Type("/cat")
	h.Press(tea.KeyEnter)
	entry, ok := h.Model().Selected()
	if !ok || entry.Key != "cat" {
		t.Fatalf("expected exact match selected, got %#v", entry)
	}
}

func TestMouseClickBrowsesCategory(t *testing.T) {
	h, _, _ := newTestHarness(t, Options{Width: 80, Height: 10})
	h.Type("/fox")
	h.Send(tea.MouseMsg{X: 2, Y: bodyTop + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m := h.Model()
	if m.Phase() != PhaseBrowsing {
		t.Fatalf("expected click to return to browsing, got %s", m.Phase())
	}
	if m.results.Source != "Food" {
		t.Fatalf("expected Food browsed, got %q", m.results.Source)
	}

	h.Send(tea.MouseMsg{X: 40, Y: bodyTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.results.Source != "Food" {
		t.Fatalf("expected grid click to leave the menu alone, got %q", m.results.Source)
	}
	h.Send(tea.MouseMsg{X: 2, Y: bodyTop + 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.results.Source != "Food" {
		t.Fatalf("expected click below the menu to be ignored, got %q", m.results.Source)
	}
}

func TestMouseWheelMovesGridCursor(t *testing.T) {
	h, _, _ := newTestHarness(t, Options{Width: 40})
	h.Type("/")
	h.Press(tea.KeyEnter)
	m := h.Model()
	if m.results.Columns != 1 {
		t.Fatalf("expected single column at width 40, got %d", m.results.Columns)
	}
	h.Send(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if m.results.Cursor != 1 {
		t.Fatalf("expected wheel down to move cursor, got %d", m.results.Cursor)
	}
	h.Send(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if m.results.Cursor != 0 {
		t.Fatalf("expected wheel up to move cursor back, got %d", m.results.Cursor)
	}
}

func TestWindowSizeUpdatesColumns(t *testing.T) {
	h, _, _ := newTestHarness(t, Options{})
	h.Send(tea.WindowSizeMsg{Width: 120, Height: 30})
	m := h.Model()
	if m.width != 120 || m.height != 30 {
		t.Fatalf("expected size recorded, got %dx%d", m.width, m.height)
	}
	if m.results.Columns != 4 {
		t.Fatalf("expected 4 columns at width 120, got %d", m.results.Columns)
	}

	fixed, _, _ := newTestHarness(t, Options{Width: 60, Height: 8})
	fixed.Send(tea.WindowSizeMsg{Width: 120, Height: 30})
	if fixed.Model().width != 60 || fixed.Model().height != 8 {
		t.Fatalf("expected fixed size kept")
	}
}

func TestEmptyQueryShowsAggregate(t *testing.T) {
	h, _, c := newTestHarness(t, Options{})
	h.Type("/x")
	h.Press(tea.KeyBackspace)
	m := h.Model()
	if m.results.Source != catalog.AllCategory {
		t.Fatalf("expected aggregate source, got %q", m.results.Source)
	}
	if got, want := m.results.Items, catalog.Visible(c.All()); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected every visible entry, got %v", got)
	}
}
