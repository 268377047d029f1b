package ui

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/emoji-picker/internal/catalog"
	"github.com/atomicstack/emoji-picker/internal/clipboard"
	"github.com/atomicstack/emoji-picker/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Category{
		{Name: "People", Entries: []catalog.Entry{
			{Key: "grinning_face", Value: "😀"},
			{Key: "grinning_cat", Value: "😺"},
			{Key: "thumbs_up", Value: "👍"},
			{Key: "thumbs_up_type_5", Value: "👍🏾"},
			{Key: "family_man_woman_boy", Value: "👨‍👩‍👦"},
			{Key: "face_with_tears_of_joy", Value: "😂"},
		}},
		{Name: "Nature", Entries: []catalog.Entry{
			{Key: "fox", Value: "🦊"},
			{Key: "cat_face", Value: "🐱"},
			{Key: "cat", Value: "🐈"},
		}},
		{Name: "Food", Entries: []catalog.Entry{
			{Key: "pizza", Value: "🍕"},
		}},
	})
	if err != nil {
		t.Fatalf("expected catalog, got %v", err)
	}
	return c
}

func quietLogs(t *testing.T) {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "picker.log"))
	t.Cleanup(func() { logging.Configure("") })
}

func newTestHarness(t *testing.T, opts Options) (*Harness, *clipboard.Recorder, *catalog.Catalog) {
	t.Helper()
	quietLogs(t)
	rec := &clipboard.Recorder{}
	if opts.Sink == nil {
		opts.Sink = rec
	}
	c := testCatalog(t)
	return NewHarness(NewModel(c, opts)), rec, c
}

func itemKeys(m *Model) []string {
	out := make([]string, len(m.results.Items))
	for i, entry := range m.results.Items {
		out[i] = entry.Key
	}
	return out
}

func TestNewModelStartsBrowsingPeople(t *testing.T) {
	h, _, _ := newTestHarness(t, Options{})
	m := h.Model()
	if m.Phase() != PhaseBrowsing {
		t.Fatalf("expected browsing, got %s", m.Phase())
	}
	if m.results.Source != "People" || m.menu.Active != "People" {
		t.Fatalf("expected People shown, got %q/%q", m.results.Source, m.menu.Active)
	}
	want := []string{"grinning_face", "grinning_cat", "thumbs_up", "face_with_tears_of_joy"}
	if got := itemKeys(m); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected visible People entries, got %v", got)
	}
}

func TestNewModelInitialCategory(t *testing.T) {
	h, _, _ := newTestHarness(t, Options{InitialCategory: "Nature"})
	if got := h.Model().results.Source; got != "Nature" {
		t.Fatalf("expected Nature, got %q", got)
	}
	if h.Model().menu.Cursor != 1 {
		t.Fatalf("expected menu cursor on Nature, got %d", h.Model().menu.Cursor)
	}

	h, _, _ = newTestHarness(t, Options{InitialCategory: "Nope"})
	m := h.Model()
	if m.results.Source != "People" {
		t.Fatalf("expected fallback to People, got %q", m.results.Source)
	}
	if !strings.Contains(m.errMsg, `"Nope"`) {
		t.Fatalf("expected unknown category notice, got %q", m.errMsg)
	}
}

func TestNewModelFallsBackToFirstCategory(t *testing.T) {
	quietLogs(t)
	c, err := catalog.New([]catalog.Category{
		{Name: "Food", Entries: []catalog.Entry{{Key: "pizza", Value: "🍕"}}},
		{Name: "Flags", Entries: []catalog.Entry{{Key: "checkered_flag", Value: "🏁"}}},
	})
	if err != nil {
		t.Fatalf("expected catalog, got %v", err)
	}
	m := NewModel(c, Options{})
	if m.results.Source != "Food" {
		t.Fatalf("expected first category, got %q", m.results.Source)
	}
}

func TestSelectionCopiesGlyphOnceAndQuits(t *testing.T) {
	h, rec, c := newTestHarness(t, Options{})
	before := c.All()

	h.Type("/grinning")
	m := h.Model()
	if m.Phase() != PhaseEditing {
		t.Fatalf("expected editing, got %s", m.Phase())
	}
	if got := itemKeys(m); !reflect.DeepEqual(got, []string{"grinning_face", "grinning_cat"}) {
		t.Fatalf("unexpected matches %v", got)
	}

	h.Press(tea.KeyEnter)
	if m.Phase() != PhaseSelecting {
		t.Fatalf("expected selecting, got %s", m.Phase())
	}
	if len(rec.Values()) != 0 {
		t.Fatalf("expected no copy before the grid commit")
	}

	h.Press(tea.KeyEnter)
	if m.Phase() != PhaseDone {
		t.Fatalf("expected done, got %s", m.Phase())
	}
	if got := rec.Values(); !reflect.DeepEqual(got, []string{"😀"}) {
		t.Fatalf("expected glyph copied once, got %v", got)
	}
	out := m.Outcome()
	if !out.Selected || out.Entry.Key != "grinning_face" || out.Err != nil {
		t.Fatalf("unexpected outcome %#v", out)
	}

	h.Press(tea.KeyEnter)
	h.Type("x")
	if got := rec.Values(); len(got) != 1 {
		t.Fatalf("expected no further copies, got %v", got)
	}
	if m.results.Filter != "grinning" {
		t.Fatalf("expected filter untouched after copy, got %q", m.results.Filter)
	}
	if !reflect.DeepEqual(c.All(), before) {
		t.Fatalf("expected catalog unchanged by selection")
	}
}

func TestDoneIgnoresInputWhileCopying(t *testing.T) {
	quietLogs(t)
	rec := &clipboard.Recorder{}
	m := NewModel(testCatalog(t), Options{Sink: rec})
	m.phase = PhaseSelecting

	_, copyCmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if copyCmd == nil {
		t.Fatalf("expected copy command")
	}
	if m.Phase() != PhaseDone {
		t.Fatalf("expected done, got %s", m.Phase())
	}
	for _, msg := range []tea.Msg{
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")},
	} {
		if _, cmd := m.Update(msg); cmd != nil {
			t.Fatalf("expected %v ignored in done", msg)
		}
	}
	if len(rec.Values()) != 0 {
		t.Fatalf("expected sink untouched until the command runs")
	}

	msg := copyCmd()
	_, quit := m.Update(msg)
	if quit == nil {
		t.Fatalf("expected quit after copy")
	}
	if _, ok := quit().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if got := rec.Values(); !reflect.DeepEqual(got, []string{"😀"}) {
		t.Fatalf("expected exactly one copy, got %v", got)
	}
}

func TestQuitWhileCopyIsRunning(t *testing.T) {
	quietLogs(t)
	rec := &clipboard.Recorder{}
	m := NewModel(testCatalog(t), Options{Sink: rec})
	m.phase = PhaseSelecting
	if _, copyCmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); copyCmd == nil {
		t.Fatalf("expected copy command")
	}
	for _, kt := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		_, cmd := m.Update(tea.KeyMsg{Type: kt})
		if cmd == nil {
			t.Fatalf("expected quit for %v while copying", kt)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected tea.QuitMsg for %v", kt)
		}
	}
	if m.Outcome().Selected {
		t.Fatalf("expected no outcome before the copy reports back")
	}
}

func TestClipboardErrorIsSurfaced(t *testing.T) {
	rec := &clipboard.Recorder{Err: errors.New("no display")}
	h, _, _ := newTestHarness(t, Options{Sink: rec})
	h.Type("/fox")
	h.Press(tea.KeyEnter)
	h.Press(tea.KeyEnter)

	out := h.Model().Outcome()
	if !out.Selected || out.Entry.Value != "🦊" {
		t.Fatalf("expected fox selected, got %#v", out)
	}
	var cerr *clipboard.Error
	if !errors.As(out.Err, &cerr) {
		t.Fatalf("expected clipboard error, got %v", out.Err)
	}
	if !strings.Contains(h.View(), "Error:") {
		t.Fatalf("expected error in view, got:\n%s", h.View())
	}
}

func TestQuitWithoutSelection(t *testing.T) {
	for _, kt := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		quietLogs(t)
		rec := &clipboard.Recorder{}
		m := NewModel(testCatalog(t), Options{Sink: rec})
		_, cmd := m.Update(tea.KeyMsg{Type: kt})
		if cmd == nil {
			t.Fatalf("expected quit command for %v", kt)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected tea.QuitMsg for %v", kt)
		}
		if m.Outcome().Selected || len(rec.Values()) != 0 {
			t.Fatalf("expected no selection on quit")
		}
	}
}
