package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestViewShowsMenuAndShortenedLabels(t *testing.T) {
	h, _, _ := newTestHarness(t, Options{Width: 100, Height: 12})
	view := ansi.Strip(h.View())
	for _, want := range []string{"Filter: ", "Categories", "People (4)", "Nature", "Food", "😀 grinning_face", "😂 face_with_tears.."} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
	for _, hidden := range []string{"family", "type_5"} {
		if strings.Contains(view, hidden) {
			t.Fatalf("expected %q hidden from view, got:\n%s", hidden, view)
		}
	}
}

func TestViewRespectsWidthAndHeight(t *testing.T) {
	h, _, _ := newTestHarness(t, Options{Width: 30, Height: 6})
	h.Type("/x")
	h.Press(tea.KeyBackspace)
	lines := strings.Split(ansi.Strip(h.View()), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), h.View())
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w > 30 {
			t.Fatalf("expected line %d within 30 columns, got %d", i, w)
		}
	}
}

func TestViewReportsNoMatches(t *testing.T) {
	h, _, _ := newTestHarness(t, Options{})
	h.Type("/zzz")
	view := ansi.Strip(h.View())
	if !strings.Contains(view, `No matches for "zzz"`) {
		t.Fatalf("expected no-match notice, got:\n%s", view)
	}
	if !strings.Contains(view, `Matches for "zzz"`) {
		t.Fatalf("expected filter title, got:\n%s", view)
	}
}

func TestViewFooterFollowsPhase(t *testing.T) {
	h, _, _ := newTestHarness(t, Options{ShowFooter: true})
	if !strings.Contains(ansi.Strip(h.View()), "open category") {
		t.Fatalf("expected browsing help, got:\n%s", h.View())
	}
	h.Type("/")
	h.Press(tea.KeyEnter)
	if !strings.Contains(ansi.Strip(h.View()), "enter copy") {
		t.Fatalf("expected selecting help, got:\n%s", h.View())
	}
}

func TestDoneViewShowsCopyingStatus(t *testing.T) {
	quietLogs(t)
	m := NewModel(testCatalog(t), Options{})
	m.phase = PhaseSelecting
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(ansi.Strip(m.View()), "Copying 😀 grinning_face") {
		t.Fatalf("expected copying status, got:\n%s", m.View())
	}
}
