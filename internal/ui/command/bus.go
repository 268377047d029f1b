package command

import (
	"sync"

	"github.com/atomicstack/emoji-picker/internal/catalog"
	"github.com/atomicstack/emoji-picker/internal/clipboard"
	"github.com/atomicstack/emoji-picker/internal/logging"
	"github.com/atomicstack/emoji-picker/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// CopiedMsg reports the outcome of a committed selection.
type CopiedMsg struct {
	Entry catalog.Entry
	Err   error
}

// Bus hands committed selections to the sink. It dispatches at most one
// copy for its lifetime.
type Bus struct {
	sink clipboard.Sink
	once sync.Once
}

// New initialises a bus writing to sink.
func New(sink clipboard.Sink) *Bus {
	return &Bus{sink: sink}
}

// Commit wraps the sink call for entry into a Bubble Tea command. Only the
// glyph is passed on. Later calls return nil.
func (b *Bus) Commit(entry catalog.Entry) tea.Cmd {
	var cmd tea.Cmd
	b.once.Do(func() {
		events.Selection.Commit(entry.Key, entry.Value)
		sink := b.sink
		cmd = func() tea.Msg {
			if sink == nil {
				err := &clipboard.Error{Backend: "none", Err: clipboard.ErrUnavailable}
				events.Selection.Error(entry.Value, err)
				logging.Error(err)
				return CopiedMsg{Entry: entry, Err: err}
			}
			if err := sink.Copy(entry.Value); err != nil {
				events.Selection.Error(entry.Value, err)
				logging.Error(err)
				return CopiedMsg{Entry: entry, Err: err}
			}
			events.Selection.Copied(entry.Value)
			return CopiedMsg{Entry: entry}
		}
	})
	return cmd
}
