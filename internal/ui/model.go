package ui

import (
	"fmt"
	"reflect"

	"github.com/atomicstack/emoji-picker/internal/catalog"
	"github.com/atomicstack/emoji-picker/internal/clipboard"
	"github.com/atomicstack/emoji-picker/internal/logging/events"
	"github.com/atomicstack/emoji-picker/internal/theme"
	"github.com/atomicstack/emoji-picker/internal/ui/command"
	uistate "github.com/atomicstack/emoji-picker/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

// Phase is the picker's position in the selection flow.
type Phase int

const (
	// PhaseBrowsing has the category menu focused.
	PhaseBrowsing Phase = iota
	// PhaseEditing has the filter field focused; every edit refilters.
	PhaseEditing
	// PhaseSelecting has the entry grid focused.
	PhaseSelecting
	// PhaseDone is terminal: a selection was committed.
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseBrowsing:
		return "browsing"
	case PhaseEditing:
		return "editing"
	case PhaseSelecting:
		return "selecting"
	case PhaseDone:
		return "done"
	}
	return "unknown"
}

// DefaultCategory is shown at startup when present and no other category
// was requested.
const DefaultCategory = "People"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Width           int
	Height          int
	ShowFooter      bool
	InitialCategory string
	Match           catalog.FilterFunc
	JumpToBestMatch bool
	Sink            clipboard.Sink
}

// Outcome describes how the session ended.
type Outcome struct {
	Selected bool
	Entry    catalog.Entry
	Err      error
}

// Model implements the Bubble Tea model for the emoji picker.
type Model struct {
	catalog           *catalog.Catalog
	results           *uistate.Results
	menu              *uistate.Menu
	phase             Phase
	keys              keyMap
	bus               *command.Bus
	filterCursor      cursor.Model
	filterCursorDirty bool

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	errMsg      string

	outcome Outcome

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the picker over an already-loaded catalog.
func NewModel(c *catalog.Catalog, opts Options) *Model {
	m := &Model{
		catalog:    c,
		results:    uistate.NewResults(c, opts.Match),
		menu:       uistate.NewMenu(c.Names()),
		phase:      PhaseBrowsing,
		keys:       defaultKeyMap(),
		bus:        command.New(opts.Sink),
		showFooter: opts.ShowFooter,
	}
	m.results.JumpToBest = opts.JumpToBestMatch
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	fc := cursor.New()
	if styles.Cursor != nil {
		fc.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		fc.TextStyle = *styles.Filter
	}
	fc.SetChar(" ")
	m.filterCursor = fc
	m.openInitialCategory(opts.InitialCategory)
	m.registerHandlers()
	return m
}

func (m *Model) openInitialCategory(requested string) {
	names := m.menu.Names
	if len(names) == 0 {
		m.results.Refilter()
		return
	}
	name := names[0]
	switch {
	case requested != "" && m.catalog.Has(requested):
		name = requested
	case m.catalog.Has(DefaultCategory):
		name = DefaultCategory
	}
	m.browse(name)
	if requested != "" && name != requested {
		m.errMsg = fmt.Sprintf("Unknown category %q", requested)
	}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.CopiedMsg{}): m.handleCopiedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// setPhase moves the state machine and keeps the filter caret in step.
func (m *Model) setPhase(next Phase) tea.Cmd {
	if next == m.phase {
		return nil
	}
	events.UI.Phase(m.phase.String(), next.String())
	m.phase = next
	if next == PhaseEditing {
		return m.filterCursor.Focus()
	}
	m.filterCursor.Blur()
	return nil
}

// Phase reports the current state machine phase.
func (m *Model) Phase() Phase {
	return m.phase
}

// Outcome reports the committed selection, if any, and the clipboard result.
func (m *Model) Outcome() Outcome {
	return m.outcome
}

// Results exposes the entry grid state.
func (m *Model) Results() *uistate.Results {
	return m.results
}
