package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Activate key.Binding
	Commit   key.Binding
	Filter   key.Binding
	Back     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open category")),
		Commit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "copy")),
		Filter:   key.NewBinding(key.WithKeys("/", "tab"), key.WithHelp("/", "filter")),
		Back:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "categories")),
	}
}

// footerHelp lists the bindings relevant to the focused area.
func (k keyMap) footerHelp(phase Phase) []key.Binding {
	switch phase {
	case PhaseBrowsing:
		return []key.Binding{k.Up, k.Down, k.Activate, k.Filter, k.Quit}
	case PhaseEditing:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "results")),
			k.Back, k.Quit,
		}
	case PhaseSelecting:
		return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Commit, k.Filter, k.Quit}
	case PhaseDone:
		return []key.Binding{k.Quit}
	}
	return nil
}
