package state

// Menu is the category list shown beside the grid. Active names the
// category whose entries are currently displayed, if any.
type Menu struct {
	Names  []string
	Cursor int
	Active string
	Offset int
}

// NewMenu builds a menu over the supplied category names.
func NewMenu(names []string) *Menu {
	dup := make([]string, len(names))
	copy(dup, names)
	return &Menu{Names: dup}
}

// Current returns the name under the cursor.
func (m *Menu) Current() (string, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Names) {
		return "", false
	}
	return m.Names[m.Cursor], true
}

// IndexOf returns the position of name, or -1.
func (m *Menu) IndexOf(name string) int {
	for i, n := range m.Names {
		if n == name {
			return i
		}
	}
	return -1
}

// MoveUp moves the cursor up, wrapping to the last category.
func (m *Menu) MoveUp() bool {
	n := len(m.Names)
	if n == 0 {
		return false
	}
	if m.Cursor > 0 {
		m.Cursor--
	} else {
		m.Cursor = n - 1
	}
	return n > 1
}

// MoveDown moves the cursor down, wrapping to the first category.
func (m *Menu) MoveDown() bool {
	n := len(m.Names)
	if n == 0 {
		return false
	}
	if m.Cursor < n-1 {
		m.Cursor++
	} else {
		m.Cursor = 0
	}
	return n > 1
}

// EnsureCursorVisible keeps the cursor within maxVisible rows.
func (m *Menu) EnsureCursorVisible(maxVisible int) {
	if len(m.Names) == 0 || maxVisible <= 0 {
		m.Offset = 0
		return
	}
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+maxVisible {
		m.Offset = m.Cursor - maxVisible + 1
	}
	maxOffset := len(m.Names) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.Offset > maxOffset {
		m.Offset = maxOffset
	}
}
