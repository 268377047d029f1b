package state

// MoveCursorHome moves the cursor to the first entry.
func (r *Results) MoveCursorHome() bool {
	if len(r.Items) == 0 {
		r.Cursor = 0
		return false
	}
	old := r.Cursor
	r.Cursor = 0
	return old != r.Cursor
}

// MoveCursorEnd moves the cursor to the last entry.
func (r *Results) MoveCursorEnd() bool {
	n := len(r.Items)
	if n == 0 {
		r.Cursor = 0
		return false
	}
	old := r.Cursor
	r.Cursor = n - 1
	return old != r.Cursor
}

// MoveCursorLeft moves one cell back, stopping at the first entry.
func (r *Results) MoveCursorLeft() bool {
	return r.moveCursorBy(-1)
}

// MoveCursorRight moves one cell forward, stopping at the last entry.
func (r *Results) MoveCursorRight() bool {
	return r.moveCursorBy(1)
}

// MoveCursorUp moves one grid row up.
func (r *Results) MoveCursorUp() bool {
	if r.columns() > r.Cursor {
		return false
	}
	return r.moveCursorBy(-r.columns())
}

// MoveCursorDown moves one grid row down. On the last partial row the cursor
// lands on the final entry.
func (r *Results) MoveCursorDown() bool {
	if r.row(r.Cursor) == r.row(len(r.Items)-1) {
		return false
	}
	return r.moveCursorBy(r.columns())
}

// MoveCursorPageUp moves the cursor up by the given number of visible rows.
func (r *Results) MoveCursorPageUp(maxRows int) bool {
	return r.moveCursorBy(-r.pageSize(maxRows))
}

// MoveCursorPageDown moves the cursor down by the given number of visible rows.
func (r *Results) MoveCursorPageDown(maxRows int) bool {
	return r.moveCursorBy(r.pageSize(maxRows))
}

// SetColumns updates the grid width, keeping the cursor row visible on the
// next EnsureCursorVisible call.
func (r *Results) SetColumns(cols int) {
	if cols < 1 {
		cols = 1
	}
	r.Columns = cols
}

// RowCount returns the number of grid rows the entries occupy.
func (r *Results) RowCount() int {
	if len(r.Items) == 0 {
		return 0
	}
	return r.row(len(r.Items)-1) + 1
}

// CursorRow returns the grid row holding the cursor.
func (r *Results) CursorRow() int {
	return r.row(r.Cursor)
}

func (r *Results) moveCursorBy(delta int) bool {
	if len(r.Items) == 0 {
		r.Cursor = 0
		return false
	}
	old := r.Cursor
	if r.Cursor < 0 {
		r.Cursor = 0
	}
	r.Cursor += delta
	if r.Cursor < 0 {
		r.Cursor = 0
	}
	if r.Cursor >= len(r.Items) {
		r.Cursor = len(r.Items) - 1
	}
	return r.Cursor != old
}

func (r *Results) pageSize(maxRows int) int {
	rows := r.RowCount()
	if rows == 0 {
		return 0
	}
	size := maxRows
	if size <= 0 || size > rows {
		size = rows
	}
	if size < 1 {
		size = 1
	}
	return size * r.columns()
}

func (r *Results) columns() int {
	if r.Columns < 1 {
		return 1
	}
	return r.Columns
}

func (r *Results) row(idx int) int {
	if idx < 0 {
		return 0
	}
	return idx / r.columns()
}

// EnsureCursorVisible adjusts the row offset so the cursor row stays within
// maxRows visible rows.
func (r *Results) EnsureCursorVisible(maxRows int) {
	if len(r.Items) == 0 {
		r.Cursor = 0
		r.RowOffset = 0
		return
	}
	if r.Cursor < 0 {
		r.Cursor = 0
	}
	if r.Cursor >= len(r.Items) {
		r.Cursor = len(r.Items) - 1
	}
	if maxRows <= 0 {
		r.RowOffset = 0
		return
	}
	maxOffset := r.RowCount() - maxRows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if r.RowOffset > maxOffset {
		r.RowOffset = maxOffset
	}
	if r.RowOffset < 0 {
		r.RowOffset = 0
	}
	cursorRow := r.CursorRow()
	if cursorRow < r.RowOffset {
		r.RowOffset = cursorRow
	}
	upper := r.RowOffset + maxRows - 1
	if cursorRow > upper {
		r.RowOffset = cursorRow - maxRows + 1
		if r.RowOffset < 0 {
			r.RowOffset = 0
		}
		if r.RowOffset > maxOffset {
			r.RowOffset = maxOffset
		}
	}
}
