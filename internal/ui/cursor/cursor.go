// Package cursor provides a cursor for a scrollable grid of cards.
package cursor

// Grid tracks the selected cell and the first visible row of a grid laid out
// left to right, top to bottom. Item count, column count and the number of
// visible rows are passed to methods because they change with the data and
// the terminal size.
type Grid struct {
	pos       int
	rowOffset int
}

// New creates a cursor on the first cell.
func New() Grid {
	return Grid{}
}

// Pos returns the selected index.
func (g Grid) Pos() int {
	return g.pos
}

// RowOffset returns the first visible row.
func (g Grid) RowOffset() int {
	return g.rowOffset
}

// Row returns the row of the selected index.
func (g Grid) Row(cols int) int {
	return g.pos / max(cols, 1)
}

// MoveHorizontal moves by delta cells, clamped to [0, count).
func (g *Grid) MoveHorizontal(delta, count, cols, rows int) {
	if count == 0 {
		return
	}
	g.pos = clamp(g.pos+delta, count-1)
	g.ensureVisible(cols, rows)
}

// MoveVertical moves by delta rows. Moving past the top is a no-op; moving
// down into a partial last row lands on its last item.
func (g *Grid) MoveVertical(delta, count, cols, rows int) {
	if count == 0 {
		return
	}
	cols = max(cols, 1)
	target := g.pos + delta*cols
	switch {
	case target < 0:
		return
	case target >= count:
		if (count-1)/cols == g.pos/cols {
			return
		}
		target = count - 1
	}
	g.pos = target
	g.ensureVisible(cols, rows)
}

// Jump selects pos, clamped to the grid.
func (g *Grid) Jump(pos, count, cols, rows int) {
	if count == 0 {
		g.Reset()
		return
	}
	g.pos = clamp(pos, count-1)
	g.ensureVisible(cols, rows)
}

// Clamp keeps the cursor inside a grid that may have shrunk.
// Returns true if the position changed.
func (g *Grid) Clamp(count, cols, rows int) bool {
	old := g.pos
	if count == 0 {
		g.Reset()
		return old != 0
	}
	g.pos = clamp(g.pos, count-1)
	g.ensureVisible(cols, rows)
	return g.pos != old
}

// VisibleRange returns the indices [start, end) of the visible cells.
func (g Grid) VisibleRange(count, cols, rows int) (start, end int) {
	if count == 0 || rows <= 0 {
		return 0, 0
	}
	cols = max(cols, 1)
	start = min(g.rowOffset*cols, count)
	end = min(start+rows*cols, count)
	return start, end
}

// Reset returns to the first cell.
func (g *Grid) Reset() {
	g.pos = 0
	g.rowOffset = 0
}

// HandleKey handles grid navigation keys and reports whether key was one.
// Supported keys: h/left, l/right, k/up, j/down, home, end.
func (g *Grid) HandleKey(key string, count, cols, rows int) bool {
	switch key {
	case "h", "left":
		g.MoveHorizontal(-1, count, cols, rows)
	case "l", "right":
		g.MoveHorizontal(1, count, cols, rows)
	case "k", "up":
		g.MoveVertical(-1, count, cols, rows)
	case "j", "down":
		g.MoveVertical(1, count, cols, rows)
	case "home":
		g.Jump(0, count, cols, rows)
	case "end":
		g.Jump(count-1, count, cols, rows)
	default:
		return false
	}
	return true
}

func (g *Grid) ensureVisible(cols, rows int) {
	if rows <= 0 {
		return
	}
	row := g.pos / max(cols, 1)
	if row < g.rowOffset {
		g.rowOffset = row
	}
	if row >= g.rowOffset+rows {
		g.rowOffset = row - rows + 1
	}
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
