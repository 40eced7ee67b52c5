package core

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// DirtyTracker records cells whose painted value is stale. Membership is kept
// in a flat set keyed by y*cols+x, so marking is idempotent and two distinct
// coordinates can never share a key. A full-redraw flag supersedes the set.
type DirtyTracker struct {
	cols, rows int
	marked     []bool
	cells      []Cell
	spare      []Cell
	full       bool
}

// NewDirtyTracker returns a tracker for a cols*rows grid with the full-redraw
// flag raised, since nothing has been painted yet.
func NewDirtyTracker(cols, rows int) *DirtyTracker {
	t := &DirtyTracker{}
	t.Reset(cols, rows)
	return t
}

// Reset resizes the tracker, discards every recorded cell and requests a full
// redraw. Coordinates recorded against the old size are never reported.
func (t *DirtyTracker) Reset(cols, rows int) {
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	t.cols, t.rows = cols, rows
	if cap(t.marked) >= cols*rows {
		t.marked = t.marked[:cols*rows]
		for i := range t.marked {
			t.marked[i] = false
		}
	} else {
		t.marked = make([]bool, cols*rows)
	}
	t.cells = t.cells[:0]
	t.full = true
}

// MarkDirty records (x, y). Repeated marks and out-of-range coordinates are
// ignored.
func (t *DirtyTracker) MarkDirty(x, y int) {
	if x < 0 || x >= t.cols || y < 0 || y >= t.rows {
		return
	}
	key := y*t.cols + x
	if t.marked[key] {
		return
	}
	t.marked[key] = true
	t.cells = append(t.cells, Cell{X: x, Y: y})
}

// IsDirty reports whether (x, y) is currently recorded.
func (t *DirtyTracker) IsDirty(x, y int) bool {
	if x < 0 || x >= t.cols || y < 0 || y >= t.rows {
		return false
	}
	return t.marked[y*t.cols+x]
}

// Len returns the number of recorded cells.
func (t *DirtyTracker) Len() int { return len(t.cells) }

// TakeDirty returns the recorded cells in insertion order and clears the set.
// The returned slice is only valid until the next call to TakeDirty.
func (t *DirtyTracker) TakeDirty() []Cell {
	out := t.cells
	for _, c := range out {
		t.marked[c.Y*t.cols+c.X] = false
	}
	t.cells = t.spare[:0]
	t.spare = out
	return out
}

// ForceFullRedraw asks the next render pass to repaint every cell.
func (t *DirtyTracker) ForceFullRedraw() { t.full = true }

// FullRedraw reports whether a full redraw is pending.
func (t *DirtyTracker) FullRedraw() bool { return t.full }

// TakeFullRedraw reports whether a full redraw was requested and clears the
// flag.
func (t *DirtyTracker) TakeFullRedraw() bool {
	full := t.full
	t.full = false
	return full
}

// Pending reports whether a render pass has anything to paint.
func (t *DirtyTracker) Pending() bool { return t.full || len(t.cells) > 0 }
