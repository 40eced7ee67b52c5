package life

import (
	"lifegrid/internal/core"
)

// DefaultDensity is the alive probability used by Reset.
const DefaultDensity = 0.18

// Life implements Conway's Game of Life (B3/S23) with toroidal wrapping.
// It owns the current and next generation buffers and records every cell
// whose value changes in a dirty tracker.
type Life struct {
	cur, nxt   *core.ByteGrid
	dirty      *core.DirtyTracker
	generation uint64
}

// New returns an empty Life grid. Dimensions below one are raised to one.
func New(w, h int) *Life {
	cur := core.NewByteGrid(w, h)
	return &Life{
		cur:   cur,
		nxt:   core.NewByteGrid(cur.W, cur.H),
		dirty: core.NewDirtyTracker(cur.W, cur.H),
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.W, H: l.cur.H} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Grid exposes the current generation buffer.
func (l *Life) Grid() *core.ByteGrid { return l.cur }

// Dirty exposes the tracker fed by edits and steps.
func (l *Life) Dirty() *core.DirtyTracker { return l.dirty }

// Generation returns the number of steps taken since the last grid-wide reset.
func (l *Life) Generation() uint64 { return l.generation }

// Get returns the value at (x, y), or 0 outside the grid.
func (l *Life) Get(x, y int) uint8 { return l.cur.At(x, y) }

// Population counts live cells.
func (l *Life) Population() int {
	n := 0
	for _, c := range l.cur.Cells() {
		n += int(c)
	}
	return n
}

// SetCell writes v (any non-zero value means alive) at (x, y). Coordinates
// are clamped onto the grid. It reports whether the cell changed; an
// unchanged cell is not marked dirty.
func (l *Life) SetCell(x, y int, v uint8) bool {
	if v != 0 {
		v = 1
	}
	x, y = l.cur.Clamp(x, y)
	idx := l.cur.Index(x, y)
	cells := l.cur.Cells()
	if cells[idx] == v {
		return false
	}
	cells[idx] = v
	l.dirty.MarkDirty(x, y)
	return true
}

// Randomize sets each cell alive with probability density.
func (l *Life) Randomize(rng *core.RNG, density float64) {
	core.FillDensity(rng, l.cur.Cells(), density)
	l.generation = 0
	l.dirty.ForceFullRedraw()
}

// Reset randomizes the board at DefaultDensity using the provided seed.
func (l *Life) Reset(seed int64) {
	l.Randomize(core.NewRNG(seed), DefaultDensity)
}

// Clear kills every cell.
func (l *Life) Clear() {
	l.cur.Clear()
	l.generation = 0
	l.dirty.ForceFullRedraw()
}

// Resize reallocates both buffers, keeping the overlapping top-left region
// of the current generation.
func (l *Life) Resize(w, h int) {
	l.cur = l.cur.Resize(w, h)
	l.nxt = core.NewByteGrid(l.cur.W, l.cur.H)
	l.dirty.Reset(l.cur.W, l.cur.H)
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.cur.W, l.cur.H
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	for y := 0; y < h; y++ {
		up := ((y - 1 + h) % h) * w
		row := y * w
		down := ((y + 1) % h) * w
		for x := 0; x < w; x++ {
			left := (x - 1 + w) % w
			right := (x + 1) % w
			neighbors := int(cur[up+left]) + int(cur[up+x]) + int(cur[up+right]) +
				int(cur[row+left]) + int(cur[row+right]) +
				int(cur[down+left]) + int(cur[down+x]) + int(cur[down+right])

			idx := row + x
			old := cur[idx]
			var next uint8
			if (old == 1 && (neighbors == 2 || neighbors == 3)) || (old == 0 && neighbors == 3) {
				next = 1
			}
			nxt[idx] = next
			if next != old {
				l.dirty.MarkDirty(x, y)
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}
