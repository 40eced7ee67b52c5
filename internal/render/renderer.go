package render

import (
	"image"
	"image/color"

	"lifegrid/internal/core"
)

// Stats describes what a render pass painted.
type Stats struct {
	Full  bool
	Cells int
}

// Renderer paints a binary grid onto a Surface, either in full or only the
// cells a DirtyTracker reports as stale.
type Renderer struct {
	Foreground color.Color
	Background color.Color
	// Gap insets every live cell on each side to draw grid lines.
	Gap int

	lastCols, lastRows int
	lastBounds         image.Rectangle
	painted            bool
}

// NewRenderer returns a renderer painting live cells in fg over bg.
func NewRenderer(fg, bg color.Color, gap int) *Renderer {
	return &Renderer{Foreground: fg, Background: bg, Gap: max(gap, 0)}
}

// Invalidate forces the next Render to repaint everything.
func (r *Renderer) Invalidate() { r.painted = false }

// Render brings dst up to date with grid. A full pass runs when forceFull is
// set, when dirty has a full redraw pending, or when the grid or surface size
// changed since the previous pass; otherwise only dirty cells are repainted.
// The dirty set is consumed either way.
func (r *Renderer) Render(dst Surface, grid *core.ByteGrid, dirty *core.DirtyTracker, forceFull bool) Stats {
	geo := NewGeometry(grid.W, grid.H, dst.Bounds())
	full := dirty.TakeFullRedraw()
	full = full || forceFull || !r.painted ||
		geo.Cols != r.lastCols || geo.Rows != r.lastRows || geo.Bounds != r.lastBounds

	if full {
		dirty.TakeDirty()
		n := r.paintAll(dst, grid, geo)
		r.lastCols, r.lastRows, r.lastBounds = geo.Cols, geo.Rows, geo.Bounds
		r.painted = true
		return Stats{Full: true, Cells: n}
	}

	cells := grid.Cells()
	stale := dirty.TakeDirty()
	for _, c := range stale {
		rect := geo.CellRect(c.X, c.Y)
		dst.FillRect(rect, r.Background)
		if cells[grid.Index(c.X, c.Y)] != 0 {
			r.fillCell(dst, rect)
		}
	}
	return Stats{Cells: len(stale)}
}

func (r *Renderer) paintAll(dst Surface, grid *core.ByteGrid, geo Geometry) int {
	dst.Fill(r.Background)
	cells := grid.Cells()
	n := 0
	for y := 0; y < grid.H; y++ {
		row := y * grid.W
		for x := 0; x < grid.W; x++ {
			if cells[row+x] == 0 {
				continue
			}
			r.fillCell(dst, geo.CellRect(x, y))
			n++
		}
	}
	return n
}

func (r *Renderer) fillCell(dst Surface, rect image.Rectangle) {
	inner := Inset(rect, r.Gap)
	if inner.Empty() {
		return
	}
	dst.FillRect(inner, r.Foreground)
}
