package render

import (
	"image"
	"math"
)

// Geometry maps a cols*rows grid onto a pixel rectangle whose size need not
// be a multiple of the grid size. Cell edges are rounded individually so that
// neighbouring cells share a boundary: cell i spans [Edge(i), Edge(i+1)).
type Geometry struct {
	Cols, Rows int
	Bounds     image.Rectangle
}

// NewGeometry returns the geometry for a grid drawn over bounds. Grid
// dimensions below one are raised to one.
func NewGeometry(cols, rows int, bounds image.Rectangle) Geometry {
	return Geometry{Cols: max(cols, 1), Rows: max(rows, 1), Bounds: bounds}
}

// CellWidth returns the fractional cell width in pixels.
func (g Geometry) CellWidth() float64 { return float64(g.Bounds.Dx()) / float64(g.Cols) }

// CellHeight returns the fractional cell height in pixels.
func (g Geometry) CellHeight() float64 { return float64(g.Bounds.Dy()) / float64(g.Rows) }

// ColEdge returns the x pixel coordinate of the left edge of column i.
func (g Geometry) ColEdge(i int) int {
	return g.Bounds.Min.X + edge(i, g.Bounds.Dx(), g.Cols)
}

// RowEdge returns the y pixel coordinate of the top edge of row j.
func (g Geometry) RowEdge(j int) int {
	return g.Bounds.Min.Y + edge(j, g.Bounds.Dy(), g.Rows)
}

// CellRect returns the full pixel rectangle of cell (x, y).
func (g Geometry) CellRect(x, y int) image.Rectangle {
	return image.Rect(g.ColEdge(x), g.RowEdge(y), g.ColEdge(x+1), g.RowEdge(y+1))
}

// CellAt maps a surface-local pixel offset to the cell whose rectangle
// contains it. Offsets outside the surface are clamped to the nearest edge
// cell.
func (g Geometry) CellAt(px, py float64) (int, int) {
	x := locate(int(math.Floor(px))-g.Bounds.Min.X, g.Bounds.Dx(), g.Cols)
	y := locate(int(math.Floor(py))-g.Bounds.Min.Y, g.Bounds.Dy(), g.Rows)
	return x, y
}

// Inset shrinks r by gap pixels on every side. The result never has a
// negative size; a gap wider than the cell yields an empty rectangle.
func Inset(r image.Rectangle, gap int) image.Rectangle {
	if gap <= 0 {
		return r
	}
	w := max(r.Dx()-2*gap, 0)
	h := max(r.Dy()-2*gap, 0)
	minX, minY := r.Min.X+gap, r.Min.Y+gap
	return image.Rectangle{Min: image.Pt(minX, minY), Max: image.Pt(minX+w, minY+h)}
}

// edge rounds i*size/n to the nearest integer without floating point.
func edge(i, size, n int) int {
	return (2*i*size + n) / (2 * n)
}

// locate returns the index i in [0, n) with edge(i) <= p < edge(i+1).
func locate(p, size, n int) int {
	if size <= 0 {
		return 0
	}
	i := clamp(p*n/size, 0, n-1)
	for i > 0 && edge(i, size, n) > p {
		i--
	}
	for i < n-1 && edge(i+1, size, n) <= p {
		i++
	}
	return i
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
