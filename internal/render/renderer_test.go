package render

import (
	"image"
	"image/color"
	"testing"

	"lifegrid/internal/core"
)

var (
	fg = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	bg = color.RGBA{A: 255}
)

// recordingSurface wraps an ImageSurface and counts calls.
type recordingSurface struct {
	*ImageSurface
	fills int
	rects []image.Rectangle
}

func newRecording(w, h int) *recordingSurface {
	return &recordingSurface{ImageSurface: NewImageSurface(w, h)}
}

func (s *recordingSurface) Fill(c color.Color) {
	s.fills++
	s.ImageSurface.Fill(c)
}

func (s *recordingSurface) FillRect(r image.Rectangle, c color.Color) {
	s.rects = append(s.rects, r)
	s.ImageSurface.FillRect(r, c)
}

func (s *recordingSurface) reset() {
	s.fills = 0
	s.rects = nil
}

func pixel(s *ImageSurface, x, y int) color.RGBA {
	return s.Image().RGBAAt(x, y)
}

func TestGeometryEdgesTile(t *testing.T) {
	geo := NewGeometry(7, 3, image.Rect(0, 0, 100, 50))
	prev := geo.CellRect(0, 0)
	if prev.Min.X != 0 {
		t.Fatalf("first cell should start at 0, got %d", prev.Min.X)
	}
	for x := 1; x < geo.Cols; x++ {
		r := geo.CellRect(x, 0)
		if r.Min.X != prev.Max.X {
			t.Fatalf("cell %d starts at %d, previous ends at %d", x, r.Min.X, prev.Max.X)
		}
		prev = r
	}
	if prev.Max.X != 100 {
		t.Fatalf("last cell should end at the surface edge, got %d", prev.Max.X)
	}
	if geo.CellRect(0, 2).Max.Y != 50 {
		t.Fatal("last row should end at the surface edge")
	}
}

func TestGeometryCellAtMatchesRects(t *testing.T) {
	geo := NewGeometry(7, 5, image.Rect(0, 0, 100, 37))
	for py := 0; py < 37; py++ {
		for px := 0; px < 100; px++ {
			x, y := geo.CellAt(float64(px), float64(py))
			if !image.Pt(px, py).In(geo.CellRect(x, y)) {
				t.Fatalf("pixel (%d,%d) mapped to cell (%d,%d) with rect %v", px, py, x, y, geo.CellRect(x, y))
			}
		}
	}
	if x, y := geo.CellAt(-20, 500); x != 0 || y != 4 {
		t.Fatalf("out-of-surface pointer should clamp, got (%d,%d)", x, y)
	}
}

func TestInsetClampsToEmpty(t *testing.T) {
	r := Inset(image.Rect(10, 10, 14, 14), 3)
	if r.Dx() != 0 || r.Dy() != 0 {
		t.Fatalf("expected empty rect, got %v", r)
	}
	r = Inset(image.Rect(0, 0, 10, 8), 1)
	if r != image.Rect(1, 1, 9, 7) {
		t.Fatalf("unexpected inset %v", r)
	}
}

func TestRenderFullThenDirty(t *testing.T) {
	grid := core.NewByteGrid(4, 4)
	dirty := core.NewDirtyTracker(4, 4)
	surf := newRecording(40, 40)
	r := NewRenderer(fg, bg, 1)

	grid.Cells()[grid.Index(1, 1)] = 1
	st := r.Render(surf, grid, dirty, false)
	if !st.Full || st.Cells != 1 || surf.fills != 1 {
		t.Fatalf("first render should be full, got %+v fills=%d", st, surf.fills)
	}
	if got := pixel(surf.ImageSurface, 15, 15); got != fg {
		t.Fatalf("live cell interior should be foreground, got %v", got)
	}
	if got := pixel(surf.ImageSurface, 10, 10); got != bg {
		t.Fatalf("gap pixel should stay background, got %v", got)
	}

	surf.reset()
	grid.Cells()[grid.Index(1, 1)] = 0
	dirty.MarkDirty(1, 1)
	st = r.Render(surf, grid, dirty, false)
	if st.Full || st.Cells != 1 || surf.fills != 0 {
		t.Fatalf("expected partial render of one cell, got %+v fills=%d", st, surf.fills)
	}
	if len(surf.rects) != 1 || surf.rects[0] != image.Rect(10, 10, 20, 20) {
		t.Fatalf("dead cell should be erased with its full rect, got %v", surf.rects)
	}
	if got := pixel(surf.ImageSurface, 15, 15); got != bg {
		t.Fatalf("dead cell should be erased, got %v", got)
	}

	surf.reset()
	grid.Cells()[grid.Index(2, 3)] = 1
	dirty.MarkDirty(2, 3)
	r.Render(surf, grid, dirty, false)
	if len(surf.rects) != 2 {
		t.Fatalf("live dirty cell needs background then foreground fill, got %v", surf.rects)
	}
	if surf.rects[1] != image.Rect(21, 31, 29, 39) {
		t.Fatalf("unexpected inset rect %v", surf.rects[1])
	}
}

func TestRenderFullRedrawFlagIgnoresDirtySet(t *testing.T) {
	grid := core.NewByteGrid(3, 3)
	dirty := core.NewDirtyTracker(3, 3)
	surf := newRecording(30, 30)
	r := NewRenderer(fg, bg, 0)
	r.Render(surf, grid, dirty, false)

	surf.reset()
	dirty.MarkDirty(0, 0)
	dirty.ForceFullRedraw()
	st := r.Render(surf, grid, dirty, false)
	if !st.Full || surf.fills != 1 {
		t.Fatalf("forced redraw should repaint from scratch, got %+v", st)
	}
	if dirty.Pending() {
		t.Fatal("render should consume both the flag and the dirty set")
	}

	surf.reset()
	st = r.Render(surf, grid, dirty, true)
	if !st.Full {
		t.Fatal("forceFull argument should trigger a full pass")
	}
}

func TestRenderGeometryChangeForcesFull(t *testing.T) {
	grid := core.NewByteGrid(3, 3)
	dirty := core.NewDirtyTracker(3, 3)
	r := NewRenderer(fg, bg, 0)
	r.Render(newRecording(30, 30), grid, dirty, false)

	dirty.MarkDirty(1, 1)
	surf := newRecording(60, 60)
	st := r.Render(surf, grid, dirty, false)
	if !st.Full {
		t.Fatal("new surface size should trigger a full pass")
	}
}

func TestRenderNothingPending(t *testing.T) {
	grid := core.NewByteGrid(2, 2)
	dirty := core.NewDirtyTracker(2, 2)
	surf := newRecording(20, 20)
	r := NewRenderer(fg, bg, 0)
	r.Render(surf, grid, dirty, false)

	surf.reset()
	st := r.Render(surf, grid, dirty, false)
	if st.Full || st.Cells != 0 || surf.fills != 0 || len(surf.rects) != 0 {
		t.Fatalf("idle render should paint nothing, got %+v", st)
	}
}

func TestImageSurfaceFillRectClips(t *testing.T) {
	s := NewImageSurface(4, 4)
	s.FillRect(image.Rect(2, 2, 10, 10), fg)
	if pixel(s, 3, 3) != fg || pixel(s, 1, 1) == fg {
		t.Fatal("fill should cover only the clipped region")
	}
}
