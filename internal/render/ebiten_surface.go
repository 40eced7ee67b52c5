//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface is a Surface backed by an offscreen ebiten image. The image
// keeps its pixels between frames, so partial redraws accumulate on it and it
// is composited onto the screen every Draw.
type EbitenSurface struct {
	img *ebiten.Image
}

// NewEbitenSurface allocates a w*h offscreen image.
func NewEbitenSurface(w, h int) *EbitenSurface {
	return &EbitenSurface{img: ebiten.NewImage(max(w, 1), max(h, 1))}
}

// AllocEbitenSurface is an Allocator producing EbitenSurfaces.
func AllocEbitenSurface(w, h int) Surface { return NewEbitenSurface(w, h) }

// Bounds returns the image bounds.
func (s *EbitenSurface) Bounds() image.Rectangle { return s.img.Bounds() }

// Fill clears the image to c.
func (s *EbitenSurface) Fill(c color.Color) { s.img.Fill(c) }

// FillRect paints r with c.
func (s *EbitenSurface) FillRect(r image.Rectangle, c color.Color) {
	r = r.Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(s.img, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

// Image exposes the offscreen image for compositing.
func (s *EbitenSurface) Image() *ebiten.Image { return s.img }
