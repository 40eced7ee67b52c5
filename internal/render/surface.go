package render

import (
	"image"
	"image/color"
)

// Surface is a pixel target the renderer paints cells onto.
type Surface interface {
	Bounds() image.Rectangle
	// Fill clears the whole surface to c.
	Fill(c color.Color)
	// FillRect paints r, clipped to the surface, with c.
	FillRect(r image.Rectangle, c color.Color)
}

// Allocator creates a surface of the given pixel size.
type Allocator func(w, h int) Surface

// ImageSurface is a Surface backed by an in-memory RGBA image.
type ImageSurface struct {
	img *image.RGBA
}

// NewImageSurface allocates a w*h RGBA surface. Sizes below one pixel are
// raised to one.
func NewImageSurface(w, h int) *ImageSurface {
	w = max(w, 1)
	h = max(h, 1)
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// AllocImageSurface is an Allocator producing ImageSurfaces.
func AllocImageSurface(w, h int) Surface { return NewImageSurface(w, h) }

// Bounds returns the image bounds.
func (s *ImageSurface) Bounds() image.Rectangle { return s.img.Rect }

// Fill clears the image to c.
func (s *ImageSurface) Fill(c color.Color) { fillRectRGBA(s.img, s.img.Rect, rgbaBytes(c)) }

// FillRect paints r with c.
func (s *ImageSurface) FillRect(r image.Rectangle, c color.Color) {
	fillRectRGBA(s.img, r, rgbaBytes(c))
}

// Image exposes the backing image.
func (s *ImageSurface) Image() *image.RGBA { return s.img }
