package render

import (
	"image"
	"image/color"
)

// rgbaBytes converts c into the 8-bit premultiplied bytes stored in an
// image.RGBA pixel.
func rgbaBytes(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillRectRGBA writes px into every pixel of r, clipped to the image bounds.
func fillRectRGBA(img *image.RGBA, r image.Rectangle, px [4]byte) {
	r = r.Intersect(img.Rect)
	if r.Empty() {
		return
	}
	rowLen := r.Dx() * 4
	first := img.PixOffset(r.Min.X, r.Min.Y)
	row := img.Pix[first : first+rowLen]
	for i := 0; i < rowLen; i += 4 {
		row[i+0] = px[0]
		row[i+1] = px[1]
		row[i+2] = px[2]
		row[i+3] = px[3]
	}
	for y := r.Min.Y + 1; y < r.Max.Y; y++ {
		off := img.PixOffset(r.Min.X, y)
		copy(img.Pix[off:off+rowLen], row)
	}
}
