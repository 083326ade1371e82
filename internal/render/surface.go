package render

import "image"

// Surface is an RGBA pixel buffer laid out as a grid of square cells. It
// implements the DrawCell hook and knows nothing about windows; presenters
// upload Pixels when Dirty reports a change.
type Surface struct {
	w, h  int
	scale int
	buf   []byte
	dirty bool
}

// NewSurface allocates a black surface for a w by h grid drawn with
// scale*scale pixels per cell.
func NewSurface(w, h, scale int) *Surface {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if scale <= 0 {
		scale = 1
	}
	s := &Surface{w: w, h: h, scale: scale, buf: make([]byte, 4*w*h*scale*scale)}
	s.Fill(0)
	return s
}

// DrawCell paints cell (x, y) with the grey value intensity. Coordinates
// outside the grid are ignored.
func (s *Surface) DrawCell(x, y int, intensity uint8) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	fillBlock(s.buf, x, y, s.w*s.scale, s.scale, intensity)
	s.dirty = true
}

// Fill paints every cell with the same intensity.
func (s *Surface) Fill(intensity uint8) {
	for i := 0; i < len(s.buf); i += 4 {
		s.buf[i+0] = intensity
		s.buf[i+1] = intensity
		s.buf[i+2] = intensity
		s.buf[i+3] = 0xFF
	}
	s.dirty = true
}

// Load repaints the whole surface from per-cell intensities.
func (s *Surface) Load(cells []uint8) {
	if len(cells) != s.w*s.h {
		return
	}
	fillIntensityRGBA(s.buf, cells, s.w, s.scale)
	s.dirty = true
}

// Pixels exposes the RGBA buffer, row-major, 4 bytes per pixel.
func (s *Surface) Pixels() []byte { return s.buf }

// Bounds returns the pixel dimensions of the surface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.w*s.scale, s.h*s.scale)
}

// Scale returns the side length of a cell in pixels.
func (s *Surface) Scale() int { return s.scale }

// Dirty reports whether anything was drawn since the last ClearDirty.
func (s *Surface) Dirty() bool { return s.dirty }

// ClearDirty marks the surface as presented.
func (s *Surface) ClearDirty() { s.dirty = false }

// At returns the grey value of the top-left pixel of cell (x, y).
func (s *Surface) At(x, y int) uint8 {
	return s.buf[(y*s.scale*s.w*s.scale+x*s.scale)*4]
}
