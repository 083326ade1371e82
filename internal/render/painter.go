//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// Painter presents a Surface through an ebiten image.
type Painter struct {
	surface *Surface
	img     *ebiten.Image
}

// NewPainter allocates an image matching the surface bounds.
func NewPainter(s *Surface) *Painter {
	b := s.Bounds()
	return &Painter{surface: s, img: ebiten.NewImage(b.Dx(), b.Dy())}
}

// Present uploads the surface if it changed and draws it onto dst.
func (p *Painter) Present(dst *ebiten.Image) {
	if p.surface.Dirty() {
		p.img.WritePixels(p.surface.Pixels())
		p.surface.ClearDirty()
	}
	dst.DrawImage(p.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) {
	b := p.img.Bounds()
	return b.Dx(), b.Dy()
}
