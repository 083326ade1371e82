//go:build ebiten

package ui

import (
	"image/color"

	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 8
	hudLineHeight = 16
)

// HUD renders the statistics panel to the right of the simulation view.
// A nil *HUD is valid and draws nothing.
type HUD struct {
	sim        core.Sim
	provider   core.ParameterProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []string
	title      string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	if provider, ok := sim.(core.ParameterProvider); ok {
		h.provider = provider
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached text from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	var snap core.ParameterSnapshot
	if h.provider != nil {
		snap = h.provider.Parameters()
	}
	h.lines = Lines(h.title, snap)
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	y := hudPadding + face.Ascent
	for _, line := range h.lines {
		if y > height {
			break
		}
		text.Draw(h.panel, line, face, hudPadding, y, color.White)
		y += hudLineHeight
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
