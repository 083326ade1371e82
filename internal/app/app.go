//go:build ebiten

package app

import (
	"time"

	"torus-life/internal/core"
	"torus-life/internal/render"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim      core.Sim
	drawable bool
	surface  *render.Surface
	painter  *render.Painter
	hud      *ui.HUD
	pace     *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. Sims implementing
// core.Drawable paint only changed cells; others are repainted in full after
// every step.
func New(sim core.Sim, cfg *Config, seed int64) *Game {
	size := sim.Size()
	surface := render.NewSurface(size.W, size.H, cfg.Scale)
	g := &Game{
		sim:     sim,
		surface: surface,
		painter: render.NewPainter(surface),
		pace:    core.NewFixedStep(cfg.TPS),
		scale:   surface.Scale(),
		seed:    seed,
	}
	if cfg.HUDWidth > 0 {
		g.hud = ui.NewHUD(sim, cfg.HUDWidth)
	}
	if d, ok := sim.(core.Drawable); ok {
		g.drawable = true
		d.Attach(surface)
	} else {
		surface.Load(sim.Cells())
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.refresh()
}

func (g *Game) refresh() {
	if !g.drawable {
		g.surface.Load(g.sim.Cells())
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	step := g.pace.ShouldStep()
	if (!g.paused && step) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
		g.refresh()
	}
	g.hud.Update()
	return nil
}

// Draw presents the surface and the statistics panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Present(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
