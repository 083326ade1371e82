package life

import (
	"strconv"

	"torus-life/internal/cellmap"
	"torus-life/internal/core"
)

// Life adapts a cellmap.CellMap to the core.Sim contract. It keeps a
// per-cell intensity buffer in sync through the renderer hook and forwards
// every change to an attached drawer.
type Life struct {
	w, h    int
	m       *cellmap.CellMap
	display []uint8
	drawer  core.CellDrawer
}

// New returns a Life simulation. Non-positive dimensions fall back to the
// defaults.
func New(cfg Config) *Life {
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	l := &Life{w: cfg.Width, h: cfg.Height, display: make([]uint8, cfg.Width*cfg.Height)}
	m, err := cellmap.New(cellmap.Config{
		Width:     cfg.Width,
		Height:    cfg.Height,
		FullRange: cfg.FullRange,
		Renderer:  cellmap.RendererFunc(l.drawCell),
	})
	if err != nil {
		// Dimensions were validated above.
		panic(err)
	}
	l.m = m
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells exposes the current intensity of every cell (0 dead, 255 alive).
func (l *Life) Cells() []uint8 { return l.display }

// Map exposes the underlying engine.
func (l *Life) Map() *cellmap.CellMap { return l.m }

// Attach registers d to receive every cell change, then replays the full
// grid so d starts in sync.
func (l *Life) Attach(d core.CellDrawer) {
	l.drawer = d
	l.m.Redraw()
}

// Reset kills the board and seeds it from the provided seed. Every cell is
// redrawn because seeding itself draws nothing.
func (l *Life) Reset(seed int64) {
	l.m.Reset()
	l.m.Init(seed)
	l.m.Redraw()
}

// Step advances the simulation by one generation.
func (l *Life) Step() { l.m.Advance() }

func (l *Life) drawCell(x, y int, intensity uint8) {
	l.display[y*l.w+x] = intensity
	if l.drawer != nil {
		l.drawer.DrawCell(x, y, intensity)
	}
}

// Parameters reports generation statistics for the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	m := l.m
	total := l.w * l.h
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Generation",
			Params: []core.Parameter{
				{Key: "generation", Label: "Gen", Value: strconv.Itoa(m.Generation())},
				{Key: "population", Label: "Alive", Value: strconv.Itoa(m.Population()), Description: "live cells"},
				{Key: "density", Label: "Density", Value: strconv.FormatFloat(float64(m.Population())/float64(total), 'f', 3, 64)},
			},
		},
		{
			Name: "Last step",
			Params: []core.Parameter{
				{Key: "births", Label: "Born", Value: strconv.Itoa(m.LastBirths())},
				{Key: "deaths", Label: "Died", Value: strconv.Itoa(m.LastDeaths())},
			},
		},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
