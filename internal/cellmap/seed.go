package cellmap

import "torus-life/internal/core"

// Init makes width*height/2 random draws and sets each drawn cell that is
// still dead. Duplicate draws are skipped, so the live fraction ends up at or
// below one half. Unless FullRange is configured the draws come from
// [0, width-1) x [0, height-1); a dimension of 1 samples its only index.
// Seeding does not call the renderer.
func (m *CellMap) Init(seed int64) {
	rng := core.NewRNG(seed)
	spanX, spanY := m.seedSpan()
	cells := m.grid.Cells()
	for i := m.grid.Len() / 2; i > 0; i-- {
		p := rng.Point(spanX, spanY)
		if !cells[m.grid.Index(p.X, p.Y)].Alive() {
			m.set(p.X, p.Y)
		}
	}
}

func (m *CellMap) seedSpan() (int, int) {
	if m.fullRange {
		return m.grid.W, m.grid.H
	}
	return max(m.grid.W-1, 1), max(m.grid.H-1, 1)
}
