// Package cellmap runs Conway's Game of Life on a toroidal grid of packed
// cells. Every cell carries its own live-neighbour count, which Set and Clear
// keep current by touching only the eight neighbours of the changed cell. A
// generation is then a single scan over a snapshot of the grid.
package cellmap

import (
	"fmt"

	"torus-life/internal/core"
)

// Config holds the construction parameters of a CellMap.
type Config struct {
	Width  int
	Height int

	// FullRange makes Init sample the whole grid. By default the last
	// column and row are never seeded.
	FullRange bool

	// Renderer receives DrawCell calls for cells changed by Advance. Nil
	// disables drawing.
	Renderer Renderer
}

// CellMap owns the live grid and the scratch snapshot used by Advance.
type CellMap struct {
	grid    *core.Grid
	scratch []core.Cell
	draw    Renderer

	fullRange bool

	generation int
	population int
	births     int
	deaths     int
}

// New allocates an all-dead map.
func New(cfg Config) (*CellMap, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	g := core.NewGrid(cfg.Width, cfg.Height)
	m := &CellMap{
		grid:      g,
		scratch:   make([]core.Cell, g.Len()),
		fullRange: cfg.FullRange,
	}
	m.SetRenderer(cfg.Renderer)
	return m, nil
}

// SetRenderer replaces the hook invoked on state changes.
func (m *CellMap) SetRenderer(r Renderer) {
	if r == nil {
		r = nopRenderer{}
	}
	m.draw = r
}

// Size returns the grid dimensions.
func (m *CellMap) Size() core.Size { return core.Size{W: m.grid.W, H: m.grid.H} }

// Generation returns the number of Advance calls since the last Reset.
func (m *CellMap) Generation() int { return m.generation }

// Population returns the number of live cells.
func (m *CellMap) Population() int { return m.population }

// LastBirths returns the number of cells born during the last Advance.
func (m *CellMap) LastBirths() int { return m.births }

// LastDeaths returns the number of cells that died during the last Advance.
func (m *CellMap) LastDeaths() int { return m.deaths }

func (m *CellMap) check(x, y int) error {
	if !m.grid.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfRange, x, y, m.grid.W, m.grid.H)
	}
	return nil
}

// Set marks (x, y) alive and adds one to the count of each neighbour. Setting
// a cell that is already alive does nothing.
func (m *CellMap) Set(x, y int) error {
	if err := m.check(x, y); err != nil {
		return err
	}
	if m.grid.Cells()[m.grid.Index(x, y)].Alive() {
		return nil
	}
	m.set(x, y)
	return nil
}

// Clear marks (x, y) dead and subtracts one from the count of each
// neighbour. Clearing a dead cell does nothing.
func (m *CellMap) Clear(x, y int) error {
	if err := m.check(x, y); err != nil {
		return err
	}
	if !m.grid.Cells()[m.grid.Index(x, y)].Alive() {
		return nil
	}
	m.clear(x, y)
	return nil
}

// Apply moves (x, y) to the requested state and reports whether anything
// changed.
func (m *CellMap) Apply(x, y int, alive bool) (bool, error) {
	if err := m.check(x, y); err != nil {
		return false, err
	}
	if m.grid.Cells()[m.grid.Index(x, y)].Alive() == alive {
		return false, nil
	}
	if alive {
		m.set(x, y)
	} else {
		m.clear(x, y)
	}
	return true, nil
}

// State returns 1 if (x, y) is alive and 0 if it is dead.
func (m *CellMap) State(x, y int) (int, error) {
	if err := m.check(x, y); err != nil {
		return 0, err
	}
	return int(m.grid.Cells()[m.grid.Index(x, y)] & core.AliveBit), nil
}

// set and clear assume (x, y) is in bounds and currently in the opposite
// state.
func (m *CellMap) set(x, y int) {
	cells := m.grid.Cells()
	cells[m.grid.Index(x, y)] |= core.AliveBit
	for _, n := range m.grid.NeighborIndices(x, y) {
		cells[n] += core.CountUnit
	}
	m.population++
}

func (m *CellMap) clear(x, y int) {
	cells := m.grid.Cells()
	cells[m.grid.Index(x, y)] &^= core.AliveBit
	for _, n := range m.grid.NeighborIndices(x, y) {
		cells[n] -= core.CountUnit
	}
	m.population--
}

// Advance computes one generation. Rules are evaluated against a snapshot of
// the current grid while Set/Clear write the next generation into the live
// grid, so every transition sees the same generation. The renderer is called
// only for cells that change.
func (m *CellMap) Advance() {
	m.grid.CopyTo(m.scratch)
	w, h := m.grid.W, m.grid.H
	births, deaths := 0, 0

	for y := 0; y < h; y++ {
		row := m.scratch[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			// Dead cells without live neighbours cannot change.
			for row[x] == 0 {
				x++
				if x == w {
					break
				}
			}
			if x == w {
				break
			}

			c := row[x]
			n := c.Neighbors()
			if c.Alive() {
				if n != 2 && n != 3 {
					m.clear(x, y)
					m.draw.DrawCell(x, y, Dead)
					deaths++
				}
			} else if n == 3 {
				m.set(x, y)
				m.draw.DrawCell(x, y, Alive)
				births++
			}
		}
	}

	m.births, m.deaths = births, deaths
	m.generation++
}

// Reset kills every cell and zeroes the counters. Nothing is drawn.
func (m *CellMap) Reset() {
	m.grid.Clear()
	m.generation, m.population = 0, 0
	m.births, m.deaths = 0, 0
}

// Redraw sends the state of every cell to the renderer.
func (m *CellMap) Redraw() {
	w := m.grid.W
	for i, c := range m.grid.Cells() {
		intensity := Dead
		if c.Alive() {
			intensity = Alive
		}
		m.draw.DrawCell(i%w, i/w, intensity)
	}
}

// Snapshot returns the alive flags of the grid as 0/1 values in row-major
// order.
func (m *CellMap) Snapshot() []uint8 {
	out := make([]uint8, m.grid.Len())
	for i, c := range m.grid.Cells() {
		out[i] = uint8(c & core.AliveBit)
	}
	return out
}

// Verify recounts every neighbourhood from the alive flags and compares the
// result with the stored counts and the population counter.
func (m *CellMap) Verify() error {
	g := m.grid
	cells := g.Cells()
	alive := 0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := cells[g.Index(x, y)]
			if c.Alive() {
				alive++
			}
			if c&^(core.AliveBit|core.CountMask) != 0 {
				return fmt.Errorf("%w: cell (%d,%d) has stray bits %#02x", ErrInvariantViolation, x, y, uint8(c))
			}
			want := 0
			for _, p := range core.WrappedNeighbors(x, y, g.W, g.H) {
				if cells[g.Index(p.X, p.Y)].Alive() {
					want++
				}
			}
			if got := c.Neighbors(); got != want {
				return fmt.Errorf("%w: cell (%d,%d) stores %d neighbours, counted %d", ErrInvariantViolation, x, y, got, want)
			}
		}
	}
	if alive != m.population {
		return fmt.Errorf("%w: population %d, counted %d", ErrInvariantViolation, m.population, alive)
	}
	return nil
}
