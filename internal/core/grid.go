package core

// Cell packs a Game of Life cell into a single byte. Bit 0 is the alive flag
// and bits 1-4 hold the number of live neighbours shifted left by one.
//
// The count field is four bits wide (0-15). A cell has eight neighbours, so
// the largest value ever stored is 8.
type Cell uint8

const (
	// AliveBit marks a live cell.
	AliveBit Cell = 0x01
	// CountUnit is one neighbour in the count field.
	CountUnit Cell = 0x02
	// CountMask selects the neighbour count field.
	CountMask Cell = 0x1E
	// CountShift is the bit offset of the count field.
	CountShift = 1
	// MaxNeighbors is the largest count a cell can hold on a torus.
	MaxNeighbors = 8
)

// Alive reports whether the alive flag is set.
func (c Cell) Alive() bool { return c&AliveBit != 0 }

// Neighbors returns the stored live-neighbour count.
func (c Cell) Neighbors() int { return int((c & CountMask) >> CountShift) }

// Grid stores packed cells in row-major order.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]Cell, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []Cell { return g.data }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.data) }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Clear resets every cell to dead with no live neighbours.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// CopyTo copies the cell buffer into dst, which must be at least Len() long.
func (g *Grid) CopyTo(dst []Cell) int { return copy(dst, g.data) }
