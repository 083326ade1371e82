package core

import "testing"

func TestCellFields(t *testing.T) {
	var c Cell
	if c.Alive() || c.Neighbors() != 0 {
		t.Fatalf("zero cell alive=%v neighbours=%d", c.Alive(), c.Neighbors())
	}
	c |= AliveBit
	for i := 0; i < MaxNeighbors; i++ {
		c += CountUnit
	}
	if !c.Alive() {
		t.Fatal("alive bit lost after counting neighbours")
	}
	if c.Neighbors() != MaxNeighbors {
		t.Fatalf("neighbours=%d, expected %d", c.Neighbors(), MaxNeighbors)
	}
	if c&^(AliveBit|CountMask) != 0 {
		t.Fatalf("count overflowed its field: %#02x", uint8(c))
	}
}

func TestNeighborIndicesMatchWrappedNeighbors(t *testing.T) {
	sizes := []Size{{1, 1}, {1, 3}, {3, 1}, {2, 2}, {3, 3}, {5, 4}, {7, 9}}
	for _, s := range sizes {
		g := NewGrid(s.W, s.H)
		for y := 0; y < s.H; y++ {
			for x := 0; x < s.W; x++ {
				idx := g.NeighborIndices(x, y)
				pts := WrappedNeighbors(x, y, s.W, s.H)
				for i := range idx {
					if idx[i] < 0 || idx[i] >= g.Len() {
						t.Fatalf("%dx%d (%d,%d) neighbour %d index %d out of range", s.W, s.H, x, y, i, idx[i])
					}
					if want := g.Index(pts[i].X, pts[i].Y); idx[i] != want {
						t.Fatalf("%dx%d (%d,%d) neighbour %d index=%d, expected %d", s.W, s.H, x, y, i, idx[i], want)
					}
				}
			}
		}
	}
}

func TestWrappedNeighborsMatchWrap(t *testing.T) {
	g := NewGrid(5, 4)
	offsets := [8][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			pts := WrappedNeighbors(x, y, g.W, g.H)
			for i, o := range offsets {
				wx, wy := g.Wrap(x+o[0], y+o[1])
				if pts[i].X != wx || pts[i].Y != wy {
					t.Fatalf("(%d,%d) neighbour %d = %v, expected (%d,%d)", x, y, i, pts[i], wx, wy)
				}
			}
		}
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	if g.W != 1 || g.H != 1 || g.Len() != 1 {
		t.Fatalf("NewGrid(0,-3) = %dx%d len %d", g.W, g.H, g.Len())
	}
	if g.InBounds(1, 0) || !g.InBounds(0, 0) {
		t.Fatal("InBounds disagrees with a 1x1 grid")
	}
}
