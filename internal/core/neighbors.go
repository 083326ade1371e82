package core

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// WrappedNeighbors returns the eight toroidal neighbours of (x, y) on a
// w by h grid, starting top-left and proceeding row by row.
func WrappedNeighbors(x, y, w, h int) [8]Point {
	left, right := x-1, x+1
	up, down := y-1, y+1
	if x == 0 {
		left = w - 1
	}
	if x == w-1 {
		right = 0
	}
	if y == 0 {
		up = h - 1
	}
	if y == h-1 {
		down = 0
	}
	return [8]Point{
		{left, up}, {x, up}, {right, up},
		{left, y}, {right, y},
		{left, down}, {x, down}, {right, down},
	}
}

// NeighborIndices returns the flat indices of the eight toroidal neighbours of
// (x, y), in the same order as WrappedNeighbors. Offsets are corrected at the
// edges so that stepping off one side lands on the opposite side.
func (g *Grid) NeighborIndices(x, y int) [8]int {
	w, length := g.W, len(g.data)

	xleft, xright := -1, 1
	if x == 0 {
		xleft = w - 1
	}
	if x == w-1 {
		xright = -(w - 1)
	}
	yabove, ybelow := -w, w
	if y == 0 {
		yabove = length - w
	}
	if y == g.H-1 {
		ybelow = -(length - w)
	}

	i := y*w + x
	return [8]int{
		i + yabove + xleft, i + yabove, i + yabove + xright,
		i + xleft, i + xright,
		i + ybelow + xleft, i + ybelow, i + ybelow + xright,
	}
}
