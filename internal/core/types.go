package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a simulation must implement for the
// drivers in this repository.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// CellDrawer receives a grid position and a grey intensity (0 dead, 255
// alive) whenever a cell changes state.
type CellDrawer interface {
	DrawCell(x, y int, intensity uint8)
}

// Drawable is implemented by sims that push cell changes to a CellDrawer
// instead of exposing a full frame on every tick.
type Drawable interface {
	Attach(d CellDrawer)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
