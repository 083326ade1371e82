package cellmap

// Intensities passed to the renderer hook.
const (
	Dead  uint8 = 0x00
	Alive uint8 = 0xFF
)

// Renderer is told about every cell whose state changes during Advance.
type Renderer interface {
	DrawCell(x, y int, intensity uint8)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(x, y int, intensity uint8)

// DrawCell calls f(x, y, intensity).
func (f RendererFunc) DrawCell(x, y int, intensity uint8) { f(x, y, intensity) }

type nopRenderer struct{}

func (nopRenderer) DrawCell(int, int, uint8) {}
