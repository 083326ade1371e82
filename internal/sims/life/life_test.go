package life

import (
	"slices"
	"testing"

	"torus-life/internal/core"
)

type countingDrawer struct {
	calls int
	last  map[[2]int]uint8
}

func (d *countingDrawer) DrawCell(x, y int, intensity uint8) {
	if d.last == nil {
		d.last = map[[2]int]uint8{}
	}
	d.calls++
	d.last[[2]int{x, y}] = intensity
}

func TestBlinkerOscillation(t *testing.T) {
	life := New(Config{Width: 5, Height: 5})

	w := life.Size().W
	set := func(x, y int) {
		if err := life.Map().Set(x, y); err != nil {
			t.Fatalf("Set(%d,%d): %v", x, y, err)
		}
	}
	set(2, 1)
	set(2, 2)
	set(2, 3)

	life.Step()
	snapshot := life.Map().Snapshot()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := snapshot[y*w+x] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	life.Step()
	snapshot = life.Map().Snapshot()

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := snapshot[y*w+x] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestResetDeterministic(t *testing.T) {
	life := New(Config{Width: 24, Height: 16})
	life.Reset(11)
	initial := append([]uint8(nil), life.Cells()...)

	for i := 0; i < 10; i++ {
		life.Step()
	}
	life.Reset(11)

	if !slices.Equal(initial, life.Cells()) {
		t.Fatal("Reset with the same seed produced a different board")
	}
	if life.Map().Generation() != 0 {
		t.Fatalf("generation=%d after Reset", life.Map().Generation())
	}
}

func TestCellsFollowMap(t *testing.T) {
	life := New(Config{Width: 30, Height: 20})
	life.Reset(4)
	for gen := 0; gen < 25; gen++ {
		life.Step()
		snapshot := life.Map().Snapshot()
		for i, v := range life.Cells() {
			if (v == 0xFF) != (snapshot[i] == 1) {
				t.Fatalf("generation %d: display cell %d=%d, map=%d", gen, i, v, snapshot[i])
			}
		}
	}
}

func TestAttachReplaysAndForwards(t *testing.T) {
	life := New(Config{Width: 6, Height: 6})
	if err := life.Map().Set(3, 3); err != nil {
		t.Fatal(err)
	}

	d := &countingDrawer{}
	life.Attach(d)
	if d.calls != 36 {
		t.Fatalf("Attach replayed %d cells, expected 36", d.calls)
	}
	if d.last[[2]int{3, 3}] != 0xFF {
		t.Fatal("replay did not draw the live cell")
	}

	d.calls = 0
	life.Step()
	if d.calls != 1 || d.last[[2]int{3, 3}] != 0 {
		t.Fatalf("lone cell death forwarded %d calls, intensity %d", d.calls, d.last[[2]int{3, 3}])
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "64", "h": "48", "full_range": "true"})
	if c.Width != 64 || c.Height != 48 || !c.FullRange {
		t.Fatalf("FromMap = %+v", c)
	}

	c = FromMap(map[string]string{"w": "-3", "h": "abc", "full_range": "maybe"})
	if c != DefaultConfig() {
		t.Fatalf("invalid values should keep defaults, got %+v", c)
	}

	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["life"]
	if !ok {
		t.Fatal("life sim not registered")
	}
	sim := factory(map[string]string{"w": "10", "h": "8"})
	if sim.Size() != (core.Size{W: 10, H: 8}) {
		t.Fatalf("size = %+v", sim.Size())
	}
	if _, ok := sim.(core.Drawable); !ok {
		t.Fatal("life sim should accept a drawer")
	}
	if _, ok := sim.(core.ParameterProvider); !ok {
		t.Fatal("life sim should report parameters")
	}
}
