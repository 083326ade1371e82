package render

import "testing"

func pixel(s *Surface, px, py int) [4]byte {
	stride := s.Bounds().Dx()
	i := (py*stride + px) * 4
	b := s.Pixels()
	return [4]byte{b[i], b[i+1], b[i+2], b[i+3]}
}

func TestDrawCellPaintsBlock(t *testing.T) {
	s := NewSurface(4, 3, 5)
	if b := s.Bounds(); b.Dx() != 20 || b.Dy() != 15 {
		t.Fatalf("bounds = %v, expected 20x15", b)
	}
	s.ClearDirty()

	s.DrawCell(2, 1, 0xFF)
	if !s.Dirty() {
		t.Fatal("DrawCell did not mark the surface dirty")
	}

	for py := 0; py < 15; py++ {
		for px := 0; px < 20; px++ {
			want := byte(0)
			if px >= 10 && px < 15 && py >= 5 && py < 10 {
				want = 0xFF
			}
			got := pixel(s, px, py)
			if got != [4]byte{want, want, want, 0xFF} {
				t.Fatalf("pixel (%d,%d) = %v, expected grey %d", px, py, got, want)
			}
		}
	}
}

func TestDrawCellIgnoresOutOfRange(t *testing.T) {
	s := NewSurface(2, 2, 1)
	s.ClearDirty()
	s.DrawCell(2, 0, 0xFF)
	s.DrawCell(0, -1, 0xFF)
	if s.Dirty() {
		t.Fatal("out-of-range DrawCell marked the surface dirty")
	}
}

func TestLoadRepaintsAllCells(t *testing.T) {
	s := NewSurface(3, 2, 2)
	cells := []uint8{0, 255, 0, 255, 0, 128}
	s.Load(cells)
	for i, v := range cells {
		if got := s.At(i%3, i/3); got != v {
			t.Fatalf("cell %d = %d, expected %d", i, got, v)
		}
	}
	if got := pixel(s, 5, 3); got != [4]byte{128, 128, 128, 0xFF} {
		t.Fatalf("bottom-right pixel = %v", got)
	}
}
