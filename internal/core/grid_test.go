package core

import "testing"

func TestByteGridWrap(t *testing.T) {
	g := NewByteGrid(4, 3)
	cases := []struct{ x, y, wx, wy int }{
		{0, 0, 0, 0},
		{-1, -1, 3, 2},
		{4, 3, 0, 0},
		{-5, 7, 3, 1},
	}
	for _, tc := range cases {
		x, y := g.Wrap(tc.x, tc.y)
		if x != tc.wx || y != tc.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), expected (%d,%d)", tc.x, tc.y, x, y, tc.wx, tc.wy)
		}
	}
}

func TestByteGridSetClear(t *testing.T) {
	g := NewByteGrid(0, -2)
	if g.Size() != (Size{W: 1, H: 1}) {
		t.Fatalf("degenerate grid size = %+v", g.Size())
	}
	g = NewByteGrid(3, 3)
	g.Set(-1, 1, 1)
	if g.At(2, 1) != 1 || g.Cells()[g.Index(2, 1)] != 1 {
		t.Fatal("Set did not wrap")
	}
	g.Clear()
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d not cleared", i)
		}
	}
}
