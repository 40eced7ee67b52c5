package core

import (
	"slices"
	"testing"
)

func TestByteGridResizeGrowZeroFills(t *testing.T) {
	g := NewByteGrid(3, 3)
	g.Cells()[g.Index(0, 0)] = 1
	g.Cells()[g.Index(2, 1)] = 1

	out := g.Resize(5, 5)

	if out.W != 5 || out.H != 5 {
		t.Fatalf("unexpected size %dx%d", out.W, out.H)
	}
	if out.At(0, 0) != 1 || out.At(2, 1) != 1 {
		t.Fatal("overlap should be copied")
	}
	alive := 0
	for _, c := range out.Cells() {
		alive += int(c)
	}
	if alive != 2 {
		t.Fatalf("expected 2 live cells, got %d", alive)
	}
}

func TestByteGridResizeShrinkKeepsTopLeft(t *testing.T) {
	g := NewByteGrid(4, 3)
	for i := range g.Cells() {
		g.Cells()[i] = uint8(i)
	}
	out := g.Resize(2, 2)
	if want := []uint8{0, 1, 4, 5}; !slices.Equal(out.Cells(), want) {
		t.Fatalf("got %v, want %v", out.Cells(), want)
	}
}

func TestByteGridWrapAndClamp(t *testing.T) {
	g := NewByteGrid(5, 4)
	if x, y := g.Wrap(-1, -1); x != 4 || y != 3 {
		t.Fatalf("Wrap(-1,-1) = (%d,%d)", x, y)
	}
	if x, y := g.Wrap(5, 9); x != 0 || y != 1 {
		t.Fatalf("Wrap(5,9) = (%d,%d)", x, y)
	}
	if x, y := g.Clamp(-3, 12); x != 0 || y != 3 {
		t.Fatalf("Clamp(-3,12) = (%d,%d)", x, y)
	}
	if g.At(9, 9) != 0 {
		t.Fatal("At outside the grid should read as dead")
	}
}

func TestClampUnit(t *testing.T) {
	cases := map[float64]float64{-1: 0, 0: 0, 0.25: 0.25, 1: 1, 3: 1}
	for in, want := range cases {
		if got := ClampUnit(in); got != want {
			t.Fatalf("ClampUnit(%v) = %v, want %v", in, got, want)
		}
	}
}
