package world

import (
	"math/rand"
	"testing"
)

func TestGrid_ContainsAndPerimeter(t *testing.T) {
	g := NewGrid(3, 2)
	if g.Width() != 3 || g.Depth() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", g.Width(), g.Depth())
	}
	cases := []struct {
		c         Coordinate
		contains  bool
		perimeter bool
	}{
		{Coordinate{X: 0, Z: 0}, true, true},
		{Coordinate{X: 2, Z: 1}, true, true},
		{Coordinate{X: 3, Z: 0}, false, false},
		{Coordinate{X: 0, Z: -1}, false, false},
	}
	for _, tc := range cases {
		if got := g.Contains(tc.c); got != tc.contains {
			t.Errorf("Contains(%v) = %v, want %v", tc.c, got, tc.contains)
		}
		if got := g.IsOnPerimeter(tc.c); got != tc.perimeter {
			t.Errorf("IsOnPerimeter(%v) = %v, want %v", tc.c, got, tc.perimeter)
		}
	}
}

func TestGrid_PlaceIsLazyAndUnique(t *testing.T) {
	g := NewGrid(2, 2)
	if g.CellCount() != 0 {
		t.Fatalf("new grid has %d cells, want 0", g.CellCount())
	}
	c := g.Place(Coordinate{X: 1, Z: 0})
	if g.GetCell(Coordinate{X: 1, Z: 0}) != c {
		t.Error("GetCell did not return the placed cell")
	}
	if g.GetCellRelative(c, West) != nil {
		t.Error("GetCellRelative returned a cell for an empty slot")
	}
	expectInvariant(t, func() { g.Place(Coordinate{X: 1, Z: 0}) })
	expectInvariant(t, func() { g.Place(Coordinate{X: 5, Z: 0}) })
}

func TestGrid_RandomCoordinatesInRange(t *testing.T) {
	g := NewGrid(4, 7)
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		if c := g.RandomCoordinates(rng); !g.Contains(c) {
			t.Fatalf("RandomCoordinates() = %v, outside grid", c)
		}
	}
}

func TestNewGrid_PanicsOnInvalidSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0, 3) did not panic")
		}
	}()
	NewGrid(0, 3)
}
