package world

import (
	"math"
	"testing"
)

func newTestGrid(t *testing.T, width, depth int, cellSize float64) *Grid {
	t.Helper()
	g, err := NewGrid(width, depth, cellSize)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d, %v) error: %v", width, depth, cellSize, err)
	}
	return g
}

func TestNewGrid_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name     string
		width    int
		depth    int
		cellSize float64
	}{
		{"zero width", 0, 5, 1},
		{"negative depth", 5, -1, 1},
		{"zero cell size", 5, 5, 0},
		{"nan cell size", 5, 5, math.NaN()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewGrid(tc.width, tc.depth, tc.cellSize); err == nil {
				t.Errorf("NewGrid(%d, %d, %v) error = nil, want error", tc.width, tc.depth, tc.cellSize)
			}
		})
	}
}

func TestIsWithinBounds(t *testing.T) {
	g := newTestGrid(t, 4, 3, 1)
	cases := []struct {
		cell Cell
		want bool
	}{
		{Cell{0, 0}, true},
		{Cell{3, 2}, true},
		{Cell{4, 0}, false},
		{Cell{0, 3}, false},
		{Cell{-1, 0}, false},
		{Cell{0, -1}, false},
	}
	for _, tc := range cases {
		if got := g.IsWithinBounds(tc.cell); got != tc.want {
			t.Errorf("IsWithinBounds(%v) = %v, want %v", tc.cell, got, tc.want)
		}
	}
}

func TestOccupyFree_RoundTrip(t *testing.T) {
	g := newTestGrid(t, 10, 10, 1)
	g.Occupy(Cell{1, 1}, Size{W: 1, H: 1})
	before := snapshot(g)

	g.Occupy(Cell{2, 3}, Size{W: 3, H: 2})
	if got := g.OccupiedCount(); got != 7 {
		t.Fatalf("OccupiedCount after occupy = %d, want 7", got)
	}
	for _, c := range (Size{W: 3, H: 2}).Cells(Cell{2, 3}) {
		if !g.IsOccupied(c) {
			t.Errorf("IsOccupied(%v) = false after Occupy", c)
		}
	}

	g.Free(Cell{2, 3}, Size{W: 3, H: 2})
	after := snapshot(g)
	if len(before) != len(after) {
		t.Fatalf("occupied cells after round trip = %v, want %v", after, before)
	}
	for c := range before {
		if !after[c] {
			t.Errorf("cell %v lost after occupy/free round trip", c)
		}
	}
}

func TestOccupy_Idempotent(t *testing.T) {
	g := newTestGrid(t, 5, 5, 1)
	g.Occupy(Cell{0, 0}, Size{W: 2, H: 2})
	g.Occupy(Cell{0, 0}, Size{W: 2, H: 2})
	if got := g.OccupiedCount(); got != 4 {
		t.Errorf("OccupiedCount after double Occupy = %d, want 4", got)
	}
	g.Free(Cell{0, 0}, Size{W: 2, H: 2})
	g.Free(Cell{0, 0}, Size{W: 2, H: 2})
	if got := g.OccupiedCount(); got != 0 {
		t.Errorf("OccupiedCount after double Free = %d, want 0", got)
	}
}

func TestIsOccupied_OutOfRangeIsFalse(t *testing.T) {
	g := newTestGrid(t, 2, 2, 1)
	if g.IsOccupied(Cell{-5, 7}) {
		t.Error("IsOccupied(out of range) = true, want false")
	}
}

func TestIsFootprintFree(t *testing.T) {
	g := newTestGrid(t, 4, 4, 1)
	g.Occupy(Cell{2, 2}, UnitSize)
	if !g.IsFootprintFree(Cell{0, 0}, Size{W: 2, H: 2}) {
		t.Error("IsFootprintFree(0:0, 2x2) = false, want true")
	}
	if g.IsFootprintFree(Cell{1, 1}, Size{W: 2, H: 2}) {
		t.Error("IsFootprintFree(1:1, 2x2) = true, want false (overlaps 2:2)")
	}
	if g.IsFootprintFree(Cell{3, 3}, Size{W: 2, H: 1}) {
		t.Error("IsFootprintFree(3:3, 2x1) = true, want false (leaves the grid)")
	}
}

func TestWorldToGrid_GridToWorld_RoundTrip(t *testing.T) {
	for _, cellSize := range []float64{1, 0.5, 2.25} {
		g := newTestGrid(t, 7, 4, cellSize)
		g.ForEachCell(func(c Cell, _ bool) {
			p := g.GridToWorld(c, UnitSize)
			if p.Y != 0 {
				t.Errorf("GridToWorld(%v).Y = %v, want 0", c, p.Y)
			}
			if got := g.WorldToGrid(p); got != c {
				t.Errorf("cellSize %v: WorldToGrid(GridToWorld(%v)) = %v", cellSize, c, got)
			}
		})
	}
}

func TestGridToWorld_CentersFootprint(t *testing.T) {
	g := newTestGrid(t, 10, 10, 1)
	got := g.GridToWorld(Cell{0, 0}, Size{W: 2, H: 2})
	want := Vec3{X: -4, Z: -4}
	if got != want {
		t.Errorf("GridToWorld(0:0, 2x2) = %v, want %v", got, want)
	}
	if c := g.WorldToGrid(Vec3{X: -5, Z: -5}); c != (Cell{0, 0}) {
		t.Errorf("WorldToGrid(corner) = %v, want 0:0", c)
	}
	if c := g.WorldToGrid(Vec3{X: -5.01, Z: 0}); c.X != -1 {
		t.Errorf("WorldToGrid(just outside).X = %d, want -1", c.X)
	}
}

func snapshot(g *Grid) map[Cell]bool {
	out := make(map[Cell]bool)
	g.ForEachCell(func(c Cell, occupied bool) {
		if occupied {
			out[c] = true
		}
	})
	return out
}
