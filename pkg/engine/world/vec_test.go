package world

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSignedAngleY_AlignsFront(t *testing.T) {
	front := Vec3{Z: 1}
	targets := []Vec3{
		{X: 1},
		{X: -1},
		{Z: -1},
		{X: 1, Z: 1},
		{X: -3, Z: 0.5},
		{X: 0.2, Y: 5, Z: -2},
	}
	for _, to := range targets {
		angle := SignedAngleY(front, to)
		got := front.RotateY(angle).Normalize()
		want := to.Horizontal().Normalize()
		if !almostEqual(got.X, want.X) || !almostEqual(got.Z, want.Z) {
			t.Errorf("front.RotateY(SignedAngleY(front, %v)) = %v, want %v", to, got, want)
		}
	}
}

func TestSignedAngleY_Sign(t *testing.T) {
	if a := SignedAngleY(Vec3{Z: 1}, Vec3{X: 1}); !almostEqual(a, math.Pi/2) {
		t.Errorf("SignedAngleY(+Z, +X) = %v, want pi/2", a)
	}
	if a := SignedAngleY(Vec3{Z: 1}, Vec3{X: -1}); !almostEqual(a, -math.Pi/2) {
		t.Errorf("SignedAngleY(+Z, -X) = %v, want -pi/2", a)
	}
}

func TestHorizontalDistance_IgnoresY(t *testing.T) {
	a := Vec3{X: 1, Y: 10, Z: 1}
	b := Vec3{X: 4, Y: -3, Z: 5}
	if d := a.HorizontalDistance(b); !almostEqual(d, 5) {
		t.Errorf("HorizontalDistance = %v, want 5", d)
	}
}

func TestNear(t *testing.T) {
	a := Vec3{X: 1, Z: 1}
	if !a.Near(Vec3{X: 1.05, Z: 1}) {
		t.Error("Near(0.05 away) = false, want true")
	}
	if a.Near(Vec3{X: 1.2, Z: 1}) {
		t.Error("Near(0.2 away) = true, want false")
	}
}

func TestCellNeighbors_Order(t *testing.T) {
	got := Cell{2, 2}.Neighbors()
	want := [4]Cell{{3, 2}, {1, 2}, {2, 3}, {2, 1}}
	if got != want {
		t.Errorf("Neighbors() = %v, want %v", got, want)
	}
	for _, n := range got {
		if !(Cell{2, 2}).IsAdjacent(n) {
			t.Errorf("neighbor %v not adjacent", n)
		}
	}
}
