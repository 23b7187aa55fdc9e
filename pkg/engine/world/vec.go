package world

import "math"

// ReachThreshold is the horizontal distance under which a waypoint counts as
// reached and two tube connections count as the same junction.
const ReachThreshold = 0.1

// Vec3 is a world-space position or direction. Y is up.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Add returns v + o
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v * s
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Length returns the euclidean length of v
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length, or the zero vector
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Horizontal returns v projected onto the XZ plane
func (v Vec3) Horizontal() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

// Distance returns the euclidean distance between v and o
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Length()
}

// HorizontalDistance returns the distance between v and o ignoring Y
func (v Vec3) HorizontalDistance(o Vec3) float64 {
	return v.Sub(o).Horizontal().Length()
}

// Near reports whether o lies within ReachThreshold of v
func (v Vec3) Near(o Vec3) bool {
	return v.Distance(o) < ReachThreshold
}

// RotateY rotates v about the vertical axis by angle radians.
// A positive angle turns +Z towards +X.
func (v Vec3) RotateY(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// SignedAngleY returns the angle in radians that rotates from onto to about
// the vertical axis, measured in the horizontal plane. The result is in
// (-pi, pi] and satisfies from.RotateY(angle) being parallel to to.
func SignedAngleY(from, to Vec3) float64 {
	cross := from.Z*to.X - from.X*to.Z
	dot := from.X*to.X + from.Z*to.Z
	return math.Atan2(cross, dot)
}
