package mirror

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Approx reports whether p and q differ by at most eps on each axis.
func (p Point) Approx(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// Vec3 is a vertex position or normal. The mirror transform reads and
// writes only X and Y; Z is carried through untouched.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// XY returns the planar part of v.
func (v Vec3) XY() Point {
	return Point{X: v.X, Y: v.Y}
}

// Axis selects a coordinate of a vertex position.
type Axis uint8

const (
	// AxisX selects the X coordinate.
	AxisX Axis = iota
	// AxisY selects the Y coordinate.
	AxisY
)

// String returns "x" or "y".
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "unknown"
	}
}

// Get returns the coordinate of v selected by a.
func (a Axis) Get(v Vec3) float64 {
	if a == AxisY {
		return v.Y
	}
	return v.X
}

// Set returns v with the coordinate selected by a replaced by x.
func (a Axis) Set(v Vec3, x float64) Vec3 {
	if a == AxisY {
		v.Y = x
	} else {
		v.X = x
	}
	return v
}
