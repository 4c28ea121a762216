package mirror

import "math"

// Rect represents an axis-aligned rectangle in mesh space.
// Min is the bottom-left corner (minimum coordinates).
// Max is the top-right corner (maximum coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// RectFromOrigin creates a rectangle from its minimum corner and size,
// the way host layout systems report element bounds.
func RectFromOrigin(x, y, w, h float64) Rect {
	return NewRect(Pt(x, y), Pt(x+w, y+h))
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// DoubleCenter returns twice the center of r. It is the reflection constant
// c in reflected = c - original for mirroring across the center lines of r.
func DoubleCenter(r Rect) Point {
	return Point{X: r.Min.X + r.Max.X, Y: r.Min.Y + r.Max.Y}
}
