package diagram

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle given by its minimum corner (X0, Y0) and
// maximum corner (X1, Y1). In the y-down space of diagrams, the minimum corner
// is the top left.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// EmptyRect is the bounding box of something without geometry. It is the
// identity of [Rect.Union] and [Rect.UnionPoint].
var EmptyRect = Rect{
	X0: math.Inf(1),
	Y0: math.Inf(1),
	X1: math.Inf(-1),
	Y1: math.Inf(-1),
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect) String() string {
	if r.IsEmpty() {
		return "Rect{empty}"
	}
	return fmt.Sprintf("Rect{%s, %s}", r.Min(), r.Max())
}

// IsEmpty reports whether r encloses no points at all, as is the case for
// [EmptyRect]. A rectangle of zero width or height around a point or a line
// is not empty.
func (r Rect) IsEmpty() bool {
	return r.X0 > r.X1 || r.Y0 > r.Y1
}

// Min returns the minimum corner.
func (r Rect) Min() Point { return Point{X: r.X0, Y: r.Y0} }

// Max returns the maximum corner.
func (r Rect) Max() Point { return Point{X: r.X1, Y: r.Y1} }

// Width returns the rectangle's width, defined as X1 − X0.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Size returns the size of the rectangle. The size of an empty rectangle is
// zero.
func (r Rect) Size() Size {
	if r.IsEmpty() {
		return Size{}
	}
	return Size{
		Width:  r.Width(),
		Height: r.Height(),
	}
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Contains reports whether pt lies inside r or on its boundary.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative, or if either
// rectangle is [EmptyRect].
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// A succession of UnionPoint operations on a series of points, starting from
// [EmptyRect], yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate expands a rectangle by a constant amount in both directions.
func (r Rect) Inflate(width, height float64) Rect {
	if r.IsEmpty() {
		return r
	}
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

func (r Rect) Translate(v Vec2) Rect {
	if r.IsEmpty() {
		return r
	}
	return Rect{
		X0: r.X0 + v.X,
		Y0: r.Y0 + v.Y,
		X1: r.X1 + v.X,
		Y1: r.Y1 + v.Y,
	}
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.Y1)
}
