package diagram

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Path is an immutable polyline of at least two points. It describes one
// drawable piece of a leaf diagram's outline.
//
// The zero Path has no points and is not valid; use [NewPath].
type Path struct {
	pts []Point
}

// NewPath returns a path through pts. At least two points are required.
func NewPath(pts ...Point) (Path, error) {
	if len(pts) < 2 {
		return Path{}, fmt.Errorf("%w: path needs at least 2 points, got %d", ErrValidation, len(pts))
	}
	return Path{pts: slices.Clone(pts)}, nil
}

// Len returns the number of points in the path.
func (p Path) Len() int { return len(p.pts) }

// Points returns a copy of the path's points.
func (p Path) Points() []Point { return slices.Clone(p.pts) }

// At returns the i'th point.
func (p Path) At(i int) Point { return p.pts[i] }

func (p Path) Start() Point { return p.pts[0] }
func (p Path) End() Point   { return p.pts[len(p.pts)-1] }

// Eval evaluates the path at parameter t ∈ [0, 1], with t = 0 at the start
// point and t = 1 at the end point.
//
// Only paths of exactly two points have a parametric form. Longer paths
// result in an error wrapping [ErrUnsupported].
func (p Path) Eval(t float64) (Point, error) {
	if len(p.pts) != 2 {
		return Point{}, fmt.Errorf("%w: parametric evaluation of a path with %d points", ErrUnsupported, len(p.pts))
	}
	if math.IsNaN(t) || t < 0 || t > 1 {
		return Point{}, fmt.Errorf("%w: parameter %g outside of [0, 1]", ErrValidation, t)
	}
	return Line{p.pts[0], p.pts[1]}.Eval(t), nil
}

// Segments returns an iterator over the lines connecting consecutive points.
func (p Path) Segments() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(p.pts); i++ {
			if !yield(Line{p.pts[i-1], p.pts[i]}) {
				break
			}
		}
	}
}

// Length returns the sum of the lengths of the path's segments.
func (p Path) Length() float64 {
	var l float64
	for seg := range p.Segments() {
		l += seg.Length()
	}
	return l
}

func (p Path) BoundingBox() Rect {
	bbox := EmptyRect
	for _, pt := range p.pts {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

func (p Path) Translate(v Vec2) Path {
	return p.Transform(Translate(v))
}

// Rotate rotates every point of the path by th radians about pivot.
func (p Path) Rotate(th float64, pivot Point) Path {
	return p.Transform(RotateAbout(th, pivot))
}

func (p Path) Transform(aff Affine) Path {
	out := make([]Point, len(p.pts))
	for i, pt := range p.pts {
		out[i] = pt.Transform(aff)
	}
	return Path{pts: out}
}

// clone returns a path that shares no memory with p.
func (p Path) clone() Path {
	return Path{pts: slices.Clone(p.pts)}
}
