package diagram

// Line is a line segment. It is the parametric form of a two-point [Path].
type Line struct {
	P0 Point
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval evaluates the line at t, where t = 0 is P0 and t = 1 is P1.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

// Midpoint returns the point halfway along the line.
func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}
