package diagram

// Fill returns a copy of d in which every polygon in the tree is filled with
// c. Curves are open and have no fill; they are left unchanged. Groups pass
// the fill on to their children but do not record it themselves.
func (d Diagram) Fill(c Color) Diagram {
	out := d.Copy()
	out.fillInPlace(c)
	return out
}

// Stroke returns a copy of d in which every polygon and curve in the tree is
// stroked with c. Groups pass the stroke on to their children but do not
// record it themselves.
func (d Diagram) Stroke(c Color) Diagram {
	out := d.Copy()
	out.strokeInPlace(c)
	return out
}

// Translate returns a copy of d moved by v. The origin of every node and every
// path point in the tree move together.
func (d Diagram) Translate(v Vec2) Diagram {
	return d.Transform(Translate(v))
}

// Position returns a copy of d moved so that its origin is at pt.
func (d Diagram) Position(pt Point) Diagram {
	out := d.Translate(pt.Sub(d.origin))
	// Pin the origin exactly, so that positioning again is a no-op even when
	// origin + (pt - origin) does not round to pt.
	out.origin = pt
	return out
}

// Rotate returns a copy of d rotated by th radians about its origin.
func (d Diagram) Rotate(th float64) Diagram {
	return d.RotateAbout(th, d.origin)
}

// RotateAbout returns a copy of d rotated by th radians about pivot. The whole
// tree rotates about the same pivot and stays rigid; the origins of
// descendants rotate along with their geometry.
func (d Diagram) RotateAbout(th float64, pivot Point) Diagram {
	return d.Transform(RotateAbout(th, pivot))
}

// Scale returns a copy of d scaled by (sx, sy) about its origin.
func (d Diagram) Scale(sx, sy float64) Diagram {
	return d.Transform(ScaleAbout(sx, sy, d.origin))
}

// Transform returns a copy of d with aff applied to the origin of every node
// and to every path point in the tree.
func (d Diagram) Transform(aff Affine) Diagram {
	out := d.Copy()
	out.transformInPlace(aff)
	return out
}

// The in-place helpers below may only be called on the result of Copy, which
// owns all of its maps and point slices.

func (d *Diagram) fillInPlace(c Color) {
	switch b := d.body.(type) {
	case nil:
	case polygon:
		d.fill = c
	case curve:
	case group:
		for name, child := range b.children {
			child.fillInPlace(c)
			b.children[name] = child
		}
	default:
		panic("unreachable")
	}
}

func (d *Diagram) strokeInPlace(c Color) {
	switch b := d.body.(type) {
	case nil:
	case polygon, curve:
		d.stroke = c
	case group:
		for name, child := range b.children {
			child.strokeInPlace(c)
			b.children[name] = child
		}
	default:
		panic("unreachable")
	}
}

func (d *Diagram) transformInPlace(aff Affine) {
	d.origin = d.origin.Transform(aff)
	switch b := d.body.(type) {
	case nil:
	case polygon, curve:
		for _, p := range d.pathMap() {
			for i, pt := range p.pts {
				p.pts[i] = pt.Transform(aff)
			}
		}
	case group:
		for name, child := range b.children {
			child.transformInPlace(aff)
			b.children[name] = child
		}
	default:
		panic("unreachable")
	}
}
