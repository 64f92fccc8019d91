package diagram

import (
	"fmt"
	"strconv"
)

// Naming controls the names that constructors give to paths and children the
// caller did not name explicitly. Automatic names are the prefix followed by
// the item's index within its node, as in "path0", "path1", and so on.
//
// Empty fields fall back to the corresponding field of [DefaultNaming].
type Naming struct {
	// Prefix of automatic path names.
	PathPrefix string
	// Prefix of automatic child names.
	ChildPrefix string
}

var DefaultNaming = Naming{
	PathPrefix:  "path",
	ChildPrefix: "child",
}

func (n Naming) WithPathPrefix(prefix string) Naming  { n.PathPrefix = prefix; return n }
func (n Naming) WithChildPrefix(prefix string) Naming { n.ChildPrefix = prefix; return n }

// resolved returns n with empty fields replaced by their defaults.
func (n Naming) resolved() Naming {
	out := DefaultNaming
	if n.PathPrefix != "" {
		out.PathPrefix = n.PathPrefix
	}
	if n.ChildPrefix != "" {
		out.ChildPrefix = n.ChildPrefix
	}
	return out
}

// assignNames names count new items of a node that already has existing items.
// The first len(explicit) items use the explicit names; the rest are named
// prefix plus their index in the node. Names must be unique within the node.
func assignNames[V any](existing map[string]V, count int, explicit []string, prefix string) ([]string, error) {
	if len(explicit) > count {
		return nil, fmt.Errorf("%w: %d names for %d items", ErrValidation, len(explicit), count)
	}
	names := make([]string, count)
	seen := make(map[string]struct{}, count)
	for i := range names {
		var name string
		if i < len(explicit) {
			name = explicit[i]
		} else {
			name = prefix + strconv.Itoa(len(existing)+i)
		}
		if name == "" {
			return nil, fmt.Errorf("%w: empty name for item %d", ErrValidation, i)
		}
		if _, ok := existing[name]; ok {
			return nil, fmt.Errorf("%w %q", ErrDuplicateName, name)
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w %q", ErrDuplicateName, name)
		}
		seen[name] = struct{}{}
		names[i] = name
	}
	return names, nil
}

// AddPaths returns a copy of the polygon or curve d with paths attached, using
// [DefaultNaming] for the paths beyond len(names). Groups cannot own paths and
// result in an error wrapping [ErrStructure]. Name collisions result in
// [ErrDuplicateName].
func (d Diagram) AddPaths(paths []Path, names []string) (Diagram, error) {
	return DefaultNaming.AddPaths(d, paths, names)
}

// AddPaths is like [Diagram.AddPaths] but uses n for automatic names.
func (n Naming) AddPaths(d Diagram, paths []Path, names []string) (Diagram, error) {
	if !d.Kind().IsLeaf() {
		return Diagram{}, fmt.Errorf("%w: cannot attach paths to a %s", ErrStructure, d.Kind())
	}
	for i, p := range paths {
		if p.Len() < 2 {
			return Diagram{}, fmt.Errorf("%w: path %d has %d points", ErrValidation, i, p.Len())
		}
	}
	assigned, err := assignNames(d.pathMap(), len(paths), names, n.resolved().PathPrefix)
	if err != nil {
		return Diagram{}, err
	}
	out := d.Copy()
	m := out.pathMap()
	for i, p := range paths {
		m[assigned[i]] = p.clone()
	}
	return out, nil
}

// AddChildren returns a copy of the group d with children attached, using
// [DefaultNaming] for the children beyond len(names). Polygons and curves
// cannot own children and result in an error wrapping [ErrStructure]. Name
// collisions result in [ErrDuplicateName].
func (d Diagram) AddChildren(children []Diagram, names []string) (Diagram, error) {
	return DefaultNaming.AddChildren(d, children, names)
}

// AddChildren is like [Diagram.AddChildren] but uses n for automatic names.
func (n Naming) AddChildren(d Diagram, children []Diagram, names []string) (Diagram, error) {
	if d.Kind() != GroupKind {
		return Diagram{}, fmt.Errorf("%w: cannot attach children to a %s", ErrStructure, d.Kind())
	}
	assigned, err := assignNames(d.childMap(), len(children), names, n.resolved().ChildPrefix)
	if err != nil {
		return Diagram{}, err
	}
	out := d.Copy()
	if out.body == nil {
		out.body = group{children: make(map[string]Diagram, len(children))}
	}
	m := out.childMap()
	for i, child := range children {
		m[assigned[i]] = child.Copy()
	}
	return out, nil
}

// Polygon returns a polygon made of len(points)-1 two-point paths, each
// connecting a point to the next. The outline is not closed automatically:
// to close it, repeat the first point at the end.
//
// At least three points are required. The first len(names) paths take their
// names from names, the others are named according to [DefaultNaming].
func Polygon(points []Point, names ...string) (Diagram, error) {
	return DefaultNaming.Polygon(points, names...)
}

// Polygon is like the package-level [Polygon] but uses n for automatic names.
func (n Naming) Polygon(points []Point, names ...string) (Diagram, error) {
	if len(points) < 3 {
		return Diagram{}, fmt.Errorf("%w: polygon needs at least 3 points, got %d", ErrValidation, len(points))
	}
	paths := make([]Path, len(points)-1)
	for i := range paths {
		paths[i] = Path{pts: []Point{points[i], points[i+1]}}
	}
	return n.AddPaths(Diagram{body: polygon{paths: map[string]Path{}}}, paths, names)
}

// Curve returns an open curve consisting of a single path through points.
func Curve(points []Point) (Diagram, error) {
	return DefaultNaming.Curve(points)
}

// Curve is like the package-level [Curve] but uses n for the path's name.
func (n Naming) Curve(points []Point) (Diagram, error) {
	p, err := NewPath(points...)
	if err != nil {
		return Diagram{}, err
	}
	return n.AddPaths(Diagram{body: curve{paths: map[string]Path{}}}, []Path{p}, nil)
}

// Group returns an empty group with its origin at (0, 0).
func Group() Diagram {
	return Diagram{body: group{children: map[string]Diagram{}}}
}

// Combine returns a group containing children. The first len(names) children
// take their names from names, the others are named according to
// [DefaultNaming]. Duplicate names result in [ErrDuplicateName]; nothing is
// overwritten or renamed.
func Combine(children []Diagram, names ...string) (Diagram, error) {
	return DefaultNaming.Combine(children, names...)
}

// Combine is like the package-level [Combine] but uses n for automatic names.
func (n Naming) Combine(children []Diagram, names ...string) (Diagram, error) {
	d, err := n.AddChildren(Group(), children, names)
	if err != nil {
		return Diagram{}, err
	}
	Logger().Debug("combined diagrams", "children", len(children), "named", len(names))
	return d, nil
}

// Rectangle returns a closed polygon of width w and height h whose origin and
// top left corner are at (0, 0). Its paths are named "top", "right", "bottom"
// and "left".
func Rectangle(w, h float64) Diagram {
	d, err := Polygon(
		[]Point{{0, 0}, {w, 0}, {w, h}, {0, h}, {0, 0}},
		"top", "right", "bottom", "left",
	)
	if err != nil {
		panic("unreachable")
	}
	return d
}

// Segment returns a curve consisting of the straight line from p0 to p1.
func Segment(p0, p1 Point) Diagram {
	d, err := Curve([]Point{p0, p1})
	if err != nil {
		panic("unreachable")
	}
	return d
}

// PointsFromXY pairs up x and y coordinates. The slices must have the same
// length.
func PointsFromXY(xs, ys []float64) ([]Point, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x coordinates but %d y coordinates", ErrValidation, len(xs), len(ys))
	}
	pts := make([]Point, len(xs))
	for i := range xs {
		pts[i] = Point{X: xs[i], Y: ys[i]}
	}
	return pts, nil
}
