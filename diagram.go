package diagram

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Kind is the variant of a [Diagram] node.
type Kind int

const (
	// GroupKind nodes own named child diagrams and no paths.
	GroupKind Kind = iota
	// PolygonKind nodes own named paths forming a closed outline, and can
	// be filled.
	PolygonKind
	// CurveKind nodes own named paths forming an open outline. They have no
	// fill.
	CurveKind
)

func (k Kind) String() string {
	switch k {
	case GroupKind:
		return "group"
	case PolygonKind:
		return "polygon"
	case CurveKind:
		return "curve"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsLeaf reports whether nodes of kind k own paths rather than children.
func (k Kind) IsLeaf() bool { return k == PolygonKind || k == CurveKind }

// body is the kind-specific part of a node. It is implemented by polygon,
// curve, and group only.
type body interface {
	kind() Kind
	clone() body
}

type polygon struct{ paths map[string]Path }
type curve struct{ paths map[string]Path }
type group struct{ children map[string]Diagram }

func (polygon) kind() Kind { return PolygonKind }
func (curve) kind() Kind   { return CurveKind }
func (group) kind() Kind   { return GroupKind }

func (b polygon) clone() body { return polygon{paths: clonePaths(b.paths)} }
func (b curve) clone() body   { return curve{paths: clonePaths(b.paths)} }
func (b group) clone() body {
	children := make(map[string]Diagram, len(b.children))
	for name, child := range b.children {
		children[name] = child.Copy()
	}
	return group{children: children}
}

func clonePaths(paths map[string]Path) map[string]Path {
	out := make(map[string]Path, len(paths))
	for name, p := range paths {
		out[name] = p.clone()
	}
	return out
}

// Diagram is a node in a tree of shapes. A node is either a polygon or a curve,
// both of which own named paths, or a group, which owns named child diagrams.
//
// Diagrams are values. Every method that produces a diagram returns a new tree
// that shares no mutable state with the receiver, and the receiver is never
// modified. It is therefore safe to use one diagram from multiple goroutines.
//
// The zero Diagram is an empty group with its origin at (0, 0).
type Diagram struct {
	// nil is an empty group.
	body   body
	origin Point
	fill   Color
	stroke Color
	tags   []string
}

// Kind returns the node's variant.
func (d Diagram) Kind() Kind {
	if d.body == nil {
		return GroupKind
	}
	return d.body.kind()
}

// Origin returns the node's reference point. It is the point moved to by
// [Diagram.Position] and the default pivot of [Diagram.Rotate].
func (d Diagram) Origin() Point { return d.origin }

// FillColor returns the node's fill, or [NoColor].
func (d Diagram) FillColor() Color { return d.fill }

// StrokeColor returns the node's stroke, or [NoColor].
func (d Diagram) StrokeColor() Color { return d.stroke }

// Len returns the number of children of a group, or the number of paths of a
// polygon or curve.
func (d Diagram) Len() int {
	switch b := d.body.(type) {
	case nil:
		return 0
	case group:
		return len(b.children)
	case polygon:
		return len(b.paths)
	case curve:
		return len(b.paths)
	default:
		panic("unreachable")
	}
}

func (d Diagram) childMap() map[string]Diagram {
	if b, ok := d.body.(group); ok {
		return b.children
	}
	return nil
}

func (d Diagram) pathMap() map[string]Path {
	switch b := d.body.(type) {
	case polygon:
		return b.paths
	case curve:
		return b.paths
	default:
		return nil
	}
}

// Child returns the child with the given name. Leaves have no children.
func (d Diagram) Child(name string) (Diagram, bool) {
	child, ok := d.childMap()[name]
	if !ok {
		return Diagram{}, false
	}
	return child, true
}

// ChildNames returns the names of the node's children in sorted order.
func (d Diagram) ChildNames() []string {
	return slices.Sorted(maps.Keys(d.childMap()))
}

// Children returns an iterator over the node's children, in sorted name order.
func (d Diagram) Children() iter.Seq2[string, Diagram] {
	return func(yield func(string, Diagram) bool) {
		children := d.childMap()
		for _, name := range slices.Sorted(maps.Keys(children)) {
			if !yield(name, children[name]) {
				break
			}
		}
	}
}

// Path returns the path with the given name. Groups have no paths.
func (d Diagram) Path(name string) (Path, bool) {
	p, ok := d.pathMap()[name]
	return p, ok
}

// PathNames returns the names of the node's paths in sorted order.
func (d Diagram) PathNames() []string {
	return slices.Sorted(maps.Keys(d.pathMap()))
}

// Paths returns an iterator over the node's paths, in sorted name order.
func (d Diagram) Paths() iter.Seq2[string, Path] {
	return func(yield func(string, Path) bool) {
		paths := d.pathMap()
		for _, name := range slices.Sorted(maps.Keys(paths)) {
			if !yield(name, paths[name]) {
				break
			}
		}
	}
}

// Tags returns the node's tags in the order they were added.
//
// Tags are opaque to this package. Code building on diagrams uses them to mark
// nodes that play a particular role, for example the grid of a table.
func (d Diagram) Tags() []string { return slices.Clone(d.tags) }

// HasTag reports whether the node carries tag.
func (d Diagram) HasTag(tag string) bool { return slices.Contains(d.tags, tag) }

// WithTags returns a copy of d with tags added. Tags it already carries are
// not repeated.
func (d Diagram) WithTags(tags ...string) Diagram {
	out := d.Copy()
	for _, tag := range tags {
		if !slices.Contains(out.tags, tag) {
			out.tags = append(out.tags, tag)
		}
	}
	return out
}

// WithOrigin returns a copy of d whose reference point is pt. Unlike
// [Diagram.Position], the geometry does not move.
func (d Diagram) WithOrigin(pt Point) Diagram {
	out := d.Copy()
	out.origin = pt
	return out
}

// WithOriginAt is like [Diagram.WithOrigin] but places the reference point on
// an anchor of the bounding box.
func (d Diagram) WithOriginAt(a Anchor) (Diagram, error) {
	pt, err := d.Anchor(a)
	if err != nil {
		return Diagram{}, err
	}
	return d.WithOrigin(pt), nil
}

// Copy returns a deep copy of d. The copy shares no children, paths, points or
// tags with d.
func (d Diagram) Copy() Diagram {
	out := d
	if d.body != nil {
		out.body = d.body.clone()
	}
	out.tags = slices.Clone(d.tags)
	return out
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing every path
// point in the tree. Origins do not contribute. A tree without any paths has
// the bounding box [EmptyRect].
func (d Diagram) BoundingBox() Rect {
	bbox := EmptyRect
	switch b := d.body.(type) {
	case nil:
	case group:
		for _, child := range b.children {
			bbox = bbox.Union(child.BoundingBox())
		}
	case polygon, curve:
		for _, p := range d.pathMap() {
			bbox = bbox.Union(p.BoundingBox())
		}
	default:
		panic("unreachable")
	}
	return bbox
}

// Anchor returns the named reference point of the bounding box. Diagrams
// without geometry have no anchors and result in [ErrEmpty].
func (d Diagram) Anchor(a Anchor) (Point, error) {
	if !a.valid() {
		return Point{}, fmt.Errorf("%w %d", ErrUnknownAnchor, int(a))
	}
	bbox := d.BoundingBox()
	if bbox.IsEmpty() {
		return Point{}, ErrEmpty
	}
	return bbox.Anchor(a)
}

func (d Diagram) String() string {
	return fmt.Sprintf("%s@%s[%d]", d.Kind(), d.origin, d.Len())
}
