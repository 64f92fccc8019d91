// Package diagram models 2D figures as immutable trees of shapes, and
// provides the operations needed to assemble larger figures from smaller
// ones: styling, translation, positioning, rotation, measurement, and
// anchoring.
//
// # Trees
//
// A [Diagram] is a node of one of three kinds. Polygons and curves are leaves
// that own named [Path] values: polylines of two or more points. Polygons are
// closed outlines and can be filled; curves are open and can only be stroked.
// Groups own named child diagrams. Leaves never have children and groups never
// have paths.
//
// Every node has an origin, a reference point that [Diagram.Position] moves to
// a given location and that [Diagram.Rotate] turns about. Nodes may carry a
// fill and a stroke [Color] and a set of tags. Neither colors nor tags are
// interpreted by this package; they exist for the code that builds on it,
// such as table and plot builders and renderers.
//
// # Immutability
//
// Diagrams are values. Operations such as [Diagram.Fill] or
// [Diagram.Translate] return a new tree and leave the receiver untouched,
// including every node and point reachable from it. Diagrams can therefore be
// shared freely, including between goroutines.
//
// # Coordinates
//
// Diagrams live in a y-down space, as is common for graphics. The top left
// corner of a bounding box is its minimum corner, and a positive rotation
// angle is clockwise on screen. See [Anchor] for the nine named points of a
// bounding box.
//
// # Constructing diagrams
//
// [Polygon] and [Curve] build leaves from lists of points, [Combine] groups
// existing diagrams. Paths and children that aren't named explicitly are
// named according to [DefaultNaming]. Names are unique within a node;
// attempting to reuse a name results in [ErrDuplicateName].
//
// # Errors
//
// Errors returned by this package wrap one of [ErrValidation],
// [ErrStructure], [ErrUnsupported], [ErrLookup], and [ErrEmpty], and can be
// classified with [errors.Is].
package diagram
