package diagram

import (
	"fmt"
	"math"
	"slices"

	"github.com/rclancey/earcut"
)

// Size returns the size of the bounding box. Diagrams without geometry have a
// size of zero.
func (d Diagram) Size() Size { return d.BoundingBox().Size() }

func (d Diagram) Width() float64  { return d.Size().Width }
func (d Diagram) Height() float64 { return d.Size().Height }

// Perimeter returns the total length of all paths in the tree.
func (d Diagram) Perimeter() float64 {
	var l float64
	for _, node := range d.All() {
		for _, p := range node.Paths() {
			l += p.Length()
		}
	}
	return l
}

// Triangulate splits the area of every polygon in the tree into triangles.
// Curves have no area and contribute no triangles.
//
// A polygon's paths are chained end to start into a single outline before
// triangulating, so the order in which they were named does not matter.
func (d Diagram) Triangulate() ([][3]Point, error) {
	var tris [][3]Point
	for name, node := range d.All() {
		if node.Kind() != PolygonKind {
			continue
		}
		t, err := triangulateOutline(outline(node))
		if err != nil {
			return nil, fmt.Errorf("triangulating %q: %w", name, err)
		}
		tris = append(tris, t...)
	}
	Logger().Debug("triangulated diagram", "triangles", len(tris))
	return tris, nil
}

// Area returns the total area of all polygons in the tree.
func (d Diagram) Area() (float64, error) {
	tris, err := d.Triangulate()
	if err != nil {
		return 0, err
	}
	var a float64
	for _, t := range tris {
		a += math.Abs(t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))) / 2
	}
	return a, nil
}

// outline returns the vertices of a polygon leaf by following its paths from
// end point to start point. A closing vertex equal to the first one is
// dropped.
func outline(d Diagram) []Point {
	names := d.PathNames()
	if len(names) == 0 {
		return nil
	}
	paths := d.pathMap()
	used := make(map[string]bool, len(names))

	ends := make(map[Point]bool, len(names))
	for _, p := range paths {
		ends[p.End()] = true
	}
	// Prefer a path whose start no other path leads to, which is where an
	// unclosed outline begins.
	first := names[0]
	for _, name := range names {
		if !ends[paths[name].Start()] {
			first = name
			break
		}
	}

	var pts []Point
	add := func(p Path) {
		for _, pt := range p.pts {
			if len(pts) == 0 || pts[len(pts)-1] != pt {
				pts = append(pts, pt)
			}
		}
	}
	next := first
	for next != "" {
		used[next] = true
		add(paths[next])
		end := paths[next].End()
		next = ""
		for _, name := range names {
			if !used[name] && paths[name].Start() == end {
				next = name
				break
			}
		}
		if next == "" {
			// Disconnected pieces are appended in name order.
			for _, name := range names {
				if !used[name] {
					next = name
					break
				}
			}
		}
	}
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	return pts
}

func triangulateOutline(pts []Point) ([][3]Point, error) {
	if len(pts) < 3 {
		return nil, nil
	}
	coords := make([]float64, 0, 2*len(pts))
	for _, pt := range pts {
		coords = append(coords, pt.X, pt.Y)
	}
	indices, err := earcut.Earcut(coords, nil, 2)
	if err != nil {
		return nil, err
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("triangulation returned %d indices", len(indices))
	}
	tris := make([][3]Point, 0, len(indices)/3)
	for idx := range slices.Chunk(indices, 3) {
		tris = append(tris, [3]Point{pts[idx[0]], pts[idx[1]], pts[idx[2]]})
	}
	return tris, nil
}
