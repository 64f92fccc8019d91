package diagram

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// diagramOpts lets cmp look inside diagrams.
var diagramOpts = cmp.Options{
	cmp.AllowUnexported(Diagram{}, Path{}, polygon{}, curve{}, group{}),
	cmpopts.EquateEmpty(),
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func assertRectNear(t *testing.T, r0, r1 Rect, epsilon float64) {
	t.Helper()
	assertNear(t, r0.Min(), r1.Min(), epsilon)
	assertNear(t, r0.Max(), r1.Max(), epsilon)
}

func mustPolygon(t *testing.T, pts ...Point) Diagram {
	t.Helper()
	d, err := Polygon(pts)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func mustCurve(t *testing.T, pts ...Point) Diagram {
	t.Helper()
	d, err := Curve(pts)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func mustCombine(t *testing.T, children []Diagram, names ...string) Diagram {
	t.Helper()
	d, err := Combine(children, names...)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

// allPoints returns every path point of the tree, in traversal order.
func allPoints(d Diagram) []Point {
	var pts []Point
	for _, node := range d.All() {
		for _, p := range node.Paths() {
			pts = append(pts, p.Points()...)
		}
	}
	return pts
}
