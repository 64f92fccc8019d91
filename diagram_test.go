package diagram

import (
	"errors"
	"math"
	"sync"
	"testing"
)

// sample returns a small tree: a group holding a triangle, an open curve, and
// a nested group with a rectangle.
func sample(t *testing.T) Diagram {
	t.Helper()
	tri := mustPolygon(t, Pt(0, 0), Pt(4, 0), Pt(2, 3), Pt(0, 0))
	crv := mustCurve(t, Pt(-1, 5), Pt(1, 6), Pt(3, 5))
	box := Rectangle(2, 1).Translate(Vec(6, -2))
	inner := mustCombine(t, []Diagram{box}, "box")
	return mustCombine(t, []Diagram{tri, crv, inner}, "tri", "crv", "inner")
}

func TestZeroDiagram(t *testing.T) {
	var d Diagram
	if d.Kind() != GroupKind || d.Len() != 0 {
		t.Errorf("zero diagram is %s", d)
	}
	if !d.BoundingBox().IsEmpty() {
		t.Errorf("got bounding box %v, want empty", d.BoundingBox())
	}
	if _, err := d.Anchor(CenterCenter); !errors.Is(err, ErrEmpty) {
		t.Errorf("got error %v, want ErrEmpty", err)
	}
	diff(t, d.Fill("red"), d, diagramOpts)
	diff(t, d.Translate(Vec(1, 1)).Origin(), Pt(1, 1))
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{
		GroupKind:   "group",
		PolygonKind: "polygon",
		CurveKind:   "curve",
		Kind(7):     "Kind(7)",
	} {
		if got := k.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestBoundingBoxUnion(t *testing.T) {
	d := sample(t)
	want := EmptyRect
	for _, child := range d.Children() {
		want = want.Union(child.BoundingBox())
	}
	diff(t, want, d.BoundingBox())
	diff(t, Rect{-1, -2, 8, 6}, d.BoundingBox())

	tri, _ := d.Child("tri")
	diff(t, Rect{0, 0, 4, 3}, tri.BoundingBox())
}

func TestAnchorConsistency(t *testing.T) {
	for _, d := range []Diagram{sample(t), Rectangle(3, 7), Segment(Pt(1, 1), Pt(-2, 4))} {
		bbox := d.BoundingBox()
		got, err := d.Anchor(CenterCenter)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, bbox.Min().Midpoint(bbox.Max()), got)

		tl, _ := d.Anchor(TopLeft)
		br, _ := d.Anchor(BottomRight)
		diff(t, bbox.Min(), tl)
		diff(t, bbox.Max(), br)
	}
	if _, err := sample(t).Anchor(Anchor(9)); !errors.Is(err, ErrUnknownAnchor) {
		t.Errorf("got error %v, want ErrUnknownAnchor", err)
	}
}

func TestImmutability(t *testing.T) {
	ops := map[string]func(Diagram) Diagram{
		"fill":      func(d Diagram) Diagram { return d.Fill("red") },
		"stroke":    func(d Diagram) Diagram { return d.Stroke("blue") },
		"translate": func(d Diagram) Diagram { return d.Translate(Vec(3, -4)) },
		"position":  func(d Diagram) Diagram { return d.Position(Pt(10, 10)) },
		"rotate":    func(d Diagram) Diagram { return d.Rotate(1) },
		"rotate about": func(d Diagram) Diagram {
			return d.RotateAbout(-2, Pt(5, 5))
		},
		"scale": func(d Diagram) Diagram { return d.Scale(2, 3) },
		"tags":  func(d Diagram) Diagram { return d.WithTags("grid") },
		"origin": func(d Diagram) Diagram {
			return d.WithOrigin(Pt(1, 2))
		},
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			d := sample(t).WithOrigin(Pt(1, 1))
			before := d.Copy()
			_ = op(d)
			diff(t, before, d, diagramOpts)
			diff(t, before.BoundingBox(), d.BoundingBox())
			diff(t, before.Origin(), d.Origin())
		})
	}
}

func TestCopyIsDeep(t *testing.T) {
	d := sample(t).WithTags("root")
	c := d.Copy()
	diff(t, d, c, diagramOpts)

	// Mutate the copy's internals directly; the original must not notice.
	c.tags[0] = "changed"
	inner := c.childMap()["inner"]
	box := inner.childMap()["box"]
	top := box.pathMap()["top"]
	top.pts[0] = Pt(100, 100)

	if !d.HasTag("root") {
		t.Error("tags are shared with the copy")
	}
	origInner, _ := d.Child("inner")
	origBox, _ := origInner.Child("box")
	origTop, _ := origBox.Path("top")
	diff(t, Pt(6, -2), origTop.Start())
}

func TestFillStrokePropagation(t *testing.T) {
	poly := mustPolygon(t, Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 0))
	crv := mustCurve(t, Pt(0, 0), Pt(2, 2))
	g := mustCombine(t, []Diagram{poly, crv}, "poly", "crv")

	filled := g.Fill("red")
	p, _ := filled.Child("poly")
	c, _ := filled.Child("crv")
	diff(t, Color("red"), p.FillColor())
	diff(t, NoColor, c.FillColor())
	diff(t, NoColor, p.StrokeColor())
	diff(t, NoColor, c.StrokeColor())
	diff(t, NoColor, filled.FillColor())

	stroked := filled.Stroke("black")
	p, _ = stroked.Child("poly")
	c, _ = stroked.Child("crv")
	diff(t, Color("black"), p.StrokeColor())
	diff(t, Color("black"), c.StrokeColor())
	diff(t, Color("red"), p.FillColor())
	diff(t, NoColor, stroked.StrokeColor())

	// Nested groups are reached too.
	nested := mustCombine(t, []Diagram{g}, "g").Fill("green")
	for name, node := range nested.All() {
		if node.Kind() == PolygonKind && node.FillColor() != "green" {
			t.Errorf("%s not filled", name)
		}
	}
}

func TestTranslate(t *testing.T) {
	d := sample(t).WithOrigin(Pt(1, 1))
	moved := d.Translate(Vec(10, 20))
	diff(t, Pt(11, 21), moved.Origin())
	diff(t, d.BoundingBox().Translate(Vec(10, 20)), moved.BoundingBox())

	// Origins of descendants move as well.
	inner, _ := moved.Child("inner")
	box, _ := inner.Child("box")
	diff(t, Pt(16, 18), box.Origin())
}

func TestTranslateAdditivity(t *testing.T) {
	const epsilon = 1e-9
	d := sample(t)
	a, b := Vec(1.5, -2.25), Vec(-0.1, 7.3)
	twice := d.Translate(a).Translate(b)
	once := d.Translate(a.Add(b))
	assertRectNear(t, twice.BoundingBox(), once.BoundingBox(), epsilon)
	assertNear(t, twice.Origin(), once.Origin(), epsilon)
}

func TestPositionIdempotence(t *testing.T) {
	d := sample(t).WithOrigin(Pt(0.1, 0.7))
	for _, v := range []Point{Pt(0, 0), Pt(0.3, -0.9), Pt(1e6, 1e-6)} {
		once := d.Position(v)
		twice := once.Position(v)
		diff(t, v, once.Origin())
		diff(t, once, twice, diagramOpts)
	}
}

func TestPositionMovesOriginOntoPoint(t *testing.T) {
	r := Rectangle(4, 2).WithOrigin(Pt(2, 1))
	moved := r.Position(Pt(0, 0))
	diff(t, Rect{-2, -1, 2, 1}, moved.BoundingBox())
}

func TestRotationRigidity(t *testing.T) {
	const epsilon = 1e-9
	d := sample(t)
	pivot := Pt(2.5, -1)
	th := 0.83

	before := allPoints(d)
	rotated := d.RotateAbout(th, pivot)
	after := allPoints(rotated)
	if len(before) != len(after) {
		t.Fatalf("point count changed from %d to %d", len(before), len(after))
	}
	for i := range before {
		for j := range before {
			d0 := before[i].Distance(before[j])
			d1 := after[i].Distance(after[j])
			if math.Abs(d0-d1) > epsilon {
				t.Fatalf("distance between points %d and %d changed from %v to %v", i, j, d0, d1)
			}
		}
		// Every point keeps its distance to the pivot.
		if d0, d1 := before[i].Distance(pivot), after[i].Distance(pivot); math.Abs(d0-d1) > epsilon {
			t.Fatalf("point %d moved relative to the pivot", i)
		}
	}

	restored := allPoints(rotated.RotateAbout(-th, pivot))
	for i := range before {
		assertNear(t, restored[i], before[i], epsilon)
	}
}

func TestRotateThreadsPivot(t *testing.T) {
	const epsilon = 1e-9
	// The child's own origin differs from the parent's; it must still turn
	// about the parent's origin.
	seg := Segment(Pt(2, 0), Pt(3, 0)).WithOrigin(Pt(2, 0))
	g := mustCombine(t, []Diagram{seg}, "seg")

	rotated := g.Rotate(math.Pi / 2)
	diff(t, Pt(0, 0), rotated.Origin())
	child, _ := rotated.Child("seg")
	p, _ := child.Path("path0")
	assertNear(t, p.Start(), Pt(0, 2), epsilon)
	assertNear(t, p.End(), Pt(0, 3), epsilon)
	assertNear(t, child.Origin(), Pt(0, 2), epsilon)
}

func TestScale(t *testing.T) {
	r := Rectangle(2, 3).WithOrigin(Pt(1, 0))
	diff(t, Rect{-1, 0, 3, 6}, r.Scale(2, 2).BoundingBox())
	diff(t, Pt(1, 0), r.Scale(2, 2).Origin())
}

func TestTags(t *testing.T) {
	d := Rectangle(1, 1).WithTags("cell", "header", "cell")
	diff(t, []string{"cell", "header"}, d.Tags())
	if !d.HasTag("header") || d.HasTag("grid") {
		t.Errorf("unexpected tags %v", d.Tags())
	}

	tags := d.Tags()
	tags[0] = "changed"
	if !d.HasTag("cell") {
		t.Error("Tags returned the node's own slice")
	}

	// Tags survive transforms.
	if !d.Translate(Vec(1, 1)).Fill("red").HasTag("cell") {
		t.Error("tags lost in transform")
	}
}

func TestWithOriginAt(t *testing.T) {
	r, err := Rectangle(4, 2).WithOriginAt(CenterCenter)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(2, 1), r.Origin())
	diff(t, Rect{0, 0, 4, 2}, r.BoundingBox())

	if _, err := Group().WithOriginAt(TopLeft); !errors.Is(err, ErrEmpty) {
		t.Errorf("got error %v, want ErrEmpty", err)
	}
}

func TestConcurrentUse(t *testing.T) {
	d := sample(t)
	want := d.Copy()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f := float64(i)
			_ = d.Fill("red").Translate(Vec(f, f)).Rotate(f).Stroke("blue")
			_ = d.BoundingBox()
			for range d.All() {
			}
		}()
	}
	wg.Wait()
	diff(t, want, d, diagramOpts)
}
