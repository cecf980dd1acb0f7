package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFrameAdapterIsItsOwnInverse(t *testing.T) {
	f := FrameAdapter{Height: 300}
	pts := []Point2{
		{X: 0, Y: 0},
		{X: 12.5, Y: 300},
		{X: -4, Y: 117.3},
		{X: 1e6, Y: -1e6},
	}
	for _, p := range pts {
		got := f.Convert(f.Convert(p))
		if got != p {
			t.Errorf("double convert of %v = %v, want identity", p, got)
		}
	}
}

func TestTransformApplyOrder(t *testing.T) {
	// Scale first, then rotate, then translate: (1,0) scaled by (2,1),
	// rotated 90 degrees CCW, translated by (10,10) lands at (10,12).
	tr := Transform{
		Translation: Point2{X: 10, Y: 10},
		Rotation:    math.Pi / 2,
		ScaleX:      2,
		ScaleY:      1,
	}
	got := tr.Apply(Point2{X: 1, Y: 0})
	if math.Abs(got.X-10) > 1e-9 || math.Abs(got.Y-12) > 1e-9 {
		t.Errorf("Apply(1,0) = %v, want (10, 12)", got)
	}
}

func TestIdentityTransformIsNoOp(t *testing.T) {
	tr := Identity()
	p := Point2{X: 3.25, Y: -7.5}
	if got := tr.Apply(p); got != p {
		t.Errorf("Identity().Apply(%v) = %v", p, got)
	}
}

func TestSignedAreaOrientation(t *testing.T) {
	ccw := []Point2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if a := SignedArea(ccw); math.Abs(a-100) > 1e-9 {
		t.Errorf("CCW square area = %v, want 100", a)
	}
	cw := []Point2{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
	if a := SignedArea(cw); math.Abs(a+100) > 1e-9 {
		t.Errorf("CW square area = %v, want -100", a)
	}
}

func TestPointInPolygon(t *testing.T) {
	poly := []Point2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	cases := []struct {
		p    Point2
		want bool
	}{
		{Point2{5, 5}, true},
		{Point2{-1, 5}, false},
		{Point2{11, 5}, false},
		{Point2{5, -1}, false},
		{Point2{9.999, 9.999}, true},
	}
	for _, c := range cases {
		if got := PointInPolygon(c.p, poly); got != c.want {
			t.Errorf("PointInPolygon(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestDistanceToSegment(t *testing.T) {
	a := Point2{0, 0}
	b := Point2{10, 0}
	if d := DistanceToSegment(Point2{5, 3}, a, b); math.Abs(d-3) > 1e-9 {
		t.Errorf("perpendicular distance = %v, want 3", d)
	}
	if d := DistanceToSegment(Point2{-4, 3}, a, b); math.Abs(d-5) > 1e-9 {
		t.Errorf("endpoint distance = %v, want 5", d)
	}
}

func TestConvexHullContainsAllPoints(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pts := make([]Point2, 200)
	for i := range pts {
		pts[i] = Point2{X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}
	hull := ConvexHull(pts)
	if len(hull) < 3 {
		t.Fatalf("hull of random cloud has %d vertices", len(hull))
	}
	for _, p := range pts {
		if !PointInPolygon(p, hull) && DistanceToPolygon(p, hull) > 1e-9 {
			t.Errorf("point %v outside its own hull", p)
		}
	}
}

func TestConvexHullIdempotent(t *testing.T) {
	pts := []Point2{
		{0, 0}, {10, 0}, {10, 10}, {0, 10},
		{5, 5}, {2, 3}, {5, 0}, // interior and collinear points
	}
	hull := ConvexHull(pts)
	again := ConvexHull(hull)
	if diff := cmp.Diff(hull, again); diff != "" {
		t.Errorf("hull not idempotent (-first +second):\n%s", diff)
	}
	want := []Point2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if diff := cmp.Diff(want, hull); diff != "" {
		t.Errorf("hull of square with interior points (-want +got):\n%s", diff)
	}
}

func TestConvexHullIsCCW(t *testing.T) {
	pts := []Point2{{0, 0}, {4, 1}, {2, 6}, {-3, 4}, {1, 2}}
	hull := ConvexHull(pts)
	if SignedArea(hull) <= 0 {
		t.Errorf("hull winding is not counter-clockwise: %v", hull)
	}
}

func TestConvexHullDegenerate(t *testing.T) {
	collinear := []Point2{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	hull := ConvexHull(collinear)
	if len(hull) != 2 {
		t.Errorf("collinear hull has %d vertices, want 2", len(hull))
	}
}

func TestPathLength(t *testing.T) {
	square := []Point2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if l := PathLength(square); math.Abs(l-40) > 1e-9 {
		t.Errorf("square perimeter = %v, want 40", l)
	}
}
