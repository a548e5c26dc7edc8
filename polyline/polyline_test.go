package polyline

import (
	"testing"

	"github.com/tsawler/rulekit/geom"
)

func TestFindRegionsSquare(t *testing.T) {
	// A closed 10x10 square built from four segments.
	segs := []geom.Segment{
		{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 10, Y: 0}},   // top
		{A: geom.Point{X: 10, Y: 0}, B: geom.Point{X: 10, Y: 10}}, // right
		{A: geom.Point{X: 10, Y: 10}, B: geom.Point{X: 0, Y: 10}}, // bottom
		{A: geom.Point{X: 0, Y: 10}, B: geom.Point{X: 0, Y: 0}},   // left
	}
	regions := FindRegions(segs, 1)
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}
	r := regions[0]
	if !r.Closed {
		t.Fatal("expected a closed region")
	}
	if r.W < 9.5 || r.W > 10.5 || r.H < 9.5 || r.H > 10.5 {
		t.Fatalf("region %+v is not ~10x10", r)
	}
}

func TestFindRegionsOpenFrame(t *testing.T) {
	// Three sides of a square: missing the left side, so the
	// polyline is an open chain, not a loop.
	segs := []geom.Segment{
		{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 10, Y: 0}},
		{A: geom.Point{X: 10, Y: 0}, B: geom.Point{X: 10, Y: 10}},
		{A: geom.Point{X: 10, Y: 10}, B: geom.Point{X: 0, Y: 10}},
	}
	regions := FindRegions(segs, 1)
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}
	if regions[0].Closed {
		t.Fatal("expected an open region")
	}
}

func TestSortRegionsReadingOrder(t *testing.T) {
	regions := []Region{
		{X: 50, Y: 100, W: 40, H: 40}, // bottom-right
		{X: 0, Y: 100, W: 40, H: 40},  // bottom-left
		{X: 50, Y: 5, W: 40, H: 40},   // top-right (slightly lower)
		{X: 0, Y: 0, W: 40, H: 40},    // top-left
	}
	SortRegions(regions)
	want := []struct{ X, Y float64 }{
		{0, 0}, {50, 5}, {0, 100}, {50, 100},
	}
	if len(regions) != len(want) {
		t.Fatalf("got %d regions, want %d", len(regions), len(want))
	}
	for i, w := range want {
		if regions[i].X != w.X || regions[i].Y != w.Y {
			t.Fatalf("regions[%d] = (%v,%v), want (%v,%v)", i, regions[i].X, regions[i].Y, w.X, w.Y)
		}
	}
}

func TestClassifySplitsOpenClosed(t *testing.T) {
	regions := []Region{{Closed: true}, {Closed: false}, {Closed: true}}
	closed, open := Classify(regions)
	if len(closed) != 2 || len(open) != 1 {
		t.Fatalf("Classify() = %d closed, %d open, want 2, 1", len(closed), len(open))
	}
}
