package postprocess

import (
	"math"
	"testing"

	"github.com/tsawler/rulekit/geom"
)

func TestFuseCollinearAdjacent(t *testing.T) {
	segs := []geom.Segment{
		{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 5, Y: 0}},
		{A: geom.Point{X: 6, Y: 0}, B: geom.Point{X: 10, Y: 0}},
	}
	out := Fuse(segs)
	if len(out) != 1 {
		t.Fatalf("got %d segments, want 1", len(out))
	}
	got := out[0]
	if math.Min(got.A.X, got.B.X) > 0.01 || math.Max(got.A.X, got.B.X) < 9.99 {
		t.Fatalf("fused segment %+v does not span [0,10]", got)
	}
}

func TestFuseRejectsOffAxis(t *testing.T) {
	segs := []geom.Segment{
		{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 5, Y: 0}},
		{A: geom.Point{X: 6, Y: 5}, B: geom.Point{X: 10, Y: 5}},
	}
	out := Fuse(segs)
	if len(out) != 2 {
		t.Fatalf("got %d segments, want 2 (should not fuse)", len(out))
	}
}

func TestFuseRejectsNonOverlappingProjection(t *testing.T) {
	segs := []geom.Segment{
		{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 1, Y: 0}},
		{A: geom.Point{X: 50, Y: 0}, B: geom.Point{X: 51, Y: 0}},
	}
	out := Fuse(segs)
	if len(out) != 2 {
		t.Fatalf("got %d segments, want 2 (far apart, should not fuse)", len(out))
	}
}
