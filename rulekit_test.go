package rulekit

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tsawler/rulekit/geom"
	"github.com/tsawler/rulekit/params"
	"github.com/tsawler/rulekit/polyline"
	"github.com/tsawler/rulekit/postprocess"
	"github.com/tsawler/rulekit/raster"
)

func buildSquareRaster(t *testing.T) *raster.Raster {
	t.Helper()
	const w, h = 30, 30
	data := make([]byte, w*h)
	set := func(x, y int) { data[y*w+x] = 255 }
	for x := 5; x < 25; x++ {
		set(x, 5)
		set(x, 24)
	}
	for y := 5; y < 25; y++ {
		set(5, y)
		set(24, y)
	}
	r, err := raster.New(data, w, h, w)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestExtractorSegmentsAndRegions(t *testing.T) {
	r := buildSquareRaster(t)
	p := params.Parameters{Sensitivity: 1, MaxGap: 1, MinSegmentLength: 5, ChannelWidth: 3}
	e := New(r, p).Seed(42)

	segs, err := e.Segments()
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) == 0 {
		t.Fatal("expected at least one segment for a 4-sided square")
	}

	regions, err := e.Regions()
	if err != nil {
		t.Fatal(err)
	}
	if len(regions) == 0 {
		t.Fatal("expected at least one region for a closed square outline")
	}
}

func TestNewFromMapPropagatesParseErrors(t *testing.T) {
	r := buildSquareRaster(t)
	_, err := NewFromMap(r, map[string]any{"sensitivity": 1})
	if !errors.Is(err, ErrMissingParameter) {
		t.Fatalf("expected ErrMissingParameter, got %v", err)
	}
}

// TestFuseAndRegionsAgainstExpectedScenario exercises the
// postprocess -> polyline portion of the end-to-end pipeline against
// a raw, slightly fragmented scan of a closed square (each side split
// into two near-collinear, near-overlapping segments, as scoreboard's
// channel scan would emit for a noisy raster) and diffs the resulting
// regions against the expected reading-order scenario with go-cmp,
// tolerating the sub-pixel slop that fusion/corner-snapping leaves
// behind.
func TestFuseAndRegionsAgainstExpectedScenario(t *testing.T) {
	raw := []geom.Segment{
		// top, split in two with a 0.2px overlap
		{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 5.2, Y: 0}},
		{A: geom.Point{X: 5, Y: 0}, B: geom.Point{X: 10, Y: 0}},
		// right, split in two
		{A: geom.Point{X: 10, Y: 0}, B: geom.Point{X: 10, Y: 5.2}},
		{A: geom.Point{X: 10, Y: 5}, B: geom.Point{X: 10, Y: 10}},
		// bottom, split in two
		{A: geom.Point{X: 10, Y: 10}, B: geom.Point{X: 5, Y: 10}},
		{A: geom.Point{X: 5.2, Y: 10}, B: geom.Point{X: 0, Y: 10}},
		// left, split in two
		{A: geom.Point{X: 0, Y: 10}, B: geom.Point{X: 0, Y: 5}},
		{A: geom.Point{X: 0, Y: 5.2}, B: geom.Point{X: 0, Y: 0}},
	}

	fused := postprocess.Fuse(raw)
	regions := polyline.FindRegions(fused, 1)
	polyline.SortRegions(regions)

	want := []polyline.Region{
		{X: 0, Y: 0, W: 10, H: 10, Closed: true},
	}

	diff := cmp.Diff(want, regions, cmpopts.EquateApprox(0, 0.5))
	if diff != "" {
		t.Fatalf("regions mismatch (-want +got):\n%s", diff)
	}
}

func TestParameterNames(t *testing.T) {
	names := ParameterNames()
	if len(names) != 4 {
		t.Fatalf("ParameterNames() = %v, want 4 entries", names)
	}
}
