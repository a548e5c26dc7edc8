package pointset

import (
	"testing"

	"github.com/tsawler/rulekit/raster"
	"github.com/tsawler/rulekit/statusgrid"
)

func buildGrid(t *testing.T) *statusgrid.Grid {
	t.Helper()
	data := []byte{255, 255, 255, 255}
	r, err := raster.New(data, 2, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	g, _ := statusgrid.Init(r)
	return g
}

func TestAddRejectsDone(t *testing.T) {
	g := buildGrid(t)
	g.Set(0, 0, statusgrid.Done)
	ps := New(g)
	if ps.Add(0, 0) {
		t.Fatal("Add should fail on a Done cell")
	}
}

func TestRollbackRevertsMarks(t *testing.T) {
	g := buildGrid(t)
	g.Set(1, 1, statusgrid.Voted)
	ps := New(g)
	if !ps.Add(0, 0) {
		t.Fatal("Add(0,0) should succeed on Pending")
	}
	if !ps.Add(1, 1) {
		t.Fatal("Add(1,1) should succeed on Voted")
	}
	ps.Rollback()
	if g.At(0, 0) != statusgrid.Pending {
		t.Fatalf("(0,0) = %v, want Pending after rollback", g.At(0, 0))
	}
	if g.At(1, 1) != statusgrid.Voted {
		t.Fatalf("(1,1) = %v, want Voted after rollback", g.At(1, 1))
	}
}

func TestCommitRetainsOnlyMarkedVoted(t *testing.T) {
	g := buildGrid(t)
	g.Set(1, 1, statusgrid.Voted)
	ps := New(g)
	ps.Add(0, 0) // was Pending
	ps.Add(1, 1) // was Voted
	retained := ps.Commit()
	if len(retained) != 1 || retained[0] != (statusgrid.Coord{X: 1, Y: 1}) {
		t.Fatalf("Commit retained %v, want only (1,1)", retained)
	}
	if g.At(0, 0) != statusgrid.Done || g.At(1, 1) != statusgrid.Done {
		t.Fatalf("both cells should be Done after commit: (0,0)=%v (1,1)=%v", g.At(0, 0), g.At(1, 1))
	}
}

func TestExtendTracksFirstAndLast(t *testing.T) {
	ps := New(buildGrid(t))
	ps.Extend(1, 1)
	ps.Extend(2, 2)
	ps.Extend(3, 3)
	seg := ps.Segment()
	if seg.A.X != 1 || seg.A.Y != 1 || seg.B.X != 3 || seg.B.Y != 3 {
		t.Fatalf("Segment() = %+v, want A=(1,1) B=(3,3)", seg)
	}
}
