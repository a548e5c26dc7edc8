// Package pointset implements the provisional claim a channel scan
// places on grid cells before deciding whether to keep them as part
// of an emitted segment.
//
// Grounded on IAPointSet.hpp and IASegment.hpp. Both original classes
// use RAII: their destructor reverts any cell still left in a
// marked_* state when the object goes out of scope without a commit.
// Go has no destructors, so PointSet makes that contract explicit:
// every PointSet a caller constructs must end its life via exactly
// one call to Commit or Rollback.
package pointset

import (
	"github.com/tsawler/rulekit/geom"
	"github.com/tsawler/rulekit/statusgrid"
)

// PointSet accumulates candidate pixels along a channel scan and the
// running endpoints of the segment those pixels project onto.
type PointSet struct {
	grid     *statusgrid.Grid
	points   []statusgrid.Coord
	a, b     geom.Point
	haveEnds bool
	resolved bool
}

// New returns an empty PointSet bound to grid.
func New(grid *statusgrid.Grid) *PointSet {
	return &PointSet{grid: grid}
}

// Add attempts to claim cell (x, y). It succeeds only if the cell is
// currently Pending or Voted, in which case it transitions to
// MarkedPending or MarkedVoted respectively and is recorded. Add
// reports whether the claim succeeded.
func (ps *PointSet) Add(x, y int) bool {
	if !ps.grid.InBounds(x, y) {
		return false
	}
	switch ps.grid.At(x, y) {
	case statusgrid.Pending:
		ps.grid.Set(x, y, statusgrid.MarkedPending)
	case statusgrid.Voted:
		ps.grid.Set(x, y, statusgrid.MarkedVoted)
	default:
		return false
	}
	ps.points = append(ps.points, statusgrid.Coord{X: x, Y: y})
	return true
}

// Extend folds point (x, y) into the running segment endpoints: the
// first call establishes both A and B at that point; every later call
// moves B only, so A and B always track the first and most recent
// point extended.
func (ps *PointSet) Extend(x, y float64) {
	p := geom.Point{X: x, Y: y}
	if !ps.haveEnds {
		ps.a = p
		ps.haveEnds = true
	}
	ps.b = p
}

// Empty reports whether any cell has been claimed.
func (ps *PointSet) Empty() bool {
	return len(ps.points) == 0
}

// Segment returns the segment spanning the first and last points
// passed to Extend.
func (ps *PointSet) Segment() geom.Segment {
	return geom.Segment{A: ps.a, B: ps.b}
}

// Rollback reverts every claimed cell to its pre-claim state
// (MarkedPending -> Pending, MarkedVoted -> Voted) and marks the
// PointSet resolved. It is a no-op if Commit or Rollback was already
// called. Callers must call Rollback on any PointSet they discard
// without committing.
func (ps *PointSet) Rollback() {
	if ps.resolved {
		return
	}
	ps.resolved = true
	for _, c := range ps.points {
		switch ps.grid.At(c.X, c.Y) {
		case statusgrid.MarkedPending:
			ps.grid.Set(c.X, c.Y, statusgrid.Pending)
		case statusgrid.MarkedVoted:
			ps.grid.Set(c.X, c.Y, statusgrid.Voted)
		}
	}
}

// Commit finalizes the claim. Points that were MarkedPending (never
// voted) transition to Done and are dropped from the returned slice;
// points that were MarkedVoted transition to Done and are retained,
// since only a pixel that previously cast a vote has any accumulator
// contribution for the caller to unvote. See DESIGN.md's discussion
// of this resolution against spec.md §4.5's prose.
//
// Commit marks the PointSet resolved; Rollback afterward is a no-op.
func (ps *PointSet) Commit() []statusgrid.Coord {
	ps.resolved = true
	points := ps.points
	i, j := 0, len(points)
	for i < j {
		c := points[i]
		switch ps.grid.At(c.X, c.Y) {
		case statusgrid.MarkedPending:
			ps.grid.Set(c.X, c.Y, statusgrid.Done)
			j--
			points[i] = points[j]
		case statusgrid.MarkedVoted:
			ps.grid.Set(c.X, c.Y, statusgrid.Done)
			i++
		default:
			i++
		}
	}
	ps.points = points[:j]
	return ps.points
}
