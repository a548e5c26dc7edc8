// Package polyline discovers corners between pairs of segments,
// assembles them into convex polylines, computes each polyline's
// bounding region, and sorts the resulting regions into reading
// order.
//
// Grounded directly on IAPolyline.hpp: intersection/farthest/find_corners
// map onto FindCorners, and find_next_region/find_regions/sort_regions
// map onto FindNextRegion/FindRegions/SortRegions with the same
// swap-to-tail deque assembly and partition-based reading-order sort.
package polyline

import (
	"math"
	"sort"

	"github.com/tsawler/rulekit/geom"
)

// Corner is the point where two segments meet, oriented so that A is
// the far endpoint of the first segment, B is the intersection point,
// and C is the far endpoint of the second segment, walking
// counter-clockwise around the joint. S1 and S2 are indices into the
// segment slice FindCorners was called with.
type Corner struct {
	S1, S2 int
	A, B, C geom.Point
}

// intersection returns the point where the infinite lines through s1
// and s2 cross. Parallel lines return a point at (+Inf, +Inf); the
// farthestWithin distance check downstream naturally rejects it,
// matching IAPolyline.hpp's handling of the degenerate case.
func intersection(s1, s2 geom.Segment) geom.Point {
	t := s1.Vector()
	u := s2.Vector()
	denom := t.X*u.Y - t.Y*u.X
	if denom == 0 {
		return geom.Point{X: math.Inf(1), Y: math.Inf(1)}
	}
	k1 := t.X*s1.A.Y - t.Y*s1.A.X
	k2 := u.X*s2.A.Y - u.Y*s2.A.X
	px := k1*u.X - k2*t.X
	py := k1*u.Y - k2*t.Y
	return geom.Point{X: px / denom, Y: py / denom}
}

// farthestWithin returns the endpoint of s farther from p, provided
// the *nearer* endpoint lies within maxGap (its square is maxGapSq)
// of p. This mirrors IAPolyline.hpp's farthest(): a corner is only
// plausible if one endpoint of each segment is close to the computed
// intersection point.
func farthestWithin(p geom.Point, s geom.Segment, maxGapSq float64) (geom.Point, bool) {
	d1 := p.DistanceSquared(s.A)
	d2 := p.DistanceSquared(s.B)
	if d1 < d2 {
		if d1 > maxGapSq {
			return geom.Point{}, false
		}
		return s.B, true
	}
	if d2 > maxGapSq {
		return geom.Point{}, false
	}
	return s.A, true
}

// FindCorners examines every pair of segments and emits a Corner for
// each pair whose lines cross near both segments' endpoints (within
// maxGap). Orientation is canonicalized so walking A->B->C always
// turns counter-clockwise.
func FindCorners(segs []geom.Segment, maxGap float64) []Corner {
	maxGapSq := maxGap * maxGap
	var corners []Corner
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			p := intersection(segs[i], segs[j])
			farA, ok := farthestWithin(p, segs[i], maxGapSq)
			if !ok {
				continue
			}
			farB, ok := farthestWithin(p, segs[j], maxGapSq)
			if !ok {
				continue
			}
			sine := geom.Cross(farB.Sub(p), farA.Sub(p))
			if sine > 0 {
				corners = append(corners, Corner{S1: i, S2: j, A: farA, B: p, C: farB})
			} else {
				corners = append(corners, Corner{S1: j, S2: i, A: farB, B: p, C: farA})
			}
		}
	}
	return corners
}

// Region is the bounding box of one assembled polyline, annotated
// with whether the polyline closed back on itself.
type Region struct {
	X, Y, W, H float64
	// Closed reports whether the polyline's first and last corners
	// shared a segment, forming a complete loop rather than an open
	// chain. Supplements spec.md's plain (x,y,w,h) tuple — see
	// SPEC_FULL.md §4.
	Closed bool
}

// findNextRegion removes one polyline's worth of corners from the
// tail of corners (swap-to-tail, matching IAPolyline.hpp), extending
// it at front and back by repeatedly finding corners that share a
// segment with the current ends, until no more attach. It reports
// found=false only once corners is fully exhausted without producing
// a usable (more than one corner) polyline.
func findNextRegion(corners []Corner) (remaining []Corner, region Region, found bool) {
	for len(corners) > 0 {
		last := len(corners) - 1
		poly := []Corner{corners[last]}
		corners = corners[:last]

		for {
			frontS1 := poly[0].S1
			matched := -1
			for idx := range corners {
				if corners[idx].S2 == frontS1 {
					matched = idx
					break
				}
			}
			if matched < 0 {
				break
			}
			c := corners[matched]
			tail := len(corners) - 1
			corners[matched] = corners[tail]
			corners = corners[:tail]
			poly = append([]Corner{c}, poly...)
		}

		for {
			backS2 := poly[len(poly)-1].S2
			matched := -1
			for idx := range corners {
				if corners[idx].S1 == backS2 {
					matched = idx
					break
				}
			}
			if matched < 0 {
				break
			}
			c := corners[matched]
			tail := len(corners) - 1
			corners[matched] = corners[tail]
			corners = corners[:tail]
			poly = append(poly, c)
		}

		if len(poly) == 1 {
			continue
		}

		closed := poly[0].S1 == poly[len(poly)-1].S2
		minP := poly[0].B
		maxP := poly[0].B
		for _, c := range poly {
			minP = geom.Min(minP, c.B)
			maxP = geom.Max(maxP, c.B)
		}
		if !closed {
			minP = geom.Min(minP, poly[0].A)
			maxP = geom.Max(maxP, poly[0].A)
			minP = geom.Min(minP, poly[len(poly)-1].C)
			maxP = geom.Max(maxP, poly[len(poly)-1].C)
		}

		return corners, Region{
			X:      minP.X,
			Y:      minP.Y,
			W:      maxP.X - minP.X,
			H:      maxP.Y - minP.Y,
			Closed: closed,
		}, true
	}
	return corners, Region{}, false
}

// FindRegions discovers every corner among segs (per maxGap) and
// assembles all of them into bounding Regions.
func FindRegions(segs []geom.Segment, maxGap float64) []Region {
	corners := FindCorners(segs, maxGap)
	var regions []Region
	for len(corners) > 0 {
		var r Region
		var ok bool
		corners, r, ok = findNextRegion(corners)
		if ok {
			regions = append(regions, r)
		}
	}
	return regions
}

// verticalOverlapFraction returns the fraction of pivot's height that
// overlaps s vertically.
func verticalOverlapFraction(pivot, s Region) float64 {
	if pivot.H == 0 {
		return 0
	}
	lo := math.Max(pivot.Y, s.Y)
	hi := math.Min(pivot.Y+pivot.H, s.Y+s.H)
	overlap := math.Max(0, hi-lo)
	return overlap / pivot.H
}

func regionLess(a, b Region) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// SortRegions orders regions into reading order in place: repeatedly
// picks the topmost-then-leftmost remaining region as a row pivot,
// groups every remaining region whose vertical overlap with the pivot
// is at least 50% of the pivot's height into that row, sorts the row
// (pivot included) left to right, and moves on to the next row.
// Ties preserve input order (stable at every step), matching
// IAPolyline.hpp's sort_regions.
func SortRegions(regions []Region) {
	for i := 0; i < len(regions); {
		minIdx := i
		for k := i + 1; k < len(regions); k++ {
			if regionLess(regions[k], regions[minIdx]) {
				minIdx = k
			}
		}
		pivot := regions[minIdx]
		copy(regions[i+1:minIdx+1], regions[i:minIdx])
		regions[i] = pivot

		row := []Region{pivot}
		var rest []Region
		for _, r := range regions[i+1:] {
			if verticalOverlapFraction(pivot, r) >= 0.5 {
				row = append(row, r)
			} else {
				rest = append(rest, r)
			}
		}
		copy(regions[i+1:], append(row[1:], rest...))

		rowSlice := regions[i : i+len(row)]
		sort.SliceStable(rowSlice, func(a, b int) bool {
			if rowSlice[a].X != rowSlice[b].X {
				return rowSlice[a].X < rowSlice[b].X
			}
			return rowSlice[a].Y < rowSlice[b].Y
		})

		i += len(row)
	}
}

// Classify splits regions into closed and open sets, preserving input
// order within each.
func Classify(regions []Region) (closed, open []Region) {
	for _, r := range regions {
		if r.Closed {
			closed = append(closed, r)
		} else {
			open = append(open, r)
		}
	}
	return
}
