// Package postprocess fuses pairs of collinear segments that the
// scoreboard emitted separately — typically because a channel scan
// hit a gap wider than maxGap, or because two nearby samples produced
// slightly different (ρ, θ) estimates for the same real edge.
//
// Grounded on IAPostprocess.hpp/.cpp, simplified per spec.md §4.6 and
// §9 Open Question 1: channel_radius is fixed at 1 here rather than
// derived from the channelWidth user parameter, matching the
// recommendation spec.md makes for resolving that ambiguity.
package postprocess

import (
	"math"

	"github.com/tsawler/rulekit/geom"
)

// channelRadius is fixed, independent of params.Parameters.ChannelWidth.
const channelRadius = 1.0

// Fuse repeatedly attempts to fuse pairs of segments in place until no
// further fusion occurs, returning the (possibly shorter) resulting
// slice. The input slice's backing array is reused and mutated.
func Fuse(segs []geom.Segment) []geom.Segment {
	for {
		fusedAny := false
	scan:
		for i := 0; i < len(segs); i++ {
			for j := 0; j < len(segs); j++ {
				if i == j {
					continue
				}
				if fuse(&segs[i], segs[j]) {
					last := len(segs) - 1
					segs[j] = segs[last]
					segs = segs[:last]
					fusedAny = true
					goto scan
				}
			}
		}
		if !fusedAny {
			return segs
		}
	}
}

// fuse attempts to absorb t into *s, mutating *s in place and
// reporting whether the fusion happened. It follows IAPostprocess's
// three-step test: t's endpoints must lie within channelRadius of s's
// line (channel test), t's projection onto s's axis must overlap s's
// own [0,1] parametric range (projection test), and if it does, s is
// extended to cover the union of the two projected ranges.
func fuse(s *geom.Segment, t geom.Segment) bool {
	v := s.B.Sub(s.A)
	vv := geom.Dot(v, v)
	if vv == 0 {
		return false
	}
	n := geom.Normalize(geom.Rot90(v))
	r := geom.Dot(n, s.A)

	ra := geom.Dot(n, t.A)
	rb := geom.Dot(n, t.B)
	if ra < r-channelRadius || ra > r+channelRadius {
		return false
	}
	if rb < r-channelRadius || rb > r+channelRadius {
		return false
	}

	z0 := geom.Dot(v, t.A.Sub(s.A)) / vv
	z1 := geom.Dot(v, t.B.Sub(s.A)) / vv
	if z0 > z1 {
		z0, z1 = z1, z0
	}
	if z1 < 0 || z0 > 1 {
		return false
	}

	zLo := math.Min(0, z0)
	zHi := math.Max(1, z1)
	origA := s.A
	s.A = origA.Add(v.Scale(zLo))
	s.B = origA.Add(v.Scale(zHi))
	return true
}
