// Package scoreboard implements the Progressive Probabilistic Hough
// Transform (PPHT) variant described in spec.md §4.4: randomized pixel
// sampling, voting into a (ρ, θ) accumulator, a log-Poisson
// null-hypothesis test on the winning peak, and channel scanning to
// emit a segment along an accepted line.
//
// Grounded directly on IAScoreboard.hpp/.cpp. The original exposes a
// C++ input_iterator; scoreboard exposes the idiomatic Go equivalent,
// a Scanner-style pull iterator (Next/Segment/Err), rather than a
// goroutine-fed channel, because spec.md §5 requires single-threaded
// cooperative scheduling with no background execution — a channel
// generator would imply exactly the concurrency the spec rules out.
package scoreboard

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/tsawler/rulekit/accumulator"
	"github.com/tsawler/rulekit/geom"
	"github.com/tsawler/rulekit/internal/rkerrors"
	"github.com/tsawler/rulekit/params"
	"github.com/tsawler/rulekit/pointset"
	"github.com/tsawler/rulekit/raster"
	"github.com/tsawler/rulekit/statusgrid"
	"github.com/tsawler/rulekit/trig"

	"gonum.org/v1/gonum/stat/distuv"
)

// maxDimension is the largest width or height this package accepts.
// The accumulator indexes rho by a fixed-precision scale derived from
// the image diagonal; beyond this size that derivation loses the
// precision the acceptance test depends on, matching the original's
// own guard against oversized inputs.
const maxDimension = 65535

// Scoreboard drives one extraction pass over a raster. It is not
// safe for concurrent use; spec.md §5 defines at most one in-flight
// pull at a time.
type Scoreboard struct {
	raster *raster.Raster
	grid   *statusgrid.Grid
	acc    *accumulator.Accumulator

	rhoScale      float64
	thresholdLnP  float64
	minLenSq      float64
	channelRadius int
	maxGap        int

	queue []statusgrid.Coord
	rng   *rand.Rand
	voted int

	cur geom.Segment
}

// New constructs a Scoreboard over r configured by p. It returns
// rkerrors.ErrInvalidImageFormat if either dimension of r exceeds
// maxDimension.
func New(r *raster.Raster, p params.Parameters) (*Scoreboard, error) {
	if r.Width() > maxDimension || r.Height() > maxDimension {
		return nil, fmt.Errorf("rulekit: %w: %dx%d exceeds %d", rkerrors.ErrInvalidImageFormat, r.Width(), r.Height(), maxDimension)
	}

	grid, queue := statusgrid.Init(r)
	diagonal := math.Ceil(math.Hypot(float64(r.Width()), float64(r.Height())))
	rhoScale := accumulator.RhoScale(diagonal, trig.MaxTheta)
	accHeight := int(math.Ceil(rhoScale * diagonal))
	acc := accumulator.New(accHeight, trig.MaxTheta)

	channelWidth := p.ChannelWidth
	if channelWidth < 3 {
		channelWidth = 3
	}
	channelRadius := (channelWidth - 1) / 2

	maxGap := p.MaxGap
	if maxGap < 0 {
		maxGap = 0
	}

	return &Scoreboard{
		raster:        r,
		grid:          grid,
		acc:           acc,
		rhoScale:      rhoScale,
		thresholdLnP:  -float64(p.Sensitivity) * math.Ln10,
		minLenSq:      float64(p.MinSegmentLength) * float64(p.MinSegmentLength),
		channelRadius: channelRadius,
		maxGap:        maxGap,
		queue:         queue,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Seed fixes the random source used for sampling, for reproducible
// test runs. It must be called before the first call to Next.
func (sb *Scoreboard) Seed(seed int64) {
	sb.rng = rand.New(rand.NewSource(seed))
}

// Next advances to the next accepted segment, returning false once the
// pending queue is exhausted. Call Segment to retrieve the result of a
// successful Next.
func (sb *Scoreboard) Next() bool {
	for len(sb.queue) > 0 {
		i := sb.rng.Intn(len(sb.queue))
		c := sb.queue[i]
		last := len(sb.queue) - 1
		sb.queue[i] = sb.queue[last]
		sb.queue = sb.queue[:last]

		if sb.grid.At(c.X, c.Y) != statusgrid.Pending {
			continue
		}
		sb.grid.Set(c.X, c.Y, statusgrid.Voted)

		theta, rho, ok := sb.vote(c.X, c.Y)
		if !ok {
			continue
		}

		sets := sb.scanChannel(theta, float64(rho)/sb.rhoScale)
		if len(sets) == 0 {
			continue
		}

		longest := 0
		for k := 1; k < len(sets); k++ {
			if sets[k].Segment().LengthSquared() > sets[longest].Segment().LengthSquared() {
				longest = k
			}
		}
		for k, ps := range sets {
			if k != longest {
				ps.Rollback()
			}
		}
		retained := sets[longest].Commit()
		for _, p := range retained {
			sb.unvote(p.X, p.Y)
		}

		seg := sets[longest].Segment()
		if seg.LengthSquared() < sb.minLenSq {
			continue
		}
		sb.cur = seg
		return true
	}
	return false
}

// Segment returns the segment found by the most recent successful
// call to Next.
func (sb *Scoreboard) Segment() geom.Segment {
	return sb.cur
}

// peak is a (theta, rho) cell that currently ties for the most votes
// seen so far during a single vote() sweep.
type peak struct {
	theta, rho int
}

// vote performs one full sweep over trig.MaxTheta angles for pixel
// (x, y), incrementing the accumulator cell each angle maps to and
// tracking which cells tie for the highest resulting count. It then
// runs the log-Poisson acceptance test against that count; if the
// test rejects, vote returns ok=false and the caller should treat the
// sample as spent without emitting a segment.
func (sb *Scoreboard) vote(x, y int) (theta, rho int, ok bool) {
	point := geom.Point{X: float64(x), Y: float64(y)}
	var peaks []peak
	var n uint16

	for t := 0; t < trig.MaxTheta; t++ {
		e := trig.At(t)
		r := point.X*e.Cos + point.Y*e.Sin
		if r < 0 {
			continue
		}
		rh := int(math.Round(r * sb.rhoScale))
		if rh >= sb.acc.Height() {
			continue
		}
		count := sb.acc.Inc(rh, t)
		switch {
		case count > n:
			n = count
			peaks = peaks[:0]
			peaks = append(peaks, peak{theta: t, rho: rh})
		case count == n:
			peaks = append(peaks, peak{theta: t, rho: rh})
		}
	}

	sb.voted++
	lambda := float64(sb.voted) / float64(sb.acc.Height())
	lnp := distuv.Poisson{Lambda: lambda}.LogProb(float64(n))
	if lnp >= sb.thresholdLnP {
		return 0, 0, false
	}

	chosen := peaks[sb.rng.Intn(len(peaks))]
	return chosen.theta, chosen.rho, true
}

// unvote decrements every accumulator cell that the original vote
// sweep for (x, y) would have incremented, recomputing the same
// (theta, rho) mapping rather than replaying a cached list.
func (sb *Scoreboard) unvote(x, y int) {
	point := geom.Point{X: float64(x), Y: float64(y)}
	for t := 0; t < trig.MaxTheta; t++ {
		e := trig.At(t)
		r := point.X*e.Cos + point.Y*e.Sin
		if r < 0 {
			continue
		}
		rh := int(math.Round(r * sb.rhoScale))
		if rh >= sb.acc.Height() {
			continue
		}
		sb.acc.Dec(rh, t)
	}
	sb.voted--
}

// findRange clips the infinite line p0 + delta*z to the raster
// bounds [0,width]x[0,height], returning the integer z range to scan.
func findRange(width, height int, p0, delta geom.Point) (lo, hi int) {
	zLo, zHi := math.Inf(1), math.Inf(-1)
	type edge struct {
		axisX bool
		value float64
	}
	edges := []edge{
		{true, 0}, {true, float64(width)},
		{false, 0}, {false, float64(height)},
	}
	for _, e := range edges {
		var z float64
		if e.axisX {
			if delta.X == 0 {
				continue
			}
			z = (e.value - p0.X) / delta.X
		} else {
			if delta.Y == 0 {
				continue
			}
			z = (e.value - p0.Y) / delta.Y
		}
		if math.IsNaN(z) || math.IsInf(z, 0) {
			continue
		}
		p := p0.Add(delta.Scale(z))
		if p.X >= 0 && p.X <= float64(width) && p.Y >= 0 && p.Y <= float64(height) {
			if z < zLo {
				zLo = z
			}
			if z > zHi {
				zHi = z
			}
		}
	}
	if math.IsInf(zLo, 1) || math.IsInf(zHi, -1) {
		return 0, -1 // empty range
	}
	return int(math.Floor(zLo)), int(math.Ceil(zHi))
}

// scanChannel walks the accepted line (theta, rho) one integer step
// at a time, sampling a band of channelRadius pixels on either side
// at each step. A run of maxGap or more consecutive misses closes off
// the current PointSet and starts a new one; scanChannel returns every
// non-empty PointSet produced, leaving the caller to pick the longest
// and roll back the rest.
func (sb *Scoreboard) scanChannel(theta int, rho float64) []*pointset.PointSet {
	e := trig.At(theta)
	normal := geom.Point{X: e.Cos, Y: e.Sin}
	p0 := normal.Scale(rho)
	delta := geom.Rot90(normal).Scale(1 / geom.NormInf(normal))

	zLo, zHi := findRange(sb.grid.Width(), sb.grid.Height(), p0, delta)

	offsets := make([]geom.Point, 0, 2*sb.channelRadius+1)
	for c := -sb.channelRadius; c <= sb.channelRadius; c++ {
		offsets = append(offsets, normal.Scale(float64(c)))
	}

	var segments []*pointset.PointSet
	cur := pointset.New(sb.grid)
	gap := 0

	for z := zLo; z <= zHi; z++ {
		p := p0.Add(delta.Scale(float64(z)))
		hit := false
		for _, off := range offsets {
			px := int(math.Round(p.X + off.X))
			py := int(math.Round(p.Y + off.Y))
			if cur.Add(px, py) {
				hit = true
			}
		}
		if hit {
			cur.Extend(p.X, p.Y)
			gap = 0
			continue
		}
		gap++
		if gap >= sb.maxGap && !cur.Empty() {
			segments = append(segments, cur)
			cur = pointset.New(sb.grid)
			gap = 0
		}
	}
	if !cur.Empty() {
		segments = append(segments, cur)
	}
	return segments
}
