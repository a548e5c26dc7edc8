// Package accumulator implements the 2-D (ρ, θ) Hough vote counter.
//
// Grounded on IAScoreboard.cpp's managed_buffer<counter_t> accumulator
// and its rho_scale derivation. The original's raw row-major pointer
// buffer becomes a flat Go slice with the same row-major layout.
package accumulator

import (
	"math"

	"github.com/tsawler/rulekit/internal/assert"
)

// Accumulator counts votes indexed by discrete rho (row) and theta
// (column). Counts are uint16 because a pixel's single vote sweep can
// never push any cell past the number of pixels in the image, and the
// original used the same width to bound memory.
type Accumulator struct {
	height, width int
	counts        []uint16
}

// New allocates an Accumulator with the given row count (rho
// resolution) and column count (theta resolution, normally
// trig.MaxTheta).
func New(height, width int) *Accumulator {
	return &Accumulator{height: height, width: width, counts: make([]uint16, height*width)}
}

// Height returns the number of rho rows.
func (a *Accumulator) Height() int { return a.height }

// Width returns the number of theta columns.
func (a *Accumulator) Width() int { return a.width }

// Inc increments cell (rho, theta) and returns its new count.
func (a *Accumulator) Inc(rho, theta int) uint16 {
	idx := rho*a.width + theta
	a.counts[idx]++
	return a.counts[idx]
}

// Dec decrements cell (rho, theta). Decrementing a cell already at
// zero violates the "counters track exactly the currently-voted
// cells" invariant; in rulekit_debug builds this panics via the
// assert package, otherwise the counter wraps and the breach is
// unsignaled, per spec.md §7.
func (a *Accumulator) Dec(rho, theta int) {
	idx := rho*a.width + theta
	assert.Assertf(a.counts[idx] > 0, "accumulator: decrement below zero at rho=%d theta=%d", rho, theta)
	a.counts[idx]--
}

// Get returns the current count at (rho, theta).
func (a *Accumulator) Get(rho, theta int) uint16 {
	return a.counts[rho*a.width+theta]
}

// RhoScale computes the scale factor that maps a continuous rho value
// (in pixel units) to a discrete accumulator row, chosen so the
// number of rho buckets is close to maxTheta: ρ_scale =
// 2^round(log2(maxTheta) - log2(diagonal)), per spec.md §4.3.
func RhoScale(diagonal float64, maxTheta int) float64 {
	return math.Exp2(math.Round(math.Log2(float64(maxTheta)) - math.Log2(diagonal)))
}
