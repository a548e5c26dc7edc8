// Package statusgrid implements the per-pixel state machine that the
// scoreboard uses to track which pixels have voted, been claimed by a
// provisional PointSet, or been permanently consumed.
//
// Grounded on IABase.hpp's status_t enum and IAScoreboard.cpp's
// construction of the initial pending queue. The original's enum
// values were color constants for a debug visualizer (Instruments)
// and carry no semantic weight beyond ordering, so the Go values are
// a plain iota sequence instead.
package statusgrid

import "github.com/tsawler/rulekit/raster"

// Cell is one of the six states a pixel can occupy during extraction.
type Cell uint8

const (
	// Unset pixels are background; they never enter the pending queue.
	Unset Cell = iota
	// Pending pixels are foreground and have not yet been sampled.
	Pending
	// Voted pixels have cast one full accumulator vote sweep.
	Voted
	// Done pixels have been committed into an emitted segment.
	Done
	// MarkedPending pixels are provisionally claimed by a PointSet
	// while still Pending underneath (never voted).
	MarkedPending
	// MarkedVoted pixels are provisionally claimed by a PointSet while
	// Voted underneath.
	MarkedVoted
)

func (c Cell) String() string {
	switch c {
	case Unset:
		return "unset"
	case Pending:
		return "pending"
	case Voted:
		return "voted"
	case Done:
		return "done"
	case MarkedPending:
		return "marked_pending"
	case MarkedVoted:
		return "marked_voted"
	default:
		return "invalid"
	}
}

// Coord is an integer pixel coordinate.
type Coord struct {
	X, Y int
}

// Grid is a width*height array of Cell states.
type Grid struct {
	width, height int
	cells         []Cell
}

func newGrid(width, height int) *Grid {
	return &Grid{width: width, height: height, cells: make([]Cell, width*height)}
}

// Width returns the grid width.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the state of cell (x, y).
func (g *Grid) At(x, y int) Cell {
	return g.cells[y*g.width+x]
}

// Set assigns the state of cell (x, y).
func (g *Grid) Set(x, y int, c Cell) {
	g.cells[y*g.width+x] = c
}

// Init builds a Grid the size of r and returns it along with the
// initial pending queue: the coordinates of every pixel at or above
// raster.Threshold, in raster scan order.
func Init(r *raster.Raster) (*Grid, []Coord) {
	g := newGrid(r.Width(), r.Height())
	queue := make([]Coord, 0, r.Width()*r.Height()/4)
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			if r.At(x, y) >= raster.Threshold {
				g.Set(x, y, Pending)
				queue = append(queue, Coord{X: x, Y: y})
			}
		}
	}
	return g, queue
}
