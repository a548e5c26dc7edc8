// Package geom provides the minimal 2-D vector and segment arithmetic
// shared by the scoreboard, postprocess, and polyline packages.
//
// It plays the role that a single shared header (IABase.hpp / simd.h)
// played in the original implementation: every other package in this
// module imports geom rather than defining its own Point type.
package geom

import "math"

// Point is an ordered pair of double-precision reals.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Dot returns the dot product of p and q.
func Dot(p, q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z-component of the 3-D cross product of p and q
// treated as vectors in the z=0 plane.
func Cross(p, q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Rot90 rotates v by 90 degrees counter-clockwise.
func Rot90(v Point) Point {
	return Point{-v.Y, v.X}
}

// NormInf returns the infinity norm (max absolute component) of v.
func NormInf(v Point) float64 {
	return math.Max(math.Abs(v.X), math.Abs(v.Y))
}

// Length returns the Euclidean length of v.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalize returns v scaled to unit length. The zero vector is
// returned unchanged (division by zero would otherwise produce NaN;
// a degenerate zero-length segment should fail downstream comparisons
// rather than poison them with NaN).
func Normalize(v Point) Point {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// DistanceSquared returns the squared Euclidean distance between p and q.
func (p Point) DistanceSquared(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Min returns the component-wise minimum of p and q.
func Min(p, q Point) Point {
	return Point{math.Min(p.X, q.X), math.Min(p.Y, q.Y)}
}

// Max returns the component-wise maximum of p and q.
func Max(p, q Point) Point {
	return Point{math.Max(p.X, q.X), math.Max(p.Y, q.Y)}
}

// Segment is an ordered pair of endpoints.
type Segment struct {
	A, B Point
}

// Vector returns B-A.
func (s Segment) Vector() Point {
	return s.B.Sub(s.A)
}

// LengthSquared returns |B-A|².
func (s Segment) LengthSquared() float64 {
	return s.A.DistanceSquared(s.B)
}

// Normal returns the unit normal of the segment: normalize(rot90(B-A)).
func (s Segment) Normal() Point {
	return Normalize(Rot90(s.Vector()))
}
