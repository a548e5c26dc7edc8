// Package rulekit extracts straight line segments and convex regions
// from a binarized or grayscale raster image, using a Progressive
// Probabilistic Hough Transform followed by segment fusion and
// polyline/region assembly.
//
// See SPEC_FULL.md for the full component breakdown; the short
// version is: rulekit.New wraps a raster.Raster and params.Parameters
// into an Extractor, whose Segments and Regions methods run the
// scoreboard, postprocess, and polyline pipeline in turn.
package rulekit

import "github.com/tsawler/rulekit/internal/rkerrors"

// Sentinel errors returned (possibly wrapped via fmt.Errorf's %w) by
// this module's exported functions. Test with errors.Is.
var (
	// ErrInvalidImageFormat is returned when a raster cannot be
	// processed, e.g. because a dimension exceeds the engine's limit.
	ErrInvalidImageFormat = rkerrors.ErrInvalidImageFormat

	// ErrMissingParameter is returned by params.Parse when a required
	// key is absent from the input map.
	ErrMissingParameter = rkerrors.ErrMissingParameter

	// ErrParameterTypeMismatch is returned by params.Parse when a
	// parameter value is present but the wrong type.
	ErrParameterTypeMismatch = rkerrors.ErrParameterTypeMismatch

	// ErrInternalInvariant marks a violated internal invariant; see
	// internal/assert.
	ErrInternalInvariant = rkerrors.ErrInternalInvariant
)
