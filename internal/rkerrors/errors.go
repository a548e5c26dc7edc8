// Package rkerrors holds the sentinel errors shared across rulekit's
// packages. It exists purely to avoid an import cycle between params,
// scoreboard, and the root rulekit package, all of which need to
// produce (or wrap) the same four sentinels. The root package
// re-exports these under rulekit.ErrXxx names.
package rkerrors

import "errors"

var (
	// ErrInvalidImageFormat is returned when a raster's dimensions or
	// contents cannot be processed (e.g. larger than 65535 on either
	// axis, the limit imposed by the accumulator's rho/theta indexing).
	ErrInvalidImageFormat = errors.New("invalid image format")

	// ErrMissingParameter is returned when a required parameter key is
	// absent from a parameter map.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrParameterTypeMismatch is returned when a parameter value is
	// present but not of the required type.
	ErrParameterTypeMismatch = errors.New("parameter type mismatch")

	// ErrInternalInvariant marks a violated internal invariant. In
	// builds tagged rulekit_debug a failed internal assertion panics
	// with an error wrapping this value; ordinary builds skip those
	// checks, and no function returns it.
	ErrInternalInvariant = errors.New("internal invariant violated")
)
