// Package params holds the four user-tunable knobs that govern
// extraction sensitivity and the simple struct-with-constructor
// validation shape rulekit follows throughout.
//
// Grounded on IABase.hpp's PARAMS macro (which expands to the same
// four fields of UserParameters) and on tables/detector.go's
// Config/DefaultConfig shape — Go has no preprocessor, so the fields
// are written out by hand rather than macro-generated, but the
// eager-validate-everything intent of the original constructor
// carries over into Parse.
package params

import (
	"errors"
	"fmt"

	"github.com/tsawler/rulekit/internal/rkerrors"
)

// Parameters configures a Scoreboard/Postprocess/Polyline pipeline
// run. All four fields correspond 1:1 to UserParameters in the
// original source.
type Parameters struct {
	// Sensitivity controls the Poisson acceptance threshold: higher
	// values require a stronger peak before a line is accepted.
	Sensitivity int
	// MaxGap is the largest run of consecutive misses tolerated
	// during a channel scan before a segment is closed off, and also
	// the corner-discovery endpoint gap tolerance (§4.7.1).
	MaxGap int
	// MinSegmentLength is the minimum accepted segment length, in
	// pixels.
	MinSegmentLength int
	// ChannelWidth is the total width, in pixels, of the band scanned
	// around an accepted (ρ, θ) line. It must be odd; callers
	// typically pass a small odd value such as 3 or 5.
	ChannelWidth int
}

// Names returns the four parameter keys Parse expects, in the
// canonical order used throughout documentation and error messages.
func Names() []string {
	return []string{"sensitivity", "maxGap", "minSegmentLength", "channelWidth"}
}

// Parse decodes Parameters from a map of the four Names() keys to int
// values. Every missing or mismatched key is reported; Parse does not
// stop at the first problem, matching the original constructor's
// eager expansion of all four PARAMS fields at once.
func Parse(values map[string]any) (Parameters, error) {
	var problems []error
	field := func(key string) int {
		raw, ok := values[key]
		if !ok {
			problems = append(problems, fmt.Errorf("rulekit: %w: %s", rkerrors.ErrMissingParameter, key))
			return 0
		}
		n, ok := raw.(int)
		if !ok {
			problems = append(problems, fmt.Errorf("rulekit: %w: %s (got %T)", rkerrors.ErrParameterTypeMismatch, key, raw))
			return 0
		}
		return n
	}

	p := Parameters{
		Sensitivity:      field("sensitivity"),
		MaxGap:           field("maxGap"),
		MinSegmentLength: field("minSegmentLength"),
		ChannelWidth:     field("channelWidth"),
	}
	if len(problems) > 0 {
		return Parameters{}, errors.Join(problems...)
	}
	return p, nil
}
