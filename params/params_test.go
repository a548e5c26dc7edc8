package params

import (
	"errors"
	"testing"

	"github.com/tsawler/rulekit/internal/rkerrors"
)

func TestParseSuccess(t *testing.T) {
	p, err := Parse(map[string]any{
		"sensitivity":      3,
		"maxGap":           2,
		"minSegmentLength": 10,
		"channelWidth":     3,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := Parameters{Sensitivity: 3, MaxGap: 2, MinSegmentLength: 10, ChannelWidth: 3}
	if p != want {
		t.Fatalf("Parse() = %+v, want %+v", p, want)
	}
}

func TestParseReportsAllMissing(t *testing.T) {
	_, err := Parse(map[string]any{"sensitivity": 1})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, rkerrors.ErrMissingParameter) {
		t.Fatalf("error %v does not wrap ErrMissingParameter", err)
	}
	// Three keys are missing: maxGap, minSegmentLength, channelWidth.
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("error %v is not a joined error", err)
	}
	if len(joined.Unwrap()) != 3 {
		t.Fatalf("got %d joined errors, want 3", len(joined.Unwrap()))
	}
}

func TestParseReportsTypeMismatch(t *testing.T) {
	_, err := Parse(map[string]any{
		"sensitivity":      "three",
		"maxGap":           2,
		"minSegmentLength": 10,
		"channelWidth":     3,
	})
	if !errors.Is(err, rkerrors.ErrParameterTypeMismatch) {
		t.Fatalf("error %v does not wrap ErrParameterTypeMismatch", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	want := []string{"sensitivity", "maxGap", "minSegmentLength", "channelWidth"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
