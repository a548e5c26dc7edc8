// Package assert provides a debug-only assertion used by the
// accumulator package to guard internal invariants.
//
// Build with -tags rulekit_debug to make a failed assertion panic;
// ordinary builds compile Assertf to a no-op, matching spec.md §7's
// "production behavior is unspecified after invariant breach".
package assert
