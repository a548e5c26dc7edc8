//go:build !rulekit_debug

package assert

// Assertf is a no-op in non-debug builds.
func Assertf(cond bool, format string, args ...any) {}
