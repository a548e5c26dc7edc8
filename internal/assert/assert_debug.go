//go:build rulekit_debug

package assert

import (
	"fmt"

	"github.com/tsawler/rulekit/internal/rkerrors"
)

// Assertf panics with a formatted message wrapping
// rkerrors.ErrInternalInvariant when cond is false.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("%w: %s", rkerrors.ErrInternalInvariant, fmt.Sprintf(format, args...)))
	}
}
