package bench

import (
	"errors"
	"fmt"
)

// ErrBadPlan is wrapped by every plan validation failure.
var ErrBadPlan = errors.New("bench: invalid plan")

// planErrorf formats one validation problem for trial i.
func planErrorf(i int, algorithm, format string, args ...interface{}) error {
	return fmt.Errorf("trial %d (%s): %s: %w", i, algorithm, fmt.Sprintf(format, args...), ErrBadPlan)
}
