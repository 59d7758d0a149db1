// SPDX-License-Identifier: MIT
// Package: sortlab/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with builderErrorf, which keeps the
//     sentinel reachable through %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative length / side, or a size range whose
// lower bound is negative or above its upper bound.
// Usage: if errors.Is(err, ErrBadSize) { /* fix n, min or max */ }.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrBadStep indicates a non-positive step in a size sweep.
var ErrBadStep = errors.New("builder: step must be > 0")

// ErrBadMaxValue indicates a negative upper bound for generated values.
var ErrBadMaxValue = errors.New("builder: max value must be >= 0")

// Method tokens used as error context.
const (
	MethodSequence   = "RandomSequence"
	MethodSequences  = "RandomSequences"
	MethodMatrix     = "RandomMatrix"
	MethodMatrices   = "RandomMatrices"
	MethodSizes      = "Sizes"
	MethodValueRange = "WithMaxValue"
)

// builderErrorf prefixes err with the method context and a formatted detail,
// producing "<Method>: <detail>: <err>". errors.Is still matches err.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
