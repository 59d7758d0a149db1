// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Every message is prefixed with "matrix: ..." for consistency. Callers match
// with errors.Is; context is attached with fmt.Errorf("Op: %w", ErrX) at the
// detection site.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested side length is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Swap and Column return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the number
	// of rows differs from the row length.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRagged signals that rows of the matrix have different lengths.
	ErrRagged = errors.New("matrix: rows have different lengths")
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
