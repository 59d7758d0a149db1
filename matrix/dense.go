// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (slice of rows) & safe accessors.
//
// Purpose:
//   - Keep every row a plain []int so sequence sorts operate on rows in place.
//   - Guarantee safety at the public surface: Swap and Column return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; Swap: O(1); Column: O(n); Clone/Equal: O(n²).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxSwap   = "Swap"   // method tag used in error wrappers
	ctxColumn = "Column" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is an integer matrix stored as a slice of rows.
//   - len(m) is the number of rows.
//   - m[i] is row i; for a well-formed matrix every row has len(m) elements.
//
// Dense is a reference type: passing it to a function shares the backing rows,
// which is exactly what the in-place sorts and Transpose need.
type Dense [][]int

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Dense(nil)

// NewDense creates an n×n zero matrix.
// Stage 1 (Validate): n >= 0, else ErrBadShape.
// Stage 2 (Prepare): allocate one contiguous buffer and slice it into rows.
// Complexity: O(n²) time and memory.
func NewDense(n int) (Dense, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewDense(%d): %w", n, ErrBadShape)
	}
	// One backing array keeps rows adjacent in memory.
	buf := make([]int, n*n)
	m := make(Dense, n)
	var i int
	for i = 0; i < n; i++ {
		m[i] = buf[i*n : (i+1)*n : (i+1)*n] // cap-limited so an append on a row never bleeds into the next
	}

	return m, nil
}

// FromRows copies rows into a new Dense.
// Shape is validated (ErrRagged, ErrNonSquare); the input is never aliased.
// Complexity: O(n²).
func FromRows(rows [][]int) (Dense, error) {
	if err := ValidateSquare(Dense(rows)); err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}
	m, err := NewDense(len(rows))
	if err != nil {
		return nil, err
	}
	var i int
	for i = range rows {
		copy(m[i], rows[i])
	}

	return m, nil
}

// Size returns the number of rows (the side length of a square matrix).
// Complexity: O(1).
func (m Dense) Size() int {
	return len(m)
}

// inBounds reports whether (row, col) addresses an existing element.
func (m Dense) inBounds(row, col int) bool {
	return row >= 0 && row < len(m) && col >= 0 && col < len(m[row])
}

// Swap exchanges the elements at (r1, c1) and (r2, c2) in place.
// Both coordinates are validated before anything is written.
// Complexity: O(1).
func (m Dense) Swap(r1, c1, r2, c2 int) error {
	if !m.inBounds(r1, c1) {
		return denseErrorf(ctxSwap, r1, c1, ErrOutOfRange)
	}
	if !m.inBounds(r2, c2) {
		return denseErrorf(ctxSwap, r2, c2, ErrOutOfRange)
	}
	m.swap(r1, c1, r2, c2)

	return nil
}

// swap exchanges two elements without bounds checks; Swap and Transpose share it.
func (m Dense) swap(r1, c1, r2, c2 int) {
	m[r1][c1], m[r2][c2] = m[r2][c2], m[r1][c1]
}

// Column returns a copy of column j.
// Rows shorter than j+1 make the matrix ill-formed; ErrOutOfRange is returned.
// Complexity: O(n) time and memory.
func (m Dense) Column(j int) ([]int, error) {
	out := make([]int, len(m))
	var i int
	for i = range m {
		if !m.inBounds(i, j) {
			return nil, denseErrorf(ctxColumn, i, j, ErrOutOfRange)
		}
		out[i] = m[i][j]
	}

	return out, nil
}

// Clone returns a deep copy; the result shares no storage with m.
// Ragged rows are copied as they are.
// Complexity: O(n²) time and memory.
func (m Dense) Clone() Dense {
	if m == nil {
		return nil
	}
	out := make(Dense, len(m))
	var i int
	for i = range m {
		out[i] = append([]int(nil), m[i]...)
	}

	return out
}

// Equal reports whether m and other have the same shape and elements.
// Complexity: O(n²).
func (m Dense) Equal(other Dense) bool {
	if len(m) != len(other) {
		return false
	}
	var i, j int
	for i = range m {
		if len(m[i]) != len(other[i]) {
			return false
		}
		for j = range m[i] {
			if m[i][j] != other[i][j] {
				return false
			}
		}
	}

	return true
}

// String renders one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
// Complexity: O(n²).
func (m Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = range m {
		sb.WriteString(_fmtRowOpen)
		for j = range m[i] {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%d", m[i][j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
