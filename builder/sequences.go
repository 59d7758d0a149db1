// SPDX-License-Identifier: MIT
// Package: sortlab/builder
//
// sequences.go — random sequences, matrices and size sweeps.
//
// Contract:
//   • Values are uniform in [0, maxValue] (inclusive on both ends).
//   • Sweeps are half-open: Sizes(100, 3000, 100) stops at 2900.
//   • Every returned slice / matrix is freshly allocated and owned by the caller.

package builder

import "github.com/katalvlaran/sortlab/matrix"

// MaxSweep is the largest number of sizes a sweep may hold.
const MaxSweep = 10_000

// CountSizes returns len(Sizes(minSize, maxSize, step)) without allocating.
// Errors: ErrBadSize if minSize < 0, minSize > maxSize or the count exceeds MaxSweep;
// ErrBadStep if step <= 0.
// Complexity: O(1).
func CountSizes(minSize, maxSize, step int) (int, error) {
	if minSize < 0 || minSize > maxSize {
		return 0, builderErrorf(MethodSizes, ErrBadSize, "range [%d,%d)", minSize, maxSize)
	}
	if step <= 0 {
		return 0, builderErrorf(MethodSizes, ErrBadStep, "step %d", step)
	}
	if minSize == maxSize {
		return 0, nil
	}
	// maxSize-minSize-1 >= 0 and cannot overflow for 0 <= minSize < maxSize.
	count := (maxSize-minSize-1)/step + 1
	if count > MaxSweep {
		return 0, builderErrorf(MethodSizes, ErrBadSize, "%d sizes in [%d,%d) step %d, limit %d",
			count, minSize, maxSize, step, MaxSweep)
	}

	return count, nil
}

// Sizes returns minSize, minSize+step, … while the value is < maxSize.
// Errors: see CountSizes.
// Complexity: O((maxSize-minSize)/step).
func Sizes(minSize, maxSize, step int) ([]int, error) {
	count, err := CountSizes(minSize, maxSize, step)
	if err != nil {
		return nil, err
	}
	out := make([]int, count)
	var i int
	for i = range out {
		out[i] = minSize + i*step // <= maxSize-1, never wraps
	}

	return out, nil
}

// RandomSequence returns n values drawn from [0, maxValue].
// Errors: ErrBadSize if n < 0.
// Complexity: O(n).
func RandomSequence(n int, opts ...BuilderOption) ([]int, error) {
	if n < 0 {
		return nil, builderErrorf(MethodSequence, ErrBadSize, "n=%d", n)
	}

	return randomSequence(n, newBuilderConfig(opts...)), nil
}

// randomSequence fills a new slice from cfg; n is already validated.
func randomSequence(n int, cfg builderConfig) []int {
	out := make([]int, n)
	var i int
	for i = range out {
		out[i] = cfg.draw()
	}

	return out
}

// RandomSequences returns one random sequence for every size in Sizes(minSize, maxSize, step),
// all drawn from the same RNG stream.
// Complexity: O(Σ sizes).
func RandomSequences(minSize, maxSize, step int, opts ...BuilderOption) ([][]int, error) {
	sizes, err := Sizes(minSize, maxSize, step)
	if err != nil {
		return nil, builderErrorf(MethodSequences, err, "sizes")
	}
	cfg := newBuilderConfig(opts...)
	out := make([][]int, len(sizes))
	for i, n := range sizes {
		out[i] = randomSequence(n, cfg)
	}

	return out, nil
}

// RandomMatrix returns an n×n matrix with values drawn from [0, maxValue], row by row.
// Errors: ErrBadSize if n < 0.
// Complexity: O(n²).
func RandomMatrix(n int, opts ...BuilderOption) (matrix.Dense, error) {
	if n < 0 {
		return nil, builderErrorf(MethodMatrix, ErrBadSize, "n=%d", n)
	}

	return randomMatrix(n, newBuilderConfig(opts...))
}

// randomMatrix fills a new square matrix from cfg.
func randomMatrix(n int, cfg builderConfig) (matrix.Dense, error) {
	m, err := matrix.NewDense(n)
	if err != nil {
		return nil, builderErrorf(MethodMatrix, err, "n=%d", n)
	}
	var i, j int
	for i = range m {
		for j = range m[i] {
			m[i][j] = cfg.draw()
		}
	}

	return m, nil
}

// RandomMatrices returns one random square matrix for every side in
// Sizes(minSize, maxSize, step), all drawn from the same RNG stream.
// Complexity: O(Σ side²).
func RandomMatrices(minSize, maxSize, step int, opts ...BuilderOption) ([]matrix.Dense, error) {
	sizes, err := Sizes(minSize, maxSize, step)
	if err != nil {
		return nil, builderErrorf(MethodMatrices, err, "sizes")
	}
	cfg := newBuilderConfig(opts...)
	out := make([]matrix.Dense, len(sizes))
	for i, n := range sizes {
		if out[i], err = randomMatrix(n, cfg); err != nil {
			return nil, err
		}
	}

	return out, nil
}
