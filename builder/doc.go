// Package builder generates the random inputs consumed by the sortbench
// harness: integer sequences and square integer matrices of growing sizes.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG and the value range.
//   - Single inputs:
//     – RandomSequence:    n values drawn uniformly from [0, max].
//     – RandomMatrix:      n×n matrix with values in [0, max].
//   - Size sweeps (half-open, like a Go for-loop with a step):
//     – Sizes:             min, min+step, … < max.
//     – CountSizes:        len(Sizes) in O(1); sweeps above MaxSweep are ErrBadSize.
//     – RandomSequences:   one RandomSequence per size.
//     – RandomMatrices:    one RandomMatrix per size.
//
// Guarantees:
//
//   - Determinism: the same WithSeed value yields identical inputs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors (builderErrorf) for invalid sizes, wrapping
//     ErrBadSize / ErrBadStep for errors.Is.
//
// Without WithSeed or WithRand the generator is seeded from the wall clock,
// so every run benchmarks fresh data.
package builder
