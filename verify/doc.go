// Package verify checks the post-conditions of the sorts in package sorting.
//
// Predicates:
//   - IsSorted        — s[i] <= s[i+1] for every adjacent pair.
//   - IsSortedMatrix  — every column of a square matrix is non-decreasing.
//   - SameMultiset    — two sequences hold the same values with the same counts.
//
// Error-returning forms for the benchmark harness:
//   - Sorted / SortedMatrix / Permutation / ColumnPermutation return a
//     *PostconditionViolation naming the algorithm, the violated property
//     and the first offending position. errors.Is(err, ErrPostcondition) matches all of them.
//
// IsSortedMatrix transposes its argument, inspects the rows and transposes
// back on every path, so the caller never observes a rotated matrix.
package verify
