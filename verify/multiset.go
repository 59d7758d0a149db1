package verify

import "github.com/katalvlaran/sortlab/matrix"

// SameMultiset reports whether a and b contain the same values with the
// same multiplicities, in any order.
// Complexity: O(n) time, O(distinct values) memory.
func SameMultiset(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}

	return true
}

// Permutation returns a *PostconditionViolation if after is not a
// rearrangement of before. Index is -1: a multiset mismatch has no position.
func Permutation(algorithm string, before, after []int) error {
	if !SameMultiset(before, after) {
		return &PostconditionViolation{Algorithm: algorithm, Property: PropPermutation, Index: -1}
	}

	return nil
}

// ColumnPermutation checks that every column of after is a rearrangement of
// the same column of before. Index is the first offending column.
// Both matrices must be square and of the same size.
func ColumnPermutation(algorithm string, before, after matrix.Dense) error {
	if len(before) != len(after) {
		return &PostconditionViolation{Algorithm: algorithm, Property: PropPermutation, Index: -1}
	}
	var j int
	for j = range before {
		want, err := before.Column(j)
		if err != nil {
			return err
		}
		got, err := after.Column(j)
		if err != nil {
			return err
		}
		if !SameMultiset(want, got) {
			return &PostconditionViolation{Algorithm: algorithm, Property: PropPermutation, Index: j}
		}
	}

	return nil
}
