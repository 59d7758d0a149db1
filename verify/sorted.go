package verify

import "github.com/katalvlaran/sortlab/matrix"

// IsSorted reports whether s is in non-decreasing order.
// Sequences of length 0 or 1 are sorted.
// Complexity: O(n).
func IsSorted(s []int) bool {
	return firstDescent(s) < 0
}

// firstDescent returns the smallest i with s[i] > s[i+1], or -1.
func firstDescent(s []int) int {
	var i int
	for i = 0; i+1 < len(s); i++ {
		if s[i] > s[i+1] {
			return i
		}
	}

	return -1
}

// IsSortedMatrix reports whether every column of the square matrix m is in
// non-decreasing order. m is left exactly as it was, whatever the result.
// Precondition (unchecked): m is square.
// Complexity: O(n²).
func IsSortedMatrix(m matrix.Dense) bool {
	_, ok := firstUnsortedColumn(m)

	return ok
}

// firstUnsortedColumn transposes m, scans the rows (the original columns)
// and transposes back before returning, including on the early exit.
func firstUnsortedColumn(m matrix.Dense) (int, bool) {
	matrix.Transpose(m)
	defer matrix.Transpose(m)

	for j, row := range m {
		if !IsSorted(row) {
			return j, false
		}
	}

	return -1, true
}

// Sorted returns a *PostconditionViolation if s is not sorted.
// algorithm names the sort in the diagnostic.
func Sorted(algorithm string, s []int) error {
	if i := firstDescent(s); i >= 0 {
		return &PostconditionViolation{Algorithm: algorithm, Property: PropSequenceSorted, Index: i}
	}

	return nil
}

// SortedMatrix returns a *PostconditionViolation naming the first unsorted
// column of m. Like IsSortedMatrix it leaves m unchanged.
func SortedMatrix(algorithm string, m matrix.Dense) error {
	if j, ok := firstUnsortedColumn(m); !ok {
		return &PostconditionViolation{Algorithm: algorithm, Property: PropColumnsSorted, Index: j}
	}

	return nil
}
