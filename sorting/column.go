package sorting

import "github.com/katalvlaran/sortlab/matrix"

// Column sorts every column of the square matrix m in non-decreasing order,
// in place.
//
// It introduces no sorting logic of its own: after a Transpose the columns
// of m are its rows, each row is sorted with Insertion, and a second
// Transpose restores the original orientation.
//
// Precondition (unchecked): m is square, see matrix.Transpose.
//
// Complexity:
//
//	Time   = O(n³) for n rows of O(n²) insertion sort, plus two O(n²) transposes
//	Memory = O(1)
func Column(m matrix.Dense) {
	matrix.Transpose(m)
	for _, row := range m {
		Insertion(row)
	}
	matrix.Transpose(m)
}
