// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const opTranspose = "Transpose"

// Transpose swaps element (i,j) with element (j,i) for every i < j, in place.
//
// Precondition (unchecked): m is square. Callers that cannot guarantee this
// use TransposeSquare. On a matrix with more rows than columns the swap
// indexes past a row and panics; on a wider matrix only the leading square
// block is transposed.
//
// Transpose is an involution: applying it twice restores m exactly.
// Complexity: O(n²) time, O(1) extra space.
func Transpose(m Dense) {
	n := len(m)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			m.swap(i, j, j, i)
		}
	}
}

// TransposeSquare validates that m is square and then transposes it in place.
// On error m is left untouched.
// Complexity: O(n²) time, O(1) extra space.
func TransposeSquare(m Dense) error {
	if err := ValidateSquare(m); err != nil {
		return fmt.Errorf("%s: %w", opTranspose, err)
	}
	Transpose(m)

	return nil
}
