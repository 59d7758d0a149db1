package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sortlab/matrix"
)

// ExampleTranspose rotates a 2×2 matrix and back again.
func ExampleTranspose() {
	m, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})

	matrix.Transpose(m)
	fmt.Print(m)

	matrix.Transpose(m)
	fmt.Print(m)

	// Output:
	// [1, 3]
	// [2, 4]
	// [1, 2]
	// [3, 4]
}

// ExampleTransposeSquare shows the checked variant refusing a 2×3 matrix.
func ExampleTransposeSquare() {
	m := matrix.Dense{{1, 2, 3}, {4, 5, 6}}
	err := matrix.TransposeSquare(m)
	fmt.Println(errors.Is(err, matrix.ErrNonSquare))
	fmt.Print(m)

	// Output:
	// true
	// [1, 2, 3]
	// [4, 5, 6]
}
