// Package matrix provides the square integer matrix used by the column-sort
// benchmark, together with its in-place transpose primitive.
//
// 🚀 What is in here?
//
//	Dense is a matrix stored as a slice of rows, each row a plain []int.
//	Rows are ordinary sequences, so any sequence sort can be applied to
//	them directly:
//	  • Transpose        — in-place (i,j)↔(j,i) swap, unchecked precondition
//	  • TransposeSquare  — the same, after ValidateSquare succeeds
//	  • Column           — copy of a single column (for assertions / reports)
//	  • Clone / Equal    — deep copy and element-wise comparison
//
// ✨ Transpose is an involution:
//
//	Transpose(Transpose(m)) == m, with zero allocations. Both the column
//	sort and the matrix sortedness checker rely on that.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/sortlab/matrix"
//
//	m, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
//	matrix.Transpose(m) // [[1 3] [2 4]]
//	matrix.Transpose(m) // [[1 2] [3 4]]
//
// Performance:
//
//   - Transpose: O(n²) time, O(1) space.
//   - Clone / FromRows: O(n²) time and memory.
package matrix
