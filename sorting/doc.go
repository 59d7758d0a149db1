// Package sorting implements the classic comparison sorts measured by the
// sortbench harness, plus a column sort for square matrices built from them.
//
// 🚀 What is in here?
//
//	Four in-place sorts over a plain []int:
//	  • Insertion — stable, O(n²) worst, O(n) on nearly sorted input
//	  • Selection — O(n²) comparisons regardless of input, O(n) swaps
//	  • Bubble    — n full passes, no early exit, O(n²) always
//	  • Quick     — recursive Hoare-style partition, first element as pivot
//
//	And one composition over matrix.Dense:
//	  • Column    — Transpose, Insertion on every row, Transpose back
//
// ✨ Variants:
//
//	Each routine is the textbook version. Bubble never stops early and
//	Quick always pivots on the first element of the subrange, so already
//	sorted input is its worst case (O(n²), recursion depth n).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/sortlab/sorting"
//
//	s := []int{5, 3, 1, 4, 2}
//	sorting.Quick(s) // [1 2 3 4 5]
//
//	alg, err := sorting.Lookup("insertion")
//	if err == nil {
//	  alg.Sequence(s)
//	}
//
// Every function mutates its argument and allocates nothing beyond the
// recursion stack of Quick. None of them validate input: an empty or nil
// slice is a no-op, a non-square matrix passed to Column is a caller bug.
package sorting
