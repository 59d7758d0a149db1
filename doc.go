// Package sortlab is a small laboratory for comparing elementary sorting
// algorithms on random integer data.
//
// 🚀 What is inside?
//
//	Four in-place sorts on []int and one on square integer matrices,
//	the checks that prove their output sorted, and a harness that times
//	them on inputs of growing size:
//		• Insertion, Selection, Bubble and Quick sort on sequences
//		• Column sort: transpose, sort every row, transpose back
//		• Sortedness and permutation checks with descriptive errors
//		• Seeded random inputs and size sweeps
//		• Throughput reports, summaries and charts
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/  — Dense square matrix, in-place Transpose, validators
//	sorting/ — the algorithms and their registry
//	verify/  — IsSorted / IsSortedMatrix and PostconditionViolation
//	builder/ — random sequences and matrices, half-open Sizes
//	bench/   — Plan, Runner, Report, progress output
//	chart/   — PNG, ASCII and CSV renderings of a Report
//
// The sortbench command (cmd/sortbench) runs the classic sweep:
//
//	insertion, selection, column, bubble, quick
//
// over lengths 100..2900 (matrix sides 10..90) and charts the items sorted
// per second against input size.
//
//	go run github.com/katalvlaran/sortlab/cmd/sortbench
package sortlab
