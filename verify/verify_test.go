package verify_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortlab/matrix"
	"github.com/katalvlaran/sortlab/verify"
)

// TestIsSorted covers vacuous, sorted and unsorted cases.
func TestIsSorted(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want bool
	}{
		{"nil", nil, true},
		{"single", []int{3}, true},
		{"equal run", []int{2, 2, 2}, true},
		{"ascending", []int{-1, 0, 5, 9}, true},
		{"descent at end", []int{1, 2, 4, 3}, false},
		{"descent at start", []int{2, 1, 3}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, verify.IsSorted(tc.in))
		})
	}
}

// TestIsSortedMatrix_NoMutation checks both outcomes leave the input intact.
func TestIsSortedMatrix_NoMutation(t *testing.T) {
	sorted := matrix.Dense{{1, 9, 0}, {2, 9, 4}, {3, 10, 4}}
	before := sorted.Clone()
	require.True(t, verify.IsSortedMatrix(sorted))
	require.Equal(t, before, sorted)

	// Column 0 is sorted, column 1 is not: early exit path.
	unsorted := matrix.Dense{{1, 5, 7}, {2, 4, 8}, {3, 6, 9}}
	before = unsorted.Clone()
	require.False(t, verify.IsSortedMatrix(unsorted))
	require.Equal(t, before, unsorted)

	// Rows sorted but columns not: must be reported unsorted.
	rowsOnly := matrix.Dense{{5, 6}, {1, 2}}
	require.False(t, verify.IsSortedMatrix(rowsOnly))

	require.True(t, verify.IsSortedMatrix(matrix.Dense{}))
}

// TestSorted_Violation checks the error details and errors.Is / errors.As.
func TestSorted_Violation(t *testing.T) {
	require.NoError(t, verify.Sorted("quick", []int{1, 2, 3}))

	err := verify.Sorted("quick", []int{1, 3, 2})
	require.ErrorIs(t, err, verify.ErrPostcondition)

	var v *verify.PostconditionViolation
	require.True(t, errors.As(err, &v))
	assert.Equal(t, "quick", v.Algorithm)
	assert.Equal(t, verify.PropSequenceSorted, v.Property)
	assert.Equal(t, 1, v.Index)
	assert.Equal(t, "verify: quick: sequence is not sorted (at index 1)", err.Error())
}

// TestSortedMatrix_Violation reports the first unsorted column.
func TestSortedMatrix_Violation(t *testing.T) {
	m := matrix.Dense{{1, 5, 7}, {2, 4, 6}, {3, 6, 9}}
	before := m.Clone()

	err := verify.SortedMatrix("column", m)
	require.ErrorIs(t, err, verify.ErrPostcondition)
	require.Equal(t, before, m)

	var v *verify.PostconditionViolation
	require.True(t, errors.As(err, &v))
	assert.Equal(t, verify.PropColumnsSorted, v.Property)
	assert.Equal(t, 1, v.Index)

	require.NoError(t, verify.SortedMatrix("column", matrix.Dense{{1, 1}, {2, 2}}))
}

// TestSameMultiset covers counts, lengths and order independence.
func TestSameMultiset(t *testing.T) {
	assert.True(t, verify.SameMultiset(nil, []int{}))
	assert.True(t, verify.SameMultiset([]int{3, 1, 2, 1}, []int{1, 1, 2, 3}))
	assert.False(t, verify.SameMultiset([]int{1, 1, 2}, []int{1, 2, 2}))
	assert.False(t, verify.SameMultiset([]int{1, 2}, []int{1, 2, 3}))
}

// TestPermutation checks the sequence and column forms.
func TestPermutation(t *testing.T) {
	require.NoError(t, verify.Permutation("bubble", []int{2, 1}, []int{1, 2}))

	err := verify.Permutation("bubble", []int{2, 1}, []int{1, 1})
	require.ErrorIs(t, err, verify.ErrPostcondition)
	assert.Equal(t, "verify: bubble: output is not a permutation of the input", err.Error())

	before := matrix.Dense{{3, 1}, {2, 4}}
	require.NoError(t, verify.ColumnPermutation("column", before, matrix.Dense{{2, 1}, {3, 4}}))

	err = verify.ColumnPermutation("column", before, matrix.Dense{{2, 1}, {3, 5}})
	var v *verify.PostconditionViolation
	require.True(t, errors.As(err, &v))
	assert.Equal(t, 1, v.Index)

	err = verify.ColumnPermutation("column", before, matrix.Dense{{1}})
	require.ErrorIs(t, err, verify.ErrPostcondition)
}

// TestViolationWithoutAlgorithm uses the generic label.
func TestViolationWithoutAlgorithm(t *testing.T) {
	v := &verify.PostconditionViolation{Property: verify.PropSequenceSorted, Index: -1}
	assert.Equal(t, "verify: sort: sequence is not sorted", v.Error())
}
