package sorting_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortlab/sorting"
)

// sequenceSorts lists every []int sort under test.
var sequenceSorts = []struct {
	name string
	fn   func([]int)
}{
	{"Insertion", sorting.Insertion},
	{"Selection", sorting.Selection},
	{"Bubble", sorting.Bubble},
	{"Quick", sorting.Quick},
}

// reference returns a sorted copy using the standard library.
func reference(in []int) []int {
	out := append([]int(nil), in...)
	sort.Ints(out)

	return out
}

// TestSequenceSorts_Fixed covers empty, single, duplicates and ordered inputs.
func TestSequenceSorts_Fixed(t *testing.T) {
	inputs := map[string][]int{
		"nil":        nil,
		"empty":      {},
		"single":     {42},
		"pair":       {2, 1},
		"duplicates": {2, 2, 1, 1},
		"sorted":     {1, 2, 3, 4, 5},
		"reversed":   {5, 4, 3, 2, 1},
		"all equal":  {7, 7, 7, 7},
		"negatives":  {0, -3, 9, -3, 4, -10},
		"scenario":   {5, 3, 1, 4, 2},
	}
	for _, alg := range sequenceSorts {
		for name, in := range inputs {
			t.Run(alg.name+"/"+name, func(t *testing.T) {
				got := append([]int(nil), in...)
				alg.fn(got)
				assert.Equal(t, reference(in), got)
			})
		}
	}
}

// TestSequenceSorts_Random compares against sort.Ints on seeded random inputs.
func TestSequenceSorts_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for _, alg := range sequenceSorts {
		t.Run(alg.name, func(t *testing.T) {
			for n := 0; n < 200; n += 7 {
				in := make([]int, n)
				for i := range in {
					in[i] = rng.Intn(50) // small range forces many duplicates
				}
				got := append([]int(nil), in...)
				alg.fn(got)
				require.Equal(t, reference(in), got, "n=%d", n)
			}
		})
	}
}

// TestSequenceSorts_Idempotent sorts an already sorted slice and expects no change.
func TestSequenceSorts_Idempotent(t *testing.T) {
	sorted := []int{-4, -1, 0, 0, 3, 8, 8, 8, 15}
	for _, alg := range sequenceSorts {
		t.Run(alg.name, func(t *testing.T) {
			got := append([]int(nil), sorted...)
			alg.fn(got)
			require.Equal(t, sorted, got)
		})
	}
}

// TestSpecScenarios pins the concrete documented examples.
func TestSpecScenarios(t *testing.T) {
	s := []int{5, 3, 1, 4, 2}
	sorting.Insertion(s)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s)

	empty := []int{}
	sorting.Selection(empty)
	assert.Equal(t, []int{}, empty)

	dup := []int{2, 2, 1, 1}
	sorting.Bubble(dup)
	assert.Equal(t, []int{1, 1, 2, 2}, dup)

	asc := []int{1, 2, 3, 4, 5}
	sorting.Quick(asc)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, asc)
}

// TestQuick_SortedWorstCase runs the first-element pivot on a long sorted
// and reverse-sorted input; it must finish and stay correct.
func TestQuick_SortedWorstCase(t *testing.T) {
	const n = 3000
	asc := make([]int, n)
	desc := make([]int, n)
	for i := 0; i < n; i++ {
		asc[i] = i
		desc[i] = n - i
	}
	sorting.Quick(asc)
	sorting.Quick(desc)
	require.True(t, sort.IntsAreSorted(asc))
	require.True(t, sort.IntsAreSorted(desc))
}
