package sorting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/sortlab/matrix"
)

// ErrUnknownAlgorithm indicates a name that is not in the registry.
var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

// ErrUnknownInput indicates an input kind other than "sequence" or "matrix".
var ErrUnknownInput = errors.New("sorting: unknown input kind")

// Input tells which shape of data an Algorithm consumes.
type Input int

const (
	// SequenceInput algorithms sort a []int.
	SequenceInput Input = iota

	// MatrixInput algorithms sort the columns of a square matrix.Dense.
	MatrixInput
)

// String returns the lowercase name used in plan files ("sequence", "matrix").
func (in Input) String() string {
	switch in {
	case SequenceInput:
		return "sequence"
	case MatrixInput:
		return "matrix"
	default:
		return fmt.Sprintf("Input(%d)", int(in))
	}
}

// ParseInput is the inverse of Input.String (case-insensitive).
func ParseInput(s string) (Input, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sequence", "array":
		return SequenceInput, nil
	case "matrix":
		return MatrixInput, nil
	default:
		return 0, fmt.Errorf("ParseInput(%q): %w", s, ErrUnknownInput)
	}
}

// Algorithm describes one registered sort.
// Exactly one of Sequence / Matrix is set, matching Input.
type Algorithm struct {
	Name     string             // registry key, e.g. "insertion"
	Title    string             // human label, e.g. "Insertion sort"
	Input    Input              // shape of data consumed
	Sequence func([]int)        // set when Input == SequenceInput
	Matrix   func(matrix.Dense) // set when Input == MatrixInput
}

// registry lists the algorithms in the order the default benchmark runs them.
var registry = []Algorithm{
	{Name: "insertion", Title: "Insertion sort", Input: SequenceInput, Sequence: Insertion},
	{Name: "selection", Title: "Selection sort", Input: SequenceInput, Sequence: Selection},
	{Name: "column", Title: "Column sort", Input: MatrixInput, Matrix: Column},
	{Name: "bubble", Title: "Bubble sort", Input: SequenceInput, Sequence: Bubble},
	{Name: "quick", Title: "Quick sort", Input: SequenceInput, Sequence: Quick},
}

// All returns a copy of the registry in benchmark order.
func All() []Algorithm {
	out := make([]Algorithm, len(registry))
	copy(out, registry)

	return out
}

// Names returns the registry keys in benchmark order.
func Names() []string {
	out := make([]string, len(registry))
	for i, a := range registry {
		out[i] = a.Name
	}

	return out
}

// Lookup finds an algorithm by name (case-insensitive).
func Lookup(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, a := range registry {
		if a.Name == key {
			return a, nil
		}
	}

	return Algorithm{}, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownAlgorithm)
}
