package verify

import (
	"errors"
	"fmt"
)

// ErrPostcondition is matched by every *PostconditionViolation via errors.Is.
var ErrPostcondition = errors.New("verify: postcondition violated")

// Property names reported in PostconditionViolation.Property.
const (
	PropSequenceSorted = "sequence is not sorted"
	PropColumnsSorted  = "matrix columns are not sorted"
	PropPermutation    = "output is not a permutation of the input"
)

// PostconditionViolation reports a sort whose output breaks its contract.
// It is fatal for a benchmark run: it means the algorithm is wrong.
type PostconditionViolation struct {
	Algorithm string // name of the sort under check, may be empty
	Property  string // one of the Prop* constants
	Index     int    // first offending position (column for matrices), -1 if unknown
}

// Error implements error.
func (v *PostconditionViolation) Error() string {
	who := v.Algorithm
	if who == "" {
		who = "sort"
	}
	if v.Index >= 0 {
		return fmt.Sprintf("verify: %s: %s (at index %d)", who, v.Property, v.Index)
	}

	return fmt.Sprintf("verify: %s: %s", who, v.Property)
}

// Is makes errors.Is(err, ErrPostcondition) true for every violation.
func (v *PostconditionViolation) Is(target error) bool {
	return target == ErrPostcondition
}
