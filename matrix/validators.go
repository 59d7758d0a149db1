// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for shape checks.
//  - Return wrapped sentinels so call sites can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

// ValidateRectangular checks that every row has the same length as row 0.
//
// Inputs: Dense value (nil and empty are accepted).
// Errors: ErrRagged on the first row whose length differs.
// Complexity: O(n).
func ValidateRectangular(m Dense) error {
	if len(m) == 0 {
		return nil
	}
	want := len(m[0])
	var i int
	for i = 1; i < len(m); i++ {
		if len(m[i]) != want {
			return validatorErrorf("ValidateRectangular", ErrRagged)
		}
	}

	return nil
}

// ValidateSquare checks that m is rectangular and len(m) == len(m[i]).
//
// Inputs: Dense value (nil and empty count as the 0×0 square).
// Errors: ErrRagged if rows differ in length, ErrNonSquare otherwise.
// Complexity: O(n).
func ValidateSquare(m Dense) error {
	if err := ValidateRectangular(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if len(m) > 0 && len(m[0]) != len(m) {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}
