// SPDX-License-Identifier: MIT
// Package closure: sentinel error set (unified, consistent).
//
// Every algorithm in this package returns these sentinels rather than
// panicking; tests check them via errors.Is. Error priority (documented,
// enforced in tests): negative epsilon -> empty generators -> non-square
// or mismatched dimension -> non-unit determinant -> closure exceeded.
package closure

import "errors"

var (
	// ErrNegativeEpsilon is returned when epsilon < 0.
	ErrNegativeEpsilon = errors.New("closure: epsilon must be >= 0")

	// ErrNoGenerators is returned when the generator list is empty.
	ErrNoGenerators = errors.New("closure: at least one generator is required")

	// ErrNonSquare is returned when a generator is not a square matrix.
	ErrNonSquare = errors.New("closure: generator is not square")

	// ErrDimensionMismatch is returned when generators have differing dimensions.
	ErrDimensionMismatch = errors.New("closure: generators have mismatched dimensions")

	// ErrNonUnitDeterminant is returned when |det(g)|-1| exceeds epsilon.
	ErrNonUnitDeterminant = errors.New("closure: generator determinant is not unit modulus")

	// ErrClosureExceeded is returned when the accumulated closure size
	// passes MaxOrder before the frontier empties.
	ErrClosureExceeded = errors.New("closure: did not close within bound")
)
