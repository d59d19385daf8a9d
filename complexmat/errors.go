// SPDX-License-Identifier: MIT
// Package complexmat: sentinel error set.
package complexmat

import "errors"

var (
	// ErrNonSquare is returned when a square matrix was required but rows != cols.
	ErrNonSquare = errors.New("complexmat: matrix is not square")

	// ErrDimensionMismatch is returned when two matrices have incompatible
	// dimensions for the requested operation (e.g. Mul, Equal).
	ErrDimensionMismatch = errors.New("complexmat: dimension mismatch")

	// ErrNegativeEpsilon is returned when a tolerance-sensitive operation is
	// given a negative epsilon.
	ErrNegativeEpsilon = errors.New("complexmat: epsilon must be >= 0")
)
