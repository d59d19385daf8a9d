// SPDX-License-Identifier: MIT
// Package group owns the Cayley table and the derived per-element tables
// (inverse, element order, divisor lattice), and is the factory/cache for
// Subgroup objects keyed by element-set identity. Conjugates and
// commutators are not tabulated; each call computes them from the Cayley
// table and the inverse table.
package group

import "errors"

var (
	// ErrInvalidTable is returned when the supplied cayley.Table does not
	// place the identity at index 0 (row/column 0 must be the identity
	// permutation T[0,b] = T[b,0] = b for every b).
	ErrInvalidTable = errors.New("group: identity is not at index 0")

	// ErrSetNotClosed is returned by CreateGroup when the caller passes an
	// element set that is not closed under the table and inverses. The
	// spec leaves this undefined behavior for the caller to guard against;
	// this implementation refuses instead, per the error-handling design.
	ErrSetNotClosed = errors.New("group: element set is not closed")

	// ErrForeignMaster names the case of an operation that mixes Subgroups
	// from two different MasterGroup instances. No function in this package
	// returns it: such comparisons report false, and StudyCartesianProduct
	// reports the Invalid outcome.
	ErrForeignMaster = errors.New("group: subgroup belongs to a different master")
)
