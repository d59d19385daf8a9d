// SPDX-License-Identifier: MIT
// Package closure builds the finite set of matrices closed under
// multiplication from a set of faithful generators, and validates the
// generators before doing so.
//
// Steps:
//  1. Validate: epsilon >= 0, at least one generator, every generator
//     square, all sharing one dimension, every |det|-1| <= epsilon.
//  2. Filter: drop generators equal to the identity or to an already-kept
//     generator (tolerance compare).
//  3. BFS-expand: starting from [I, g1, ..., gk], repeatedly multiply each
//     frontier element by each kept generator; append and re-frontier any
//     product not already present (tolerance compare). Stop when the
//     frontier empties (success) or the accumulated size exceeds MaxOrder
//     (ErrClosureExceeded).
//
// Discovery order is deterministic and is exposed as-is: identity first,
// then each BFS-discovered element in the order it was first produced.
package closure

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/fingroup/complexmat"
)

// Run validates generators and computes their closure under
// multiplication, returning the closure in BFS discovery order (identity
// first) or a descriptive error.
func Run(generators []*complexmat.Matrix, opts Options) ([]*complexmat.Matrix, error) {
	if err := validate(generators, opts); err != nil {
		return nil, err
	}

	kept := filterGenerators(generators, opts.Epsilon)
	dim := generators[0].Dim()

	elements := make([]*complexmat.Matrix, 0, len(kept)+1)
	elements = append(elements, complexmat.Identity(dim))
	elements = append(elements, kept...)

	frontier := make([]int, len(elements))
	for i := range elements {
		frontier[i] = i
	}

	for len(frontier) > 0 {
		next := make([]int, 0)
		for _, idx := range frontier {
			for _, g := range kept {
				product, err := elements[idx].Mul(g)
				if err != nil {
					return nil, fmt.Errorf("closure: Run: %w", err)
				}
				if indexOf(elements, product, opts.Epsilon) >= 0 {
					continue
				}
				elements = append(elements, product)
				if len(elements) > opts.MaxOrder {
					return nil, ErrClosureExceeded
				}
				next = append(next, len(elements)-1)
			}
		}
		frontier = next
	}

	return elements, nil
}

// validate checks the preconditions in the documented priority order.
func validate(generators []*complexmat.Matrix, opts Options) error {
	if opts.Epsilon < 0 {
		return ErrNegativeEpsilon
	}
	if len(generators) == 0 {
		return ErrNoGenerators
	}

	dim := generators[0].Dim()
	for _, g := range generators {
		if g.Dim() <= 0 {
			return ErrNonSquare
		}
		if g.Dim() != dim {
			return ErrDimensionMismatch
		}
	}

	for _, g := range generators {
		mod := cmplx.Abs(g.Det())
		if diff := mod - 1; diff > opts.Epsilon || -diff > opts.Epsilon {
			return ErrNonUnitDeterminant
		}
	}

	return nil
}

// filterGenerators drops generators that equal the identity or duplicate
// an already-kept generator, within epsilon.
func filterGenerators(generators []*complexmat.Matrix, eps float64) []*complexmat.Matrix {
	kept := make([]*complexmat.Matrix, 0, len(generators))
	for _, g := range generators {
		if g.IsIdentity(eps) {
			continue
		}
		if indexOf(kept, g, eps) >= 0 {
			continue
		}
		kept = append(kept, g)
	}

	return kept
}

// indexOf returns the index of target inside list under tolerance
// equality, or -1 if absent.
func indexOf(list []*complexmat.Matrix, target *complexmat.Matrix, eps float64) int {
	for i, m := range list {
		if m.Equal(target, eps) {
			return i
		}
	}

	return -1
}
