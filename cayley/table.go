// SPDX-License-Identifier: MIT
// Package cayley assigns stable integer indices to a closed list of
// matrices and materializes their multiplication table.
//
// Index 0 is always the identity; every other index is assigned in the
// order the input list presents its elements (the BFS discovery order
// produced by package closure).
package cayley

import "github.com/katalvlaran/fingroup/complexmat"

// Table is a square integer multiplication table: Table.At(a, b) is the
// index of a*b. Build keeps one used-index bitmap per row, exploiting the
// fact that every row of a Cayley table is a permutation of
// {0, ..., n-1}, so each target index appears exactly once per row.
type Table struct {
	rows [][]int
}

// Order returns the table's side length (the group order).
func (t Table) Order() int { return len(t.rows) }

// At returns the index of a*b.
func (t Table) At(a, b int) int { return t.rows[a][b] }

// Build computes the Cayley table for elements, an ordered list of n
// matrices already known to be closed under multiplication (e.g. the
// output of closure.Run). Element 0 must be the identity; Build neither
// searches for it nor checks it, since closure.Run places it first.
// group.NewMasterGroup rejects a table whose row and column 0 are not the
// identity permutation.
func Build(elements []*complexmat.Matrix, eps float64) (Table, error) {
	n := len(elements)
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
	}

	for i := 0; i < n; i++ {
		colUsed := make([]bool, n)
		for j := 0; j < n; j++ {
			product, err := elements[i].Mul(elements[j])
			if err != nil {
				return Table{}, err
			}

			k := locate(elements, product, eps, colUsed)
			if k < 0 {
				return Table{}, ErrNotClosed
			}
			rows[i][j] = k
			colUsed[k] = true
		}
	}

	return Table{rows: rows}, nil
}

// locate finds product's index among elements, skipping indices already
// marked used in this row's construction (a pruning hint: since every row
// is a permutation, a target column index cannot repeat within one row).
func locate(elements []*complexmat.Matrix, product *complexmat.Matrix, eps float64, colUsed []bool) int {
	for k, e := range elements {
		if colUsed[k] {
			continue
		}
		if e.Equal(product, eps) {
			return k
		}
	}

	return -1
}
