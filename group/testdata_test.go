// SPDX-License-Identifier: MIT
package group_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/fingroup/cayley"
	"github.com/katalvlaran/fingroup/closure"
	"github.com/katalvlaran/fingroup/complexmat"
	"github.com/katalvlaran/fingroup/group"
	"github.com/stretchr/testify/require"
)

func rotation2(theta float64) *complexmat.Matrix {
	m, _ := complexmat.NewMatrix(2, []complex128{
		complex(math.Cos(theta), 0), complex(-math.Sin(theta), 0),
		complex(math.Sin(theta), 0), complex(math.Cos(theta), 0),
	})

	return m
}

func reflection2() *complexmat.Matrix {
	m, _ := complexmat.NewMatrix(2, []complex128{1, 0, 0, -1})

	return m
}

// buildMaster runs the full closure -> cayley -> group pipeline for a set
// of generators, failing the test on any error.
func buildMaster(t *testing.T, generators []*complexmat.Matrix, eps float64, maxOrder int) *group.MasterGroup {
	t.Helper()

	elements, err := closure.Run(generators, closure.NewOptions(
		closure.WithEpsilon(eps), closure.WithMaxOrder(maxOrder),
	))
	require.NoError(t, err)

	table, err := cayley.Build(elements, eps)
	require.NoError(t, err)

	m, err := group.NewMasterGroup(table)
	require.NoError(t, err)

	return m
}

// buildD3 reproduces spec scenario S1: the dihedral group of order 6.
func buildD3(t *testing.T) *group.MasterGroup {
	t.Helper()

	r := rotation2(2 * math.Pi / 3)
	f := reflection2()

	return buildMaster(t, []*complexmat.Matrix{r, f}, 1e-4, 100)
}

// buildQ4 reproduces spec scenario S2: the binary dihedral (quaternion)
// group of order 8.
func buildQ4(t *testing.T) *group.MasterGroup {
	t.Helper()

	i := complex(0.0, 1.0)
	a, _ := complexmat.NewMatrix(2, []complex128{i, 0, 0, -i})
	b, _ := complexmat.NewMatrix(2, []complex128{0, i, i, 0})

	return buildMaster(t, []*complexmat.Matrix{a, b}, 1e-6, 100)
}

// buildZ3 reproduces spec scenario S3: the cyclic group of order 3.
func buildZ3(t *testing.T) *group.MasterGroup {
	t.Helper()

	omega := cmplx.Exp(complex(0, 2*math.Pi/3))
	g, _ := complexmat.NewMatrix(3, []complex128{
		omega, 0, 0,
		0, omega * omega, 0,
		0, 0, 1,
	})

	return buildMaster(t, []*complexmat.Matrix{g}, 1e-6, 100)
}

// permutationMatrix builds the permutation matrix for perm (perm[i] = j
// means row i has its 1 in column j), representing a permutation acting
// on the standard basis of dimension len(perm).
func permutationMatrix(perm []int) *complexmat.Matrix {
	n := len(perm)
	entries := make([]complex128, n*n)
	for row, col := range perm {
		entries[row*n+col] = 1
	}
	m, _ := complexmat.NewMatrix(n, entries)

	return m
}

// buildS4 reproduces spec scenario S4: the symmetric group of degree 4,
// generated by the permutation matrices of one adjacent transposition and
// one 4-cycle, acting on C^4.
func buildS4(t *testing.T) *group.MasterGroup {
	t.Helper()

	transposition12 := permutationMatrix([]int{1, 0, 2, 3})
	fourCycle := permutationMatrix([]int{1, 2, 3, 0})

	return buildMaster(t, []*complexmat.Matrix{transposition12, fourCycle}, 1e-9, 30)
}
