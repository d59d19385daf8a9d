// SPDX-License-Identifier: MIT
package closure_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fingroup/closure"
	"github.com/katalvlaran/fingroup/complexmat"
	"github.com/stretchr/testify/require"
)

func rotation(theta float64) *complexmat.Matrix {
	m, _ := complexmat.NewMatrix(2, []complex128{
		complex(math.Cos(theta), 0), complex(-math.Sin(theta), 0),
		complex(math.Sin(theta), 0), complex(math.Cos(theta), 0),
	})

	return m
}

func reflection() *complexmat.Matrix {
	m, _ := complexmat.NewMatrix(2, []complex128{1, 0, 0, -1})

	return m
}

// TestRun_S1_DihedralThree reproduces spec scenario S1: R = rotation by
// 2*pi/3, F = diag(1,-1); expected closure order 6 (the dihedral group D3).
func TestRun_S1_DihedralThree(t *testing.T) {
	t.Parallel()

	r := rotation(2 * math.Pi / 3)
	f := reflection()

	opts := closure.NewOptions(closure.WithEpsilon(1e-4), closure.WithMaxOrder(100))
	elements, err := closure.Run([]*complexmat.Matrix{r, f}, opts)
	require.NoError(t, err)
	require.Len(t, elements, 6)
	require.True(t, elements[0].IsIdentity(1e-4), "identity must be discovered first")
}

// TestRun_S6_ClosureExceeded reproduces spec scenario S6: a pair of
// generators bounded by a MaxOrder too small to contain their closure.
func TestRun_S6_ClosureExceeded(t *testing.T) {
	t.Parallel()

	// A rotation by 2*pi/37 together with a reflection generates the
	// dihedral group of order 74, far beyond bound 10.
	r := rotation(2 * math.Pi / 37)
	f := reflection()

	opts := closure.NewOptions(closure.WithEpsilon(1e-6), closure.WithMaxOrder(10))
	_, err := closure.Run([]*complexmat.Matrix{r, f}, opts)
	require.ErrorIs(t, err, closure.ErrClosureExceeded)
}

func TestRun_ValidationOrder(t *testing.T) {
	t.Parallel()

	r := rotation(math.Pi / 2)

	_, err := closure.Run([]*complexmat.Matrix{r}, closure.NewOptions(closure.WithEpsilon(-1)))
	require.ErrorIs(t, err, closure.ErrNegativeEpsilon)

	_, err = closure.Run(nil, closure.NewOptions())
	require.ErrorIs(t, err, closure.ErrNoGenerators)

	bad, _ := complexmat.NewMatrix(2, []complex128{2, 0, 0, 1})
	_, err = closure.Run([]*complexmat.Matrix{bad}, closure.NewOptions(closure.WithEpsilon(1e-6)))
	require.ErrorIs(t, err, closure.ErrNonUnitDeterminant)
}

func TestRun_FiltersIdentityAndDuplicateGenerators(t *testing.T) {
	t.Parallel()

	id := complexmat.Identity(2)
	r := rotation(math.Pi)

	opts := closure.NewOptions(closure.WithEpsilon(1e-6), closure.WithMaxOrder(10))
	elements, err := closure.Run([]*complexmat.Matrix{id, r, r}, opts)
	require.NoError(t, err)
	require.Len(t, elements, 2)
}
