// SPDX-License-Identifier: MIT
package complexmat_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/fingroup/complexmat"
	"github.com/stretchr/testify/require"
)

func TestMatrix_MulAndEqual(t *testing.T) {
	t.Parallel()

	// Rotation by 2*pi/3.
	theta := 2 * math.Pi / 3
	r, err := complexmat.NewMatrix(2, []complex128{
		complex(math.Cos(theta), 0), complex(-math.Sin(theta), 0),
		complex(math.Sin(theta), 0), complex(math.Cos(theta), 0),
	})
	require.NoError(t, err)

	cubed, err := r.Mul(r)
	require.NoError(t, err)
	cubed, err = cubed.Mul(r)
	require.NoError(t, err)

	require.True(t, cubed.IsIdentity(1e-9))
}

func TestMatrix_Det(t *testing.T) {
	t.Parallel()

	omega := cmplx.Exp(complex(0, 2*math.Pi/3))
	m, err := complexmat.NewMatrix(3, []complex128{
		omega, 0, 0,
		0, omega * omega, 0,
		0, 0, 1,
	})
	require.NoError(t, err)

	det := m.Det()
	require.InDelta(t, 1, cmplx.Abs(det), 1e-9)
}

func TestMatrix_DimensionMismatch(t *testing.T) {
	t.Parallel()

	a, _ := complexmat.NewMatrix(2, []complex128{1, 0, 0, 1})
	b, _ := complexmat.NewMatrix(3, make([]complex128, 9))

	_, err := a.Mul(b)
	require.ErrorIs(t, err, complexmat.ErrDimensionMismatch)
	require.False(t, a.Equal(b, 1e-9))
}
