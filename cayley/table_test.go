// SPDX-License-Identifier: MIT
package cayley_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fingroup/cayley"
	"github.com/katalvlaran/fingroup/closure"
	"github.com/katalvlaran/fingroup/complexmat"
	"github.com/stretchr/testify/require"
)

func buildD3(t *testing.T) cayley.Table {
	t.Helper()

	theta := 2 * math.Pi / 3
	r, _ := complexmat.NewMatrix(2, []complex128{
		complex(math.Cos(theta), 0), complex(-math.Sin(theta), 0),
		complex(math.Sin(theta), 0), complex(math.Cos(theta), 0),
	})
	f, _ := complexmat.NewMatrix(2, []complex128{1, 0, 0, -1})

	elements, err := closure.Run([]*complexmat.Matrix{r, f}, closure.NewOptions(
		closure.WithEpsilon(1e-4), closure.WithMaxOrder(100),
	))
	require.NoError(t, err)

	table, err := cayley.Build(elements, 1e-4)
	require.NoError(t, err)

	return table
}

func TestBuild_CayleyAxioms(t *testing.T) {
	t.Parallel()

	table := buildD3(t)
	n := table.Order()
	require.Equal(t, 6, n)

	for a := 0; a < n; a++ {
		require.Equal(t, a, table.At(0, a))
		require.Equal(t, a, table.At(a, 0))
	}

	for a := 0; a < n; a++ {
		seenRow := make(map[int]bool)
		seenCol := make(map[int]bool)
		for b := 0; b < n; b++ {
			seenRow[table.At(a, b)] = true
			seenCol[table.At(b, a)] = true
		}
		require.Len(t, seenRow, n)
		require.Len(t, seenCol, n)
	}

	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			for c := 0; c < n; c++ {
				require.Equal(t, table.At(table.At(a, b), c), table.At(a, table.At(b, c)))
			}
		}
	}
}
