// SPDX-License-Identifier: MIT
package facade_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fingroup/cayley"
	"github.com/katalvlaran/fingroup/closure"
	"github.com/katalvlaran/fingroup/complexmat"
	"github.com/katalvlaran/fingroup/facade"
	"github.com/katalvlaran/fingroup/group"
	"github.com/stretchr/testify/require"
)

// buildS1Service reproduces spec scenario S1's generators end to end and
// wraps the resulting MasterGroup in a facade.Service.
func buildS1Service(t *testing.T) *facade.Service {
	t.Helper()

	r, err := complexmat.NewMatrix(2, []complex128{
		complex(math.Cos(2*math.Pi/3), 0), complex(-math.Sin(2*math.Pi/3), 0),
		complex(math.Sin(2*math.Pi/3), 0), complex(math.Cos(2*math.Pi/3), 0),
	})
	require.NoError(t, err)
	f, err := complexmat.NewMatrix(2, []complex128{1, 0, 0, -1})
	require.NoError(t, err)

	elements, err := closure.Run([]*complexmat.Matrix{r, f}, closure.NewOptions(
		closure.WithEpsilon(1e-4), closure.WithMaxOrder(100),
	))
	require.NoError(t, err)

	table, err := cayley.Build(elements, 1e-4)
	require.NoError(t, err)

	master, err := group.NewMasterGroup(table)
	require.NoError(t, err)

	svc, err := facade.NewService(master)
	require.NoError(t, err)

	return svc
}

// TestScenario_S5_FacadeCommands reproduces spec scenario S5.
func TestScenario_S5_FacadeCommands(t *testing.T) {
	t.Parallel()

	svc := buildS1Service(t)

	conjCount, err := svc.Run("ConjCount[g0]")
	require.NoError(t, err)
	require.Equal(t, "((1,1,1),(2,3,1),(3,2,1))", conjCount)

	isAbelian, err := svc.Run("IsAbelian[g0]")
	require.NoError(t, err)
	require.Contains(t, isAbelian, "非可換")
}

func TestService_ParseAndDispatchErrors(t *testing.T) {
	t.Parallel()

	svc := buildS1Service(t)

	_, err := svc.Run("ConjCount g0]")
	require.ErrorIs(t, err, facade.ErrParse)

	_, err = svc.Run("Bogus[g0]")
	require.ErrorIs(t, err, facade.ErrUnknownCommand)

	_, err = svc.Run("ConjCount[nope]")
	require.ErrorIs(t, err, facade.ErrUnknownGroup)
}

func TestService_Isomorphic(t *testing.T) {
	t.Parallel()

	svc := buildS1Service(t)

	tag, err := svc.Run("Isomorphic[g0]")
	require.NoError(t, err)
	require.Equal(t, "D(3)", tag)
}
