// SPDX-License-Identifier: MIT
package group_test

import (
	"testing"

	"github.com/katalvlaran/fingroup/group"
	"github.com/stretchr/testify/require"
)

func TestMasterGroup_InverseInvolution(t *testing.T) {
	t.Parallel()

	m := buildD3(t)
	for a := 0; a < m.Order(); a++ {
		require.Equal(t, a, m.Inverse(m.Inverse(a)))
		require.Equal(t, 0, m.Prod(a, m.Inverse(a)))
	}
}

func TestMasterGroup_ConjugationIsAction(t *testing.T) {
	t.Parallel()

	m := buildD3(t)
	for g := 0; g < m.Order(); g++ {
		require.Equal(t, g, m.Conjugate(g, 0))
		for h1 := 0; h1 < m.Order(); h1++ {
			for h2 := 0; h2 < m.Order(); h2++ {
				left := m.Conjugate(m.Conjugate(g, h1), h2)
				right := m.Conjugate(g, m.Prod(h2, h1))
				require.Equal(t, right, left)
			}
		}
	}
}

func TestMasterGroup_ElementOrderDividesGroupOrder(t *testing.T) {
	t.Parallel()

	m := buildD3(t)
	for a := 0; a < m.Order(); a++ {
		k := m.ElementOrder(a)
		require.Equal(t, 0, m.Order()%k)

		cur := a
		for i := 1; i < k; i++ {
			require.NotEqual(t, 0, cur)
			cur = m.Prod(cur, a)
		}
		require.Equal(t, 0, cur)
	}
}

func TestMasterGroup_CreateGroupIsIdempotent(t *testing.T) {
	t.Parallel()

	m := buildD3(t)
	first, err := m.CreateGroup([]int{0})
	require.NoError(t, err)
	second, err := m.CreateGroup([]int{0})
	require.NoError(t, err)
	require.Same(t, first, second)
}

func TestMasterGroup_CreateGroupRejectsNonClosedSet(t *testing.T) {
	t.Parallel()

	m := buildD3(t)
	_, err := m.CreateGroup([]int{1})
	require.ErrorIs(t, err, group.ErrSetNotClosed)
}

func TestMasterGroup_CloseMonotonicity(t *testing.T) {
	t.Parallel()

	m := buildD3(t)
	seed := []int{1}
	closed := m.Close(seed)
	for _, s := range seed {
		require.Contains(t, closed, s)
	}

	again := m.Close(closed)
	require.ElementsMatch(t, closed, again)
	require.Equal(t, 0, m.Order()%len(closed))
}

func TestMasterGroup_GenerateGroupAndNameLookup(t *testing.T) {
	t.Parallel()

	m := buildD3(t)
	sg, err := m.GenerateGroup([]int{1})
	require.NoError(t, err)

	byName, ok := m.NameToGroup(sg.Name())
	require.True(t, ok)
	require.Same(t, sg, byName)
}
