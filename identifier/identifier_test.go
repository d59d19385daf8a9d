// SPDX-License-Identifier: MIT
package identifier_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/fingroup/conjugacy"
	"github.com/katalvlaran/fingroup/identifier"
	"github.com/stretchr/testify/require"
)

func TestNonAbelianTag_D3(t *testing.T) {
	t.Parallel()

	fp := conjugacy.NewCount([]conjugacy.Class{
		{Order: 1, Elements: []int{0}},
		{Order: 2, Elements: []int{1, 2, 3}},
		{Order: 3, Elements: []int{4, 5}},
	})

	require.Equal(t, "D(3)", identifier.NonAbelianTag(6, fp))
}

func TestNonAbelianTag_Unknown(t *testing.T) {
	t.Parallel()

	fp := conjugacy.NewCount([]conjugacy.Class{{Order: 1, Elements: []int{0}}})
	require.Equal(t, "?", identifier.NonAbelianTag(9999, fp))
}

// fakeGroup is a minimal identifier.Group over Z/n (cyclic) or a direct
// sum represented as plain integer indices, used to exercise AbelianTag
// without building a full MasterGroup.
type fakeGroup struct {
	elements []int
	order    func(a int) int
	gen      func(seed []int) (identifier.Group, error)
}

func (f *fakeGroup) Order() int               { return len(f.elements) }
func (f *fakeGroup) Elements() []int          { return f.elements }
func (f *fakeGroup) ElementOrder(a int) int   { return f.order(a) }
func (f *fakeGroup) Contains(a int) bool {
	for _, e := range f.elements {
		if e == a {
			return true
		}
	}

	return false
}
func (f *fakeGroup) GenerateSubgroup(seed []int) (identifier.Group, error) {
	return f.gen(seed)
}

func TestAbelianTag_Trivial(t *testing.T) {
	t.Parallel()

	g := &fakeGroup{elements: []int{0}, order: func(int) int { return 1 }}
	require.Equal(t, "Id", identifier.AbelianTag(g))
}

// TestAbelianTag_Z6AsProductOfZ2AndZ3 models Z/6 represented concretely
// over element indices {0..5} under addition mod 6, verifying the
// primary decomposition collapses to Z(3) x Z(2) ordered descending.
func TestAbelianTag_Z6AsProductOfZ2AndZ3(t *testing.T) {
	t.Parallel()

	elemOrder := func(a int) int {
		switch a {
		case 0:
			return 1
		case 3:
			return 2
		case 2, 4:
			return 3
		default:
			return 6
		}
	}

	var makeGroup func(elems []int) *fakeGroup
	makeGroup = func(elems []int) *fakeGroup {
		return &fakeGroup{
			elements: elems,
			order:    elemOrder,
			gen: func(seed []int) (identifier.Group, error) {
				set := make(map[int]struct{})
				for _, s := range seed {
					cur := 0
					for {
						set[cur] = struct{}{}
						cur = (cur + s) % 6
						if cur == 0 {
							break
						}
					}
				}
				out := make([]int, 0, len(set))
				for k := range set {
					out = append(out, k)
				}
				sort.Ints(out)

				return makeGroup(out), nil
			},
		}
	}

	g := makeGroup([]int{0, 1, 2, 3, 4, 5})
	tag := identifier.AbelianTag(g)
	require.Equal(t, "Z(3) × Z(2)", tag)
}
