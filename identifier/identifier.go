// SPDX-License-Identifier: MIT
// Package identifier names a group up to isomorphism: primary
// decomposition for abelian groups (AbelianTag), or a conjugacy-count
// fingerprint lookup against a built-in catalogue for non-abelian groups
// (NonAbelianTag).
//
// identifier takes no dependency on package group: Group is a narrow
// interface covering only what abelian decomposition needs, satisfied
// structurally by *group.Subgroup, which keeps group -> identifier a
// one-way import (group calls identifier; identifier never imports group).
package identifier

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/fingroup/conjugacy"
)

// Group is the narrow view identifier needs of a finite group to perform
// abelian primary decomposition: its order, its element indices, each
// element's order, membership testing, and the ability to generate the
// subgroup closure of a chosen seed. *group.Subgroup satisfies this.
type Group interface {
	Order() int
	Elements() []int
	ElementOrder(a int) int
	Contains(a int) bool
	GenerateSubgroup(seed []int) (Group, error)
}

// AbelianTag returns the canonical isomorphism name for an abelian group:
// "Id" for the trivial group, or "Z(o1) × Z(o2) × ..." for its primary
// decomposition (cyclic factors of prime-power order, descending by
// order). Callers must already know g is abelian; AbelianTag does not
// check.
func AbelianTag(g Group) string {
	if g.Order() == 1 {
		return "Id"
	}

	factors := splitByMaxOrder([]Group{g})
	final := make([]Group, 0, len(factors))
	for _, f := range factors {
		final = append(final, splitPrimePower(f)...)
	}

	orders := make([]int, 0, len(final))
	for _, f := range final {
		if f.Order() > 1 {
			orders = append(orders, f.Order())
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(orders)))

	if len(orders) == 0 {
		return "Id"
	}

	parts := make([]string, len(orders))
	for i, o := range orders {
		parts[i] = fmt.Sprintf("Z(%d)", o)
	}

	return strings.Join(parts, " × ")
}

// NonAbelianTag looks up order/fingerprint against the built-in
// catalogue, returning the first matching entry's name, or "?" if none
// matches. Per spec §9, the catalogue is necessary but not sufficient:
// two non-isomorphic groups can share a fingerprint, and when several
// catalogue entries are listed for one order, the first match wins.
func NonAbelianTag(order int, fingerprint conjugacy.Count) string {
	for _, entry := range catalogue[order] {
		if entry.Fingerprint.Equal(fingerprint) {
			return entry.Name
		}
	}

	return "?"
}
