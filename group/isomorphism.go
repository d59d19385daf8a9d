// SPDX-License-Identifier: MIT
package group

import "github.com/katalvlaran/fingroup/identifier"

// ElementOrder exposes the element-order table directly on Subgroup so
// *Subgroup satisfies identifier.Group without package identifier ever
// importing package group (it only imports conjugacy; group imports
// identifier). An element's order is intrinsic to the ambient MasterGroup
// and does not depend on which subgroup it is viewed through.
func (s *Subgroup) ElementOrder(a int) int { return s.master.ElementOrder(a) }

// GenerateSubgroup satisfies identifier.Group: it generates the closure
// of seed (restricted to this subgroup's ambient master) and returns it
// as an identifier.Group value.
func (s *Subgroup) GenerateSubgroup(seed []int) (identifier.Group, error) {
	sg, err := s.master.GenerateGroup(seed)
	if err != nil {
		return nil, err
	}

	return sg, nil
}

// Isomorphic returns the canonical isomorphism tag: abelian primary
// decomposition, or non-abelian catalogue lookup by conjugacy fingerprint.
func (s *Subgroup) Isomorphic() string {
	return s.isoTag.get(func() string {
		if s.IsAbelian() {
			return identifier.AbelianTag(s)
		}

		return identifier.NonAbelianTag(s.Order(), s.ConjugacyCount())
	})
}

var _ identifier.Group = (*Subgroup)(nil)
