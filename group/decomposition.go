// SPDX-License-Identifier: MIT
package group

import "github.com/katalvlaran/fingroup/structure"

// StudyCartesianProduct probes whether s (as K) and h combine as a
// (semi)direct factor pair: fails (Invalid) if the masters differ, if
// |K|*|H| does not divide the ambient order, or if K and H intersect in
// more than the identity. Otherwise it forms the product set {k*h : k in
// K, h in H}, requires it to already be closed, and classifies the result
// by which of K, H is normal in the generated subgroup.
func (s *Subgroup) StudyCartesianProduct(h *Subgroup) structure.CartesianOutcome {
	if h == nil || s.master != h.master {
		return structure.InvalidCartesianOutcome()
	}
	if s.master.Order()%(s.Order()*h.Order()) != 0 {
		return structure.InvalidCartesianOutcome()
	}
	if intersectionCardinality(s, h) != 1 {
		return structure.InvalidCartesianOutcome()
	}

	productSet := make(map[int]struct{}, s.Order()*h.Order())
	for _, k := range s.elements {
		for _, he := range h.elements {
			productSet[s.master.Prod(k, he)] = struct{}{}
		}
	}
	product := setToSortedSlice(productSet)

	closed := s.master.Close(product)
	if len(closed) != len(product) {
		return structure.InvalidCartesianOutcome()
	}

	generated, err := s.master.CreateGroup(closed)
	if err != nil {
		return structure.InvalidCartesianOutcome()
	}

	kNormal := s.IsNormalSubgroupOf(generated)
	hNormal := h.IsNormalSubgroupOf(generated)

	switch {
	case kNormal && hNormal:
		return structure.NewCartesianOutcome(structure.Direct, generated.Signature())
	case kNormal:
		return structure.NewCartesianOutcome(structure.RightSemi, generated.Signature())
	case hNormal:
		return structure.NewCartesianOutcome(structure.LeftSemi, generated.Signature())
	default:
		return structure.InvalidCartesianOutcome()
	}
}

// StudyQuotientDecomposition probes whether n (a proper nontrivial normal
// subgroup of s, here playing the role of G) admits a complement: it
// fails if G is simple, or n is not a proper nontrivial normal subgroup
// of G. Otherwise it greedily grows a selected element set (ascending
// index, tie-broken deterministically) whose generated subgroup meets n
// only at the identity, until the product of orders reconstructs G.
func (s *Subgroup) StudyQuotientDecomposition(n *Subgroup) structure.QuotientOutcome {
	if s.IsSimple() {
		return structure.InvalidQuotientOutcome()
	}
	if n == nil || s.master != n.master || !n.IsNormalSubgroupOf(s) {
		return structure.InvalidQuotientOutcome()
	}
	if n.Order() <= 1 || n.Order() >= s.Order() {
		return structure.InvalidQuotientOutcome()
	}

	target := s.Order() / n.Order()

	selected := make([]int, 0)
	for _, idx := range s.elements {
		if n.Contains(idx) {
			continue
		}
		trial := append(append([]int(nil), selected...), idx)
		closed := s.master.Close(trial)
		generated, err := s.master.CreateGroup(closed)
		if err != nil {
			continue
		}
		if intersectionCardinality(generated, n) != 1 {
			continue
		}
		selected = trial
		if generated.Order() == target {
			return structure.NewQuotientOutcome(generated.Signature())
		}
	}

	return structure.InvalidQuotientOutcome()
}

// DirectProducts enumerates distinct pairs of normal subgroups (N, H)
// whose Cartesian product probe classifies as Direct and whose generated
// subgroup is s itself — the Open-Question resolution from spec §9.
func (s *Subgroup) DirectProducts() []structure.DirectProduct {
	normals := s.AllNormalSub()
	seen := make(map[string]bool)
	out := make([]structure.DirectProduct, 0)

	for i := 0; i < len(normals); i++ {
		for j := i + 1; j < len(normals); j++ {
			n, h := normals[i], normals[j]
			if n.Order() <= 1 || h.Order() <= 1 || n.Order()*h.Order() != s.Order() {
				continue
			}
			outcome := n.StudyCartesianProduct(h)
			if !outcome.IsDirect() || outcome.Signature() != s.Signature() {
				continue
			}
			key := pairKey(n.Signature(), h.Signature())
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, structure.DirectProduct{Left: n.Signature(), Right: h.Signature()})
		}
	}

	return out
}

// SemidirectProducts enumerates (normal subgroup, complement) pairs found
// via StudyQuotientDecomposition whose Cartesian probe classifies as a
// proper semidirect factorization (excludes pairs already reported by
// DirectProducts).
func (s *Subgroup) SemidirectProducts() []structure.SemidirectProduct {
	normals := s.AllNormalSub()
	seen := make(map[string]bool)
	out := make([]structure.SemidirectProduct, 0)

	for _, n := range normals {
		if n.Order() <= 1 || n.Order() >= s.Order() {
			continue
		}
		quotient := s.StudyQuotientDecomposition(n)
		if !quotient.HasValue() {
			continue
		}

		candidate := s.master.findBySignature(quotient.Signature())
		if candidate == nil {
			continue
		}
		outcome := n.StudyCartesianProduct(candidate)
		if outcome.Kind() != structure.LeftSemi && outcome.Kind() != structure.RightSemi {
			continue
		}
		key := pairKey(n.Signature(), candidate.Signature())
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, structure.SemidirectProduct{Normal: n.Signature(), Complement: candidate.Signature()})
	}

	return out
}

func pairKey(a, b string) string {
	if a < b {
		return a + "|" + b
	}

	return b + "|" + a
}

func intersectionCardinality(a, b *Subgroup) int {
	count := 0
	for _, e := range a.elements {
		if b.Contains(e) {
			count++
		}
	}

	return count
}
