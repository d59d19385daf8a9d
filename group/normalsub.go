// SPDX-License-Identifier: MIT
package group

// AllNormalSub enumerates every normal subgroup of s, per spec §4.4:
// start from {trivial, self}; let m be the second-largest soft divisor of
// Order() (Order() itself when Order() is 1 or prime, short-circuiting
// immediately); close every conjugacy class smaller than m (each such
// closure is normal by construction, since it's conjugation-invariant);
// keep closures with size strictly between 1 and m as seeds; repeatedly
// union an incomparable (seed, known-normal) pair, close the union, and
// add any new distinct closure (discarding anything that closes up to the
// whole group). Returns the result in descending order.
func (s *Subgroup) AllNormalSub() []*Subgroup {
	return s.normalSubs.get(func() []*Subgroup {
		trivial, _ := s.master.CreateGroup([]int{0})

		normals := map[string]*Subgroup{
			trivial.Signature(): trivial,
			s.Signature():       s,
		}

		if s.Order() == 1 || isPrime(s.Order()) {
			return sortedNormals(normals)
		}

		bound := secondLargestSoftDivisor(s.Order())

		seeds := make([]*Subgroup, 0)
		for _, class := range s.ConjugacyClasses() {
			if class.Size() >= bound {
				continue
			}
			closure, err := s.master.GenerateGroup(class.Elements)
			if err != nil {
				continue
			}
			if _, ok := normals[closure.Signature()]; !ok {
				normals[closure.Signature()] = closure
			}
			if closure.Order() > 1 && closure.Order() < bound {
				seeds = append(seeds, closure)
			}
		}

		for changed := true; changed; {
			changed = false
			currentNormals := sortedNormals(normals)
			for _, seed := range seeds {
				for _, n := range currentNormals {
					if seed.IsSubgroupOf(n) || n.IsSubgroupOf(seed) {
						continue // not incomparable
					}
					union := unionElements(seed.elements, n.elements)
					closed := s.master.Close(union)
					if len(closed) == s.master.Order() {
						continue
					}
					candidate, err := s.master.CreateGroup(closed)
					if err != nil {
						continue
					}
					if _, ok := normals[candidate.Signature()]; ok {
						continue
					}
					normals[candidate.Signature()] = candidate
					changed = true
					if candidate.Order() > 1 && candidate.Order() < s.master.Order() {
						seeds = append(seeds, candidate)
					}
				}
			}
		}

		return sortedNormals(normals)
	})
}

func sortedNormals(normals map[string]*Subgroup) []*Subgroup {
	out := make([]*Subgroup, 0, len(normals))
	for _, n := range normals {
		out = append(out, n)
	}
	sortSubgroupsDescending(out)

	return out
}

func unionElements(a, b []int) []int {
	set := make(map[int]struct{}, len(a)+len(b))
	for _, e := range a {
		set[e] = struct{}{}
	}
	for _, e := range b {
		set[e] = struct{}{}
	}

	return setToSortedSlice(set)
}
