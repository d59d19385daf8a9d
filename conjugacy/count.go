// SPDX-License-Identifier: MIT
package conjugacy

import "sort"

// Triple is one (element order, class size, degeneracy) entry of a
// fingerprint: degeneracy counts how many conjugacy classes share this
// (order, size) pair.
type Triple struct {
	Order      int
	Size       int
	Degeneracy int
}

// Count is the canonical fingerprint of a group: its conjugacy classes'
// (order, size) pairs tallied into Triples and sorted lexicographically
// by (Order, Size). Equal fingerprints are necessary but not sufficient
// for isomorphism (see identifier.NonAbelianTag).
type Count struct {
	Triples []Triple
}

// NewCount aggregates classes into a canonical Count.
func NewCount(classes []Class) Count {
	tally := make(map[[2]int]int)
	for _, c := range classes {
		tally[[2]int{c.Order, c.Size()}]++
	}

	triples := make([]Triple, 0, len(tally))
	for key, degeneracy := range tally {
		triples = append(triples, Triple{Order: key[0], Size: key[1], Degeneracy: degeneracy})
	}
	sort.Slice(triples, func(i, j int) bool {
		if triples[i].Order != triples[j].Order {
			return triples[i].Order < triples[j].Order
		}

		return triples[i].Size < triples[j].Size
	})

	return Count{Triples: triples}
}

// Equal reports whether two fingerprints are identical, tuple for tuple.
// Equal fingerprints for two subgroups make them isomorphism candidates;
// unequal fingerprints prove they are NOT isomorphic.
func (c Count) Equal(other Count) bool {
	if len(c.Triples) != len(other.Triples) {
		return false
	}
	for i := range c.Triples {
		if c.Triples[i] != other.Triples[i] {
			return false
		}
	}

	return true
}
