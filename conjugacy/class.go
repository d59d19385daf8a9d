// SPDX-License-Identifier: MIT
// Package conjugacy holds the conjugacy-class representation and its
// aggregate fingerprint, used both for direct structural queries and as
// the necessary (not sufficient) isomorphism test consumed by package
// identifier.
package conjugacy

import "sort"

// Class is one conjugacy class: the set of element indices in a single
// orbit of the conjugation action, together with the (common) order of
// every element in the orbit.
type Class struct {
	Order    int
	Elements []int
}

// Size returns the number of elements in the class.
func (c Class) Size() int { return len(c.Elements) }

// Equal reports elementwise equality: same order and identical element
// sets (order of Elements is irrelevant to equality, only membership).
func (c Class) Equal(other Class) bool {
	if c.Order != other.Order || len(c.Elements) != len(other.Elements) {
		return false
	}
	set := make(map[int]struct{}, len(c.Elements))
	for _, e := range c.Elements {
		set[e] = struct{}{}
	}
	for _, e := range other.Elements {
		if _, ok := set[e]; !ok {
			return false
		}
	}

	return true
}

// SortClasses orders classes by (Order ascending, Size ascending), the
// canonical display order used throughout the group-analysis engine.
func SortClasses(classes []Class) {
	sort.Slice(classes, func(i, j int) bool {
		if classes[i].Order != classes[j].Order {
			return classes[i].Order < classes[j].Order
		}

		return classes[i].Size() < classes[j].Size()
	})
}
