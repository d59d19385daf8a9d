// SPDX-License-Identifier: MIT
package group

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/fingroup/cayley"
)

// MasterGroup owns an immutable Cayley table and every derived per-element
// table (inverse, element order, divisors), plus a mutable, synchronized
// cache of the Subgroup objects it has minted. It is constructed once from
// a cayley.Table and never mutates its own algebra afterwards; only the
// subgroup cache and the per-Subgroup memoized fields grow over time (see
// §5 concurrency model).
type MasterGroup struct {
	order        int
	table        cayley.Table
	inverse      []int
	elementOrder []int
	divisors     map[int][]int

	cacheMu    sync.RWMutex
	cache      map[string]*Subgroup
	byName     map[string]*Subgroup
	creation   []*Subgroup
	groupCount int
	namePrefix string
}

// NewMasterGroup builds a MasterGroup from a validated Cayley table,
// computing inverse, element-order and divisor tables up front. The table
// must place the identity at index 0 (cayley.Build guarantees this for
// tables derived from closure.Run's BFS order).
func NewMasterGroup(table cayley.Table) (*MasterGroup, error) {
	n := table.Order()
	if n == 0 || table.At(0, 0) != 0 {
		return nil, ErrInvalidTable
	}
	for b := 0; b < n; b++ {
		if table.At(0, b) != b || table.At(b, 0) != b {
			return nil, ErrInvalidTable
		}
	}

	m := &MasterGroup{
		order:      n,
		table:      table,
		namePrefix: "g",
		cache:      make(map[string]*Subgroup),
		byName:     make(map[string]*Subgroup),
	}

	m.inverse = make([]int, n)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if table.At(a, b) == 0 {
				m.inverse[a] = b

				break
			}
		}
	}

	m.elementOrder = make([]int, n)
	for a := 0; a < n; a++ {
		cur := a
		k := 1
		for cur != 0 {
			cur = table.At(cur, a)
			k++
		}
		m.elementOrder[a] = k
	}

	m.divisors = make(map[int][]int)
	for k := 1; k <= n; k++ {
		if n%k == 0 {
			m.divisors[k] = softDivisorsDescending(k)
		}
	}

	return m, nil
}

// Order returns the group order n.
func (m *MasterGroup) Order() int { return m.order }

// Prod returns the index of a*b.
func (m *MasterGroup) Prod(a, b int) int { return m.table.At(a, b) }

// Inverse returns the index of a's inverse.
func (m *MasterGroup) Inverse(a int) int { return m.inverse[a] }

// Conjugate returns the index of h*g*h^-1.
func (m *MasterGroup) Conjugate(g, h int) int {
	return m.table.At(m.table.At(h, g), m.inverse[h])
}

// Commutator returns the index of [g,h] = g h g^-1 h^-1 expressed via the
// table, per spec §3: commutator[g,h] = T[T[T[g,h], inverse[g]], inverse[h]].
func (m *MasterGroup) Commutator(g, h int) int {
	return m.table.At(m.table.At(m.table.At(g, h), m.inverse[g]), m.inverse[h])
}

// ElementOrder returns the least k >= 1 with a^k = identity.
func (m *MasterGroup) ElementOrder(a int) int { return m.elementOrder[a] }

// AreCommutable reports whether a and b commute.
func (m *MasterGroup) AreCommutable(a, b int) bool {
	return m.table.At(a, b) == m.table.At(b, a)
}

// DivisorOf returns the descending soft-divisor tuple of k, when k divides
// the group order (per spec §3, divisors are only tabulated for divisors
// of n); ok is false otherwise.
func (m *MasterGroup) DivisorOf(k int) (divs []int, ok bool) {
	d, present := m.divisors[k]

	return d, present
}

// DivisorOfOrder returns the descending soft-divisor tuple of the group
// order itself.
func (m *MasterGroup) DivisorOfOrder() []int { return m.divisors[m.order] }

// Close returns the smallest superset of seed that is closed under the
// table and contains the inverse of every member. Since the ambient group
// is finite, closure under multiplication of the growing set with itself
// suffices (inverses are folded in up front). The loop is bounded by the
// largest proper divisor of n (Lagrange): once the accumulated size
// exceeds it, the full element set is returned directly.
func (m *MasterGroup) Close(seed []int) []int {
	bound := secondLargestSoftDivisor(m.order)

	present := make(map[int]struct{}, len(seed)*2)
	for _, s := range seed {
		present[s] = struct{}{}
		present[m.inverse[s]] = struct{}{}
	}

	for {
		grew := false
		current := setToSortedSlice(present)
		for _, a := range current {
			for _, b := range current {
				p := m.table.At(a, b)
				if _, ok := present[p]; !ok {
					present[p] = struct{}{}
					grew = true
				}
			}
		}
		if len(present) > bound {
			return fullElementSet(m.order)
		}
		if !grew {
			break
		}
	}

	return setToSortedSlice(present)
}

// IsClosed reports whether S already equals its own closure.
func (m *MasterGroup) IsClosed(s []int) bool {
	closed := m.Close(s)

	return equalSortedSets(closed, sortedCopy(s))
}

// CreateGroup returns the canonical Subgroup for the closed element set s,
// creating and caching one on a cache miss. It refuses (ErrSetNotClosed)
// rather than exhibit the source design's undefined behavior when s is not
// closed.
func (m *MasterGroup) CreateGroup(s []int) (*Subgroup, error) {
	sorted := sortedCopy(s)
	if !equalSortedSets(m.Close(sorted), sorted) {
		return nil, ErrSetNotClosed
	}

	key := elementSetKey(sorted)

	m.cacheMu.RLock()
	if existing, ok := m.cache[key]; ok {
		m.cacheMu.RUnlock()

		return existing, nil
	}
	m.cacheMu.RUnlock()

	m.cacheMu.Lock()
	defer m.cacheMu.Unlock()

	if existing, ok := m.cache[key]; ok {
		return existing, nil
	}

	set := make(map[int]struct{}, len(sorted))
	for _, e := range sorted {
		set[e] = struct{}{}
	}

	m.groupCount++
	name := fmt.Sprintf("%s%d", m.namePrefix, m.groupCount)

	sg := &Subgroup{
		master:   m,
		elements: sorted,
		set:      set,
		name:     name,
	}

	m.cache[key] = sg
	m.byName[name] = sg
	m.creation = append(m.creation, sg)

	return sg, nil
}

// findBySignature returns the cached Subgroup for a canonical element-set
// signature (as produced by Subgroup.Signature), if one has been minted.
func (m *MasterGroup) findBySignature(sig string) *Subgroup {
	m.cacheMu.RLock()
	defer m.cacheMu.RUnlock()

	return m.cache[sig]
}

// GroupBySignature exposes findBySignature publicly, letting callers
// outside the package (e.g. facade) resolve the element-set signatures
// carried by structure.CartesianOutcome/QuotientOutcome/DirectProduct/
// SemidirectProduct back to their cached Subgroup.
func (m *MasterGroup) GroupBySignature(sig string) (*Subgroup, bool) {
	sg := m.findBySignature(sig)

	return sg, sg != nil
}

// GenerateGroup returns the canonical Subgroup for the closure of seed.
func (m *MasterGroup) GenerateGroup(seed []int) (*Subgroup, error) {
	return m.CreateGroup(m.Close(seed))
}

// NameToGroup looks up a cached Subgroup by its (mutable) display name, by
// linear scan over creation order — names carry no semantic meaning and
// are not expected to be numerous enough to warrant an index.
func (m *MasterGroup) NameToGroup(name string) (*Subgroup, bool) {
	m.cacheMu.RLock()
	defer m.cacheMu.RUnlock()

	for _, sg := range m.creation {
		if sg.Name() == name {
			return sg, true
		}
	}

	return nil, false
}

// AllGroups returns every cached Subgroup, in descending order (largest
// order first; ties broken as in sortSubgroupsDescending, for
// determinism).
func (m *MasterGroup) AllGroups() []*Subgroup {
	m.cacheMu.RLock()
	defer m.cacheMu.RUnlock()

	out := make([]*Subgroup, len(m.creation))
	copy(out, m.creation)
	sortSubgroupsDescending(out)

	return out
}

// sortSubgroupsDescending sorts subgroups by order descending; ties break
// as in Subgroup.Less (sorted element lists compared lexicographically),
// for determinism.
func sortSubgroupsDescending(groups []*Subgroup) {
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Order() != groups[j].Order() {
			return groups[i].Order() > groups[j].Order()
		}

		return groups[i].Less(groups[j])
	})
}

// SortAscending sorts subgroups per the spec §9 ordering contract:
// ascending Order(), ties broken as in Subgroup.Less.
func SortAscending(groups []*Subgroup) {
	sort.Slice(groups, func(i, j int) bool { return groups[i].Less(groups[j]) })
}

func fullElementSet(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

func setToSortedSlice(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}

func sortedCopy(s []int) []int {
	out := append([]int(nil), s...)
	sort.Ints(out)

	return out
}

func equalSortedSets(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// elementSetKey canonicalizes a sorted element set into a cache key.
func elementSetKey(sorted []int) string {
	parts := make([]string, len(sorted))
	for i, e := range sorted {
		parts[i] = strconv.Itoa(e)
	}

	return strings.Join(parts, ",")
}
