// SPDX-License-Identifier: MIT
package group

import (
	"sync"

	"github.com/katalvlaran/fingroup/conjugacy"
)

// SubTable is a Subgroup's own Cayley sub-table, reindexed to local
// positions 0..k-1 in ascending master-index order (spec §4.4 cayley_sub).
type SubTable struct {
	// Elements maps a local index to its master element index, ascending.
	Elements []int
	rows     [][]int
}

// At returns the local index of the product of the local-index elements
// i and j.
func (t SubTable) At(i, j int) int { return t.rows[i][j] }

// Subgroup is a closed subset E of a MasterGroup's elements, identified by
// E. It holds a non-owning reference to its MasterGroup (the master owns
// the subgroup cache and outlives every Subgroup it mints); every
// structural attribute below is computed lazily and memoized exactly once.
type Subgroup struct {
	master   *MasterGroup
	elements []int // sorted ascending, immutable after construction
	set      map[int]struct{}

	nameMu sync.Mutex
	name   string

	cayleySub    lazy[SubTable]
	classes      lazy[[]conjugacy.Class]
	count        lazy[conjugacy.Count]
	center       lazy[*Subgroup]
	centralizer  lazy[*Subgroup]
	derived      lazy[*Subgroup]
	derivedChain lazy[[]*Subgroup]
	normalSubs   lazy[[]*Subgroup]
	abelian      lazy[bool]
	perfect      lazy[bool]
	solvable     lazy[bool]
	simple       lazy[bool]
	isoTag       lazy[string]
}

// Master returns the owning MasterGroup.
func (s *Subgroup) Master() *MasterGroup { return s.master }

// Elements returns a copy of the sorted element-index set.
func (s *Subgroup) Elements() []int { return append([]int(nil), s.elements...) }

// Order returns |E|.
func (s *Subgroup) Order() int { return len(s.elements) }

// Contains reports whether a belongs to E.
func (s *Subgroup) Contains(a int) bool {
	_, ok := s.set[a]

	return ok
}

// Name returns the current (mutable, semantically meaningless) label.
func (s *Subgroup) Name() string {
	s.nameMu.Lock()
	defer s.nameMu.Unlock()

	return s.name
}

// SetName overwrites the display label.
func (s *Subgroup) SetName(name string) {
	s.nameMu.Lock()
	defer s.nameMu.Unlock()
	s.name = name
}

// Signature is the canonical element-set key used for cache lookups and
// as the identity carried by structure.CartesianOutcome/QuotientOutcome.
func (s *Subgroup) Signature() string { return elementSetKey(s.elements) }

// EqualTo reports whether s and other are the same subgroup: same master
// and identical element sets.
func (s *Subgroup) EqualTo(other *Subgroup) bool {
	if other == nil || s.master != other.master {
		return false
	}

	return s.Signature() == other.Signature()
}

// IsSubgroupOf reports whether every element of s belongs to other.
func (s *Subgroup) IsSubgroupOf(other *Subgroup) bool {
	if other == nil || s.master != other.master {
		return false
	}
	for _, e := range s.elements {
		if !other.Contains(e) {
			return false
		}
	}

	return true
}

// Less implements the ascending Subgroup ordering contract from spec §9:
// by Order() ascending, ties broken by comparing the ascending element
// lists lexicographically (every subgroup's minimum element is the
// identity 0, so the first differing index decides).
func (s *Subgroup) Less(other *Subgroup) bool {
	if s.Order() != other.Order() {
		return s.Order() < other.Order()
	}
	for i := range s.elements {
		if s.elements[i] != other.elements[i] {
			return s.elements[i] < other.elements[i]
		}
	}

	return false
}

// IsNormalSubgroupOf reports whether s is a subgroup of other and is
// invariant under conjugation by every element of other.
func (s *Subgroup) IsNormalSubgroupOf(other *Subgroup) bool {
	if !s.IsSubgroupOf(other) {
		return false
	}
	for _, h := range other.elements {
		for _, g := range s.elements {
			if !s.Contains(s.master.Conjugate(g, h)) {
				return false
			}
		}
	}

	return true
}

// CayleySub returns the subgroup's own Cayley sub-table, memoized.
func (s *Subgroup) CayleySub() SubTable {
	return s.cayleySub.get(func() SubTable {
		n := len(s.elements)
		localOf := make(map[int]int, n)
		for i, e := range s.elements {
			localOf[e] = i
		}
		rows := make([][]int, n)
		for i := 0; i < n; i++ {
			rows[i] = make([]int, n)
			for j := 0; j < n; j++ {
				rows[i][j] = localOf[s.master.Prod(s.elements[i], s.elements[j])]
			}
		}

		return SubTable{Elements: append([]int(nil), s.elements...), rows: rows}
	})
}

// ConjugacyClasses partitions E into conjugacy classes under E's own
// conjugation action, ordered by (element order ascending, size ascending).
func (s *Subgroup) ConjugacyClasses() []conjugacy.Class {
	return s.classes.get(func() []conjugacy.Class {
		residue := make(map[int]struct{}, len(s.elements))
		for _, e := range s.elements {
			residue[e] = struct{}{}
		}

		classes := make([]conjugacy.Class, 0)
		for len(residue) > 0 {
			g := smallestKey(residue)

			orbitSet := make(map[int]struct{})
			for _, h := range s.elements {
				orbitSet[s.master.Conjugate(g, h)] = struct{}{}
			}
			orbit := setToSortedSlice(orbitSet)

			classes = append(classes, conjugacy.Class{
				Order:    s.master.ElementOrder(g),
				Elements: orbit,
			})
			for _, e := range orbit {
				delete(residue, e)
			}
		}

		conjugacy.SortClasses(classes)

		return classes
	})
}

// ConjugacyCount returns the aggregate fingerprint of ConjugacyClasses.
func (s *Subgroup) ConjugacyCount() conjugacy.Count {
	return s.count.get(func() conjugacy.Count {
		return conjugacy.NewCount(s.ConjugacyClasses())
	})
}

// Center returns {g in E : forall h in E, commutator(g,h) = identity}.
func (s *Subgroup) Center() *Subgroup {
	return s.center.get(func() *Subgroup {
		elems := make([]int, 0)
		for _, g := range s.elements {
			central := true
			for _, h := range s.elements {
				if s.master.Commutator(g, h) != 0 {
					central = false

					break
				}
			}
			if central {
				elems = append(elems, g)
			}
		}
		sg, _ := s.master.CreateGroup(elems)

		return sg
	})
}

// CentralizerInMaster returns {g in master : forall h in E, commutator(g,h)
// = identity}, i.e. the same predicate as Center but ranging over the full
// ambient group rather than just E.
func (s *Subgroup) CentralizerInMaster() *Subgroup {
	return s.centralizer.get(func() *Subgroup {
		elems := make([]int, 0)
		for g := 0; g < s.master.Order(); g++ {
			central := true
			for _, h := range s.elements {
				if s.master.Commutator(g, h) != 0 {
					central = false

					break
				}
			}
			if central {
				elems = append(elems, g)
			}
		}
		sg, _ := s.master.CreateGroup(elems)

		return sg
	})
}

// Derived returns the subgroup generated by all commutators of E.
func (s *Subgroup) Derived() *Subgroup {
	return s.derived.get(func() *Subgroup {
		seed := make(map[int]struct{})
		for _, g := range s.elements {
			for _, h := range s.elements {
				seed[s.master.Commutator(g, h)] = struct{}{}
			}
		}
		sg, _ := s.master.GenerateGroup(setToSortedSlice(seed))

		return sg
	})
}

// DerivedSeries iterates current -> current.Derived(), appending each new
// term, until a term equals its predecessor (a fixed point).
func (s *Subgroup) DerivedSeries() []*Subgroup {
	return s.derivedChain.get(func() []*Subgroup {
		chain := make([]*Subgroup, 0)
		cur := s
		for {
			next := cur.Derived()
			if next.EqualTo(cur) {
				break
			}
			chain = append(chain, next)
			cur = next
		}

		return chain
	})
}

// IsAbelian reports whether the derived subgroup is trivial.
func (s *Subgroup) IsAbelian() bool {
	return s.abelian.get(func() bool { return s.Derived().Order() == 1 })
}

// IsPerfect reports whether the derived subgroup equals E itself.
func (s *Subgroup) IsPerfect() bool {
	return s.perfect.get(func() bool { return s.Derived().EqualTo(s) })
}

// IsSolvable reports whether the derived series terminates at the
// trivial subgroup.
func (s *Subgroup) IsSolvable() bool {
	return s.solvable.get(func() bool {
		chain := s.DerivedSeries()
		if len(chain) == 0 {
			return s.Order() == 1
		}

		return chain[len(chain)-1].Order() == 1
	})
}

// IsSimple reports whether E has no proper nontrivial normal subgroups:
// for abelian E, true iff Order() is prime or 1 (so the trivial group
// reports true); for non-abelian E, true iff len(AllNormalSub()) <= 2.
func (s *Subgroup) IsSimple() bool {
	return s.simple.get(func() bool {
		if s.IsAbelian() {
			return s.Order() == 1 || isPrime(s.Order())
		}

		return len(s.AllNormalSub()) <= 2
	})
}

// smallestKey returns the smallest key present in a set, for deterministic
// residue-picking in ConjugacyClasses.
func smallestKey(set map[int]struct{}) int {
	first := true
	best := 0
	for k := range set {
		if first || k < best {
			best = k
			first = false
		}
	}

	return best
}
