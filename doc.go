// Package fingroup is a finite-group analysis engine: it closes a finite
// set of complex square generator matrices into a group, indexes its
// elements into a Cayley table, and computes (lazily, once, cached)
// structural invariants up to an isomorphism tag.
//
// What is fingroup?
//
//	A thread-safe engine that brings together:
//
//	  - Matrix closure: BFS frontier expansion of a generator set into the
//	    full element list, bounded by a tolerance and a maximum order.
//	  - Cayley table construction: the closed element list reindexed into
//	    an integer multiplication table.
//	  - Group/Subgroup analysis: conjugacy classes, center, centralizer,
//	    derived series, normal subgroups, solvability/simplicity/perfection,
//	    (semi)direct product decomposition, and isomorphism identification.
//	  - A command facade: Cmd[Arg] strings dispatched to Subgroup queries.
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	complexmat/ — complex dense matrix storage, products, determinant
//	closure/    — generator-set closure into a finite element list
//	cayley/     — Cayley table construction from a closed element list
//	group/      — MasterGroup, Subgroup, and every structural invariant
//	conjugacy/  — conjugacy classes and their aggregate fingerprint
//	identifier/ — abelian primary decomposition and non-abelian catalogue
//	structure/  — tagged outcome types for (semi)direct decomposition
//	facade/     — Cmd[Arg] command parsing and dispatch
//
//	go get github.com/katalvlaran/fingroup
package fingroup
