// SPDX-License-Identifier: MIT
package group

import "sync"

// lazy is a generic once-cell: the memoized-field pattern the teacher uses
// throughout core.Graph (check-then-build under a guard), generalized with
// sync.Once so every Subgroup attribute in §4.4 can be computed once and
// read freely afterwards without re-locking.
type lazy[T any] struct {
	once sync.Once
	val  T
}

// get runs compute exactly once across all callers and returns its result
// on every call, memoized.
func (l *lazy[T]) get(compute func() T) T {
	l.once.Do(func() {
		l.val = compute()
	})

	return l.val
}
