// SPDX-License-Identifier: MIT
package group

import "sort"

// softDivisorsDescending returns every divisor of k (which, since 1 always
// divides k, already includes 1 — see GLOSSARY "soft divisor") sorted
// descending. Used to bound subgroup-order searches via Lagrange.
func softDivisorsDescending(k int) []int {
	divs := make([]int, 0)
	for d := 1; d <= k; d++ {
		if k%d == 0 {
			divs = append(divs, d)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(divs)))

	return divs
}

// isPrime reports whether n is a prime number (n >= 2).
func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// secondLargestSoftDivisor returns the largest proper divisor of k: the
// second entry of its descending soft-divisor list, or k itself if the
// list has only one entry (k == 1).
func secondLargestSoftDivisor(k int) int {
	divs := softDivisorsDescending(k)
	if len(divs) < 2 {
		return k
	}

	return divs[1]
}
