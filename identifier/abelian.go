// SPDX-License-Identifier: MIT
package identifier

// splitByMaxOrder implements spec §4.6 step 1: while any factor has a
// maximum element order less than its own order (i.e. is not yet cyclic),
// pick an element of maximum order, let C be the cyclic subgroup it
// generates, find a complement K with |C|*|K| = |factor| and C ∩ K = {e},
// and replace the factor with the pair (C, K). Repeats until every factor
// is cyclic.
func splitByMaxOrder(factors []Group) []Group {
	for {
		changed := false
		next := make([]Group, 0, len(factors))
		for _, f := range factors {
			if f.Order() == 1 {
				continue
			}
			maxOrd, maxElem := maxElementOrder(f)
			if maxOrd == f.Order() {
				next = append(next, f) // already cyclic
				continue
			}
			changed = true
			c, _ := f.GenerateSubgroup([]int{maxElem})
			k := findComplement(f, c, f.Order()/c.Order())
			next = append(next, c, k)
		}
		factors = next
		if !changed {
			break
		}
	}

	return factors
}

// splitPrimePower implements spec §4.6 step 2: split a cyclic factor of
// composite order into prime-power cyclic factors, by repeating the same
// complement search for each prime power dividing |C|.
func splitPrimePower(f Group) []Group {
	pps := primePowerFactors(f.Order())
	if len(pps) <= 1 {
		return []Group{f}
	}

	out := make([]Group, 0, len(pps))
	remaining := f
	for i, pe := range pps {
		if i == len(pps)-1 {
			out = append(out, remaining)

			break
		}
		elem := elementOfOrder(remaining, pe)
		c, _ := remaining.GenerateSubgroup([]int{elem})
		remaining = findComplement(remaining, c, remaining.Order()/pe)
		out = append(out, c)
	}

	return out
}

// findComplement greedily extends a generator list over f's elements in
// ascending index order, keeping only extensions whose generated subgroup
// still meets c trivially, until the generated subgroup reaches
// targetOrder. Tie-break by ascending index (deterministic).
func findComplement(f Group, c Group, targetOrder int) Group {
	selected := make([]int, 0)
	for _, e := range f.Elements() {
		if c.Contains(e) {
			continue
		}
		trial := append(append([]int(nil), selected...), e)
		gen, err := f.GenerateSubgroup(trial)
		if err != nil {
			continue
		}
		if intersectionSize(gen, c) != 1 {
			continue
		}
		selected = trial
		if gen.Order() == targetOrder {
			return gen
		}
	}

	gen, _ := f.GenerateSubgroup(selected)

	return gen
}

func intersectionSize(a, b Group) int {
	count := 0
	for _, e := range a.Elements() {
		if b.Contains(e) {
			count++
		}
	}

	return count
}

func maxElementOrder(f Group) (order, element int) {
	for _, e := range f.Elements() {
		if o := f.ElementOrder(e); o > order {
			order, element = o, e
		}
	}

	return order, element
}

func elementOfOrder(f Group, target int) int {
	for _, e := range f.Elements() {
		if f.ElementOrder(e) == target {
			return e
		}
	}

	return f.Elements()[0]
}

// primePowerFactors returns the prime-power factors (p^e) of n.
func primePowerFactors(n int) []int {
	factors := make([]int, 0)
	remaining := n
	for p := 2; p*p <= remaining; p++ {
		if remaining%p != 0 {
			continue
		}
		power := 1
		for remaining%p == 0 {
			remaining /= p
			power *= p
		}
		factors = append(factors, power)
	}
	if remaining > 1 {
		factors = append(factors, remaining)
	}

	return factors
}
