package domain

import "sort"

// SortDescendingByEffectiveValue sorts pool in place, largest effective
// value first. Required before running the branch-and-bound search: the
// search's subtree-skip optimisation relies on candidates with equal
// effective value ending up adjacent to each other.
//
// The ordering is deterministic for a fixed input (sort.Slice never
// consults any randomness), which is all a single BnB invocation needs;
// nothing in this package promises the relative order of equal-value
// candidates is stable across calls.
func SortDescendingByEffectiveValue(pool []InputCoin) {
	sort.Slice(pool, func(i, j int) bool {
		return pool[i].EffectiveValue() > pool[j].EffectiveValue()
	})
}

// SortDescendingByValue sorts pool in place, largest gross value first.
// Used by the knapsack approximator ahead of its subset search.
func SortDescendingByValue(pool []InputCoin) {
	sort.Slice(pool, func(i, j int) bool {
		return pool[i].Value > pool[j].Value
	})
}
