package ports

import "github.com/vulpemventures/coinselect/internal/core/domain"

// BranchAndBoundSelector is the abstraction for the deterministic
// exact-match coin-selection strategy. Implementations re-sort pool in
// place; callers must not rely on its order being preserved across the
// call.
type BranchAndBoundSelector interface {
	// SelectBnB searches pool for a subset whose sum of effective values
	// falls within [target+notInputFees, target+notInputFees+costOfChange],
	// minimising waste among the selections found. Every candidate in
	// pool must have a strictly positive effective value; the caller is
	// responsible for filtering those out beforehand.
	SelectBnB(
		pool []domain.InputCoin, targetValue, costOfChange, notInputFees int64,
	) (*domain.Result, error)
}

// KnapsackSelector is the abstraction for the randomised fallback
// coin-selection strategy. Implementations shuffle pool in place (the
// descending sort runs on a separate slice of the smaller candidates);
// callers must not rely on its order being preserved across the call.
type KnapsackSelector interface {
	// SelectKnapsack searches pool for a subset whose sum of gross
	// values is at least targetValue.
	SelectKnapsack(pool []domain.InputCoin, targetValue int64) (*domain.Result, error)
}
