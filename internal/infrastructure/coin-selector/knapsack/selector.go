// Package knapsack implements the randomised knapsack fallback
// coin-selection approximator of spec.md §4.3, grounded on Bitcoin
// Core's KnapsackSolver/ApproximateBestSubset
// (_examples/original_source/src/wallet/coinselection.cpp).
package knapsack

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vulpemventures/coinselect/internal/assert"
	"github.com/vulpemventures/coinselect/internal/config"
	"github.com/vulpemventures/coinselect/internal/core/domain"
	"github.com/vulpemventures/coinselect/internal/core/ports"
	"github.com/vulpemventures/coinselect/internal/metrics"
	"github.com/vulpemventures/coinselect/internal/prng"
)

// Options customises a Selector. Any zero field falls back to the
// package-level config defaults (spec.md §6's caller-supplied
// MIN_CHANGE, and the subset approximator's default iteration count).
type Options struct {
	MinChange  int64
	Iterations int
	RandSource prng.Source
}

// Selector implements ports.KnapsackSelector.
type Selector struct {
	minChange  int64
	iterations int
	rng        prng.Source

	log func(format string, a ...interface{})
}

// NewSelector returns a knapsack selector configured from
// internal/config defaults and a process-owned, auto-seeded random
// source.
func NewSelector() ports.KnapsackSelector {
	return NewSelectorWithOptions(Options{})
}

// NewSelectorWithOptions is like NewSelector but lets the caller override
// MinChange, Iterations and, notably, RandSource - spec.md §5 requires
// the shuffle be seedable for testability, which this is how tests
// satisfy.
func NewSelectorWithOptions(opts Options) ports.KnapsackSelector {
	if opts.MinChange == 0 {
		opts.MinChange = config.MinChange()
	}
	if opts.Iterations == 0 {
		opts.Iterations = config.SubsetIterations()
	}
	if opts.RandSource == nil {
		opts.RandSource = prng.Default()
	}
	assert.True(opts.Iterations > 0, "knapsack: iteration budget must be strictly positive, got %d", opts.Iterations)
	logFn := func(format string, a ...interface{}) {
		format = fmt.Sprintf("coin selection: knapsack: %s", format)
		log.Debugf(format, a...)
	}
	return &Selector{
		minChange:  opts.MinChange,
		iterations: opts.Iterations,
		rng:        opts.RandSource,
		log:        logFn,
	}
}

func (s *Selector) SelectKnapsack(pool []domain.InputCoin, targetValue int64) (*domain.Result, error) {
	assert.True(targetValue > 0, "knapsack: target value must be strictly positive, got %d", targetValue)

	if len(pool) == 0 {
		s.log("empty pool")
		return s.fail(domain.FailureEmptyPool), nil
	}

	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	var (
		vValue           []domain.InputCoin
		nTotalLower      int64
		coinLowestLarger *domain.InputCoin
	)

	for i := range pool {
		coin := pool[i]
		switch {
		case coin.Value == targetValue:
			return s.success([]domain.InputCoin{coin}, coin.Value), nil
		case coin.Value < targetValue+s.minChange:
			vValue = append(vValue, coin)
			nTotalLower += coin.Value
		case coinLowestLarger == nil || coin.Value < coinLowestLarger.Value:
			coinLowestLarger = &pool[i]
		}
	}

	if nTotalLower == targetValue {
		return s.success(vValue, nTotalLower), nil
	}

	if nTotalLower < targetValue {
		if coinLowestLarger == nil {
			s.log("unreachable: no subset and no single coin covers target %d", targetValue)
			return s.fail(domain.FailureUnreachable), nil
		}
		return s.success([]domain.InputCoin{*coinLowestLarger}, coinLowestLarger.Value), nil
	}

	domain.SortDescendingByValue(vValue)

	bestMask, bestSum := s.approximateBestSubset(vValue, nTotalLower, targetValue)
	if bestSum != targetValue && nTotalLower >= targetValue+s.minChange {
		bestMask, bestSum = s.approximateBestSubset(vValue, nTotalLower, targetValue+s.minChange)
	}

	if coinLowestLarger != nil &&
		((bestSum != targetValue && bestSum < targetValue+s.minChange) ||
			coinLowestLarger.Value <= bestSum) {
		return s.success([]domain.InputCoin{*coinLowestLarger}, coinLowestLarger.Value), nil
	}

	outSet := make([]domain.InputCoin, 0, len(vValue))
	for i, included := range bestMask {
		if included {
			outSet = append(outSet, vValue[i])
		}
	}
	return s.success(outSet, bestSum), nil
}

// approximateBestSubset is the stochastic subset-sum approximator of
// spec.md §4.3's "Subset approximator". vValue must already be sorted
// descending by value. Returns the best inclusion mask found and its
// total value; on a total miss it returns the all-included mask and
// nTotalLower unchanged, matching the original's initial vfBest/nBest.
func (s *Selector) approximateBestSubset(
	vValue []domain.InputCoin, nTotalLower, nTargetValue int64,
) ([]bool, int64) {
	n := len(vValue)
	best := make([]bool, n)
	for i := range best {
		best[i] = true
	}
	nBest := nTotalLower

	included := make([]bool, n)

	for rep := 0; rep < s.iterations && nBest != nTargetValue; rep++ {
		for i := range included {
			included[i] = false
		}
		var total int64
		reachedTarget := false

		for pass := 0; pass < 2 && !reachedTarget; pass++ {
			for i := 0; i < n; i++ {
				var include bool
				if pass == 0 {
					include = s.rng.Bool()
				} else {
					include = !included[i]
				}
				if !include {
					continue
				}
				total += vValue[i].Value
				included[i] = true
				if total >= nTargetValue {
					reachedTarget = true
					if total < nBest {
						nBest = total
						copy(best, included)
					}
					total -= vValue[i].Value
					included[i] = false
				}
			}
		}
	}

	return best, nBest
}

func (s *Selector) success(outSet []domain.InputCoin, valueRet int64) *domain.Result {
	metrics.Outcomes.WithLabelValues("knapsack", "").Inc()
	s.log("selected %d coins, value_ret=%d", len(outSet), valueRet)
	return &domain.Result{
		OutSet:   outSet,
		ValueRet: valueRet,
		Success:  true,
	}
}

func (s *Selector) fail(reason domain.FailureReason) *domain.Result {
	metrics.Outcomes.WithLabelValues("knapsack", string(reason)).Inc()
	return &domain.Result{Stats: domain.Stats{FailureReason: reason}}
}
