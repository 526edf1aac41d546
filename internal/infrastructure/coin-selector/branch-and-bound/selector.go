// Package bnb implements the deterministic branch-and-bound exact-match
// coin-selection search of spec.md §4.2/§4.4, grounded on Bitcoin
// Core's SelectCoinsBnB (_examples/original_source/src/wallet/coinselection.cpp),
// generalised to the later fee/long-term-fee/waste objective spec.md
// describes and re-expressed with the single selection bit-vector
// spec.md §9 calls for instead of the original's boolean-pair encoding.
package bnb

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vulpemventures/coinselect/internal/assert"
	"github.com/vulpemventures/coinselect/internal/config"
	"github.com/vulpemventures/coinselect/internal/core/domain"
	"github.com/vulpemventures/coinselect/internal/core/ports"
	"github.com/vulpemventures/coinselect/internal/metrics"
)

// Selector implements ports.BranchAndBoundSelector.
type Selector struct {
	totalTries int

	log func(format string, a ...interface{})
}

// NewSelector returns a branch-and-bound selector whose try budget
// defaults to config.TotalTries() (spec.md's TOTAL_TRIES = 100000) and
// which logs through logrus under the "coin selection: bnb" category,
// mirroring Bitcoin Core's own BCLog::SELECTCOINS category and the
// teacher repo's log-closure-on-struct construction idiom.
func NewSelector() ports.BranchAndBoundSelector {
	return NewSelectorWithTries(config.TotalTries())
}

// NewSelectorWithTries is like NewSelector but with an explicit try
// budget, mainly useful for tests that want to exercise the
// tries-exhausted failure path without waiting on the full default
// budget.
func NewSelectorWithTries(totalTries int) ports.BranchAndBoundSelector {
	assert.True(totalTries > 0, "bnb: try budget must be strictly positive, got %d", totalTries)
	logFn := func(format string, a ...interface{}) {
		format = fmt.Sprintf("coin selection: bnb: %s", format)
		log.Debugf(format, a...)
	}
	return &Selector{totalTries: totalTries, log: logFn}
}

func (s *Selector) SelectBnB(
	pool []domain.InputCoin, targetValue, costOfChange, notInputFees int64,
) (*domain.Result, error) {
	assert.True(targetValue > 0, "bnb: target value must be strictly positive, got %d", targetValue)
	assert.True(costOfChange >= 0, "bnb: cost of change must not be negative, got %d", costOfChange)
	assert.True(notInputFees >= 0, "bnb: not-input fees must not be negative, got %d", notInputFees)

	if len(pool) == 0 {
		s.log("empty pool")
		metrics.Outcomes.WithLabelValues("bnb", string(domain.FailureEmptyPool)).Inc()
		return s.fail(domain.FailureEmptyPool, domain.Stats{}), nil
	}

	for i, c := range pool {
		assert.True(
			c.EffectiveValue() > 0,
			"bnb: candidate at position %d (%s) has non-positive effective value",
			i, c,
		)
	}

	domain.SortDescendingByEffectiveValue(pool)

	actualTarget := notInputFees + targetValue
	n := len(pool)

	selection := make([]bool, n)
	bestSelection := make([]bool, n)
	bestWaste := config.MaxMoney()
	haveBest := false

	var lookahead int64
	for _, c := range pool {
		lookahead += c.EffectiveValue()
	}

	if lookahead < actualTarget {
		s.log("unreachable: pool effective value %d < actual target %d", lookahead, actualTarget)
		metrics.Outcomes.WithLabelValues("bnb", string(domain.FailureUnreachable)).Inc()
		return s.fail(domain.FailureUnreachable, domain.Stats{}), nil
	}

	// Per spec.md §9's open question on waste-pruning soundness: the
	// prune below is only sound when per-input marginal waste is
	// non-negative. Rather than computing a pool-wide minimum, this
	// preserves the original's exact guard of testing only the first
	// (highest effective value, after sorting) pool entry's sign.
	pruneIsSound := pool[0].Waste() > 0

	var valueTrack, currWaste int64
	depth := 0
	tries := s.totalTries
	nodesVisited := 0
	exhaustedTries := false

	for {
		if tries <= 0 {
			exhaustedTries = true
			break
		}
		tries--
		nodesVisited++

		backtrack := false

		switch {
		case valueTrack+lookahead < actualTarget:
			backtrack = true
		case valueTrack > actualTarget+costOfChange:
			backtrack = true
		case currWaste > bestWaste && pruneIsSound:
			backtrack = true
		case valueTrack >= actualTarget:
			totalWaste := currWaste
			if excess := valueTrack - actualTarget; excess > 0 {
				totalWaste += excess
			}
			if totalWaste < bestWaste {
				bestWaste = totalWaste
				copy(bestSelection, selection)
				haveBest = true
			}
			backtrack = true
		default:
			// Inclusion-first advance, or the equivalence-skip
			// optimisation: if the candidate at depth is
			// indistinguishable (by effective value and fee) from its
			// immediate predecessor and that predecessor was excluded
			// on this descent, including it here would only reach a
			// selection already rejected, so skip straight to
			// exclusion.
			c := pool[depth]
			if depth > 0 && !selection[depth-1] &&
				c.EffectiveValue() == pool[depth-1].EffectiveValue() &&
				c.Fee == pool[depth-1].Fee {
				selection[depth] = false
				lookahead -= c.EffectiveValue()
			} else {
				selection[depth] = true
				valueTrack += c.EffectiveValue()
				lookahead -= c.EffectiveValue()
				currWaste += c.Waste()
			}
			depth++
		}

		if backtrack {
			depth--
			for depth >= 0 && !selection[depth] {
				lookahead += pool[depth].EffectiveValue()
				depth--
			}
			if depth < 0 {
				break
			}
			selection[depth] = false
			valueTrack -= pool[depth].EffectiveValue()
			currWaste -= pool[depth].Waste()
			depth++
		}
	}

	stats := domain.Stats{
		TriesUsed:    s.totalTries - tries,
		NodesVisited: nodesVisited,
	}

	metrics.BnBTriesUsed.Observe(float64(stats.TriesUsed))
	metrics.BnBNodesVisited.Observe(float64(stats.NodesVisited))

	if !haveBest {
		reason := domain.FailureTreeExhausted
		if exhaustedTries {
			reason = domain.FailureTriesExhausted
		}
		s.log("no in-range selection found: %s", reason)
		metrics.Outcomes.WithLabelValues("bnb", string(reason)).Inc()
		return s.fail(reason, stats), nil
	}

	stats.BestWaste = bestWaste
	outSet := make([]domain.InputCoin, 0, n)
	var valueRet int64
	for i, included := range bestSelection {
		if included {
			outSet = append(outSet, pool[i])
			valueRet += pool[i].Value
		}
	}

	metrics.BnBBestWaste.Observe(float64(bestWaste))
	metrics.Outcomes.WithLabelValues("bnb", "").Inc()

	result := &domain.Result{
		OutSet:   outSet,
		ValueRet: valueRet,
		Success:  true,
		Stats:    stats,
	}
	s.log("selected %d coins, value_ret=%d, waste=%d, tries=%d, nodes=%d",
		len(outSet), valueRet, bestWaste, stats.TriesUsed, stats.NodesVisited)
	return result, nil
}

func (s *Selector) fail(reason domain.FailureReason, stats domain.Stats) *domain.Result {
	stats.FailureReason = reason
	return &domain.Result{Stats: stats}
}
