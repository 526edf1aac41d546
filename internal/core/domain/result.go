package domain

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
)

// FailureReason classifies why a selection attempt produced no result.
// It is never part of the success/failure contract the algorithms
// expose (spec.md §7 is explicit that the core uses no exceptional
// control flow) - it exists purely so tests, logs and metrics can tell
// the distinct failure kinds apart.
type FailureReason string

const (
	// FailureNone is the zero value: the selection succeeded.
	FailureNone FailureReason = ""
	// FailureEmptyPool means no candidates were supplied.
	FailureEmptyPool FailureReason = "empty_pool"
	// FailureUnreachable means the pool's total effective/gross value
	// cannot possibly cover the target, so no search was needed.
	FailureUnreachable FailureReason = "unreachable"
	// FailureTriesExhausted means BnB ran out of its try budget before
	// ever recording an in-range selection.
	FailureTriesExhausted FailureReason = "tries_exhausted"
	// FailureTreeExhausted means BnB walked its whole search tree
	// without finding any selection within the acceptance range.
	FailureTreeExhausted FailureReason = "tree_exhausted"
)

// Stats carries the counters the core exposes for the façade to log or
// surface as metrics (spec.md §9): how much of the try budget was
// spent, how many search nodes were visited, and the waste of the
// returned selection. Branch-and-bound fills the counters on success
// and failure; the knapsack approximator sets only FailureReason, and
// only on failure.
type Stats struct {
	TriesUsed     int
	NodesVisited  int
	BestWaste     int64
	FailureReason FailureReason
}

// Result is the outcome of a single select_bnb or select_knapsack
// invocation: the chosen candidates, their gross value, and whether a
// selection was found at all. On failure, OutSet is nil and ValueRet is
// zero.
type Result struct {
	OutSet   []InputCoin
	ValueRet int64
	Success  bool
	Stats    Stats
}

func (r Result) String() string {
	if !r.Success {
		return fmt.Sprintf("Result{success: false, reason: %s}", r.Stats.FailureReason)
	}
	return fmt.Sprintf(
		"Result{success: true, value_ret: %s, coins: %d, tries: %d, nodes: %d, waste: %s}",
		btcutil.Amount(r.ValueRet), len(r.OutSet), r.Stats.TriesUsed,
		r.Stats.NodesVisited, btcutil.Amount(r.Stats.BestWaste),
	)
}
