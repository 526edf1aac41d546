// Package metrics registers the prometheus collectors the coin
// selection core exposes so a façade can scrape them. The teacher
// repo's pkg/profiler/service.go is the only place in the retrieval
// pack that reaches for prometheus/client_golang; this package keeps
// the same collector-registration idiom but drops the net/http
// exposition server that came with it - serving /metrics is an
// outer-surface concern owned by whatever wraps this core, not by the
// core itself.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// BnBTriesUsed observes how much of the try budget a branch-and-bound
	// invocation spent, win or lose.
	BnBTriesUsed = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "coinselect",
		Subsystem: "bnb",
		Name:      "tries_used",
		Help:      "Number of search-tree iterations a branch-and-bound invocation spent.",
		Buckets:   prometheus.ExponentialBuckets(10, 4, 8),
	})

	// BnBNodesVisited observes the number of search-tree nodes visited.
	BnBNodesVisited = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "coinselect",
		Subsystem: "bnb",
		Name:      "nodes_visited",
		Help:      "Number of search-tree nodes a branch-and-bound invocation visited.",
		Buckets:   prometheus.ExponentialBuckets(10, 4, 8),
	})

	// BnBBestWaste observes the waste of the returned selection on
	// success.
	BnBBestWaste = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "coinselect",
		Subsystem: "bnb",
		Name:      "best_waste_satoshi",
		Help:      "Waste, in satoshi, of the selection branch-and-bound returned.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
	})

	// Outcomes counts selector invocations by algorithm and failure
	// reason ("" on success).
	Outcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coinselect",
		Name:      "outcomes_total",
		Help:      "Coin selection invocations by algorithm and outcome.",
	}, []string{"algorithm", "reason"})
)

// Registry bundles the collectors above for a façade to register
// against its own prometheus.Registerer, mirroring the teacher's
// pattern of constructing collectors at package scope and letting the
// caller decide where they get registered and exposed.
func Registry() []prometheus.Collector {
	return []prometheus.Collector{
		BnBTriesUsed, BnBNodesVisited, BnBBestWaste, Outcomes,
	}
}
