// Package prng provides the seedable pseudo-random source spec.md §5
// requires for the knapsack approximator's shuffle and subset search:
// "fast, non-cryptographic", "must be seedable for testability" but
// "need not be reproducible across versions". None of the retrieval
// pack's example repos import a third-party fast/non-crypto shuffle
// library for this purpose, so this wraps the standard library's
// math/rand/v2, which is the idiomatic Go substitute for the original
// FastRandomContext.
package prng

import "math/rand/v2"

// Source is the randomness a coin-selection algorithm needs: an
// in-place Fisher-Yates-style shuffle and a fair coin flip.
type Source interface {
	Shuffle(n int, swap func(i, j int))
	Bool() bool
}

// Default returns a process-owned, auto-seeded Source. It is safe for
// use by a single selector invocation but, like the rest of this
// package, is not safe for concurrent use by multiple goroutines.
func Default() Source {
	return &randSource{rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded returns a Source seeded deterministically, for tests that
// need reproducible shuffles.
func NewSeeded(seed1, seed2 uint64) Source {
	return &randSource{rand.New(rand.NewPCG(seed1, seed2))}
}

type randSource struct {
	r *rand.Rand
}

func (s *randSource) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}

func (s *randSource) Bool() bool {
	return s.r.IntN(2) == 0
}
