// Package assert guards invariants that must never be violated by a
// correctly-behaving caller: a negative effective value reaching the
// branch-and-bound search, a misconfigured non-positive budget
// constant. An empty or nil pool is not one of them: it is reported as
// an ordinary empty-pool failure. These are programming errors, not recoverable
// outcomes, so they panic rather than returning an error - the same
// boundary the original C++ implementation draws with a hard
// assert() in the middle of the search loop.
package assert

import "fmt"

// True panics with msg if cond is false.
func True(cond bool, format string, a ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, a...))
	}
}
