package mcm

import (
	"math"

	"github.com/katalvlaran/matchain/chain"
)

// ExhaustiveCost returns the optimal cost of c by expanding the recurrence
// without memoization. Every call re-enumerates its sub-ranges, so the work
// grows with the Catalan numbers; use it as an oracle for chains of about a
// dozen matrices at most (see DefaultOracleLimit).
//
// Complexity: Θ(Catalan-like) time, O(n) recursion depth.
func ExhaustiveCost(c chain.Chain) int {
	if c.Len() == 0 {
		return 0
	}

	return exhaustive(c, 0, c.Len()-1)
}

// exhaustive computes cost(i,j) from scratch.
func exhaustive(c chain.Chain, i, j int) int {
	if i == j {
		return 0
	}
	best := math.MaxInt
	for k := i; k < j; k++ {
		cand := exhaustive(c, i, k) + exhaustive(c, k+1, j) + mulCost(c, i, k, j)
		best = min(best, cand)
	}

	return best
}
