package mcm

import (
	"math"

	"github.com/katalvlaran/matchain/chain"
)

// unsolved marks cost cells not yet computed by the top-down pass.
// Real costs are never negative.
const unsolved = -1

// Solve computes the optimal multiplication order of c with the memoized
// recurrence and returns the optimal cost together with the full cost and
// split tables.
//
// Algorithm Outline:
//  1. Allocate n×n Costs (0 on and below the diagonal) and Splits (NoSplit).
//  2. Fill every cell i<j either
//     TopDown:  by recursion from (0,n-1), looking up memoized cells, or
//     BottomUp: by sub-chain length L = 2..n.
//  3. For each (i,j) scan k = i..j-1 in ascending order and keep the first
//     k with the strictly smallest cost(i,k)+cost(k+1,j)+rows[i]·cols[k]·cols[j].
//  4. Cost = Costs[0][n-1].
//
// The chain must be valid (see chain.Validate). For n == 1 the cost is 0
// and no split is recorded. An unrecognized Strategy falls back to TopDown.
//
// Complexity:
//
//	Time   = O(n³)
//	Memory = O(n²)
func Solve(c chain.Chain, opts Options) Result {
	n := c.Len()
	if n == 0 {
		return Result{}
	}

	costs := newTable(n, 0)
	splits := newTable(n, NoSplit)

	switch opts.Strategy {
	case BottomUp:
		solveBottomUp(c, costs, splits)
	default:
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				costs[i][j] = unsolved
			}
		}
		solveTopDown(c, costs, splits, 0, n-1)
	}

	return Result{Cost: costs[0][n-1], Costs: costs, Splits: splits}
}

// OptimalCost is shorthand for Solve(c, DefaultOptions()).Cost.
func OptimalCost(c chain.Chain) int {
	return Solve(c, DefaultOptions()).Cost
}

// solveTopDown returns cost(i,j), computing and memoizing it on first use.
func solveTopDown(c chain.Chain, costs, splits Table, i, j int) int {
	if i == j {
		return 0
	}
	if costs[i][j] != unsolved {
		return costs[i][j]
	}

	best := math.MaxInt
	for k := i; k < j; k++ {
		cand := solveTopDown(c, costs, splits, i, k) +
			solveTopDown(c, costs, splits, k+1, j) +
			mulCost(c, i, k, j)
		if cand < best {
			best = cand
			splits[i][j] = k
		}
	}
	costs[i][j] = best

	return best
}

// solveBottomUp fills costs and splits for every i<j by increasing length.
func solveBottomUp(c chain.Chain, costs, splits Table) {
	n := c.Len()

	var (
		length  int // sub-chain length
		i, j, k int // range bounds and split point
		best    int // best cost so far for (i,j)
		cand    int // cost of splitting at k
	)
	for length = 2; length <= n; length++ {
		for i = 0; i+length-1 < n; i++ {
			j = i + length - 1
			best = math.MaxInt
			for k = i; k < j; k++ {
				cand = costs[i][k] + costs[k+1][j] + mulCost(c, i, k, j)
				if cand < best {
					best = cand
					splits[i][j] = k
				}
			}
			costs[i][j] = best
		}
	}
}
