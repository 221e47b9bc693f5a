// Package mcm solves the matrix chain multiplication (MCM) ordering problem:
// given the shapes of C1·C2·…·Cn, find the parenthesization that needs the
// fewest scalar multiplications.
//
// 🚀 What is computed?
//
//	Multiplying a p×q matrix by a q×r matrix costs p·q·r scalar products.
//	Matrix multiplication is associative, so every parenthesization gives the
//	same product but at very different cost. The optimal cost of the
//	sub-chain i..j obeys
//
//	  cost(i,i) = 0
//	  cost(i,j) = min_{i≤k<j} cost(i,k) + cost(k+1,j) + rows[i]·cols[k]·cols[j]
//
// ✨ Key features:
//   - Solve / OptimalCost: memoized DP, O(n³) time, O(n²) memory, with a
//     choice of top-down (memo recursion) or bottom-up (by length) order
//   - ExhaustiveCost:      same recurrence without memo, Catalan time; a
//     correctness oracle for small chains only
//   - NaiveCost:           fixed pairwise baseline Σ rows[i]·cols[i]·cols[i+1];
//     not a real evaluation order, it may undercut the optimum
//   - SequentialCost:      true cost of ((C1·C2)·C3)·…, an upper bound on the optimum
//   - RenderOptimal / RenderNaive: bracketed expressions over C1..Cn, both
//     produced by one walker parameterized by a SplitStrategy
//   - Evaluate:            validate + all of the above in one Report; the
//     oracle and the all-splits display are gated by length limits
//
// Tie-break: when several split points reach the minimum, the smallest k
// wins (updates use strict "<"). Split tables, and therefore rendered
// expressions, are fully deterministic.
//
// ⚙️ Usage:
//
//	c, _ := chain.FromPairs([][2]int{{6, 7}, {7, 5}, {5, 4}})
//	if err := c.Validate(); err != nil {
//	  // handle chain.ErrNonConformable / chain.ErrZeroDimension
//	}
//	res := mcm.Solve(c, mcm.DefaultOptions())
//	fmt.Println(res.Cost)                         // 308
//	fmt.Println(mcm.RenderOptimal(c, res.Splits)) // (C1 x (C2 x C3))
//
// Solve, ExhaustiveCost, NaiveCost and the renderers expect a validated
// chain; they have no error paths. Evaluate validates for you.
package mcm
