package mcm

import "github.com/katalvlaran/matchain/chain"

// NaiveCost returns Σ_{i=0}^{n-2} rows[i]·cols[i]·cols[i+1], the sum of the
// pairwise products of neighbouring matrices in their original order.
//
// This is a fixed baseline statistic, not the cost of any parenthesization:
// it ignores the shape of the accumulated intermediate product, so it can
// fall below OptimalCost (2x1 1x1 1x2: naive 4, optimal 6). Use
// SequentialCost for the real left-to-right cost. For n == 1 it returns 0.
//
// Complexity: O(n).
func NaiveCost(c chain.Chain) int {
	total := 0
	for i := 0; i+1 < c.Len(); i++ {
		cur := c.At(i)
		total += cur.Rows * cur.Cols * c.At(i+1).Cols
	}

	return total
}

// SequentialCost returns the cost of evaluating c strictly left to right,
// ((C1·C2)·C3)·…, tracking the shape of the running product. It is the cost
// of one real parenthesization, so OptimalCost(c) <= SequentialCost(c).
//
// Complexity: O(n).
func SequentialCost(c chain.Chain) int {
	if c.Len() == 0 {
		return 0
	}
	rows, total := c.At(0).Rows, 0
	for i := 1; i < c.Len(); i++ {
		d := c.At(i)
		total += rows * d.Rows * d.Cols
	}

	return total
}

// mulCost is the cost of multiplying the product of i..k by the product of
// k+1..j: rows[i]·cols[k]·cols[j].
func mulCost(c chain.Chain, i, k, j int) int {
	return c.At(i).Rows * c.At(k).Cols * c.At(j).Cols
}
