package mcm_test

import (
	"testing"

	"github.com/katalvlaran/matchain/chain"
	"github.com/katalvlaran/matchain/mcm"
	"pgregory.net/rapid"
)

// Property-based tests over random conformable chains. Chains stay at or
// below eight matrices so the exhaustive oracle remains cheap.

// drawChain draws a valid chain of 1..maxN matrices with dimensions 1..maxDim.
func drawChain(t *rapid.T, maxN, maxDim int) chain.Chain {
	n := rapid.IntRange(1, maxN).Draw(t, "n")
	p := rapid.SliceOfN(rapid.IntRange(1, maxDim), n+1, n+1).Draw(t, "p")

	c, err := chain.FromPairs(dimsFromP(p))
	if err != nil {
		t.Fatalf("FromPairs: %v", err)
	}
	if err = c.Validate(); err != nil {
		t.Fatalf("generated chain invalid: %v", err)
	}

	return c
}

// TestProperty_OracleAgrees verifies OptimalCost == ExhaustiveCost.
func TestProperty_OracleAgrees(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := drawChain(t, 8, 30)
		opt, oracle := mcm.OptimalCost(c), mcm.ExhaustiveCost(c)
		if opt != oracle {
			t.Fatalf("chain %s: optimal %d != oracle %d", c, opt, oracle)
		}
	})
}

// TestProperty_NotWorseThanSequential verifies OptimalCost <= SequentialCost.
// Left to right is one of the parenthesizations the DP minimizes over.
func TestProperty_NotWorseThanSequential(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := drawChain(t, 10, 50)
		if opt, seq := mcm.OptimalCost(c), mcm.SequentialCost(c); opt > seq {
			t.Fatalf("chain %s: optimal %d > sequential %d", c, opt, seq)
		}
	})
}

// TestProperty_StrategiesAgree verifies TopDown and BottomUp fill identical tables.
func TestProperty_StrategiesAgree(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := drawChain(t, 12, 40)
		td := mcm.Solve(c, mcm.Options{Strategy: mcm.TopDown})
		bu := mcm.Solve(c, mcm.Options{Strategy: mcm.BottomUp})
		if td.Cost != bu.Cost {
			t.Fatalf("chain %s: top-down %d != bottom-up %d", c, td.Cost, bu.Cost)
		}
		for i := range td.Splits {
			for j := range td.Splits[i] {
				if td.Splits[i][j] != bu.Splits[i][j] || td.Costs[i][j] != bu.Costs[i][j] {
					t.Fatalf("chain %s: tables differ at [%d][%d]", c, i, j)
				}
			}
		}
	})
}

// TestProperty_SplitTreeRealizesCost re-walks the split table and checks it
// costs exactly Result.Cost, with every split inside its range.
func TestProperty_SplitTreeRealizesCost(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := drawChain(t, 12, 40)
		res := mcm.Solve(c, mcm.DefaultOptions())
		n := c.Len()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if k := res.Splits[i][j]; k < i || k >= j {
					t.Fatalf("split[%d][%d]=%d out of range", i, j, k)
				}
			}
		}
		if got := treeCost(c, res.Splits, 0, n-1); got != res.Cost {
			t.Fatalf("chain %s: tree cost %d != %d", c, got, res.Cost)
		}
	})
}
