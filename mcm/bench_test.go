package mcm_test

import (
	"testing"

	"github.com/katalvlaran/matchain/chain"
	"github.com/katalvlaran/matchain/mcm"
)

// benchChain builds a deterministic conformable chain of n matrices.
func benchChain(b *testing.B, n int) chain.Chain {
	p := make([]int, n+1)
	for i := range p {
		p[i] = 5 + (i*7)%23 // deterministic ripple, avoids ties
	}

	return mustChain(b, dimsFromP(p))
}

func benchmarkSolve(b *testing.B, n int, s mcm.Strategy) {
	c := benchChain(b, n)
	opts := mcm.Options{Strategy: s}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mcm.Solve(c, opts)
	}
}

// BenchmarkSolve_TopDown_n50 measures the memoized recursion.
func BenchmarkSolve_TopDown_n50(b *testing.B) { benchmarkSolve(b, 50, mcm.TopDown) }

// BenchmarkSolve_BottomUp_n50 measures the length-ordered loop.
func BenchmarkSolve_BottomUp_n50(b *testing.B) { benchmarkSolve(b, 50, mcm.BottomUp) }

// BenchmarkSolve_BottomUp_n200 shows the O(n³) growth.
func BenchmarkSolve_BottomUp_n200(b *testing.B) { benchmarkSolve(b, 200, mcm.BottomUp) }

// BenchmarkExhaustive_n10 measures the oracle near its practical limit.
func BenchmarkExhaustive_n10(b *testing.B) {
	c := benchChain(b, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mcm.ExhaustiveCost(c)
	}
}
