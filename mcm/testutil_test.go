// Package mcm_test - helpers shared across *_test.go files in this package.
package mcm_test

import (
	"testing"

	"github.com/katalvlaran/matchain/chain"
	"github.com/katalvlaran/matchain/mcm"
	"github.com/stretchr/testify/require"
)

// Reference positive vectors (the fixed battery) and their known answers.
var (
	chain3 = [][2]int{{6, 7}, {7, 5}, {5, 4}}
	chain4 = [][2]int{{6, 8}, {8, 5}, {5, 4}, {4, 6}}
	chain5 = [][2]int{{6, 8}, {8, 5}, {5, 4}, {4, 6}, {6, 3}}
	chain6 = [][2]int{{6, 8}, {8, 5}, {5, 4}, {4, 6}, {6, 3}, {3, 5}}
	chain8 = [][2]int{{6, 8}, {8, 5}, {5, 4}, {4, 6}, {6, 3}, {3, 5}, {5, 7}, {7, 2}}

	squares  = [][2]int{{4, 4}, {4, 4}, {4, 4}}
	textbook = [][2]int{{10, 20}, {20, 30}, {30, 40}, {40, 30}}
)

// mustChain builds a validated chain or stops the test.
func mustChain(t testing.TB, pairs [][2]int) chain.Chain {
	t.Helper()
	c, err := chain.FromPairs(pairs)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	return c
}

// dimsFromP turns a dimension vector p0..pn into n conformable pairs.
func dimsFromP(p []int) [][2]int {
	out := make([][2]int, len(p)-1)
	for i := range out {
		out[i] = [2]int{p[i], p[i+1]}
	}

	return out
}

// treeCost re-evaluates the parenthesization stored in splits independently
// of the DP: cost(i,j) = cost(i,k) + cost(k+1,j) + rows[i]·cols[k]·cols[j].
func treeCost(c chain.Chain, splits mcm.Table, i, j int) int {
	if i == j {
		return 0
	}
	k := splits[i][j]

	return treeCost(c, splits, i, k) + treeCost(c, splits, k+1, j) +
		c.At(i).Rows*c.At(k).Cols*c.At(j).Cols
}
