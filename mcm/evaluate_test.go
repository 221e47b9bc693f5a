package mcm_test

import (
	"testing"

	"github.com/katalvlaran/matchain/chain"
	"github.com/katalvlaran/matchain/mcm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvaluate_Positive verifies the assembled report for the 3-chain.
func TestEvaluate_Positive(t *testing.T) {
	c, err := chain.FromPairs(chain3)
	require.NoError(t, err)

	r, err := mcm.Evaluate(c, mcm.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 350, r.NaiveCost)
	assert.Equal(t, 330, r.SequentialCost)
	assert.Equal(t, 308, r.OptimalCost)
	assert.True(t, r.OracleRun)
	assert.Equal(t, 308, r.OracleCost)
	assert.True(t, r.Agrees())
	assert.Equal(t, 42, r.Savings())
	assert.Equal(t, "(C1 x (C2 x C3))", r.OptimalExpr)
	assert.True(t, r.NaiveRendered)
	assert.Equal(t, "(C1 x (C2 x C3)(C1 x C2) x C3)", r.NaiveExpr)
	assert.Equal(t, 0, r.Splits[0][2])
	assert.Equal(t, 140, r.Costs[1][2])
}

// TestEvaluate_ValidationErrors maps the reference negative vectors.
func TestEvaluate_ValidationErrors(t *testing.T) {
	_, err := mcm.Evaluate(chain.Chain{}, mcm.DefaultOptions())
	assert.ErrorIs(t, err, chain.ErrEmptyChain)

	c, err := chain.FromPairs([][2]int{{6, 7}, {5, 4}})
	require.NoError(t, err)
	_, err = mcm.Evaluate(c, mcm.DefaultOptions())
	assert.ErrorIs(t, err, chain.ErrNonConformable)

	c, err = chain.FromPairs([][2]int{{6, 7}, {7, 0}, {0, 4}})
	require.NoError(t, err)
	_, err = mcm.Evaluate(c, mcm.DefaultOptions())
	assert.ErrorIs(t, err, chain.ErrZeroDimension)
}

// TestEvaluate_OracleLimit ensures the oracle is skipped above the limit.
func TestEvaluate_OracleLimit(t *testing.T) {
	c := mustChain(t, chain8)

	opts := mcm.DefaultOptions()
	opts.OracleLimit = 5
	r, err := mcm.Evaluate(c, opts)
	require.NoError(t, err)
	assert.False(t, r.OracleRun, "8 matrices exceed a limit of 5")
	assert.True(t, r.Agrees(), "skipped oracle never disagrees")
	assert.Equal(t, 400, r.OptimalCost)

	opts.OracleLimit = 0
	r, err = mcm.Evaluate(c, opts)
	require.NoError(t, err)
	assert.False(t, r.OracleRun, "zero limit disables the oracle")

	opts.OracleLimit = 8
	r, err = mcm.Evaluate(c, opts)
	require.NoError(t, err)
	assert.True(t, r.OracleRun)
	assert.Equal(t, 400, r.OracleCost)
}

// TestEvaluate_UnknownStrategy rejects unsupported strategies up front.
func TestEvaluate_UnknownStrategy(t *testing.T) {
	c := mustChain(t, chain3)
	opts := mcm.DefaultOptions()
	opts.Strategy = mcm.Strategy(5)

	_, err := mcm.Evaluate(c, opts)
	assert.ErrorIs(t, err, mcm.ErrUnknownStrategy)
}

// TestEvaluate_LimitsOutOfRange rejects limits that would make the oracle or
// the all-splits display explode.
func TestEvaluate_LimitsOutOfRange(t *testing.T) {
	c := mustChain(t, chain3)

	opts := mcm.DefaultOptions()
	opts.OracleLimit = mcm.MaxOracleLimit + 1
	_, err := mcm.Evaluate(c, opts)
	assert.ErrorIs(t, err, mcm.ErrLimitOutOfRange)

	opts = mcm.DefaultOptions()
	opts.NaiveRenderLimit = mcm.MaxNaiveRenderLimit + 1
	_, err = mcm.Evaluate(c, opts)
	assert.ErrorIs(t, err, mcm.ErrLimitOutOfRange)

	opts.NaiveRenderLimit = mcm.MaxNaiveRenderLimit
	opts.OracleLimit = mcm.MaxOracleLimit
	assert.NoError(t, opts.Validate())
}

// TestEvaluate_NaiveRenderLimit skips the all-splits display on long chains
// while the DP still answers.
func TestEvaluate_NaiveRenderLimit(t *testing.T) {
	pairs := make([][2]int, 40)
	for i := range pairs {
		pairs[i] = [2]int{2, 2}
	}
	c := mustChain(t, pairs)

	opts := mcm.DefaultOptions()
	opts.OracleLimit = 0
	r, err := mcm.Evaluate(c, opts)
	require.NoError(t, err)
	assert.False(t, r.NaiveRendered)
	assert.Empty(t, r.NaiveExpr)
	assert.Equal(t, 39*8, r.OptimalCost)
	assert.NotEmpty(t, r.OptimalExpr)

	c = mustChain(t, chain8)
	opts.NaiveRenderLimit = 7
	r, err = mcm.Evaluate(c, opts)
	require.NoError(t, err)
	assert.False(t, r.NaiveRendered, "8 matrices exceed a limit of 7")

	opts.NaiveRenderLimit = 8
	r, err = mcm.Evaluate(c, opts)
	require.NoError(t, err)
	assert.True(t, r.NaiveRendered)
	assert.Equal(t, mcm.RenderNaive(c), r.NaiveExpr)
}

// TestEvaluate_Notation carries the configured notation into both strings.
func TestEvaluate_Notation(t *testing.T) {
	c := mustChain(t, [][2]int{{6, 7}, {7, 5}})
	opts := mcm.DefaultOptions()
	opts.Notation = mcm.Notation{Symbol: "M", Marker: "·"}

	r, err := mcm.Evaluate(c, opts)
	require.NoError(t, err)
	assert.Equal(t, "(M1 · M2)", r.OptimalExpr)
	assert.Equal(t, "(M1 · M2)", r.NaiveExpr)
}
