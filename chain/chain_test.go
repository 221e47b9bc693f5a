package chain_test

import (
	"testing"

	"github.com/katalvlaran/matchain/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Empty verifies that construction rejects a chain with no matrices.
func TestNew_Empty(t *testing.T) {
	_, err := chain.New(nil)
	assert.ErrorIs(t, err, chain.ErrEmptyChain, "nil dims must be rejected")

	_, err = chain.New([]chain.Dims{})
	assert.ErrorIs(t, err, chain.ErrEmptyChain, "empty dims must be rejected")
}

// TestNew_CopiesInput ensures a Chain never aliases the caller's slice.
func TestNew_CopiesInput(t *testing.T) {
	dims := []chain.Dims{{6, 7}, {7, 5}}
	c, err := chain.New(dims)
	require.NoError(t, err)

	dims[0] = chain.Dims{Rows: 1, Cols: 1}
	assert.Equal(t, chain.Dims{Rows: 6, Cols: 7}, c.At(0), "mutating input must not leak into the chain")

	out := c.Dims()
	out[1] = chain.Dims{Rows: 9, Cols: 9}
	assert.Equal(t, chain.Dims{Rows: 7, Cols: 5}, c.At(1), "mutating Dims() copy must not leak into the chain")
}

// TestFromPairs_Accessors checks Len, Pairs, Result and String on a small chain.
func TestFromPairs_Accessors(t *testing.T) {
	c, err := chain.FromPairs([][2]int{{6, 7}, {7, 5}, {5, 4}})
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, [][2]int{{6, 7}, {7, 5}, {5, 4}}, c.Pairs())
	assert.Equal(t, chain.Dims{Rows: 6, Cols: 4}, c.Result(), "product shape is first.Rows x last.Cols")
	assert.Equal(t, "6x7 7x5 5x4", c.String())
	assert.Equal(t, "5x4", c.At(2).String())
}

// TestParse covers separators, case and round-trip through String.
func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want [][2]int
	}{
		{"commas", "6x7,7x5,5x4", [][2]int{{6, 7}, {7, 5}, {5, 4}}},
		{"spaces", "6x7 7x5  5x4", [][2]int{{6, 7}, {7, 5}, {5, 4}}},
		{"mixed", " 6X7, 7x5 ,\t5x4\n", [][2]int{{6, 7}, {7, 5}, {5, 4}}},
		{"single", "4x4", [][2]int{{4, 4}}},
		{"zero is syntax-valid", "6x7,7x0", [][2]int{{6, 7}, {7, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := chain.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Pairs())

			again, err := chain.Parse(c.String())
			require.NoError(t, err)
			assert.Equal(t, c.Pairs(), again.Pairs(), "String output must parse back")
		})
	}
}

// TestParse_Errors ensures malformed input maps onto the right sentinels.
func TestParse_Errors(t *testing.T) {
	_, err := chain.Parse("  , ")
	assert.ErrorIs(t, err, chain.ErrEmptyChain)

	for _, in := range []string{"6*7", "6x", "x7", "ax7", "6x7x8", "6x7,7"} {
		_, err = chain.Parse(in)
		assert.ErrorIs(t, err, chain.ErrSyntax, "input %q", in)
	}
}
