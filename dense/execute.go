package dense

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/matchain/chain"
	"github.com/katalvlaran/matchain/mcm"
)

// maxEntry bounds the values Random draws, keeping products of short
// chains well inside int64.
const maxEntry = 4

// Random builds one matrix per element of c, with entries drawn uniformly
// from [0, maxEntry). The same seed always yields the same matrices.
//
// Errors: ErrBadShape when c holds a non-positive dimension.
func Random(c chain.Chain, seed uint64) ([]*Dense, error) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	shapes := c.Dims()
	ms := make([]*Dense, len(shapes))
	for i, d := range shapes {
		m, err := NewDense(d.Rows, d.Cols)
		if err != nil {
			return nil, fmt.Errorf("dense: Random: matrix %d: %w", i+1, err)
		}
		for k := range m.data {
			m.data[k] = int64(rng.IntN(maxEntry))
		}
		ms[i] = m
	}

	return ms, nil
}

// Execute multiplies ms along the parenthesization recorded in splits and
// returns the product with the total scalar multiplication count. For a
// split table produced by mcm.Solve the count equals Result.Cost.
//
// Errors: ErrDimensionMismatch when neighbours are not conformable.
func Execute(ms []*Dense, splits mcm.Table) (*Dense, int, error) {
	if len(ms) == 0 {
		return nil, 0, fmt.Errorf("dense: Execute: %w", chain.ErrEmptyChain)
	}

	return execute(ms, splits, 0, len(ms)-1)
}

func execute(ms []*Dense, splits mcm.Table, i, j int) (*Dense, int, error) {
	if i == j {
		return ms[i], 0, nil
	}
	k := splits[i][j]
	left, lops, err := execute(ms, splits, i, k)
	if err != nil {
		return nil, 0, err
	}
	right, rops, err := execute(ms, splits, k+1, j)
	if err != nil {
		return nil, 0, err
	}
	prod, ops, err := Mul(left, right)
	if err != nil {
		return nil, 0, err
	}

	return prod, lops + rops + ops, nil
}

// Sequential multiplies ms strictly left to right, ((M1·M2)·M3)·…, and
// returns the product with its scalar multiplication count, which equals
// mcm.SequentialCost of the chain.
func Sequential(ms []*Dense) (*Dense, int, error) {
	if len(ms) == 0 {
		return nil, 0, fmt.Errorf("dense: Sequential: %w", chain.ErrEmptyChain)
	}
	acc, total := ms[0], 0
	for _, m := range ms[1:] {
		var (
			ops int
			err error
		)
		if acc, ops, err = Mul(acc, m); err != nil {
			return nil, 0, err
		}
		total += ops
	}

	return acc, total, nil
}
