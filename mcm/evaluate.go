package mcm

import (
	"fmt"

	"github.com/katalvlaran/matchain/chain"
)

// Report gathers every figure computed for one chain by Evaluate.
type Report struct {
	Chain chain.Chain

	NaiveCost      int // pairwise baseline, see NaiveCost
	SequentialCost int // strict left-to-right cost
	OptimalCost    int // DP optimum, see Solve
	OracleCost     int // exhaustive optimum; meaningful only when OracleRun
	OracleRun      bool

	Costs  Table // DP cost table
	Splits Table // DP split table

	NaiveExpr     string // all-splits display; empty unless NaiveRendered
	NaiveRendered bool
	OptimalExpr   string // optimal parenthesization
}

// Agrees reports whether the oracle confirmed the DP optimum.
// It is true when the oracle was skipped.
func (r Report) Agrees() bool {
	return !r.OracleRun || r.OracleCost == r.OptimalCost
}

// Savings returns NaiveCost - OptimalCost. It can be negative, since the
// pairwise baseline is not a real evaluation order.
func (r Report) Savings() int {
	return r.NaiveCost - r.OptimalCost
}

// Evaluate validates c and computes the naive cost, the DP solution, the
// oracle cost (only when c.Len() <= opts.OracleLimit), the optimal rendering
// and the all-splits rendering (only when c.Len() <= opts.NaiveRenderLimit).
//
// Errors:
//   - ErrUnknownStrategy, ErrLimitOutOfRange from opts.Validate.
//   - chain.ErrEmptyChain, chain.ErrNonConformable, chain.ErrZeroDimension
//     from validation; nothing is computed in that case.
func Evaluate(c chain.Chain, opts Options) (Report, error) {
	if err := opts.Validate(); err != nil {
		return Report{}, fmt.Errorf("mcm: Evaluate: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Report{}, err
	}

	res := Solve(c, opts)
	r := Report{
		Chain:          c,
		NaiveCost:      NaiveCost(c),
		SequentialCost: SequentialCost(c),
		OptimalCost:    res.Cost,
		Costs:          res.Costs,
		Splits:         res.Splits,
		OptimalExpr:    opts.Notation.Optimal(c, res.Splits),
	}
	if c.Len() <= opts.NaiveRenderLimit {
		r.NaiveExpr = opts.Notation.Naive(c)
		r.NaiveRendered = true
	}
	if c.Len() <= opts.OracleLimit {
		r.OracleCost = ExhaustiveCost(c)
		r.OracleRun = true
	}

	return r, nil
}
