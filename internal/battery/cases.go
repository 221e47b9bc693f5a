// Package battery holds the fixed reference chains and runs them, case by
// case, through validation, the naive baseline, the DP solver and the
// exhaustive oracle.
package battery

import (
	"fmt"

	"github.com/katalvlaran/matchain/chain"
	"github.com/katalvlaran/matchain/internal/config"
)

// Case is one chain of the battery.
type Case struct {
	Name  string
	Pairs [][2]int

	// Negative marks chains expected to fail validation.
	Negative bool

	// Want, when non-nil, is the sentinel a negative case must match.
	Want error
}

// Positive returns the reference chains that must validate and solve.
func Positive() []Case {
	return []Case{
		{Name: "positive-1", Pairs: [][2]int{{6, 7}, {7, 5}, {5, 4}}},
		{Name: "positive-2", Pairs: [][2]int{{6, 8}, {8, 5}, {5, 4}, {4, 6}}},
		{Name: "positive-3", Pairs: [][2]int{{6, 8}, {8, 5}, {5, 4}, {4, 6}, {6, 3}}},
		{Name: "positive-4", Pairs: [][2]int{{6, 8}, {8, 5}, {5, 4}, {4, 6}, {6, 3}, {3, 5}}},
		{Name: "positive-5", Pairs: [][2]int{{6, 8}, {8, 5}, {5, 4}, {4, 6}, {6, 3}, {3, 5}, {5, 7}, {7, 2}}},
	}
}

// Negative returns the reference edge cases. The square-matrix chain is
// listed here for historical reasons but is valid: it exercises the
// tie-break rule rather than a failure.
func Negative() []Case {
	return []Case{
		{Name: "negative-1-empty", Pairs: nil, Negative: true, Want: chain.ErrEmptyChain},
		{Name: "negative-2-non-conformable", Pairs: [][2]int{{6, 7}, {5, 4}}, Negative: true, Want: chain.ErrNonConformable},
		{Name: "negative-3-zero-dimension", Pairs: [][2]int{{6, 7}, {7, 0}, {0, 4}}, Negative: true, Want: chain.ErrZeroDimension},
		{Name: "negative-4-square", Pairs: [][2]int{{4, 4}, {4, 4}, {4, 4}}},
	}
}

// Reference returns Positive followed by Negative.
func Reference() []Case {
	return append(Positive(), Negative()...)
}

// FromConfig converts config cases into battery cases.
func FromConfig(cases []config.Case) ([]Case, error) {
	out := make([]Case, 0, len(cases))
	for _, cc := range cases {
		pairs, err := cc.Pairs()
		if err != nil {
			return nil, fmt.Errorf("battery: %w", err)
		}
		out = append(out, Case{Name: cc.Name, Pairs: pairs, Negative: cc.Negative})
	}

	return out, nil
}
