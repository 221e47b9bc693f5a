package mcm

import (
	"errors"
	"fmt"
	"strings"
)

// NoSplit marks split-table cells that carry no split point (j <= i).
const NoSplit = -1

// DefaultOracleLimit is the longest chain Evaluate hands to ExhaustiveCost.
// Twelve matrices means Catalan(11) = 58786 parenthesizations, still fast;
// every extra matrix multiplies the work roughly by four.
const DefaultOracleLimit = 12

// MaxOracleLimit is the highest OracleLimit Options.Validate accepts.
const MaxOracleLimit = 15

// DefaultNaiveRenderLimit is the longest chain whose all-splits display
// Evaluate builds. The display grows roughly threefold per matrix: ten
// matrices take about 70 KB, sixteen about 54 MB.
const DefaultNaiveRenderLimit = 10

// MaxNaiveRenderLimit is the highest NaiveRenderLimit Options.Validate accepts.
const MaxNaiveRenderLimit = 14

var (
	// ErrUnknownStrategy is returned when a Strategy value or name is not recognized.
	ErrUnknownStrategy = errors.New("mcm: unknown evaluation strategy")

	// ErrLimitOutOfRange is returned when OracleLimit or NaiveRenderLimit
	// exceeds its maximum.
	ErrLimitOutOfRange = errors.New("mcm: limit out of range")
)

// Table is a square n×n table indexed [i][j] over sub-chains i..j.
// Only cells with i <= j are meaningful.
type Table [][]int

// newTable allocates an n×n table with every cell set to fill.
func newTable(n, fill int) Table {
	t := make(Table, n)
	for i := range t {
		t[i] = make([]int, n)
		for j := range t[i] {
			t[i][j] = fill
		}
	}

	return t
}

// Clone returns a deep copy of t.
func (t Table) Clone() Table {
	cp := make(Table, len(t))
	for i := range t {
		cp[i] = append([]int(nil), t[i]...)
	}

	return cp
}

// Strategy selects the evaluation order of the DP solver.
//
//   - TopDown:  recursion from (0,n-1) with memo-table lookup.
//   - BottomUp: iterate sub-chains by increasing length.
//
// Both fill identical cost and split tables.
type Strategy int

const (
	// TopDown evaluates cost(i,j) lazily by memoized recursion.
	TopDown Strategy = iota

	// BottomUp evaluates every cost(i,j) of length L before any of length L+1.
	BottomUp
)

// String returns the canonical name used in configs and flags.
func (s Strategy) String() string {
	switch s {
	case TopDown:
		return "top-down"
	case BottomUp:
		return "bottom-up"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "top-down" / "bottom-up" (case-insensitive, '_' or '-')
// onto a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-") {
	case "top-down", "topdown", "memo":
		return TopDown, nil
	case "bottom-up", "bottomup", "tabular":
		return BottomUp, nil
	default:
		return 0, fmt.Errorf("mcm: ParseStrategy(%q): %w", name, ErrUnknownStrategy)
	}
}

// Options configures Solve and Evaluate.
//
// Fields:
//   - Strategy:    DP evaluation order (TopDown by default).
//   - OracleLimit: Evaluate runs ExhaustiveCost only when n <= OracleLimit;
//     zero or negative disables the oracle.
//   - NaiveRenderLimit: Evaluate builds the all-splits display only when
//     n <= NaiveRenderLimit; zero or negative disables it.
//   - Notation:    symbol and marker used by the renderers.
type Options struct {
	Strategy         Strategy
	OracleLimit      int
	NaiveRenderLimit int
	Notation         Notation
}

// DefaultOptions returns TopDown, DefaultOracleLimit, DefaultNaiveRenderLimit
// and DefaultNotation.
func DefaultOptions() Options {
	return Options{
		Strategy:         TopDown,
		OracleLimit:      DefaultOracleLimit,
		NaiveRenderLimit: DefaultNaiveRenderLimit,
		Notation:         DefaultNotation(),
	}
}

// Validate checks the strategy and the upper bounds of both limits.
//
// Errors: ErrUnknownStrategy, ErrLimitOutOfRange.
func (o Options) Validate() error {
	if o.Strategy != TopDown && o.Strategy != BottomUp {
		return fmt.Errorf("mcm: Options: %s: %w", o.Strategy, ErrUnknownStrategy)
	}
	if o.OracleLimit > MaxOracleLimit {
		return fmt.Errorf("mcm: Options: oracle limit %d > %d: %w", o.OracleLimit, MaxOracleLimit, ErrLimitOutOfRange)
	}
	if o.NaiveRenderLimit > MaxNaiveRenderLimit {
		return fmt.Errorf("mcm: Options: naive render limit %d > %d: %w", o.NaiveRenderLimit, MaxNaiveRenderLimit, ErrLimitOutOfRange)
	}

	return nil
}

// Result is the outcome of Solve.
type Result struct {
	// Cost is the minimum number of scalar multiplications for the whole chain.
	Cost int

	// Costs[i][j] is the minimum cost of sub-chain i..j (Costs[i][i] == 0).
	Costs Table

	// Splits[i][j] is the first optimal split k (i <= k < j) of sub-chain i..j,
	// or NoSplit when j <= i.
	Splits Table
}
