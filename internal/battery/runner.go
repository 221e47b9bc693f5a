package battery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/matchain/chain"
	"github.com/katalvlaran/matchain/dense"
	"github.com/katalvlaran/matchain/mcm"
)

// ErrOracleMismatch marks a positive case whose DP optimum differs from the
// exhaustive oracle.
var ErrOracleMismatch = errors.New("battery: optimal cost disagrees with oracle")

// ErrExecutionMismatch marks a positive case whose split tree, executed on
// concrete matrices, did not perform OptimalCost scalar multiplications or
// did not reproduce the left-to-right product.
var ErrExecutionMismatch = errors.New("battery: executed plan disagrees with solver")

// ErrUnexpectedValid marks a negative case that validated.
var ErrUnexpectedValid = errors.New("battery: chain expected to be invalid")

// Outcome is the result of one case.
type Outcome struct {
	Case    Case
	Report  mcm.Report // zero when Err is a validation error
	Err     error      // validation error, or nil
	Pass    bool
	Problem error // why Pass is false; nil when Pass
	Elapsed time.Duration

	// Executed is set when the optimal plan was also run on concrete
	// matrices; this happens whenever the oracle ran.
	Executed bool
}

// Summary is the result of a whole run.
type Summary struct {
	RunID    uuid.UUID
	Outcomes []Outcome
	Passed   int
	Failed   int
}

// OK reports whether every case passed.
func (s Summary) OK() bool { return s.Failed == 0 }

// Run evaluates every case in order. A failing case never stops the run;
// only ctx cancellation does, in which case the partial summary and
// ctx.Err() are returned.
func Run(ctx context.Context, logger *log.Logger, cases []Case, opts mcm.Options) (Summary, error) {
	s := Summary{RunID: uuid.New(), Outcomes: make([]Outcome, 0, len(cases))}
	logger = logger.With("run", s.RunID.String()[:8])
	logger.Debug("starting battery", "cases", len(cases), "strategy", opts.Strategy, "oracle_limit", opts.OracleLimit)

	for i, cs := range cases {
		if err := ctx.Err(); err != nil {
			return s, err
		}
		o := runCase(cs, opts, uint64(i))
		s.Outcomes = append(s.Outcomes, o)
		if o.Pass {
			s.Passed++
		} else {
			s.Failed++
		}
		logOutcome(logger, o)
	}
	logger.Info("battery finished", "passed", s.Passed, "failed", s.Failed)

	return s, nil
}

// runCase evaluates a single case and judges it. seed feeds the random
// matrices of the execution check.
func runCase(cs Case, opts mcm.Options, seed uint64) Outcome {
	start := time.Now()
	o := Outcome{Case: cs}

	c, err := chain.FromPairs(cs.Pairs)
	if err == nil {
		o.Report, err = mcm.Evaluate(c, opts)
	}
	o.Err = err
	o.Elapsed = time.Since(start)

	switch {
	case cs.Negative && err == nil:
		o.Problem = ErrUnexpectedValid
	case cs.Negative && cs.Want != nil && !errors.Is(err, cs.Want):
		o.Problem = fmt.Errorf("battery: want %v, got %w", cs.Want, err)
	case !cs.Negative && err != nil:
		o.Problem = err
	case !cs.Negative && !o.Report.Agrees():
		o.Problem = fmt.Errorf("%w: optimal %d, oracle %d", ErrOracleMismatch, o.Report.OptimalCost, o.Report.OracleCost)
	case !cs.Negative && o.Report.OracleRun:
		o.Executed = true
		o.Problem = checkExecution(o.Report, seed)
	}
	o.Pass = o.Problem == nil

	return o
}

// checkExecution multiplies random matrices shaped like r.Chain along the
// optimal plan and compares the work and the product with the report.
func checkExecution(r mcm.Report, seed uint64) error {
	ms, err := dense.Random(r.Chain, seed)
	if err != nil {
		return err
	}
	got, ops, err := dense.Execute(ms, r.Splits)
	if err != nil {
		return err
	}
	if ops != r.OptimalCost {
		return fmt.Errorf("%w: executed %d scalar multiplications, optimal %d", ErrExecutionMismatch, ops, r.OptimalCost)
	}
	want, _, err := dense.Sequential(ms)
	if err != nil {
		return err
	}
	if !got.Equal(want) {
		return fmt.Errorf("%w: product differs from left-to-right order", ErrExecutionMismatch)
	}

	return nil
}

func logOutcome(logger *log.Logger, o Outcome) {
	l := logger.With("case", o.Case.Name, "elapsed", o.Elapsed.Round(time.Microsecond))
	switch {
	case !o.Pass:
		l.Error("case failed", "err", o.Problem)
	case o.Err != nil:
		l.Info("rejected as expected", "err", o.Err)
	default:
		r := o.Report
		l.Info("solved",
			"n", r.Chain.Len(),
			"naive", r.NaiveCost,
			"optimal", r.OptimalCost,
			"oracle", oracleField(r),
			"executed", o.Executed,
			"expr", r.OptimalExpr,
		)
	}
}

// oracleField renders the oracle cost for logs, or "skipped".
func oracleField(r mcm.Report) any {
	if !r.OracleRun {
		return "skipped"
	}

	return r.OracleCost
}
