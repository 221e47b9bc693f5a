package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matchain/mcm"
)

func newSolveCmd() *cobra.Command {
	var (
		flags  solverFlags
		tables bool
	)

	cmd := &cobra.Command{
		Use:   "solve <RxC>...",
		Short: "Find the optimal parenthesization of a chain",
		Long: `Solve parses a chain such as "6x7 7x5 5x4" (or "6x7,7x5,5x4"), validates it,
and prints the naive, left-to-right and optimal costs together with the
expressions. The all-splits display grows exponentially, so it is only drawn
for chains up to --naive-limit matrices.`,
		Example: `  matchain solve 6x7 7x5 5x4
  matchain solve "10x20,20x30,30x40,40x30" --strategy bottom-up --tables`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseArgs(args)
			if err != nil {
				return err
			}
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			logger.Debug("solving", "chain", c.String(), "strategy", opts.Strategy)
			sw := startStopwatch()

			report, err := mcm.Evaluate(c, opts)
			if err != nil {
				return err
			}
			sw.lap(logger, "solved", "n", c.Len(), "oracle_run", report.OracleRun)

			printReport(cmd, report, tables)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&tables, "tables", "t", false, "also print the cost and split tables")

	return cmd
}

func printReport(cmd *cobra.Command, r mcm.Report, tables bool) {
	p := newPrinter(cmd)

	p.heading("Matrix chain " + r.Chain.String())
	p.field("result", r.Chain.Result().String())
	if r.NaiveRendered {
		p.field("naive", r.NaiveExpr)
	}
	p.field("naive cost", r.NaiveCost)
	p.field("left to right", r.SequentialCost)
	p.field("optimal", r.OptimalExpr)
	p.field("optimal cost", r.OptimalCost)
	p.field("savings", r.Savings())

	if !r.NaiveRendered {
		p.status(verdictNote, "naive display skipped for %d matrices", r.Chain.Len())
	}
	switch {
	case !r.OracleRun:
		p.status(verdictNote, "oracle skipped for %d matrices", r.Chain.Len())
	case r.Agrees():
		p.status(verdictPass, "oracle agrees: %d", r.OracleCost)
	default:
		p.status(verdictFail, "oracle disagrees: %d", r.OracleCost)
	}

	if tables {
		p.table("costs", r.Costs)
		p.table("splits", r.Splits)
	}
}
