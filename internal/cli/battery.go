package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matchain/internal/battery"
)

// ErrBatteryFailed is returned when at least one battery case fails.
var ErrBatteryFailed = errors.New("battery failed")

func newBatteryCmd() *cobra.Command {
	var (
		flags         solverFlags
		skipReference bool
	)

	cmd := &cobra.Command{
		Use:   "battery",
		Short: "Run the reference chains and any configured cases",
		Long: `Battery runs every reference chain, then the [[cases]] of the config file,
through validation, the naive baseline, the DP solver and the exhaustive
oracle. A failing case is reported and the run continues.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}

			var cases []battery.Case
			if !skipReference {
				cases = battery.Reference()
			}
			extra, err := battery.FromConfig(configFromContext(cmd.Context()).Cases)
			if err != nil {
				return err
			}
			cases = append(cases, extra...)
			if len(cases) == 0 {
				newPrinter(cmd).status(verdictCaution, "no cases to run")
				return nil
			}

			summary, err := battery.Run(cmd.Context(), loggerFromContext(cmd.Context()), cases, opts)
			printSummary(cmd, summary)
			if err != nil {
				return err
			}
			if !summary.OK() {
				return fmt.Errorf("%w: %d of %d cases", ErrBatteryFailed, summary.Failed, len(summary.Outcomes))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&skipReference, "skip-reference", false, "run only the cases from the config file")

	return cmd
}

func printSummary(cmd *cobra.Command, s battery.Summary) {
	p := newPrinter(cmd)

	p.heading("Battery " + s.RunID.String())
	for _, o := range s.Outcomes {
		switch {
		case !o.Pass:
			p.status(verdictFail, "%s: %v", o.Case.Name, o.Problem)
		case o.Err != nil:
			p.status(verdictPass, "%s: rejected", o.Case.Name)
			p.aside("%v", o.Err)
		default:
			p.status(verdictPass, "%s: %d (naive %d)", o.Case.Name, o.Report.OptimalCost, o.Report.NaiveCost)
			p.aside("%s", o.Report.OptimalExpr)
		}
	}
	p.field("passed", s.Passed)
	p.field("failed", s.Failed)
}
