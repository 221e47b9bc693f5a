package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matchain/mcm"
	"github.com/katalvlaran/matchain/splitviz"
)

func newTreeCmd() *cobra.Command {
	var (
		flags   solverFlags
		svgPath string
	)

	cmd := &cobra.Command{
		Use:   "tree <RxC>...",
		Short: "Draw the optimal split tree",
		Long: `Tree solves the chain and prints its optimal split tree as a Graphviz DOT
digraph. With --svg the tree is rendered to an SVG file instead.`,
		Example: `  matchain tree 6x7 7x5 5x4 | dot -Tpng > tree.png
  matchain tree 6x8 8x5 5x4 4x6 --svg tree.svg`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseArgs(args)
			if err != nil {
				return err
			}
			if err = c.Validate(); err != nil {
				return err
			}
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}

			res := mcm.Solve(c, opts)
			dot := splitviz.ToDOT(c, res, opts.Notation)
			if svgPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), dot)
				return nil
			}

			sw := startStopwatch()
			svg, err := splitviz.RenderSVG(cmd.Context(), dot)
			if err != nil {
				return err
			}
			if err = os.WriteFile(svgPath, svg, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", svgPath, err)
			}
			sw.lap(loggerFromContext(cmd.Context()), "rendered", "path", svgPath, "bytes", len(svg))
			newPrinter(cmd).status(verdictPass, "wrote %s", svgPath)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&svgPath, "svg", "", "render the tree to this SVG file")

	return cmd
}
