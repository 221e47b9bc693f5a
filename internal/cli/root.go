package cli

import (
	"context"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matchain/chain"
	"github.com/katalvlaran/matchain/internal/config"
	"github.com/katalvlaran/matchain/mcm"
)

// version is set via ldflags at build time.
var version = "dev"

// NewRootCommand builds the matchain command tree. The logger writes to the
// command's stderr.
func NewRootCommand() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "matchain",
		Short:         "matchain finds the cheapest way to multiply a chain of matrices",
		Long:          `matchain computes the optimal parenthesization of a matrix chain product with dynamic programming, compares it with the naive left-to-right order, and checks it against an exhaustive oracle.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			level := cfg.Level()
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			if configPath != "" {
				logger.Debug("loaded config", "path", configPath, "cases", len(cfg.Cases))
			}

			ctx := withConfig(withLogger(cmd.Context(), logger), cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newBatteryCmd())
	root.AddCommand(newTreeCmd())
	root.AddCommand(newServeCmd())

	return root
}

// Execute runs the CLI with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// =============================================================================
// Shared Flags
// =============================================================================

// solverFlags are the per-command overrides of the configured solver options.
type solverFlags struct {
	strategy    string
	oracleLimit int
	naiveLimit  int
}

func (f *solverFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.strategy, "strategy", "s", "", "DP evaluation order: top-down or bottom-up")
	cmd.Flags().IntVar(&f.oracleLimit, "oracle-limit", mcm.DefaultOracleLimit, "longest chain checked by the exhaustive oracle (0 disables it)")
	cmd.Flags().IntVar(&f.naiveLimit, "naive-limit", mcm.DefaultNaiveRenderLimit, "longest chain whose all-splits display is rendered (0 disables it)")
}

// options merges the configured options with any flags set on cmd.
func (f *solverFlags) options(cmd *cobra.Command) (mcm.Options, error) {
	opts := configFromContext(cmd.Context()).Options()
	if f.strategy != "" {
		s, err := mcm.ParseStrategy(f.strategy)
		if err != nil {
			return mcm.Options{}, err
		}
		opts.Strategy = s
	}
	if cmd.Flags().Changed("oracle-limit") {
		opts.OracleLimit = f.oracleLimit
	}
	if cmd.Flags().Changed("naive-limit") {
		opts.NaiveRenderLimit = f.naiveLimit
	}
	if err := opts.Validate(); err != nil {
		return mcm.Options{}, err
	}

	return opts, nil
}

// parseArgs joins the positional arguments and parses them as one chain,
// so both "6x7 7x5" and "6x7,7x5" work.
func parseArgs(args []string) (chain.Chain, error) {
	return chain.Parse(strings.Join(args, " "))
}
