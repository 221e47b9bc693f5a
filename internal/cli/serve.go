package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matchain/internal/server"
)

func newServeCmd() *cobra.Command {
	var (
		flags solverFlags
		addr  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Long: `Serve exposes POST /v1/solve and GET /healthz. It runs until interrupted,
then drains in-flight requests.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = configFromContext(cmd.Context()).Addr
			}

			logger := loggerFromContext(cmd.Context())
			h := server.NewHandler(logger, opts, configFromContext(cmd.Context()).MaxChain)
			return server.Serve(cmd.Context(), logger, addr, h.Router())
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, \":8080\")")

	return cmd
}
