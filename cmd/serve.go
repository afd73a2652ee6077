package main

import (
	"github.com/spf13/cobra"

	"github.com/guttosm/fuel-service/internal/app"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			a, err := app.InitializeApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			server := app.NewServer(a.Router, cfg.Server)
			server.OnShutdown(a.Close)
			return server.Run()
		},
	}
}
