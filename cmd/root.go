package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guttosm/fuel-service/config"
	"github.com/guttosm/fuel-service/internal/app"
)

type rootOptions struct {
	envFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	serve := newServeCmd(opts)
	root := &cobra.Command{
		Use:          "fuel-service",
		Short:        "Fuel recommendation service for truck dispatch",
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(serve, newSeedCmd(opts), newCalcCmd(opts))
	return root
}

// loadConfig reads the dotenv file, then the environment, and starts the logger.
func (o *rootOptions) loadConfig() (config.Config, error) {
	if err := config.LoadDotEnv(o.envFile); err != nil {
		return config.Config{}, fmt.Errorf("load env file: %w", err)
	}
	cfg := config.Load()
	app.InitializeLogger(cfg.Log)
	return cfg, nil
}
