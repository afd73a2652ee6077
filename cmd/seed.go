package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/guttosm/fuel-service/config"
	"github.com/guttosm/fuel-service/internal/app"
	"github.com/guttosm/fuel-service/internal/seed"
	"github.com/guttosm/fuel-service/internal/service"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Add the default truck classes, or those in a YAML/JSON file",
		Long: "Creates every truck class whose name is not taken yet. Existing classes are left untouched,\n" +
			"so the command can be run repeatedly.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			classes := seed.Defaults()
			if file != "" {
				if classes, err = seed.LoadFile(file); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			store, err := app.InitializeStore(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(ctx); err != nil {
					log.Error().Err(err).Msg("Failed to close store")
				}
			}()
			if store.Driver == config.DriverMemory {
				log.Warn().Msg("Seeding the in-memory store; nothing is persisted")
			}

			created, err := service.NewTruckClassService(store.TruckClassRepo, nil).Seed(ctx, classes)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Truck class seeding complete. %d new records added.\n", created)
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML or JSON file with a truck_classes list")
	return cmd
}
