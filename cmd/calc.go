package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guttosm/fuel-service/config"
	"github.com/guttosm/fuel-service/internal/app"
	"github.com/guttosm/fuel-service/internal/domain/model"
	"github.com/guttosm/fuel-service/internal/seed"
	"github.com/guttosm/fuel-service/internal/service"
)

type calcOptions struct {
	distance   float64
	truckClass string
	loaded     bool
	buffer     float64
	intended   float64
}

func newCalcCmd(opts *rootOptions) *cobra.Command {
	co := &calcOptions{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Print the fuel recommendation for a trip",
		Example: `  fuel-service calc --distance 150 --truck-class "2-Axle Truck" --loaded
  fuel-service calc --distance 80 --truck-class "Pickup Truck (Toyota Hilux Class)" --buffer 15 --intended 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			return co.run(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&co.distance, "distance", 0, "trip distance in km")
	flags.StringVar(&co.truckClass, "truck-class", "", "truck class name or id")
	flags.BoolVar(&co.loaded, "loaded", false, "the truck travels loaded")
	flags.Float64Var(&co.buffer, "buffer", 0, "safety buffer percentage (5-25); defaults to DEFAULT_BUFFER_PERCENTAGE")
	flags.Float64Var(&co.intended, "intended", 0, "planned fuel in liters, checked against the recommended maximum")
	_ = cmd.MarkFlagRequired("distance")
	_ = cmd.MarkFlagRequired("truck-class")

	return cmd
}

func (co *calcOptions) run(cmd *cobra.Command, cfg config.Config) error {
	ctx := cmd.Context()

	store, err := app.InitializeStore(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close(ctx) }()

	truckClasses := service.NewTruckClassService(store.TruckClassRepo, nil)
	if store.Driver == config.DriverMemory {
		if _, err := truckClasses.Seed(ctx, seed.Defaults()); err != nil {
			return err
		}
	}

	tc, err := resolveTruckClass(ctx, truckClasses, co.truckClass)
	if err != nil {
		return err
	}

	req := service.FuelRequest{
		TripDistanceKm: co.distance,
		TruckClassID:   tc.ID,
		IsLoaded:       co.loaded,
	}
	if cmd.Flags().Changed("buffer") {
		req.BufferPercentage = &co.buffer
	}
	if cmd.Flags().Changed("intended") {
		req.IntendedFuelLiters = &co.intended
	}

	calculator := service.NewFuelCalculatorService(truckClasses, service.WithDefaultBuffer(cfg.Calculator.DefaultBufferPercentage))
	result, err := calculator.Calculate(ctx, req)
	if err != nil {
		return err
	}

	load := "empty"
	if co.loaded {
		load = "loaded"
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Truck Class: %s\nTrip Distance: %.2f km (%s)\n%s\n",
		result.TruckClass.Name, co.distance, load, result.Recommendation)
	return err
}

// resolveTruckClass looks the class up by name first, then by id.
func resolveTruckClass(ctx context.Context, truckClasses service.TruckClassService, ref string) (*model.TruckClass, error) {
	tc, err := truckClasses.GetByName(ctx, ref)
	if err == nil {
		return tc, nil
	}
	if !errors.Is(err, service.ErrTruckClassNotFound) {
		return nil, err
	}

	tc, err = truckClasses.Get(ctx, ref)
	if errors.Is(err, service.ErrTruckClassNotFound) {
		return nil, fmt.Errorf("truck class %q not found", ref)
	}
	return tc, err
}
