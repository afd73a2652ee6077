package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/fuel-service/internal/domain/model"
	"github.com/guttosm/fuel-service/internal/metrics"
)

// Buffer percentage bounds accepted by the calculator, inclusive.
const (
	MinBufferPercentage     = 5.0
	MaxBufferPercentage     = 25.0
	DefaultBufferPercentage = 12.0
)

var (
	// ErrInvalidInput is matched by every calculator input error.
	ErrInvalidInput = errors.New("invalid input")
	// ErrTruckClassNotFound is returned when a truck class id matches nothing.
	ErrTruckClassNotFound = errors.New("truck class not found")
	// ErrTruckClassInactive is returned when a deactivated truck class is selected.
	ErrTruckClassInactive = errors.New("truck class is not active")
)

// InputError describes a rejected calculator input. It matches ErrInvalidInput.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return e.Reason
}

// Is reports whether target is ErrInvalidInput.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalidInput(format string, args ...any) error {
	return &InputError{Reason: fmt.Sprintf(format, args...)}
}

// CalculateFuel computes the recommended fuel range for a trip.
//
// The minimum is the fuel needed at the truck's effective efficiency; the maximum adds
// bufferPercentage on top. A warning is attached only when intendedFuelLiters is set,
// positive and above the maximum. The function is pure and safe for concurrent use.
func CalculateFuel(
	tripDistanceKm float64,
	truckClass *model.TruckClass,
	isLoaded bool,
	bufferPercentage float64,
	intendedFuelLiters *float64,
) (model.FuelRecommendation, error) {
	if math.IsNaN(tripDistanceKm) || tripDistanceKm <= 0 {
		return model.FuelRecommendation{}, invalidInput("Trip distance must be positive.")
	}
	if math.IsNaN(bufferPercentage) || bufferPercentage < MinBufferPercentage || bufferPercentage > MaxBufferPercentage {
		return model.FuelRecommendation{}, invalidInput("Buffer percentage must be %g–%g%%.", MinBufferPercentage, MaxBufferPercentage)
	}
	if truckClass == nil {
		return model.FuelRecommendation{}, invalidInput("Truck class is required.")
	}

	effective := truckClass.EffectiveKmPerLiter(isLoaded)
	if effective <= 0 {
		return model.FuelRecommendation{}, invalidInput("Truck class efficiency must be positive.")
	}

	base := tripDistanceKm / effective
	buffer := base * (bufferPercentage / 100)
	maxFuel := base + buffer

	rec := model.FuelRecommendation{
		EffectiveKmPerLiter: effective,
		BaseFuelLiters:      base,
		MinFuelLiters:       base,
		MaxFuelLiters:       maxFuel,
		BufferPercentage:    bufferPercentage,
	}

	if intendedFuelLiters != nil && *intendedFuelLiters > 0 && *intendedFuelLiters > maxFuel {
		intended := *intendedFuelLiters
		rec.WarningMessage = fmt.Sprintf(
			"Intended fuel (%.2f L) exceeds recommended max (%.2f L) by %.2f L. Review this decision.",
			intended, maxFuel, intended-maxFuel,
		)
	}

	return rec, nil
}

// FuelRequest is a calculation request that names its truck class by id.
type FuelRequest struct {
	TripDistanceKm     float64
	TruckClassID       string
	IsLoaded           bool
	BufferPercentage   *float64
	IntendedFuelLiters *float64
}

// FuelResult pairs a recommendation with the truck class it was computed for.
type FuelResult struct {
	TruckClass     *model.TruckClass
	Recommendation model.FuelRecommendation
}

// FuelCalculator resolves truck classes and computes recommendations.
type FuelCalculator interface {
	Calculate(ctx context.Context, req FuelRequest) (*FuelResult, error)
	DefaultBufferPercentage() float64
}

// CalculatorOption configures a FuelCalculatorService.
type CalculatorOption func(*FuelCalculatorService)

// FuelCalculatorService implements FuelCalculator on top of a TruckClassService.
type FuelCalculatorService struct {
	truckClasses  TruckClassService
	defaultBuffer float64
}

// NewFuelCalculatorService creates a calculator with the default 12% buffer.
func NewFuelCalculatorService(truckClasses TruckClassService, opts ...CalculatorOption) *FuelCalculatorService {
	s := &FuelCalculatorService{
		truckClasses:  truckClasses,
		defaultBuffer: DefaultBufferPercentage,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithDefaultBuffer sets the buffer applied when a request carries none.
// Values outside the accepted range are ignored.
func WithDefaultBuffer(pct float64) CalculatorOption {
	return func(s *FuelCalculatorService) {
		if pct >= MinBufferPercentage && pct <= MaxBufferPercentage {
			s.defaultBuffer = pct
		}
	}
}

// DefaultBufferPercentage returns the buffer applied when a request carries none.
func (s *FuelCalculatorService) DefaultBufferPercentage() float64 {
	return s.defaultBuffer
}

// Calculate resolves the active truck class and computes the recommendation.
func (s *FuelCalculatorService) Calculate(ctx context.Context, req FuelRequest) (*FuelResult, error) {
	start := time.Now()

	result, err := s.calculate(ctx, req)

	status := metrics.StatusSuccess
	switch {
	case err == nil:
		if result.Recommendation.HasWarning() {
			metrics.RecordFuelWarning(result.TruckClass.Name)
		}
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrTruckClassInactive):
		status = metrics.StatusInvalidInput
	case errors.Is(err, ErrTruckClassNotFound):
		status = metrics.StatusNotFound
	default:
		status = metrics.StatusError
	}
	metrics.RecordFuelCalculation(time.Since(start), status)

	return result, err
}

func (s *FuelCalculatorService) calculate(ctx context.Context, req FuelRequest) (*FuelResult, error) {
	if s.truckClasses == nil {
		return nil, ErrRepositoryNotConfigured
	}

	tc, err := s.truckClasses.Get(ctx, req.TruckClassID)
	if err != nil {
		return nil, err
	}
	if !tc.IsActive {
		return nil, fmt.Errorf("%w: %s", ErrTruckClassInactive, tc.Name)
	}

	buffer := s.defaultBuffer
	if req.BufferPercentage != nil {
		buffer = *req.BufferPercentage
	}

	rec, err := CalculateFuel(req.TripDistanceKm, tc, req.IsLoaded, buffer, req.IntendedFuelLiters)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("truck_class", tc.Name).
		Float64("trip_distance_km", req.TripDistanceKm).
		Bool("is_loaded", req.IsLoaded).
		Float64("max_fuel_liters", rec.MaxFuelLiters).
		Bool("warning", rec.HasWarning()).
		Msg("fuel recommendation computed")

	return &FuelResult{TruckClass: tc, Recommendation: rec}, nil
}
