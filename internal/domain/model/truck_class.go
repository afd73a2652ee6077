// Package model defines the core domain entities for the fuel service.
package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// DefaultLoadedMultiplier is applied to new truck classes that don't specify one (15% reduction).
	DefaultLoadedMultiplier = 0.85
	// MinBaseKmPerLiter is the lowest accepted empty-load efficiency.
	MinBaseKmPerLiter = 1.0
	// MinLoadedMultiplier is the lowest accepted load multiplier.
	MinLoadedMultiplier = 0.5
	// MaxLoadedMultiplier caps the load multiplier: loading never increases efficiency.
	MaxLoadedMultiplier = 1.0
	// MaxTruckClassNameLength is the longest accepted truck class name.
	MaxTruckClassNameLength = 100
)

// ErrInvalidTruckClass is returned when a truck class violates its field constraints.
var ErrInvalidTruckClass = errors.New("invalid truck class")

// TruckClass is a named category of delivery vehicle with a known empty-load
// fuel efficiency and a load-penalty multiplier.
//
// @Description Truck class with fuel efficiency characteristics
type TruckClass struct {
	// ID is the storage identifier (ObjectID hex, SQL id, or in-memory sequence)
	ID string `json:"id" example:"665f1c2e8b3e4a0012345678"`
	// Name uniquely identifies the truck class
	Name string `json:"name" example:"2-Axle Truck"`
	// BaseKmPerLiter is the fuel efficiency when empty
	BaseKmPerLiter float64 `json:"base_km_per_liter" example:"5"`
	// LoadedMultiplier scales efficiency when the truck is loaded (0.85 = 15% reduction)
	LoadedMultiplier float64 `json:"loaded_multiplier" example:"0.85"`
	// IsActive hides the class from selection when false
	IsActive  bool      `json:"is_active" example:"true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
} // @name TruckClass

// NewTruckClass creates an active truck class, applying the default multiplier when zero.
func NewTruckClass(name string, baseKmPerLiter, loadedMultiplier float64) TruckClass {
	if loadedMultiplier == 0 {
		loadedMultiplier = DefaultLoadedMultiplier
	}
	return TruckClass{
		Name:             strings.TrimSpace(name),
		BaseKmPerLiter:   baseKmPerLiter,
		LoadedMultiplier: loadedMultiplier,
		IsActive:         true,
	}
}

// EffectiveKmPerLiter returns the fuel efficiency for the given load status.
func (t TruckClass) EffectiveKmPerLiter(isLoaded bool) float64 {
	if isLoaded {
		return t.BaseKmPerLiter * t.LoadedMultiplier
	}
	return t.BaseKmPerLiter
}

// Validate checks the persisted field constraints.
func (t TruckClass) Validate() error {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTruckClass)
	}
	if utf8.RuneCountInString(name) > MaxTruckClassNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidTruckClass, MaxTruckClassNameLength)
	}
	// NaN compares false against every bound.
	if math.IsNaN(t.BaseKmPerLiter) || math.IsInf(t.BaseKmPerLiter, 0) || t.BaseKmPerLiter < MinBaseKmPerLiter {
		return fmt.Errorf("%w: base_km_per_liter must be at least %.1f", ErrInvalidTruckClass, MinBaseKmPerLiter)
	}
	if math.IsNaN(t.LoadedMultiplier) || t.LoadedMultiplier < MinLoadedMultiplier || t.LoadedMultiplier > MaxLoadedMultiplier {
		return fmt.Errorf("%w: loaded_multiplier must be between %.1f and %.1f",
			ErrInvalidTruckClass, MinLoadedMultiplier, MaxLoadedMultiplier)
	}
	return nil
}

// String returns the truck class name.
func (t TruckClass) String() string {
	return t.Name
}
