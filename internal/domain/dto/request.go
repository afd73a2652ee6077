// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model. The same request types bind
// from JSON bodies and from the HTML form, so field-level rules live in binding tags
// and cross-field rules in Validate.
package dto

import "fmt"

// Intended fuel limits checked across fields in Validate.
// Distance and buffer ranges live in the binding tags.
const (
	MinIntendedFuelLiters = 5
	MaxIntendedFuelLiters = 300
)

// Load status values accepted by the calculator form and API.
const (
	LoadStatusEmpty  = "empty"
	LoadStatusLoaded = "loaded"
)

// CalculateFuelRequest carries the trip parameters for a fuel recommendation.
//
// @Description Trip parameters for a fuel recommendation
// @Example {"trip_distance_km": 150, "truck_class_id": "1", "load_status": "loaded", "buffer_percentage": 12, "intended_fuel_liters": 25}
type CalculateFuelRequest struct {
	// TripDistanceKm is the trip distance, between 0.01 and 1000 km.
	// A pointer so that an explicit 0 fails the range check rather than required.
	TripDistanceKm *float64 `form:"trip_distance" json:"trip_distance_km" binding:"required,gte=0.01,lte=1000" example:"150"`
	// TruckClassID identifies an active truck class.
	TruckClassID string `form:"truck_class" json:"truck_class_id" binding:"required" example:"1"`
	// LoadStatus is "empty" (default) or "loaded".
	LoadStatus string `form:"load_status" json:"load_status" binding:"omitempty,oneof=empty loaded" example:"loaded" enums:"empty,loaded"`
	// BufferPercentage is the safety buffer, 5-25. Defaults to the server setting.
	BufferPercentage *float64 `form:"buffer_percentage" json:"buffer_percentage,omitempty" binding:"omitempty,gte=5,lte=25" example:"12"`
	// IntendedFuelLiters is the planned issue amount, checked against the recommended maximum.
	IntendedFuelLiters *float64 `form:"intended_fuel" json:"intended_fuel_liters,omitempty" binding:"omitempty,gte=0" example:"25"`
} // @name CalculateFuelRequest

// ValidationError represents a field or cross-field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrIntendedFuelTooLow is returned when a positive intended amount is below the trip minimum.
	ErrIntendedFuelTooLow = &ValidationError{
		Field:   "intended_fuel_liters",
		Message: fmt.Sprintf("Intended fuel should be at least %d litres for a valid trip.", MinIntendedFuelLiters),
	}
	// ErrIntendedFuelTooHigh is returned when the intended amount is above the sanity ceiling.
	ErrIntendedFuelTooHigh = &ValidationError{
		Field:   "intended_fuel_liters",
		Message: fmt.Sprintf("Intended fuel exceeds reasonable maximum (%d litres). Check your input.", MaxIntendedFuelLiters),
	}
	// ErrInvalidLoadStatus is returned for load statuses other than empty or loaded.
	ErrInvalidLoadStatus = &ValidationError{
		Field:   "load_status",
		Message: "must be one of: empty, loaded",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs the cross-field checks that binding tags can't express
// and returns the first failure.
func (r *CalculateFuelRequest) Validate() error {
	if errs := r.CrossFieldErrors(); len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// CrossFieldErrors returns every cross-field failure, load status first.
func (r *CalculateFuelRequest) CrossFieldErrors() []*ValidationError {
	var errs []*ValidationError
	if r.LoadStatus != "" && r.LoadStatus != LoadStatusEmpty && r.LoadStatus != LoadStatusLoaded {
		errs = append(errs, ErrInvalidLoadStatus)
	}
	if intended := r.IntendedFuel(); intended != nil {
		switch {
		case *intended < MinIntendedFuelLiters:
			errs = append(errs, ErrIntendedFuelTooLow)
		case *intended > MaxIntendedFuelLiters:
			errs = append(errs, ErrIntendedFuelTooHigh)
		}
	}
	return errs
}

// IsLoaded reports whether the truck travels loaded.
func (r *CalculateFuelRequest) IsLoaded() bool {
	return r.LoadStatus == LoadStatusLoaded
}

// Distance returns the trip distance, or 0 when unset.
func (r *CalculateFuelRequest) Distance() float64 {
	if r.TripDistanceKm == nil {
		return 0
	}
	return *r.TripDistanceKm
}

// IntendedFuel returns the intended amount, or nil when blank or zero.
func (r *CalculateFuelRequest) IntendedFuel() *float64 {
	if r.IntendedFuelLiters == nil || *r.IntendedFuelLiters <= 0 {
		return nil
	}
	v := *r.IntendedFuelLiters
	return &v
}

// CreateTruckClassRequest is the body for creating a truck class.
//
// @Description Request to create a truck class
// @Example {"name": "2-Axle Truck", "base_km_per_liter": 5, "loaded_multiplier": 0.85}
type CreateTruckClassRequest struct {
	Name             string   `json:"name" binding:"required,max=100" example:"2-Axle Truck"`
	BaseKmPerLiter   float64  `json:"base_km_per_liter" binding:"required,gte=1" example:"5"`
	LoadedMultiplier *float64 `json:"loaded_multiplier,omitempty" binding:"omitempty,gte=0.5,lte=1" example:"0.85"`
	IsActive         *bool    `json:"is_active,omitempty" example:"true"`
} // @name CreateTruckClassRequest

// UpdateTruckClassRequest is the body for a partial truck class update.
//
// @Description Partial update of a truck class
// @Example {"loaded_multiplier": 0.8}
type UpdateTruckClassRequest struct {
	Name             *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100" example:"2-Axle Truck"`
	BaseKmPerLiter   *float64 `json:"base_km_per_liter,omitempty" binding:"omitempty,gte=1" example:"5.5"`
	LoadedMultiplier *float64 `json:"loaded_multiplier,omitempty" binding:"omitempty,gte=0.5,lte=1" example:"0.8"`
	IsActive         *bool    `json:"is_active,omitempty" example:"true"`
} // @name UpdateTruckClassRequest

// IsEmpty reports whether the update carries no fields.
func (r *UpdateTruckClassRequest) IsEmpty() bool {
	return r.Name == nil && r.BaseKmPerLiter == nil && r.LoadedMultiplier == nil && r.IsActive == nil
}
