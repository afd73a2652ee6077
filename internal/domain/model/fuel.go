package model

import (
	"fmt"
	"strconv"
	"strings"
)

// FuelRecommendation is the result of a fuel allocation calculation.
// Values are immutable once produced by the calculator.
//
// @Description Recommended fuel range for a trip
// @Example {"effective_km_per_liter": 8.5, "base_fuel_liters": 17.65, "min_fuel_liters": 17.65, "max_fuel_liters": 19.76, "buffer_percentage": 12}
type FuelRecommendation struct {
	// EffectiveKmPerLiter is the efficiency after load adjustment
	EffectiveKmPerLiter float64 `json:"effective_km_per_liter" example:"8.5"`
	// BaseFuelLiters is the fuel required for the distance at effective efficiency
	BaseFuelLiters float64 `json:"base_fuel_liters" example:"17.647"`
	// MinFuelLiters is the minimum recommended amount (equal to base)
	MinFuelLiters float64 `json:"min_fuel_liters" example:"17.647"`
	// MaxFuelLiters is base plus the safety buffer
	MaxFuelLiters float64 `json:"max_fuel_liters" example:"19.765"`
	// BufferPercentage is the safety buffer applied
	BufferPercentage float64 `json:"buffer_percentage" example:"12"`
	// WarningMessage is set only when intended fuel exceeds the maximum
	WarningMessage string `json:"warning_message,omitempty" example:"Intended fuel (25.00 L) exceeds recommended max (19.76 L) by 5.24 L. Review this decision."`
} // @name FuelRecommendation

// HasWarning reports whether the recommendation carries an over-allocation warning.
func (r FuelRecommendation) HasWarning() bool {
	return r.WarningMessage != ""
}

// BufferLiters returns the amount added on top of the base requirement.
func (r FuelRecommendation) BufferLiters() float64 {
	return r.MaxFuelLiters - r.MinFuelLiters
}

// String renders the multi-line summary shown to operators.
func (r FuelRecommendation) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Effective Efficiency: %.2f km/L\n", r.EffectiveKmPerLiter)
	fmt.Fprintf(&b, "Base Fuel Required: %.2f L\n", r.BaseFuelLiters)
	fmt.Fprintf(&b, "Recommended Range: %.2f – %.2f L\n", r.MinFuelLiters, r.MaxFuelLiters)
	fmt.Fprintf(&b, "Buffer Applied: %s%%", strconv.FormatFloat(r.BufferPercentage, 'f', -1, 64))
	if r.HasWarning() {
		b.WriteString("\n⚠️  ")
		b.WriteString(r.WarningMessage)
	}
	return b.String()
}
