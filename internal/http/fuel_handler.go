package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/fuel-service/internal/domain/dto"
	"github.com/guttosm/fuel-service/internal/domain/model"
	"github.com/guttosm/fuel-service/internal/middleware"
	"github.com/guttosm/fuel-service/internal/service"
)

// FuelHandler serves the JSON fuel calculation endpoint.
type FuelHandler struct {
	calculator service.FuelCalculator
}

// NewFuelHandler creates a new FuelHandler.
func NewFuelHandler(calculator service.FuelCalculator) *FuelHandler {
	return &FuelHandler{calculator: calculator}
}

// Calculate handles POST /api/fuel/calculate requests.
//
// @Summary      Calculate fuel recommendation
// @Description  Computes the minimum and maximum fuel to issue for a trip, given the truck class, load status and safety buffer. When intended_fuel_liters exceeds the maximum a warning_message is returned; the request still succeeds.
// @Tags         Fuel
// @Accept       json
// @Produce      json
// @Param        X-API-Key header string false "API key (required if API keys are configured)"
// @Param        request body dto.CalculateFuelRequest true "Trip parameters"
// @Success      200 {object} dto.SuccessResponse{data=dto.FuelCalculationResponse} "Fuel recommendation"
// @Failure      400 {object} dto.ErrorResponse "Invalid input or inactive truck class"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      404 {object} dto.ErrorResponse "Truck class not found"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure      503 {object} dto.ErrorResponse "Truck class store unavailable"
// @Router       /api/fuel/calculate [post]
func (h *FuelHandler) Calculate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CalculateFuelRequest](c)
	if err != nil {
		builder.ValidationError(err)
		return
	}

	result, err := h.calculator.Calculate(c.Request.Context(), service.FuelRequest{
		TripDistanceKm:     req.Distance(),
		TruckClassID:       req.TruckClassID,
		IsLoaded:           req.IsLoaded(),
		BufferPercentage:   req.BufferPercentage,
		IntendedFuelLiters: req.IntendedFuel(),
	})
	if err != nil {
		builder.ServiceError(err)
		return
	}

	middleware.AuditLog(c, model.ActionCalculateFuel, "Fuel recommendation computed", map[string]interface{}{
		"truck_class":      result.TruckClass.Name,
		"trip_distance_km": req.Distance(),
		"is_loaded":        req.IsLoaded(),
		"max_fuel_liters":  result.Recommendation.MaxFuelLiters,
		"warning":          result.Recommendation.HasWarning(),
	})

	builder.SuccessOK(dto.NewFuelCalculationResponse(result.TruckClass, req, result.Recommendation))
}
