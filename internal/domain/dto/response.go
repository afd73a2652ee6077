package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/fuel-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnavailable indicates a backing store is unavailable.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"trip_distance_km: must be between 0.01 and 1000"`
	// Details maps field names to their error messages
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetails attaches per-field error details.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	if len(details) > 0 {
		e.Details = details
	}
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// TruckClassSummary identifies the truck class used in a calculation.
type TruckClassSummary struct {
	ID   string `json:"id" example:"1"`
	Name string `json:"name" example:"2-Axle Truck"`
} // @name TruckClassSummary

// FuelCalculationResponse is the payload returned by the calculate endpoint.
//
// @Description Fuel recommendation with the inputs it was computed from
type FuelCalculationResponse struct {
	TruckClass     TruckClassSummary        `json:"truck_class"`
	TripDistanceKm float64                  `json:"trip_distance_km" example:"150"`
	IsLoaded       bool                     `json:"is_loaded" example:"true"`
	IntendedFuel   *float64                 `json:"intended_fuel_liters,omitempty" example:"25"`
	Recommendation model.FuelRecommendation `json:"recommendation"`
	BufferLiters   float64                  `json:"buffer_liters" example:"2.12"`
	Summary        string                   `json:"summary" example:"Effective Efficiency: 8.50 km/L"`
} // @name FuelCalculationResponse

// NewFuelCalculationResponse builds the response payload for a calculation.
func NewFuelCalculationResponse(tc *model.TruckClass, req *CalculateFuelRequest, rec model.FuelRecommendation) FuelCalculationResponse {
	return FuelCalculationResponse{
		TruckClass:     TruckClassSummary{ID: tc.ID, Name: tc.Name},
		TripDistanceKm: req.Distance(),
		IsLoaded:       req.IsLoaded(),
		IntendedFuel:   req.IntendedFuel(),
		Recommendation: rec,
		BufferLiters:   rec.BufferLiters(),
		Summary:        rec.String(),
	}
}

// TruckClassListResponse wraps a list of truck classes.
type TruckClassListResponse struct {
	Items []model.TruckClass `json:"items"`
	Count int                `json:"count" example:"5"`
} // @name TruckClassListResponse

// NewTruckClassListResponse wraps items, normalising nil to an empty list.
func NewTruckClassListResponse(items []model.TruckClass) TruckClassListResponse {
	if items == nil {
		items = []model.TruckClass{}
	}
	return TruckClassListResponse{Items: items, Count: len(items)}
}
