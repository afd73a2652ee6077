package http

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/guttosm/fuel-service/internal/circuitbreaker"
	"github.com/guttosm/fuel-service/internal/domain/dto"
	"github.com/guttosm/fuel-service/internal/domain/model"
	"github.com/guttosm/fuel-service/internal/i18n"
	"github.com/guttosm/fuel-service/internal/middleware"
	"github.com/guttosm/fuel-service/internal/service"
)

// Response DTO pools for reducing allocations.
var (
	successResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.ErrorResponse{}
		},
	}
)

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	resp.Data = nil
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	resp.Error = ""
	resp.Message = ""
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	resp.Details = nil
	resp.TraceID = ""
	errorResponsePool.Put(resp)
}

// Validator is implemented by request DTOs with cross-field rules.
type Validator interface {
	Validate() error
}

// BuildRequestAndValidate binds the JSON body into T and runs its Validate method, if any.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	if v, ok := any(&req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return &req, nil
}

// ResponseBuilder writes the standard success and error envelopes.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success wraps data in a SuccessResponse.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// gin serialises synchronously, so the pooled value can go back right after.
	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// Error sends a translated error envelope and records err on the context for logging.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.write(statusCode, i18n.T(b.c, messageKey), nil, err)
}

// ErrorWithMessage sends an error envelope with an already formatted message.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, message string, err error) {
	b.write(statusCode, message, nil, err)
}

// ValidationError answers 400 for a binding or Validate failure, with per-field details.
func (b *ResponseBuilder) ValidationError(err error) {
	details := FieldErrors(err)
	message := i18n.T(b.c, i18n.ErrKeyInvalidRequestBody)

	var ve *dto.ValidationError
	if errors.As(err, &ve) {
		message = ve.Error()
	} else if len(details) > 0 {
		message = i18n.T(b.c, i18n.ErrKeyInvalidRequest)
	}
	b.write(http.StatusBadRequest, message, details, err)
}

// ServiceError maps a service or store error to its HTTP status and message.
func (b *ResponseBuilder) ServiceError(err error) {
	var inputErr *service.InputError
	switch {
	case errors.As(err, &inputErr):
		b.write(http.StatusBadRequest, inputErr.Reason, nil, err)
	case errors.Is(err, service.ErrTruckClassNotFound):
		b.Error(http.StatusNotFound, i18n.ErrKeyTruckClassNotFound, err)
	case errors.Is(err, service.ErrTruckClassInactive):
		b.Error(http.StatusBadRequest, i18n.ErrKeyTruckClassInactive, err)
	case errors.Is(err, service.ErrDuplicateTruckClass):
		b.Error(http.StatusConflict, i18n.ErrKeyTruckClassDuplicate, err)
	case errors.Is(err, model.ErrInvalidTruckClass):
		b.write(http.StatusBadRequest, strings.TrimPrefix(err.Error(), model.ErrInvalidTruckClass.Error()+": "), nil, err)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen), errors.Is(err, service.ErrRepositoryNotConfigured):
		b.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
	default:
		b.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

func (b *ResponseBuilder) write(statusCode int, message string, details map[string]string, err error) {
	resp := getErrorResponse()
	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = message
	resp.Details = details
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}

// FieldErrors turns validator failures into json field name to message pairs.
// Errors that carry no field yield nil.
func FieldErrors(err error) map[string]string {
	return fieldErrorsWith(err, jsonFieldNames)
}

func fieldErrorsWith(err error, names map[string]string) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		var ve *dto.ValidationError
		if errors.As(err, &ve) {
			return map[string]string{ve.Field: ve.Message}
		}
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fieldName(fe, names)] = fieldMessage(fe)
	}
	return out
}

var jsonFieldNames = map[string]string{
	"TripDistanceKm":     "trip_distance_km",
	"TruckClassID":       "truck_class_id",
	"LoadStatus":         "load_status",
	"BufferPercentage":   "buffer_percentage",
	"IntendedFuelLiters": "intended_fuel_liters",
	"Name":               "name",
	"BaseKmPerLiter":     "base_km_per_liter",
	"LoadedMultiplier":   "loaded_multiplier",
	"Username":           "username",
	"Password":           "password",
	"ActionType":         "action_type",
	"RequestID":          "request_id",
}

func fieldName(fe validator.FieldError, names map[string]string) string {
	if name, ok := names[fe.StructField()]; ok {
		return name
	}
	return strings.ToLower(fe.Field())
}

// fieldMessage renders messages in the wording operators see on the form.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "gte", "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this value has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "lte", "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Select a valid choice. Allowed: %s.", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("Failed the %q check.", fe.Tag())
	}
}
