package http

import (
	"embed"
	"errors"
	"html/template"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/guttosm/fuel-service/internal/domain/dto"
	"github.com/guttosm/fuel-service/internal/domain/model"
	"github.com/guttosm/fuel-service/internal/i18n"
	"github.com/guttosm/fuel-service/internal/logger"
	"github.com/guttosm/fuel-service/internal/middleware"
	"github.com/guttosm/fuel-service/internal/service"
)

const formTemplateName = "fuel_form.html"

// Form field names, shared with the template.
const (
	fieldTripDistance     = "trip_distance"
	fieldTruckClass       = "truck_class"
	fieldLoadStatus       = "load_status"
	fieldBufferPercentage = "buffer_percentage"
	fieldIntendedFuel     = "intended_fuel"
)

const (
	msgRequired      = "This field is required."
	msgEnterNumber   = "Enter a number."
	msgInvalidChoice = "Select a valid choice. That choice is not one of the available choices."
)

var formFieldNames = map[string]string{
	"TripDistanceKm":     fieldTripDistance,
	"TruckClassID":       fieldTruckClass,
	"LoadStatus":         fieldLoadStatus,
	"BufferPercentage":   fieldBufferPercentage,
	"IntendedFuelLiters": fieldIntendedFuel,
}

//go:embed templates/*.html
var templateFS embed.FS

// LoadTemplates parses the embedded HTML templates.
func LoadTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// formValues echoes the submitted strings back into the form.
type formValues struct {
	TripDistance     string
	TruckClass       string
	LoadStatus       string
	BufferPercentage string
	IntendedFuel     string
}

// formPage is the template data for the calculator page.
type formPage struct {
	TruckClasses   []model.TruckClass
	Values         formValues
	FieldErrors    map[string]string
	NonFieldErrors []string
	Result         *model.FuelRecommendation
	TruckClassName string
	Error          string
}

// FormHandler serves the operator calculator page.
type FormHandler struct {
	calculator   service.FuelCalculator
	truckClasses service.TruckClassService
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(calculator service.FuelCalculator, truckClasses service.TruckClassService) *FormHandler {
	return &FormHandler{calculator: calculator, truckClasses: truckClasses}
}

// Show handles GET / and renders an empty form with defaults.
func (h *FormHandler) Show(c *gin.Context) {
	page := formPage{
		Values: formValues{
			LoadStatus:       dto.LoadStatusEmpty,
			BufferPercentage: strconv.FormatFloat(h.calculator.DefaultBufferPercentage(), 'f', -1, 64),
		},
	}
	h.render(c, http.StatusOK, &page)
}

// Submit handles POST /: validates the form, calculates and renders the result or errors.
func (h *FormHandler) Submit(c *gin.Context) {
	values, req, fieldErrs, nonFieldErrs := parseCalculatorForm(c)
	page := formPage{Values: values, FieldErrors: fieldErrs, NonFieldErrors: nonFieldErrs}

	if len(fieldErrs) > 0 || len(nonFieldErrs) > 0 {
		h.render(c, http.StatusOK, &page)
		return
	}

	result, err := h.calculator.Calculate(c.Request.Context(), service.FuelRequest{
		TripDistanceKm:     req.Distance(),
		TruckClassID:       req.TruckClassID,
		IsLoaded:           req.IsLoaded(),
		BufferPercentage:   req.BufferPercentage,
		IntendedFuelLiters: req.IntendedFuel(),
	})

	var inputErr *service.InputError
	switch {
	case err == nil:
		page.Result = &result.Recommendation
		page.TruckClassName = result.TruckClass.Name
		middleware.AuditLog(c, model.ActionCalculateFuel, "Fuel recommendation computed", map[string]interface{}{
			"truck_class":      result.TruckClass.Name,
			"trip_distance_km": req.Distance(),
			"is_loaded":        req.IsLoaded(),
			"max_fuel_liters":  result.Recommendation.MaxFuelLiters,
			"warning":          result.Recommendation.HasWarning(),
			"source":           "form",
		})
	case errors.Is(err, service.ErrTruckClassNotFound), errors.Is(err, service.ErrTruckClassInactive):
		page.FieldErrors = map[string]string{fieldTruckClass: msgInvalidChoice}
	case errors.As(err, &inputErr):
		page.Error = i18n.T(c, i18n.ErrKeyCalculation) + ": " + inputErr.Reason
	default:
		_ = c.Error(err)
		page.Error = i18n.T(c, i18n.ErrKeyCalculation) + ": " + i18n.T(c, i18n.ErrKeyServiceUnavailable)
		h.render(c, http.StatusServiceUnavailable, &page)
		return
	}

	h.render(c, http.StatusOK, &page)
}

// render fills in the truck class choices and writes the page.
func (h *FormHandler) render(c *gin.Context, status int, page *formPage) {
	classes, err := h.truckClasses.ListActive(c.Request.Context())
	if err != nil {
		log := logger.Component("form")
		log.Warn().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("listing truck classes for form")
		if page.Error == "" {
			page.Error = i18n.T(c, i18n.ErrKeyServiceUnavailable)
		}
		status = http.StatusServiceUnavailable
	}
	page.TruckClasses = classes
	c.HTML(status, formTemplateName, page)
}

// parseCalculatorForm reads and validates the posted form. Numbers are parsed by hand so
// that blank optional fields stay unset instead of binding as zero.
func parseCalculatorForm(c *gin.Context) (formValues, *dto.CalculateFuelRequest, map[string]string, []string) {
	values := formValues{
		TripDistance:     strings.TrimSpace(c.PostForm(fieldTripDistance)),
		TruckClass:       strings.TrimSpace(c.PostForm(fieldTruckClass)),
		LoadStatus:       strings.TrimSpace(c.PostForm(fieldLoadStatus)),
		BufferPercentage: strings.TrimSpace(c.PostForm(fieldBufferPercentage)),
		IntendedFuel:     strings.TrimSpace(c.PostForm(fieldIntendedFuel)),
	}
	fieldErrs := make(map[string]string)

	number := func(field, raw string, required bool) *float64 {
		if raw == "" {
			if required {
				fieldErrs[field] = msgRequired
			}
			return nil
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			fieldErrs[field] = msgEnterNumber
			return nil
		}
		return &f
	}

	req := &dto.CalculateFuelRequest{
		TruckClassID: values.TruckClass,
		LoadStatus:   values.LoadStatus,
	}
	req.TripDistanceKm = number(fieldTripDistance, values.TripDistance, true)
	if values.TruckClass == "" {
		fieldErrs[fieldTruckClass] = msgRequired
	}
	if values.LoadStatus == "" {
		fieldErrs[fieldLoadStatus] = msgRequired
	}
	req.BufferPercentage = number(fieldBufferPercentage, values.BufferPercentage, true)
	req.IntendedFuelLiters = number(fieldIntendedFuel, values.IntendedFuel, false)

	if err := binding.Validator.ValidateStruct(req); err != nil {
		for field, msg := range fieldErrorsWith(err, formFieldNames) {
			if _, seen := fieldErrs[field]; !seen {
				fieldErrs[field] = msg
			}
		}
	}

	// Cross-field checks run on whatever parsed so both kinds of error show together.
	var nonFieldErrs []string
	for _, ve := range req.CrossFieldErrors() {
		if ve.Field == fieldLoadStatus {
			if _, seen := fieldErrs[fieldLoadStatus]; !seen {
				fieldErrs[fieldLoadStatus] = ve.Message
			}
			continue
		}
		nonFieldErrs = append(nonFieldErrs, ve.Message)
	}

	if len(fieldErrs) > 0 || len(nonFieldErrs) > 0 {
		if len(fieldErrs) == 0 {
			fieldErrs = nil
		}
		return values, nil, fieldErrs, nonFieldErrs
	}
	return values, req, nil, nil
}
