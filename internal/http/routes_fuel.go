package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/fuel-service/internal/middleware"
	"github.com/guttosm/fuel-service/internal/service"
)

// FuelRoutes registers the calculator page and the JSON calculation endpoint.
type FuelRoutes struct {
	api  *FuelHandler
	form *FormHandler
}

// NewFuelRoutes creates a new FuelRoutes instance.
func NewFuelRoutes(calculator service.FuelCalculator, truckClasses service.TruckClassService) *FuelRoutes {
	return &FuelRoutes{
		api:  NewFuelHandler(calculator),
		form: NewFormHandler(calculator, truckClasses),
	}
}

// RegisterPages registers the HTML calculator at the site root.
func (r *FuelRoutes) RegisterPages(router *gin.Engine) {
	router.GET("/", r.form.Show)
	router.POST("/", r.form.Submit)
}

// Register registers POST /fuel/calculate, behind API keys when they are configured.
func (r *FuelRoutes) Register(api *gin.RouterGroup, cfg *RouterConfig) {
	handlers := []gin.HandlerFunc{}
	if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
		handlers = append(handlers, middleware.APIKeyAuth(cfg.APIKeys))
	}
	handlers = append(handlers, r.api.Calculate)
	api.POST("/fuel/calculate", handlers...)
}
