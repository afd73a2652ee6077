package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/fuel-service/internal/logger"
	"github.com/guttosm/fuel-service/internal/middleware"
	"github.com/guttosm/fuel-service/internal/service"
)

// TruckClassRoutes registers truck class reads and the admin management endpoints.
type TruckClassRoutes struct {
	handler *TruckClassesHandler
}

// NewTruckClassRoutes creates a new TruckClassRoutes instance.
func NewTruckClassRoutes(svc service.TruckClassService) *TruckClassRoutes {
	return &TruckClassRoutes{handler: NewTruckClassesHandler(svc)}
}

// Register adds the public reads and, when an auth service is configured, the admin writes.
func (r *TruckClassRoutes) Register(api *gin.RouterGroup, cfg *RouterConfig) {
	api.GET("/truck-classes", r.handler.ListActive)
	api.GET("/truck-classes/:id", r.handler.Get)

	if cfg.AuthService == nil {
		log := logger.Component("router")
		log.Warn().Msg("no auth service configured, truck class management endpoints disabled")
		return
	}

	admin := api.Group("")
	admin.Use(
		middleware.JWTAuth(cfg.AuthService),
		middleware.RequireRole(service.RoleAdmin),
	)
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		admin.Use(limiter.ActorRateLimit())
	}
	if cfg.EnableIdempotency {
		admin.Use(middleware.Idempotency(cfg.idempotencyConfig()))
	}

	admin.GET("/admin/truck-classes", r.handler.ListAll)
	admin.POST("/truck-classes", r.handler.Create)
	admin.PUT("/truck-classes/:id", r.handler.Update)
	admin.DELETE("/truck-classes/:id", r.handler.Deactivate)
}
