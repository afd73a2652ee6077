package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/fuel-service/internal/logger"
	"github.com/guttosm/fuel-service/internal/middleware"
	"github.com/guttosm/fuel-service/internal/service"
)

// AuditLogRoutes registers the admin audit log listing.
type AuditLogRoutes struct {
	handler *AuditLogsHandler
}

// NewAuditLogRoutes creates a new AuditLogRoutes instance.
func NewAuditLogRoutes(svc service.LoggingService) *AuditLogRoutes {
	return &AuditLogRoutes{handler: NewAuditLogsHandler(svc)}
}

// Register adds GET /admin/audit-logs behind admin authentication.
func (r *AuditLogRoutes) Register(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.AuthService == nil {
		log := logger.Component("router")
		log.Warn().Msg("no auth service configured, audit log endpoint disabled")
		return
	}

	admin := api.Group("/admin")
	admin.Use(
		middleware.JWTAuth(cfg.AuthService),
		middleware.RequireRole(service.RoleAdmin),
	)
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		admin.Use(limiter.ActorRateLimit())
	}

	admin.GET("/audit-logs", r.handler.List)
}
