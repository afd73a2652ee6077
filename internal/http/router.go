package http

import (
	"html/template"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/fuel-service/internal/metrics"
	"github.com/guttosm/fuel-service/internal/middleware"
	"github.com/guttosm/fuel-service/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	APIKeys           map[string]bool
	EnableAuth        bool
	EnableIdempotency bool
	IdempotencyStore  middleware.IdempotencyStore
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string

	Calculator   service.FuelCalculator
	TruckClasses service.TruckClassService
	AuthService  service.AuthService
	Logs         service.LoggingService
	Health       *HealthHandler
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:         100,
		RateWindow:        time.Minute,
		RequestTimeout:    middleware.DefaultRequestTimeout,
		EnableIdempotency: true,
	}
}

func (cfg *RouterConfig) idempotencyConfig() middleware.IdempotencyConfig {
	if cfg.IdempotencyStore == nil {
		return middleware.DefaultIdempotencyConfig()
	}
	return middleware.IdempotencyConfig{Store: cfg.IdempotencyStore, Enabled: true}
}

// NewRouter builds the gin engine: calculator page, JSON API and infrastructure routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.SetHTMLTemplate(template.Must(LoadTemplates()))

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, &cfg)

	fuel := NewFuelRoutes(cfg.Calculator, cfg.TruckClasses)
	fuel.RegisterPages(router)

	api := router.Group("/api")
	registrars := []RouteRegistrar{
		fuel,
		NewTruckClassRoutes(cfg.TruckClasses),
	}
	if cfg.AuthService != nil {
		registrars = append(registrars, NewAuthRoutes(cfg.AuthService))
	}
	if cfg.Logs != nil {
		registrars = append(registrars, NewAuditLogRoutes(cfg.Logs))
	}
	for _, r := range registrars {
		r.Register(api, &cfg)
	}

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(
		middleware.CORS(cfg.CORSOrigins),
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger("/metrics", "/healthz", "/readyz"),
		middleware.ErrorHandler(),
		middleware.Timeout(cfg.RequestTimeout),
	)

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, cfg *RouterConfig) {
	health := cfg.Health
	if health == nil {
		health = NewHealthHandler()
	}
	health.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
