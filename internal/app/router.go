// Package app provides router configuration.
package app

import (
	"github.com/guttosm/fuel-service/config"
	"github.com/guttosm/fuel-service/internal/http"
)

// InitializeRouter builds the router configuration and the health handler.
func InitializeRouter(cfg config.Config, store *StoreComponents, services *ServiceComponents) http.RouterConfig {
	healthHandler := http.NewHealthHandler()

	healthHandler.RegisterChecker("truck_classes", http.HealthCheckFunc(store.TruckClassRepo.Ping))
	for name, checker := range store.HealthCheckers {
		healthHandler.RegisterChecker(name, checker)
	}
	for name, checker := range services.HealthCheckers {
		healthHandler.RegisterChecker(name, checker)
	}
	for name, cb := range store.CircuitBreakers {
		healthHandler.RegisterCircuitBreaker(name, cb)
	}

	routerCfg := http.DefaultRouterConfig()
	routerCfg.RateLimit = cfg.Server.RateLimit
	routerCfg.RateWindow = cfg.Server.RateWindow
	if cfg.Server.RequestTimeout > 0 {
		routerCfg.RequestTimeout = cfg.Server.RequestTimeout
	}
	routerCfg.EnableAuth = cfg.Auth.Enabled
	routerCfg.APIKeys = cfg.Auth.APIKeys
	routerCfg.IdempotencyStore = services.IdempotencyStore
	routerCfg.CORSOrigins = cfg.Server.CORSOrigins
	routerCfg.SwaggerUser = cfg.Server.SwaggerUser
	routerCfg.SwaggerPass = cfg.Server.SwaggerPass
	routerCfg.Calculator = services.Calculator
	routerCfg.TruckClasses = services.TruckClasses
	routerCfg.AuthService = services.AuthService
	routerCfg.Logs = store.LoggingService
	routerCfg.Health = healthHandler

	return routerCfg
}
