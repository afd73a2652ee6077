// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/fuel-service/config"
	"github.com/guttosm/fuel-service/internal/http"
	"github.com/guttosm/fuel-service/internal/middleware"
)

// App is the wired application: the HTTP router and the resources behind it.
type App struct {
	Router   *gin.Engine
	Store    *StoreComponents
	Services *ServiceComponents
}

// InitializeApp creates and wires all application dependencies.
// The caller owns the returned App and must Close it.
func InitializeApp(ctx context.Context, cfg config.Config) (*App, error) {
	// Logger first; everything below logs.
	InitializeLogger(cfg.Log)

	store, err := InitializeStore(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	services, err := InitializeServices(ctx, cfg, store)
	if err != nil {
		_ = store.Close(ctx)
		return nil, err
	}

	if store.LoggingService != nil {
		middleware.InitAsyncLogger(store.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	routerCfg := InitializeRouter(cfg, store, services)

	log.Info().
		Str("driver", store.Driver).
		Str("cache", cfg.Cache.Backend).
		Bool("admin_api", services.AuthService != nil).
		Msg("Application initialized")

	return &App{
		Router:   http.NewRouter(routerCfg),
		Store:    store,
		Services: services,
	}, nil
}

// Close flushes pending audit logs and releases caches and connections.
func (a *App) Close(ctx context.Context) error {
	if a.Store != nil && a.Store.LoggingService != nil {
		middleware.StopAsyncLogger()
	}
	a.Services.Close()
	return a.Store.Close(ctx)
}
