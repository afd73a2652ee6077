//go:build !integration

package app

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/guttosm/fuel-service/internal/http"
)

func TestInitializeRouter(t *testing.T) {
	cfg := memoryConfig()
	cfg.Server.RateLimit = 50
	cfg.Server.RateWindow = 30 * time.Second
	cfg.Server.CORSOrigins = []string{"https://fleet.example.com"}
	cfg.Server.SwaggerUser = "docs"
	cfg.Server.SwaggerPass = "secret"
	cfg.Auth.Enabled = true
	cfg.Auth.APIKeys = map[string]bool{"k": true}

	store := memoryStore()
	services, err := InitializeServices(context.Background(), cfg, store)
	require.NoError(t, err)
	t.Cleanup(services.Close)

	routerCfg := InitializeRouter(cfg, store, services)

	assert.Equal(t, 50, routerCfg.RateLimit)
	assert.Equal(t, 30*time.Second, routerCfg.RateWindow)
	assert.Equal(t, 5*time.Second, routerCfg.RequestTimeout)
	assert.True(t, routerCfg.EnableAuth)
	assert.True(t, routerCfg.EnableIdempotency)
	assert.Equal(t, cfg.Auth.APIKeys, routerCfg.APIKeys)
	assert.Equal(t, cfg.Server.CORSOrigins, routerCfg.CORSOrigins)
	assert.Equal(t, "docs", routerCfg.SwaggerUser)
	assert.Equal(t, "secret", routerCfg.SwaggerPass)
	assert.Same(t, services.Calculator, routerCfg.Calculator)
	assert.Same(t, services.TruckClasses, routerCfg.TruckClasses)
	assert.Nil(t, routerCfg.AuthService)
	assert.NotNil(t, routerCfg.IdempotencyStore)
	assert.NotNil(t, routerCfg.Health)
}

func TestInitializeRouter_RequestTimeoutDefault(t *testing.T) {
	cfg := memoryConfig()
	cfg.Server.RequestTimeout = 0

	store := memoryStore()
	services, err := InitializeServices(context.Background(), cfg, store)
	require.NoError(t, err)
	t.Cleanup(services.Close)

	routerCfg := InitializeRouter(cfg, store, services)

	assert.Equal(t, internalhttp.DefaultRouterConfig().RequestTimeout, routerCfg.RequestTimeout)
}

func TestInitializeRouter_ReadinessUsesStoreCheckers(t *testing.T) {
	tests := []struct {
		name       string
		checkErr   error
		wantStatus int
	}{
		{name: "healthy checker", wantStatus: http.StatusOK},
		{name: "failing checker", checkErr: errors.New("connection refused"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := memoryConfig()
			store := memoryStore()
			store.HealthCheckers["database"] = internalhttp.HealthCheckFunc(func(context.Context) error {
				return tt.checkErr
			})
			services, err := InitializeServices(context.Background(), cfg, store)
			require.NoError(t, err)
			t.Cleanup(services.Close)

			router := internalhttp.NewRouter(InitializeRouter(cfg, store, services))
			w := serve(router, http.MethodGet, "/readyz", "", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), "database")
		})
	}
}
