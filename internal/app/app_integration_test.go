//go:build integration

package app

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/fuel-service/config"
	"github.com/guttosm/fuel-service/internal/domain/dto"
	"github.com/guttosm/fuel-service/internal/domain/model"
	"github.com/guttosm/fuel-service/internal/middleware"
	"github.com/guttosm/fuel-service/internal/service"
	"github.com/guttosm/fuel-service/internal/testutil"
)

func mongoConfig(t *testing.T) config.Config {
	cfg := memoryConfig()
	cfg.Database.Driver = config.DriverMongoDB
	cfg.Database.URI = testutil.GetSharedContainerURI()
	cfg.Database.DatabaseName = testutil.SanitizeDBName(t.Name())
	cfg.Database.LogsTTL = 30 * 24 * time.Hour
	cfg.Auth.AdminPasswordHash = adminPasswordHash(t)
	return cfg
}

func TestInitializeApp_MongoDB(t *testing.T) {
	ctx := context.Background()

	a, err := InitializeApp(ctx, mongoConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(ctx) })

	assert.Equal(t, config.DriverMongoDB, a.Store.Driver)
	assert.NotNil(t, a.Store.LoggingService)
	assert.Contains(t, a.Store.HealthCheckers, "mongodb")
	assert.Len(t, a.Store.CircuitBreakers, 2)

	w := serve(a.Router, http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	tc, err := a.Services.TruckClasses.GetByName(ctx, "2-Axle Truck")
	require.NoError(t, err)

	w = serve(a.Router, http.MethodPost, "/api/fuel/calculate",
		`{"trip_distance_km":100,"truck_class_id":"`+tc.ID+`","load_status":"empty","buffer_percentage":12}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Recommended Range: 20.00 – 22.40 L")
}

func TestInitializeApp_MongoDB_AuditsAdminChanges(t *testing.T) {
	ctx := context.Background()

	a, err := InitializeApp(ctx, mongoConfig(t))
	require.NoError(t, err)

	w := serve(a.Router, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"`+testAdminPassword+`"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	token := extractAccessToken(t, w.Body.Bytes())

	auth := http.Header{"Authorization": {"Bearer " + token}}

	w = serve(a.Router, http.MethodPost, "/api/truck-classes",
		`{"name":"Road Train","base_km_per_liter":2.5,"loaded_multiplier":0.7}`, auth)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Cleanup(func() { _ = a.Close(ctx) })

	logging := a.Store.LoggingService
	require.Eventually(t, func() bool {
		n, err := logging.CountLogs(ctx, model.LogQueryOptions{ActionType: model.ActionCreateTruckClass})
		return err == nil && n == 1
	}, 10*time.Second, 100*time.Millisecond)

	entries, err := logging.QueryLogs(ctx, model.LogQueryOptions{ActionType: model.ActionCreateTruckClass})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "admin", entries[0].Actor)

	w = serve(a.Router, http.MethodGet, "/api/admin/audit-logs?action_type="+model.ActionCreateTruckClass, "", auth)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var page struct {
		Data dto.AuditLogListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, int64(1), page.Data.Total)
	require.Len(t, page.Data.Items, 1)
	assert.Equal(t, "Road Train", page.Data.Items[0].Fields["name"])

	w = serve(a.Router, http.MethodGet, "/api/admin/audit-logs", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInitializeApp_MongoDB_Unreachable(t *testing.T) {
	cfg := memoryConfig()
	cfg.Database.Driver = config.DriverMongoDB
	cfg.Database.URI = "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=500&connectTimeoutMS=500"
	cfg.Database.DatabaseName = "unreachable"

	a, err := InitializeApp(context.Background(), cfg)

	assert.Nil(t, a)
	assert.ErrorContains(t, err, "connect mongodb")
}

func TestInitializeStore_Postgres(t *testing.T) {
	ctx := context.Background()

	pg, err := testutil.SetupPostgres(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Cleanup(ctx) })

	cfg := memoryConfig()
	cfg.Database.Driver = config.DriverPostgres
	cfg.Database.PostgresDSN = pg.DSN
	cfg.Database.PostgresMaxConns = 4

	store, err := InitializeStore(ctx, cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(ctx) })

	assert.Equal(t, config.DriverPostgres, store.Driver)
	assert.Nil(t, store.LoggingService)
	assert.Contains(t, store.HealthCheckers, "postgres")
	assert.Contains(t, store.CircuitBreakers, "postgres_truck_classes")

	services, err := InitializeServices(ctx, cfg, store)
	require.NoError(t, err)
	t.Cleanup(services.Close)

	classes, err := services.TruckClasses.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, classes, 5)

	// Schema creation and seeding are both idempotent.
	again, err := InitializeStore(ctx, cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { _ = again.Close(ctx) })
	servicesAgain, err := InitializeServices(ctx, cfg, again)
	require.NoError(t, err)
	t.Cleanup(servicesAgain.Close)

	classes, err = servicesAgain.TruckClasses.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, classes, 5)
}

func TestInitializeServices_Redis(t *testing.T) {
	ctx := context.Background()

	rc, err := testutil.SetupRedis(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rc.Cleanup(ctx) })

	cfg := memoryConfig()
	cfg.Cache.Backend = config.CacheBackendRedis
	cfg.Cache.RedisAddr = rc.Addr

	store := memoryStore()
	services, err := InitializeServices(ctx, cfg, store)
	require.NoError(t, err)
	t.Cleanup(services.Close)

	assert.IsType(t, &service.RedisCache[*middleware.CachedResponse]{}, services.IdempotencyStore)
	require.Contains(t, services.HealthCheckers, "redis")
	assert.NoError(t, services.HealthCheckers["redis"].HealthCheck(ctx))

	first, err := services.TruckClasses.ListActive(ctx)
	require.NoError(t, err)
	cached, err := services.TruckClasses.ListActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, cached)
}

func extractAccessToken(t *testing.T, body []byte) string {
	t.Helper()
	var resp struct {
		Data dto.TokenResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NotEmpty(t, resp.Data.AccessToken)
	return resp.Data.AccessToken
}
