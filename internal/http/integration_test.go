//go:build integration

package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/fuel-service/internal/circuitbreaker"
	"github.com/guttosm/fuel-service/internal/domain/dto"
	"github.com/guttosm/fuel-service/internal/domain/model"
	"github.com/guttosm/fuel-service/internal/middleware"
	"github.com/guttosm/fuel-service/internal/repository"
	"github.com/guttosm/fuel-service/internal/service"
	"github.com/guttosm/fuel-service/internal/testutil"
)

type mongoStack struct {
	router  *gin.Engine
	db      *repository.MongoDB
	logging service.LoggingService
	classes *service.TruckClassServiceImpl
}

func setupMongoStack(t *testing.T) *mongoStack {
	t.Helper()
	ctx := context.Background()

	db, err := repository.NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(context.Background()) })

	cb := circuitbreaker.New(circuitbreaker.Config{
		Name:             "truck_classes_" + testutil.SanitizeDBName(t.Name()),
		FailureThreshold: 5,
		SuccessThreshold: 1,
		Timeout:          time.Second,
		IsFailure:        repository.IsStoreFailure,
	})
	repo := repository.NewTruckClassRepositoryWithCircuitBreaker(repository.NewTruckClassRepository(db), cb)
	classes := service.NewTruckClassService(repo, service.NewShardedCache[[]model.TruckClass](64, time.Minute, 0))

	_, err = classes.Seed(ctx, []model.TruckClass{
		model.NewTruckClass("2-Axle Truck", 5, 0.85),
		model.NewTruckClass("Flatbed", 4, 0.9),
	})
	require.NoError(t, err)

	logging := service.NewLoggingService(repository.NewLogsRepository(db))
	middleware.InitAsyncLogger(logging, middleware.AsyncLoggerConfig{FlushInterval: 50 * time.Millisecond})
	t.Cleanup(middleware.StopAsyncLogger)

	health := NewHealthHandler()
	health.RegisterChecker("mongodb", db)
	health.RegisterCircuitBreaker("truck_classes", cb)

	cfg := DefaultRouterConfig()
	cfg.Calculator = service.NewFuelCalculatorService(classes)
	cfg.TruckClasses = classes
	cfg.AuthService = newTestAuthService(t)
	cfg.Health = health

	return &mongoStack{router: NewRouter(cfg), db: db, logging: logging, classes: classes}
}

func (s *mongoStack) id(t *testing.T, name string) string {
	t.Helper()
	tc, err := s.classes.GetByName(context.Background(), name)
	require.NoError(t, err)
	return tc.ID
}

func TestIntegration_CalculateWithMongoDB(t *testing.T) {
	s := setupMongoStack(t)
	twoAxle := s.id(t, "2-Axle Truck")

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedMax    float64
		expectWarning  bool
	}{
		{name: "empty", body: `{"trip_distance_km": 100, "truck_class_id": "` + twoAxle + `"}`, expectedStatus: http.StatusOK, expectedMax: 22.4},
		{name: "loaded", body: `{"trip_distance_km": 85, "truck_class_id": "` + twoAxle + `", "load_status": "loaded"}`, expectedStatus: http.StatusOK, expectedMax: 22.4},
		{name: "warning", body: `{"trip_distance_km": 100, "truck_class_id": "` + twoAxle + `", "intended_fuel_liters": 30}`, expectedStatus: http.StatusOK, expectedMax: 22.4, expectWarning: true},
		{name: "malformed object id", body: `{"trip_distance_km": 100, "truck_class_id": "not-an-id"}`, expectedStatus: http.StatusNotFound},
		{name: "unknown object id", body: `{"trip_distance_km": 100, "truck_class_id": "665f1c2e8b3e4a0012345678"}`, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := send(s.router, http.MethodPost, "/api/fuel/calculate", tt.body, nil)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus != http.StatusOK {
				return
			}
			var out dto.FuelCalculationResponse
			decodeData(t, w, &out)
			assert.InDelta(t, tt.expectedMax, out.Recommendation.MaxFuelLiters, 1e-9)
			assert.Equal(t, tt.expectWarning, out.Recommendation.HasWarning())
		})
	}
}

func TestIntegration_AdminChangesAreAuditedInMongoDB(t *testing.T) {
	s := setupMongoStack(t)
	auth := login(t, s.router)

	w := send(s.router, http.MethodPost, "/api/truck-classes", `{"name": "Tanker", "base_km_per_liter": 2.5}`, auth)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created model.TruckClass
	decodeData(t, w, &created)

	w = send(s.router, http.MethodDelete, "/api/truck-classes/"+created.ID, "", auth)
	require.Equal(t, http.StatusOK, w.Code)

	require.Eventually(t, func() bool {
		n, err := s.logging.CountLogs(context.Background(), model.LogQueryOptions{ActionType: model.ActionDeactivateTruckClass})
		return err == nil && n == 1
	}, 5*time.Second, 50*time.Millisecond)

	entries, err := s.logging.QueryLogs(context.Background(), model.LogQueryOptions{ActionType: model.ActionCreateTruckClass})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, testAdminUser, entries[0].Actor)
	assert.Equal(t, "/api/truck-classes", entries[0].Path)
}

func TestIntegration_ReadinessWithMongoDB(t *testing.T) {
	s := setupMongoStack(t)

	w := send(s.router, http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mongodb":"ok"`)

	require.NoError(t, s.db.Close(context.Background()))
	w = send(s.router, http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
