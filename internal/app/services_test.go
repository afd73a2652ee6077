//go:build !integration

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/fuel-service/config"
	"github.com/guttosm/fuel-service/internal/domain/model"
	"github.com/guttosm/fuel-service/internal/middleware"
	"github.com/guttosm/fuel-service/internal/repository"
	"github.com/guttosm/fuel-service/internal/service"
)

func TestInitializeServices(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(t *testing.T, cfg *config.Config)
		validate func(t *testing.T, s *ServiceComponents)
	}{
		{
			name: "seeds default truck classes",
			validate: func(t *testing.T, s *ServiceComponents) {
				classes, err := s.TruckClasses.ListActive(context.Background())
				require.NoError(t, err)
				assert.Len(t, classes, 5)
			},
		},
		{
			name: "skips seeding when disabled",
			mutate: func(_ *testing.T, cfg *config.Config) {
				cfg.Database.SeedOnStart = false
			},
			validate: func(t *testing.T, s *ServiceComponents) {
				classes, err := s.TruckClasses.ListAll(context.Background())
				require.NoError(t, err)
				assert.Empty(t, classes)
			},
		},
		{
			name: "memory backend uses in-process idempotency store",
			validate: func(t *testing.T, s *ServiceComponents) {
				assert.IsType(t, &service.ShardedCache[*middleware.CachedResponse]{}, s.IdempotencyStore)
				assert.Empty(t, s.HealthCheckers)
			},
		},
		{
			name: "cache size zero still serves lookups",
			mutate: func(_ *testing.T, cfg *config.Config) {
				cfg.Cache.Size = 0
			},
			validate: func(t *testing.T, s *ServiceComponents) {
				tc, err := s.TruckClasses.GetByName(context.Background(), "2-Axle Truck")
				require.NoError(t, err)
				assert.InDelta(t, 5.0, tc.BaseKmPerLiter, 1e-9)
			},
		},
		{
			name: "unreachable redis falls back to memory",
			mutate: func(_ *testing.T, cfg *config.Config) {
				cfg.Cache.Backend = config.CacheBackendRedis
				cfg.Cache.RedisAddr = "127.0.0.1:1"
			},
			validate: func(t *testing.T, s *ServiceComponents) {
				assert.IsType(t, &service.ShardedCache[*middleware.CachedResponse]{}, s.IdempotencyStore)
				assert.NotContains(t, s.HealthCheckers, "redis")
			},
		},
		{
			name: "no auth service without password hash",
			validate: func(t *testing.T, s *ServiceComponents) {
				assert.Nil(t, s.AuthService)
			},
		},
		{
			name: "auth service with password hash",
			mutate: func(t *testing.T, cfg *config.Config) {
				cfg.Auth.AdminPasswordHash = adminPasswordHash(t)
			},
			validate: func(t *testing.T, s *ServiceComponents) {
				require.NotNil(t, s.AuthService)
				token, err := s.AuthService.Login(context.Background(), "admin", testAdminPassword)
				require.NoError(t, err)
				assert.NotEmpty(t, token.AccessToken)
			},
		},
		{
			name: "calculator uses seeded classes and default buffer",
			validate: func(t *testing.T, s *ServiceComponents) {
				tc, err := s.TruckClasses.GetByName(context.Background(), "2-Axle Truck")
				require.NoError(t, err)

				result, err := s.Calculator.Calculate(context.Background(), service.FuelRequest{
					TripDistanceKm: 100,
					TruckClassID:   tc.ID,
				})
				require.NoError(t, err)
				assert.InDelta(t, 20.0, result.Recommendation.MinFuelLiters, 1e-9)
				assert.InDelta(t, 22.4, result.Recommendation.MaxFuelLiters, 1e-9)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := memoryConfig()
			if tt.mutate != nil {
				tt.mutate(t, &cfg)
			}

			s, err := InitializeServices(context.Background(), cfg, memoryStore())
			require.NoError(t, err)
			t.Cleanup(s.Close)

			tt.validate(t, s)
		})
	}
}

func TestInitializeServices_SeedIsIdempotent(t *testing.T) {
	store := memoryStore()
	cfg := memoryConfig()

	first, err := InitializeServices(context.Background(), cfg, store)
	require.NoError(t, err)
	first.Close()

	second, err := InitializeServices(context.Background(), cfg, store)
	require.NoError(t, err)
	defer second.Close()

	classes, err := second.TruckClasses.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, classes, 5)
}

func TestInitializeServices_SeedFailure(t *testing.T) {
	store := memoryStore()
	store.TruckClassRepo = failingRepository{MemoryTruckClassRepository: repository.NewMemoryTruckClassRepository()}

	s, err := InitializeServices(context.Background(), memoryConfig(), store)

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errStoreDown)
}

func TestServiceComponents_Close(t *testing.T) {
	var stopped []int
	s := &ServiceComponents{stoppers: []func(){
		func() { stopped = append(stopped, 1) },
		func() { stopped = append(stopped, 2) },
	}}

	s.Close()
	s.Close()

	assert.Equal(t, []int{2, 1}, stopped)

	var nilComponents *ServiceComponents
	assert.NotPanics(t, nilComponents.Close)
}

var errStoreDown = errors.New("store down")

// failingRepository fails every name lookup.
type failingRepository struct {
	*repository.MemoryTruckClassRepository
}

func (failingRepository) GetByName(context.Context, string) (*model.TruckClass, error) {
	return nil, errStoreDown
}
