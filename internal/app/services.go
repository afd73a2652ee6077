// Package app provides service initialization.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/fuel-service/config"
	"github.com/guttosm/fuel-service/internal/domain/model"
	"github.com/guttosm/fuel-service/internal/http"
	"github.com/guttosm/fuel-service/internal/middleware"
	"github.com/guttosm/fuel-service/internal/seed"
	"github.com/guttosm/fuel-service/internal/service"
	"github.com/guttosm/fuel-service/internal/service/cache"
)

const (
	redisTruckClassPrefix  = "fuel:truck_classes:"
	redisIdempotencyPrefix = "fuel:idempotency:"
	seedTimeout            = 10 * time.Second
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	TruckClasses     *service.TruckClassServiceImpl
	Calculator       *service.FuelCalculatorService
	AuthService      service.AuthService
	IdempotencyStore middleware.IdempotencyStore
	HealthCheckers   map[string]http.HealthChecker

	stoppers []func()
}

// Close stops the caches and the Redis client.
func (s *ServiceComponents) Close() {
	if s == nil {
		return
	}
	for i := len(s.stoppers) - 1; i >= 0; i-- {
		s.stoppers[i]()
	}
	s.stoppers = nil
}

// InitializeServices initializes business logic services on top of the store.
func InitializeServices(ctx context.Context, cfg config.Config, store *StoreComponents) (*ServiceComponents, error) {
	components := &ServiceComponents{
		HealthCheckers: make(map[string]http.HealthChecker),
	}

	truckClassCache := components.initializeCaches(ctx, cfg.Cache)

	components.TruckClasses = service.NewTruckClassService(store.TruckClassRepo, truckClassCache)

	if cfg.Database.SeedOnStart {
		seedCtx, cancel := context.WithTimeout(ctx, seedTimeout)
		created, err := components.TruckClasses.Seed(seedCtx, seed.Defaults())
		cancel()
		if err != nil {
			components.Close()
			return nil, err
		}
		log.Info().Int("created", created).Msg("Seeded default truck classes")
	}

	components.Calculator = service.NewFuelCalculatorService(
		components.TruckClasses,
		service.WithDefaultBuffer(cfg.Calculator.DefaultBufferPercentage),
	)

	if cfg.Auth.AdminPasswordHash != "" {
		components.AuthService = service.NewAuthServiceFromConfig(cfg.Auth)
	} else {
		log.Warn().Msg("ADMIN_PASSWORD_HASH not set; admin login is disabled")
	}

	return components, nil
}

// initializeCaches builds the truck class cache and the idempotency store.
// Redis is used when configured and reachable; otherwise both stay in process.
func (s *ServiceComponents) initializeCaches(ctx context.Context, cfg config.CacheConfig) cache.Cache[[]model.TruckClass] {
	if cfg.Backend == config.CacheBackendRedis {
		client, err := service.NewRedisClient(ctx, service.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err == nil {
			s.stoppers = append(s.stoppers, func() {
				if err := client.Close(); err != nil {
					log.Warn().Err(err).Msg("Failed to close Redis client")
				}
			})
			s.HealthCheckers["redis"] = http.HealthCheckFunc(func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			})
			s.IdempotencyStore = service.NewRedisCache[*middleware.CachedResponse](client, redisIdempotencyPrefix, middleware.IdempotencyKeyTTL)
			log.Info().Str("addr", cfg.RedisAddr).Msg("Using Redis cache")
			return service.NewRedisCache[[]model.TruckClass](client, redisTruckClassPrefix, cfg.TTL)
		}
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis unavailable - falling back to in-memory cache")
	}

	idempotency := middleware.NewIdempotencyStore(middleware.IdempotencyKeyTTL)
	s.IdempotencyStore = idempotency
	s.stoppers = append(s.stoppers, idempotency.Stop)

	if cfg.Size <= 0 {
		return nil
	}
	truckClasses := service.NewShardedCache[[]model.TruckClass](cfg.Size, cfg.TTL, 0)
	s.stoppers = append(s.stoppers, truckClasses.Stop)
	return truckClasses
}
