// Package app provides database initialization and setup.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/fuel-service/config"
	"github.com/guttosm/fuel-service/internal/circuitbreaker"
	"github.com/guttosm/fuel-service/internal/http"
	"github.com/guttosm/fuel-service/internal/repository"
	"github.com/guttosm/fuel-service/internal/service"
)

// StoreComponents holds the storage selected by the database driver.
type StoreComponents struct {
	Driver          string
	TruckClassRepo  repository.TruckClassRepositoryInterface
	LoggingService  service.LoggingService
	HealthCheckers  map[string]http.HealthChecker
	CircuitBreakers map[string]*circuitbreaker.CircuitBreaker

	closers []func(context.Context) error
}

func newStoreComponents(driver string) *StoreComponents {
	return &StoreComponents{
		Driver:          driver,
		HealthCheckers:  make(map[string]http.HealthChecker),
		CircuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
	}
}

// Close releases the database connections in reverse order of creation.
func (s *StoreComponents) Close(ctx context.Context) error {
	if s == nil {
		return nil
	}
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

// InitializeStore connects the truck class store, plus the audit log store on MongoDB.
// Unlike the in-memory driver, a configured database that cannot be reached is an error.
func InitializeStore(ctx context.Context, cfg config.DatabaseConfig) (*StoreComponents, error) {
	switch cfg.Driver {
	case config.DriverMongoDB:
		return initializeMongoStore(ctx, cfg)
	case config.DriverPostgres:
		return initializePostgresStore(ctx, cfg)
	case config.DriverMemory, "":
		store := newStoreComponents(config.DriverMemory)
		store.TruckClassRepo = repository.NewMemoryTruckClassRepository()
		log.Warn().Msg("Using in-memory truck class store; changes are lost on restart")
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func initializeMongoStore(ctx context.Context, cfg config.DatabaseConfig) (*StoreComponents, error) {
	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(ctx, ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	store := newStoreComponents(config.DriverMongoDB)
	store.closers = append(store.closers, db.Close)
	store.HealthCheckers["mongodb"] = db

	truckClassesCB := newCircuitBreaker(cfg, "mongodb-truck-classes")
	logsCB := newCircuitBreaker(cfg, "mongodb-logs")
	store.CircuitBreakers["mongodb_truck_classes"] = truckClassesCB
	store.CircuitBreakers["mongodb_logs"] = logsCB

	store.TruckClassRepo = repository.NewTruckClassRepositoryWithCircuitBreaker(repository.NewTruckClassRepository(db), truckClassesCB)
	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	store.LoggingService = service.NewLoggingService(logsRepo)

	return store, nil
}

func initializePostgresStore(ctx context.Context, cfg config.DatabaseConfig) (*StoreComponents, error) {
	pgCfg := repository.DefaultPostgresConfig()
	if cfg.PostgresMaxConns > 0 {
		pgCfg.MaxConns = int32(cfg.PostgresMaxConns)
	}

	db, err := repository.NewPostgresDBWithConfig(ctx, cfg.PostgresDSN, pgCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure postgres schema: %w", err)
	}
	log.Info().Int32("max_conns", pgCfg.MaxConns).Msg("Connected to PostgreSQL")

	store := newStoreComponents(config.DriverPostgres)
	store.closers = append(store.closers, func(context.Context) error {
		db.Close()
		return nil
	})
	store.HealthCheckers["postgres"] = db

	cb := newCircuitBreaker(cfg, "postgres-truck-classes")
	store.CircuitBreakers["postgres_truck_classes"] = cb
	store.TruckClassRepo = repository.NewTruckClassRepositoryWithCircuitBreaker(repository.NewPostgresTruckClassRepository(db), cb)

	return store, nil
}

func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	cbCfg := circuitbreaker.DefaultConfig()
	if cfg.CircuitBreakerFailureThreshold > 0 {
		cbCfg.FailureThreshold = cfg.CircuitBreakerFailureThreshold
	}
	if cfg.CircuitBreakerSuccessThreshold > 0 {
		cbCfg.SuccessThreshold = cfg.CircuitBreakerSuccessThreshold
	}
	if cfg.CircuitBreakerTimeout > 0 {
		cbCfg.Timeout = cfg.CircuitBreakerTimeout
	}
	cbCfg.Name = name
	cbCfg.IsFailure = repository.IsStoreFailure
	return circuitbreaker.New(cbCfg)
}
