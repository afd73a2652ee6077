package repository

import (
	"context"
	"errors"

	"github.com/guttosm/fuel-service/internal/circuitbreaker"
	"github.com/guttosm/fuel-service/internal/domain/model"
)

// IsStoreFailure reports whether err indicates an unhealthy backend rather than a
// rejected write. Used as the breaker's failure filter.
func IsStoreFailure(err error) bool {
	return !errors.Is(err, ErrDuplicateName)
}

// TruckClassRepositoryWithCircuitBreaker wraps any truck class store with circuit breaker protection.
type TruckClassRepositoryWithCircuitBreaker struct {
	repo           TruckClassRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewTruckClassRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewTruckClassRepositoryWithCircuitBreaker(repo TruckClassRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *TruckClassRepositoryWithCircuitBreaker {
	return &TruckClassRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// List returns truck classes with circuit breaker protection.
func (r *TruckClassRepositoryWithCircuitBreaker) List(ctx context.Context, activeOnly bool) ([]model.TruckClass, error) {
	var result []model.TruckClass
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, activeOnly)
		return cbErr
	})
	return result, err
}

// GetByID returns a truck class by id with circuit breaker protection.
func (r *TruckClassRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id string) (*model.TruckClass, error) {
	var result *model.TruckClass
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, id)
		return cbErr
	})
	return result, err
}

// GetByName returns a truck class by name with circuit breaker protection.
func (r *TruckClassRepositoryWithCircuitBreaker) GetByName(ctx context.Context, name string) (*model.TruckClass, error) {
	var result *model.TruckClass
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByName(ctx, name)
		return cbErr
	})
	return result, err
}

// Create stores a truck class with circuit breaker protection.
func (r *TruckClassRepositoryWithCircuitBreaker) Create(ctx context.Context, tc *model.TruckClass) (*model.TruckClass, error) {
	var result *model.TruckClass
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, tc)
		return cbErr
	})
	return result, err
}

// Update modifies a truck class with circuit breaker protection.
func (r *TruckClassRepositoryWithCircuitBreaker) Update(ctx context.Context, tc *model.TruckClass) (*model.TruckClass, error) {
	var result *model.TruckClass
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, tc)
		return cbErr
	})
	return result, err
}

// Ping bypasses the breaker so readiness reflects the backend itself.
func (r *TruckClassRepositoryWithCircuitBreaker) Ping(ctx context.Context) error {
	return r.repo.Ping(ctx)
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *TruckClassRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps a logs store with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry. Entries are dropped while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores log entries in bulk. Entries are dropped while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
