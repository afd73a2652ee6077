//go:build !integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/fuel-service/internal/circuitbreaker"
	"github.com/guttosm/fuel-service/internal/domain/model"
)

var errBackendDown = errors.New("backend down")

// failingTruckClassRepository fails every call.
type failingTruckClassRepository struct {
	calls int
}

func (f *failingTruckClassRepository) List(context.Context, bool) ([]model.TruckClass, error) {
	f.calls++
	return nil, errBackendDown
}

func (f *failingTruckClassRepository) GetByID(context.Context, string) (*model.TruckClass, error) {
	f.calls++
	return nil, errBackendDown
}

func (f *failingTruckClassRepository) GetByName(context.Context, string) (*model.TruckClass, error) {
	f.calls++
	return nil, errBackendDown
}

func (f *failingTruckClassRepository) Create(context.Context, *model.TruckClass) (*model.TruckClass, error) {
	f.calls++
	return nil, errBackendDown
}

func (f *failingTruckClassRepository) Update(context.Context, *model.TruckClass) (*model.TruckClass, error) {
	f.calls++
	return nil, errBackendDown
}

func (f *failingTruckClassRepository) Ping(context.Context) error {
	return errBackendDown
}

func newTestBreaker(name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             name,
		IsFailure:        IsStoreFailure,
	})
}

func TestTruckClassRepositoryWithCircuitBreaker_PassesThrough(t *testing.T) {
	wrapped := NewTruckClassRepositoryWithCircuitBreaker(NewMemoryTruckClassRepository(), newTestBreaker("tc_pass"))
	runTruckClassRepositoryContract(t, wrapped)
	assert.Equal(t, circuitbreaker.StateClosed, wrapped.GetCircuitBreaker().State())
}

func TestTruckClassRepositoryWithCircuitBreaker_OpensOnFailures(t *testing.T) {
	ctx := context.Background()
	backend := &failingTruckClassRepository{}
	wrapped := NewTruckClassRepositoryWithCircuitBreaker(backend, newTestBreaker("tc_open"))

	_, err := wrapped.List(ctx, true)
	assert.ErrorIs(t, err, errBackendDown)
	_, err = wrapped.GetByID(ctx, "1")
	assert.ErrorIs(t, err, errBackendDown)

	_, err = wrapped.GetByName(ctx, "x")
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	assert.Equal(t, 2, backend.calls)

	assert.ErrorIs(t, wrapped.Ping(ctx), errBackendDown)
}

func TestTruckClassRepositoryWithCircuitBreaker_DuplicatesDoNotTrip(t *testing.T) {
	ctx := context.Background()
	wrapped := NewTruckClassRepositoryWithCircuitBreaker(NewMemoryTruckClassRepository(), newTestBreaker("tc_dup"))

	tc := model.NewTruckClass("2-Axle Truck", 5, 0.85)
	_, err := wrapped.Create(ctx, &tc)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		dup := model.NewTruckClass("2-Axle Truck", 5, 0.85)
		_, err = wrapped.Create(ctx, &dup)
		assert.ErrorIs(t, err, ErrDuplicateName)
	}
	assert.Equal(t, circuitbreaker.StateClosed, wrapped.GetCircuitBreaker().State())
}

// failingLogsRepository fails every write.
type failingLogsRepository struct{}

func (failingLogsRepository) Create(context.Context, *LogEntryDocument) error { return errBackendDown }
func (failingLogsRepository) CreateMany(context.Context, []*LogEntryDocument) error {
	return errBackendDown
}
func (failingLogsRepository) Query(context.Context, LogQueryOptions) ([]*LogEntryDocument, error) {
	return nil, errBackendDown
}
func (failingLogsRepository) Count(context.Context, LogQueryOptions) (int64, error) {
	return 0, errBackendDown
}

func TestLogsRepositoryWithCircuitBreaker_DropsWritesWhenOpen(t *testing.T) {
	ctx := context.Background()
	wrapped := NewLogsRepositoryWithCircuitBreaker(failingLogsRepository{}, newTestBreaker("logs_open"))

	assert.ErrorIs(t, wrapped.Create(ctx, &LogEntryDocument{}), errBackendDown)
	assert.ErrorIs(t, wrapped.CreateMany(ctx, []*LogEntryDocument{{}}), errBackendDown)

	assert.NoError(t, wrapped.Create(ctx, &LogEntryDocument{}))
	assert.NoError(t, wrapped.CreateMany(ctx, []*LogEntryDocument{{}}))

	_, err := wrapped.Query(ctx, LogQueryOptions{})
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	_, err = wrapped.Count(ctx, LogQueryOptions{})
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
}

func TestLogQueryOptions_Filter(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f := LogQueryOptions{
		RequestID:  "req-1",
		Level:      "warn",
		ActionType: model.ActionCalculateFuel,
		Path:       "/api/fuel",
		StartTime:  &start,
	}.filter()

	assert.Equal(t, "req-1", f["request_id"])
	assert.Equal(t, "warn", f["level"])
	assert.Equal(t, model.ActionCalculateFuel, f["action_type"])
	assert.NotNil(t, f["path"])
	assert.NotNil(t, f["timestamp"])
	assert.Empty(t, LogQueryOptions{}.filter())
}
