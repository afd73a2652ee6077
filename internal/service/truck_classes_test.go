package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/fuel-service/internal/domain/model"
	"github.com/guttosm/fuel-service/internal/repository"
)

// countingRepo counts List calls on top of the in-memory store.
type countingRepo struct {
	*repository.MemoryTruckClassRepository
	listCalls int
	listErr   error
}

func (r *countingRepo) List(ctx context.Context, activeOnly bool) ([]model.TruckClass, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.MemoryTruckClassRepository.List(ctx, activeOnly)
}

func newCountingService(t *testing.T) (*TruckClassServiceImpl, *countingRepo) {
	t.Helper()
	repo := &countingRepo{MemoryTruckClassRepository: repository.NewMemoryTruckClassRepository()}
	c := NewShardedCache[[]model.TruckClass](100, time.Minute, 4)
	t.Cleanup(c.Stop)
	return NewTruckClassService(repo, c), repo
}

func TestTruckClassService_ListCaching(t *testing.T) {
	ctx := context.Background()
	svc, repo := newCountingService(t)

	_, err := svc.Create(ctx, &model.TruckClass{Name: "Van", BaseKmPerLiter: 12, LoadedMultiplier: 0.9, IsActive: true})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &model.TruckClass{Name: "Old Semi", BaseKmPerLiter: 4, LoadedMultiplier: 0.8})
	require.NoError(t, err)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Van", active[0].Name)

	_, err = svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls, "second call should be served from cache")

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "Old Semi", all[0].Name)
	assert.Equal(t, 2, repo.listCalls)

	_, err = svc.Create(ctx, &model.TruckClass{Name: "Box Truck", BaseKmPerLiter: 7, IsActive: true})
	require.NoError(t, err)

	active, err = svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 2)
	assert.Equal(t, 3, repo.listCalls, "create should clear cached lists")
}

func TestTruckClassService_ListError(t *testing.T) {
	svc, repo := newCountingService(t)
	repo.listErr = errors.New("connection refused")

	_, err := svc.ListActive(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestTruckClassService_ListEmpty(t *testing.T) {
	svc, _ := newCountingService(t)

	classes, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, classes)
	assert.Empty(t, classes)
}

func TestTruckClassService_Get(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCountingService(t)

	created, err := svc.Create(ctx, &model.TruckClass{Name: "Van", BaseKmPerLiter: 12, IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultLoadedMultiplier, created.LoadedMultiplier)

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{"existing", created.ID, nil},
		{"existing with padding", " " + created.ID + " ", nil},
		{"unknown", "999", ErrTruckClassNotFound},
		{"blank", "  ", ErrTruckClassNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc, err := svc.Get(ctx, tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, tc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Van", tc.Name)
		})
	}
}

func TestTruckClassService_GetByName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCountingService(t)

	_, err := svc.Create(ctx, &model.TruckClass{Name: "Van", BaseKmPerLiter: 12, IsActive: true})
	require.NoError(t, err)

	tc, err := svc.GetByName(ctx, "Van")
	require.NoError(t, err)
	assert.Equal(t, 12.0, tc.BaseKmPerLiter)

	_, err = svc.GetByName(ctx, "Tanker")
	assert.ErrorIs(t, err, ErrTruckClassNotFound)
}

func TestTruckClassService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   model.TruckClass
		wantErr error
	}{
		{"valid", model.TruckClass{Name: "Van", BaseKmPerLiter: 12, LoadedMultiplier: 0.9}, nil},
		{"blank name", model.TruckClass{Name: "  ", BaseKmPerLiter: 12}, model.ErrInvalidTruckClass},
		{"efficiency below minimum", model.TruckClass{Name: "Van", BaseKmPerLiter: 0.5}, model.ErrInvalidTruckClass},
		{"multiplier above one", model.TruckClass{Name: "Van", BaseKmPerLiter: 12, LoadedMultiplier: 1.2}, model.ErrInvalidTruckClass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newCountingService(t)
			created, err := svc.Create(ctx, &tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, created.ID)
		})
	}

	t.Run("duplicate name", func(t *testing.T) {
		svc, _ := newCountingService(t)
		_, err := svc.Create(ctx, &model.TruckClass{Name: "Van", BaseKmPerLiter: 12})
		require.NoError(t, err)

		_, err = svc.Create(ctx, &model.TruckClass{Name: " Van ", BaseKmPerLiter: 10})
		assert.ErrorIs(t, err, ErrDuplicateTruckClass)
	})
}

func TestTruckClassService_UpdateAndDeactivate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCountingService(t)

	created, err := svc.Create(ctx, &model.TruckClass{Name: "Van", BaseKmPerLiter: 12, IsActive: true})
	require.NoError(t, err)

	// warm the id cache
	_, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)

	efficiency := 11.5
	updated, err := svc.Update(ctx, created.ID, TruckClassPatch{BaseKmPerLiter: &efficiency})
	require.NoError(t, err)
	assert.Equal(t, 11.5, updated.BaseKmPerLiter)
	assert.Equal(t, "Van", updated.Name)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 11.5, fetched.BaseKmPerLiter, "update should clear the cached class")

	bad := 2.0
	_, err = svc.Update(ctx, created.ID, TruckClassPatch{LoadedMultiplier: &bad})
	assert.ErrorIs(t, err, model.ErrInvalidTruckClass)

	_, err = svc.Update(ctx, "999", TruckClassPatch{BaseKmPerLiter: &efficiency})
	assert.ErrorIs(t, err, ErrTruckClassNotFound)

	deactivated, err := svc.Deactivate(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestTruckClassService_Seed(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCountingService(t)

	_, err := svc.Create(ctx, &model.TruckClass{Name: "Van", BaseKmPerLiter: 20, IsActive: true})
	require.NoError(t, err)

	classes := []model.TruckClass{
		model.NewTruckClass("Van", 12, 0.9),
		model.NewTruckClass("Semi", 3.5, 0.8),
		model.NewTruckClass("Box Truck", 7, 0.85),
	}

	created, err := svc.Seed(ctx, classes)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	van, err := svc.GetByName(ctx, "Van")
	require.NoError(t, err)
	assert.Equal(t, 20.0, van.BaseKmPerLiter, "existing classes are left untouched")

	again, err := svc.Seed(ctx, classes)
	require.NoError(t, err)
	assert.Zero(t, again)

	_, err = svc.Seed(ctx, []model.TruckClass{{Name: "Broken"}})
	assert.ErrorIs(t, err, model.ErrInvalidTruckClass)
}

func TestTruckClassService_NoRepository(t *testing.T) {
	ctx := context.Background()
	svc := NewTruckClassService(nil, nil)

	_, err := svc.ListActive(ctx)
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
	_, err = svc.Get(ctx, "1")
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
	_, err = svc.Create(ctx, &model.TruckClass{})
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
	_, err = svc.Seed(ctx, nil)
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
}
