package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/fuel-service/internal/domain/model"
)

// runTruckClassRepositoryContract exercises behaviour every truck class store must share.
// The repository must be empty on entry.
func runTruckClassRepositoryContract(t *testing.T, repo TruckClassRepositoryInterface) {
	t.Helper()
	ctx := context.Background()

	van := model.NewTruckClass("Mini Pickup / Small Van", 12.0, 0.90)
	heavy := model.NewTruckClass("3-Axle Truck / Heavy Duty", 4.0, 0.75)
	axle := model.NewTruckClass("2-Axle Truck", 5.0, 0.85)

	var createdVan *model.TruckClass

	t.Run("empty list", func(t *testing.T) {
		classes, err := repo.List(ctx, false)
		require.NoError(t, err)
		assert.Empty(t, classes)
	})

	t.Run("create assigns id and timestamps", func(t *testing.T) {
		var err error
		createdVan, err = repo.Create(ctx, &van)
		require.NoError(t, err)
		require.NotNil(t, createdVan)
		assert.NotEmpty(t, createdVan.ID)
		assert.Equal(t, van.Name, createdVan.Name)
		assert.Equal(t, 12.0, createdVan.BaseKmPerLiter)
		assert.Equal(t, 0.90, createdVan.LoadedMultiplier)
		assert.True(t, createdVan.IsActive)
		assert.False(t, createdVan.CreatedAt.IsZero())

		_, err = repo.Create(ctx, &heavy)
		require.NoError(t, err)
		_, err = repo.Create(ctx, &axle)
		require.NoError(t, err)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		dup := model.NewTruckClass("2-Axle Truck", 6, 0.8)
		_, err := repo.Create(ctx, &dup)
		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("list ordered by name", func(t *testing.T) {
		classes, err := repo.List(ctx, false)
		require.NoError(t, err)
		require.Len(t, classes, 3)
		assert.Equal(t, "2-Axle Truck", classes[0].Name)
		assert.Equal(t, "3-Axle Truck / Heavy Duty", classes[1].Name)
		assert.Equal(t, "Mini Pickup / Small Van", classes[2].Name)
	})

	t.Run("get by id and name", func(t *testing.T) {
		byID, err := repo.GetByID(ctx, createdVan.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, createdVan.Name, byID.Name)

		byName, err := repo.GetByName(ctx, "  Mini Pickup / Small Van ")
		require.NoError(t, err)
		require.NotNil(t, byName)
		assert.Equal(t, createdVan.ID, byName.ID)
	})

	t.Run("missing lookups return nil", func(t *testing.T) {
		byID, err := repo.GetByID(ctx, "not-an-id")
		assert.NoError(t, err)
		assert.Nil(t, byID)

		byName, err := repo.GetByName(ctx, "Unknown Truck")
		assert.NoError(t, err)
		assert.Nil(t, byName)
	})

	t.Run("update deactivates and hides from active list", func(t *testing.T) {
		changed := *createdVan
		changed.IsActive = false
		changed.LoadedMultiplier = 0.95

		updated, err := repo.Update(ctx, &changed)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.False(t, updated.IsActive)
		assert.Equal(t, 0.95, updated.LoadedMultiplier)
		assert.False(t, updated.UpdatedAt.Before(createdVan.UpdatedAt))

		active, err := repo.List(ctx, true)
		require.NoError(t, err)
		assert.Len(t, active, 2)
		for _, tc := range active {
			assert.NotEqual(t, createdVan.ID, tc.ID)
		}
	})

	t.Run("update to taken name rejected", func(t *testing.T) {
		changed := *createdVan
		changed.Name = "2-Axle Truck"
		_, err := repo.Update(ctx, &changed)
		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("update of unknown id returns nil", func(t *testing.T) {
		ghost := *createdVan
		ghost.ID = "000000000000000000000000"
		updated, err := repo.Update(ctx, &ghost)
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, repo.Ping(ctx))
	})
}
