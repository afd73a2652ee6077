package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/fuel-service/internal/domain/model"
	"github.com/guttosm/fuel-service/internal/mocks"
	"github.com/guttosm/fuel-service/internal/service"
)

var errStoreDown = errors.New("store unavailable")

func TestTruckClassService_SeedRepositoryErrors(t *testing.T) {
	classes := []model.TruckClass{
		model.NewTruckClass("Small Van", 12, 0.9),
		model.NewTruckClass("2-Axle Truck", 6, 0.8),
	}

	tests := []struct {
		name        string
		setup       func(repo *mocks.MockTruckClassRepositoryInterface)
		wantCreated int
		wantErr     string
	}{
		{
			name: "lookup failure stops seeding",
			setup: func(repo *mocks.MockTruckClassRepositoryInterface) {
				repo.On("GetByName", mock.Anything, "Small Van").Return(nil, errStoreDown)
			},
			wantCreated: 0,
			wantErr:     `seed "Small Van"`,
		},
		{
			name: "create failure keeps earlier count",
			setup: func(repo *mocks.MockTruckClassRepositoryInterface) {
				repo.On("GetByName", mock.Anything, mock.Anything).Return(nil, nil)
				repo.On("Create", mock.Anything, mock.MatchedBy(func(tc *model.TruckClass) bool {
					return tc.Name == "Small Van"
				})).Return(&model.TruckClass{ID: "tc-1", Name: "Small Van"}, nil)
				repo.On("Create", mock.Anything, mock.MatchedBy(func(tc *model.TruckClass) bool {
					return tc.Name == "2-Axle Truck"
				})).Return(nil, errStoreDown)
			},
			wantCreated: 1,
			wantErr:     `seed "2-Axle Truck"`,
		},
		{
			name: "duplicate on create is skipped",
			setup: func(repo *mocks.MockTruckClassRepositoryInterface) {
				repo.On("GetByName", mock.Anything, mock.Anything).Return(nil, nil)
				repo.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrDuplicateTruckClass)
			},
			wantCreated: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockTruckClassRepositoryInterface)
			tt.setup(repo)
			svc := service.NewTruckClassService(repo, nil)

			created, err := svc.Seed(context.Background(), classes)

			assert.Equal(t, tt.wantCreated, created)
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.ErrorIs(t, err, errStoreDown)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestTruckClassService_UpdateRepositoryErrors(t *testing.T) {
	current := &model.TruckClass{ID: "tc-1", Name: "Small Van", BaseKmPerLiter: 12, LoadedMultiplier: 0.9, IsActive: true}
	inactive := false

	tests := []struct {
		name    string
		setup   func(repo *mocks.MockTruckClassRepositoryInterface)
		wantErr error
	}{
		{
			name: "lookup failure",
			setup: func(repo *mocks.MockTruckClassRepositoryInterface) {
				repo.On("GetByID", mock.Anything, "tc-1").Return(nil, errStoreDown)
			},
			wantErr: errStoreDown,
		},
		{
			name: "store failure on write",
			setup: func(repo *mocks.MockTruckClassRepositoryInterface) {
				found := *current
				repo.On("GetByID", mock.Anything, "tc-1").Return(&found, nil)
				repo.On("Update", mock.Anything, mock.Anything).Return(nil, errStoreDown)
			},
			wantErr: errStoreDown,
		},
		{
			name: "row vanished between read and write",
			setup: func(repo *mocks.MockTruckClassRepositoryInterface) {
				found := *current
				repo.On("GetByID", mock.Anything, "tc-1").Return(&found, nil)
				repo.On("Update", mock.Anything, mock.Anything).Return(nil, nil)
			},
			wantErr: service.ErrTruckClassNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockTruckClassRepositoryInterface)
			tt.setup(repo)
			svc := service.NewTruckClassService(repo, nil)

			updated, err := svc.Update(context.Background(), "tc-1", service.TruckClassPatch{IsActive: &inactive})

			assert.Nil(t, updated)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertExpectations(t)
		})
	}
}
