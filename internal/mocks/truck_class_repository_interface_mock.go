// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/fuel-service/internal/domain/model"
)

type MockTruckClassRepositoryInterface struct {
	mock.Mock
}

func (m *MockTruckClassRepositoryInterface) List(ctx context.Context, activeOnly bool) ([]model.TruckClass, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TruckClass), args.Error(1)
}

func (m *MockTruckClassRepositoryInterface) GetByID(ctx context.Context, id string) (*model.TruckClass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TruckClass), args.Error(1)
}

func (m *MockTruckClassRepositoryInterface) GetByName(ctx context.Context, name string) (*model.TruckClass, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TruckClass), args.Error(1)
}

func (m *MockTruckClassRepositoryInterface) Create(ctx context.Context, tc *model.TruckClass) (*model.TruckClass, error) {
	args := m.Called(ctx, tc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TruckClass), args.Error(1)
}

func (m *MockTruckClassRepositoryInterface) Update(ctx context.Context, tc *model.TruckClass) (*model.TruckClass, error) {
	args := m.Called(ctx, tc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TruckClass), args.Error(1)
}

func (m *MockTruckClassRepositoryInterface) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
