// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/fuel-service/internal/domain/model"
	"github.com/guttosm/fuel-service/internal/service"
)

type MockTruckClassService struct {
	mock.Mock
}

func (m *MockTruckClassService) ListActive(ctx context.Context) ([]model.TruckClass, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TruckClass), args.Error(1)
}

func (m *MockTruckClassService) ListAll(ctx context.Context) ([]model.TruckClass, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TruckClass), args.Error(1)
}

func (m *MockTruckClassService) Get(ctx context.Context, id string) (*model.TruckClass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TruckClass), args.Error(1)
}

func (m *MockTruckClassService) GetByName(ctx context.Context, name string) (*model.TruckClass, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TruckClass), args.Error(1)
}

func (m *MockTruckClassService) Create(ctx context.Context, tc *model.TruckClass) (*model.TruckClass, error) {
	args := m.Called(ctx, tc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TruckClass), args.Error(1)
}

func (m *MockTruckClassService) Update(ctx context.Context, id string, patch service.TruckClassPatch) (*model.TruckClass, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TruckClass), args.Error(1)
}

func (m *MockTruckClassService) Deactivate(ctx context.Context, id string) (*model.TruckClass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TruckClass), args.Error(1)
}

func (m *MockTruckClassService) Seed(ctx context.Context, classes []model.TruckClass) (int, error) {
	args := m.Called(ctx, classes)
	return args.Int(0), args.Error(1)
}
