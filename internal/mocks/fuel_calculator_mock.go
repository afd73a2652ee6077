// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/fuel-service/internal/service"
)

type MockFuelCalculator struct {
	mock.Mock
}

func (m *MockFuelCalculator) Calculate(ctx context.Context, req service.FuelRequest) (*service.FuelResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FuelResult), args.Error(1)
}

func (m *MockFuelCalculator) DefaultBufferPercentage() float64 {
	args := m.Called()
	return args.Get(0).(float64)
}
