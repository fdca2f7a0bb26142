package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/qolzam/backoffice/lookups/models"
	"github.com/qolzam/backoffice/lookups/repository"
)

// MockRepository is a test double for the lookup repository.
type MockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*MockRepository)(nil)

func (m *MockRepository) ListFactoryTypes(ctx context.Context) ([]models.FactoryType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.FactoryType), args.Error(1)
}

func (m *MockRepository) GetFactoryType(ctx context.Context, id int64) (*models.FactoryType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FactoryType), args.Error(1)
}

func (m *MockRepository) ListServiceCategories(ctx context.Context) ([]models.ServiceCategory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.ServiceCategory), args.Error(1)
}

func (m *MockRepository) GetServiceCategory(ctx context.Context, id int64) (*models.ServiceCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceCategory), args.Error(1)
}

func (m *MockRepository) ListLocationTypes(ctx context.Context) ([]models.LocationType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.LocationType), args.Error(1)
}

func (m *MockRepository) GetLocationType(ctx context.Context, id int64) (*models.LocationType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LocationType), args.Error(1)
}

func (m *MockRepository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockRepository) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}
