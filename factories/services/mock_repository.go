package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	contactmodels "github.com/qolzam/backoffice/contacts/models"
	"github.com/qolzam/backoffice/factories/models"
	"github.com/qolzam/backoffice/factories/repository"
	"github.com/qolzam/backoffice/internal/pagination"
	"github.com/qolzam/backoffice/internal/search"
	lookupmodels "github.com/qolzam/backoffice/lookups/models"
)

// MockRepository is a test double for the factory repository.
type MockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*MockRepository)(nil)

func (m *MockRepository) Create(ctx context.Context, factory *models.Factory) (int64, error) {
	args := m.Called(ctx, factory)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id int64) (*models.Factory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Factory), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, factory *models.Factory) error {
	return m.Called(ctx, factory).Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, opts pagination.Options) (pagination.Page[models.Factory], error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(pagination.Page[models.Factory]), args.Error(1)
}

func (m *MockRepository) Search(ctx context.Context, filter search.Filter, opts pagination.Options) (pagination.Page[models.Factory], error) {
	args := m.Called(ctx, filter, opts)
	return args.Get(0).(pagination.Page[models.Factory]), args.Error(1)
}

func (m *MockRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockRepository) CountBy(ctx context.Context, dim repository.Dimension) ([]models.IDCount, error) {
	args := m.Called(ctx, dim)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.IDCount), args.Error(1)
}

func (m *MockRepository) CountByIndustry(ctx context.Context) ([]models.GroupCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GroupCount), args.Error(1)
}

func (m *MockRepository) RegistrationsSince(ctx context.Context, since time.Time) ([]models.Registration, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Registration), args.Error(1)
}

// MockLookups stands in for the lookup service.
type MockLookups struct {
	mock.Mock
}

func (m *MockLookups) GetFactoryType(ctx context.Context, id int64) (*lookupmodels.FactoryType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lookupmodels.FactoryType), args.Error(1)
}

func (m *MockLookups) GetServiceCategory(ctx context.Context, id int64) (*lookupmodels.ServiceCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lookupmodels.ServiceCategory), args.Error(1)
}

func (m *MockLookups) GetLocationType(ctx context.Context, id int64) (*lookupmodels.LocationType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lookupmodels.LocationType), args.Error(1)
}

// MockContacts stands in for the contact service.
type MockContacts struct {
	mock.Mock
}

func (m *MockContacts) FindPrimaryByOwners(ctx context.Context, fkIDs []int64, table string) (map[int64]contactmodels.Contact, error) {
	args := m.Called(ctx, fkIDs, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]contactmodels.Contact), args.Error(1)
}
