package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	contactmodels "github.com/qolzam/backoffice/contacts/models"
	"github.com/qolzam/backoffice/internal/pagination"
	"github.com/qolzam/backoffice/internal/search"
	"github.com/qolzam/backoffice/productionorders/models"
	"github.com/qolzam/backoffice/productionorders/repository"
)

// MockRepository is a test double for the production order repository.
type MockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*MockRepository)(nil)

func (m *MockRepository) Create(ctx context.Context, order *models.ProductionOrder) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id int64) (*models.ProductionOrderResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductionOrderResponse), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, order *models.ProductionOrder) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, opts pagination.Options) (pagination.Page[models.ProductionOrderResponse], error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(pagination.Page[models.ProductionOrderResponse]), args.Error(1)
}

func (m *MockRepository) Search(ctx context.Context, filter search.Filter, opts pagination.Options) (pagination.Page[models.ProductionOrderResponse], error) {
	args := m.Called(ctx, filter, opts)
	return args.Get(0).(pagination.Page[models.ProductionOrderResponse]), args.Error(1)
}

func (m *MockRepository) CheckReferences(ctx context.Context, customerID, factoryID int64) error {
	return m.Called(ctx, customerID, factoryID).Error(0)
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
