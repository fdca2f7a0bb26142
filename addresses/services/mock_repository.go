package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/qolzam/backoffice/addresses/models"
	"github.com/qolzam/backoffice/addresses/repository"
	"github.com/qolzam/backoffice/internal/pagination"
)

// MockRepository is a test double for the address repository.
type MockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*MockRepository)(nil)

func (m *MockRepository) Create(ctx context.Context, address *models.Address) (int64, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id int64) (*models.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Address), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, address *models.Address) error {
	return m.Called(ctx, address).Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) ListByOwner(ctx context.Context, fkID int64, table, addressType string, opts pagination.Options) (pagination.Page[models.Address], error) {
	args := m.Called(ctx, fkID, table, addressType, opts)
	return args.Get(0).(pagination.Page[models.Address]), args.Error(1)
}

func (m *MockRepository) FindByDetails(ctx context.Context, fkID int64, table, addressType string) (*models.Address, error) {
	args := m.Called(ctx, fkID, table, addressType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Address), args.Error(1)
}
