package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/qolzam/backoffice/contacts/models"
	"github.com/qolzam/backoffice/contacts/repository"
	"github.com/qolzam/backoffice/internal/pagination"
)

// MockRepository is a test double for the contact repository.
type MockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*MockRepository)(nil)

func (m *MockRepository) Create(ctx context.Context, contact *models.Contact) (int64, error) {
	args := m.Called(ctx, contact)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id int64) (*models.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, contact *models.Contact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) ListByOwner(ctx context.Context, fkID int64, table string, opts pagination.Options) (pagination.Page[models.Contact], error) {
	args := m.Called(ctx, fkID, table, opts)
	return args.Get(0).(pagination.Page[models.Contact]), args.Error(1)
}

func (m *MockRepository) FindByOwner(ctx context.Context, fkID int64, table, contactType string) (*models.Contact, error) {
	args := m.Called(ctx, fkID, table, contactType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *MockRepository) FindByOwners(ctx context.Context, fkIDs []int64, table, contactType string) (map[int64]models.Contact, error) {
	args := m.Called(ctx, fkIDs, table, contactType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]models.Contact), args.Error(1)
}
