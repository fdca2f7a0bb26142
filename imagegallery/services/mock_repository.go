package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/qolzam/backoffice/imagegallery/models"
	"github.com/qolzam/backoffice/imagegallery/repository"
	"github.com/qolzam/backoffice/internal/pagination"
)

// MockRepository is a test double for the gallery repository.
type MockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*MockRepository)(nil)

func (m *MockRepository) Create(ctx context.Context, image *models.Image) (int64, error) {
	args := m.Called(ctx, image)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id int64) (*models.Image, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, image *models.Image) error {
	return m.Called(ctx, image).Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, opts pagination.Options) (pagination.Page[models.Image], error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(pagination.Page[models.Image]), args.Error(1)
}

func (m *MockRepository) ListByItem(ctx context.Context, fkItemID int64, fkItemType string, opts pagination.Options) (pagination.Page[models.Image], error) {
	args := m.Called(ctx, fkItemID, fkItemType, opts)
	return args.Get(0).(pagination.Page[models.Image]), args.Error(1)
}
