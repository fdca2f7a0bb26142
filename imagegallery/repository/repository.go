// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/qolzam/backoffice/imagegallery/models"
	"github.com/qolzam/backoffice/internal/pagination"
)

// Repository defines data access for gallery images.
type Repository interface {
	Create(ctx context.Context, image *models.Image) (int64, error)
	Get(ctx context.Context, id int64) (*models.Image, error)
	Update(ctx context.Context, image *models.Image) error
	Delete(ctx context.Context, id int64) (int64, error)

	// List pages through every image, newest first.
	List(ctx context.Context, opts pagination.Options) (pagination.Page[models.Image], error)

	// ListByItem pages through the images attached to one item, newest first.
	ListByItem(ctx context.Context, fkItemID int64, fkItemType string, opts pagination.Options) (pagination.Page[models.Image], error)
}
