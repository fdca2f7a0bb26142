// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/qolzam/backoffice/addresses/models"
	"github.com/qolzam/backoffice/internal/pagination"
)

// Repository defines data access for addresses.
type Repository interface {
	Create(ctx context.Context, address *models.Address) (int64, error)
	Get(ctx context.Context, id int64) (*models.Address, error)
	Update(ctx context.Context, address *models.Address) error
	Delete(ctx context.Context, id int64) (int64, error)

	// ListByOwner pages through an owner's addresses, newest first.
	// An empty addressType lists every type.
	ListByOwner(ctx context.Context, fkID int64, table, addressType string, opts pagination.Options) (pagination.Page[models.Address], error)

	// FindByDetails returns the first address of addressType for an owner.
	FindByDetails(ctx context.Context, fkID int64, table, addressType string) (*models.Address, error)
}
