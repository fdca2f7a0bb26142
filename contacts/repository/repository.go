// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/qolzam/backoffice/contacts/models"
	"github.com/qolzam/backoffice/internal/pagination"
)

// Repository defines data access for contacts.
type Repository interface {
	// Create inserts contact and returns its new id.
	Create(ctx context.Context, contact *models.Contact) (int64, error)

	Get(ctx context.Context, id int64) (*models.Contact, error)

	// Update writes every mutable column of contact.
	Update(ctx context.Context, contact *models.Contact) error

	// Delete removes a contact; returns the number of rows deleted.
	Delete(ctx context.Context, id int64) (int64, error)

	// ListByOwner pages through the contacts of one owner row, newest first.
	ListByOwner(ctx context.Context, fkID int64, table string, opts pagination.Options) (pagination.Page[models.Contact], error)

	// FindByOwner returns the first contact of the given type for an owner.
	FindByOwner(ctx context.Context, fkID int64, table, contactType string) (*models.Contact, error)

	// FindByOwners returns the first contact of the given type per owner id.
	// Owners without one are absent from the map.
	FindByOwners(ctx context.Context, fkIDs []int64, table, contactType string) (map[int64]models.Contact, error)
}
