// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"time"

	"github.com/qolzam/backoffice/factories/models"
	"github.com/qolzam/backoffice/internal/pagination"
	"github.com/qolzam/backoffice/internal/search"
)

// Dimension is a foreign key factories can be grouped by.
type Dimension string

const (
	ByFactoryType     Dimension = "fk_factories_type_id"
	ByServiceCategory Dimension = "fk_factories_service_id"
	ByLocationType    Dimension = "fk_location_id"
)

// Repository defines data access for factories.
type Repository interface {
	Create(ctx context.Context, factory *models.Factory) (int64, error)
	Get(ctx context.Context, id int64) (*models.Factory, error)
	Update(ctx context.Context, factory *models.Factory) error
	Delete(ctx context.Context, id int64) (int64, error)

	// List pages through all factories, newest first.
	List(ctx context.Context, opts pagination.Options) (pagination.Page[models.Factory], error)

	// Search pages through the factories matching filter, newest first.
	// The filter may reference the contact, factoriesType, serviceCategory
	// and locationType joins. An empty filter matches every factory.
	Search(ctx context.Context, filter search.Filter, opts pagination.Options) (pagination.Page[models.Factory], error)

	// CountByStatus returns the number of factories per status.
	CountByStatus(ctx context.Context) (map[string]int64, error)

	CountBy(ctx context.Context, dim Dimension) ([]models.IDCount, error)

	// CountByIndustry skips blank and placeholder industries.
	CountByIndustry(ctx context.Context) ([]models.GroupCount, error)

	// RegistrationsSince lists status and creation time of factories created at or after since.
	RegistrationsSince(ctx context.Context, since time.Time) ([]models.Registration, error)
}
