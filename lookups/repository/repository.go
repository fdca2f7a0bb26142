// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/qolzam/backoffice/lookups/models"
)

// Repository reads the reference tables factories and orders point at.
type Repository interface {
	ListFactoryTypes(ctx context.Context) ([]models.FactoryType, error)
	GetFactoryType(ctx context.Context, id int64) (*models.FactoryType, error)

	ListServiceCategories(ctx context.Context) ([]models.ServiceCategory, error)
	GetServiceCategory(ctx context.Context, id int64) (*models.ServiceCategory, error)

	ListLocationTypes(ctx context.Context) ([]models.LocationType, error)
	GetLocationType(ctx context.Context, id int64) (*models.LocationType, error)

	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*models.Customer, error)
}
