// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/qolzam/backoffice/internal/pagination"
	"github.com/qolzam/backoffice/internal/search"
	"github.com/qolzam/backoffice/productionorders/models"
)

// SearchExpressions are the columns a production order search term is
// matched against, under the aliases of the search query.
var SearchExpressions = []string{
	"po.po_number",
	"po.notes",
	"po.user_owner",
	"customer.name",
	"factory.name",
}

// Repository defines data access for production orders. Reads join the
// customer and factory names.
type Repository interface {
	Create(ctx context.Context, order *models.ProductionOrder) (int64, error)
	Get(ctx context.Context, id int64) (*models.ProductionOrderResponse, error)
	Update(ctx context.Context, order *models.ProductionOrder) error
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context, opts pagination.Options) (pagination.Page[models.ProductionOrderResponse], error)
	Search(ctx context.Context, filter search.Filter, opts pagination.Options) (pagination.Page[models.ProductionOrderResponse], error)

	// CheckReferences fails with ErrInvalidReference when the customer or
	// the factory does not exist.
	CheckReferences(ctx context.Context, customerID, factoryID int64) error
}
