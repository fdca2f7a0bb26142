// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/qolzam/backoffice/internal/database/sqldb"
	lookupserrors "github.com/qolzam/backoffice/lookups/errors"
	"github.com/qolzam/backoffice/lookups/models"
)

type sqlRepository struct {
	client *sqldb.Client
}

// NewSQLRepository creates a lookup repository on client.
func NewSQLRepository(client *sqldb.Client) Repository {
	return &sqlRepository{client: client}
}

func list[T any](ctx context.Context, client *sqldb.Client, table, orderBy string, columns ...string) ([]T, error) {
	items := []T{}
	query := client.Builder().Select(columns...).From(table).OrderBy(orderBy)
	if err := client.Select(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	return items, nil
}

func get[T any](ctx context.Context, client *sqldb.Client, table, pk string, id int64, columns ...string) (*T, error) {
	var item T
	query := client.Builder().Select(columns...).From(table).Where(sq.Eq{pk: id})
	if err := client.Get(ctx, &item, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s %d: %w", table, id, lookupserrors.ErrLookupNotFound)
		}
		return nil, fmt.Errorf("get %s: %w", table, err)
	}
	return &item, nil
}

func (r *sqlRepository) ListFactoryTypes(ctx context.Context) ([]models.FactoryType, error) {
	return list[models.FactoryType](ctx, r.client, "factory_types", "name", "id", "name")
}

func (r *sqlRepository) GetFactoryType(ctx context.Context, id int64) (*models.FactoryType, error) {
	return get[models.FactoryType](ctx, r.client, "factory_types", "id", id, "id", "name")
}

func (r *sqlRepository) ListServiceCategories(ctx context.Context) ([]models.ServiceCategory, error) {
	return list[models.ServiceCategory](ctx, r.client, "service_categories", "name", "id", "name")
}

func (r *sqlRepository) GetServiceCategory(ctx context.Context, id int64) (*models.ServiceCategory, error) {
	return get[models.ServiceCategory](ctx, r.client, "service_categories", "id", id, "id", "name")
}

func (r *sqlRepository) ListLocationTypes(ctx context.Context) ([]models.LocationType, error) {
	return list[models.LocationType](ctx, r.client, "location_types", "name", "pk_location_type_id", "name", "color")
}

func (r *sqlRepository) GetLocationType(ctx context.Context, id int64) (*models.LocationType, error) {
	return get[models.LocationType](ctx, r.client, "location_types", "pk_location_type_id", id, "pk_location_type_id", "name", "color")
}

func (r *sqlRepository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return list[models.Customer](ctx, r.client, "customers", "name", "pk_customer_id", "name", "created_at")
}

func (r *sqlRepository) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	return get[models.Customer](ctx, r.client, "customers", "pk_customer_id", id, "pk_customer_id", "name", "created_at")
}
