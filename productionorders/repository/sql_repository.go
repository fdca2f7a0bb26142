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
	"github.com/samber/lo"

	"github.com/qolzam/backoffice/internal/database/sqldb"
	"github.com/qolzam/backoffice/internal/pagination"
	"github.com/qolzam/backoffice/internal/search"
	orderserrors "github.com/qolzam/backoffice/productionorders/errors"
	"github.com/qolzam/backoffice/productionorders/models"
)

const table = "production_orders"

var columns = []string{
	"pk_production_order_id", "fk_customer_id", "fk_factory_id", "po_number",
	"order_date", "expected_delivery_date", "actual_delivery_date",
	"shipping_method", "status", "total_quantity", "total_amount",
	"notes", "user_owner", "created_at", "updated_at",
}

var selectColumns = append(
	lo.Map(columns, func(col string, _ int) string { return "po." + col }),
	"customer.name AS customer_name",
	"factory.name AS factory_name",
)

// orderRow is a production order with the joined display names.
type orderRow struct {
	models.ProductionOrder
	CustomerName sql.NullString `db:"customer_name"`
	FactoryName  sql.NullString `db:"factory_name"`
}

func (row orderRow) response() models.ProductionOrderResponse {
	return models.ProductionOrderResponse{
		ProductionOrder: row.ProductionOrder,
		Customer:        models.Party{ID: row.CustomerID, Name: row.CustomerName.String},
		Factory:         models.Party{ID: row.FactoryID, Name: row.FactoryName.String},
	}
}

var joinedQuery = pagination.Query{
	From: "production_orders po",
	Joins: []pagination.Join{
		{Clause: "customers customer ON customer.pk_customer_id = po.fk_customer_id"},
		{Clause: "factories factory ON factory.pk_factories_id = po.fk_factory_id"},
	},
	Columns: selectColumns,
	OrderBy: "po.created_at",
}

type sqlRepository struct {
	client *sqldb.Client
}

func NewSQLRepository(client *sqldb.Client) Repository {
	return &sqlRepository{client: client}
}

func (r *sqlRepository) Create(ctx context.Context, o *models.ProductionOrder) (int64, error) {
	insert := r.client.Builder().
		Insert(table).
		Columns(columns[1:]...).
		Values(o.CustomerID, o.FactoryID, o.PONumber,
			o.OrderDate, o.ExpectedDeliveryDate, o.ActualDeliveryDate,
			o.ShippingMethod, o.Status, o.TotalQuantity, o.TotalAmount,
			o.Notes, o.UserOwner, o.CreatedAt, o.UpdatedAt)

	id, err := r.client.Insert(ctx, insert, "pk_production_order_id")
	if err != nil {
		return 0, fmt.Errorf("insert production order: %w", err)
	}
	return id, nil
}

func (r *sqlRepository) Get(ctx context.Context, id int64) (*models.ProductionOrderResponse, error) {
	query := r.client.Builder().
		Select(selectColumns...).
		From(joinedQuery.From).
		LeftJoin(joinedQuery.Joins[0].Clause).
		LeftJoin(joinedQuery.Joins[1].Clause).
		Where(sq.Eq{"po.pk_production_order_id": id})

	var row orderRow
	if err := r.client.Get(ctx, &row, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, orderserrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get production order: %w", err)
	}
	resp := row.response()
	return &resp, nil
}

func (r *sqlRepository) Update(ctx context.Context, o *models.ProductionOrder) error {
	update := r.client.Builder().
		Update(table).
		SetMap(map[string]interface{}{
			"fk_customer_id":         o.CustomerID,
			"fk_factory_id":          o.FactoryID,
			"po_number":              o.PONumber,
			"order_date":             o.OrderDate,
			"expected_delivery_date": o.ExpectedDeliveryDate,
			"actual_delivery_date":   o.ActualDeliveryDate,
			"shipping_method":        o.ShippingMethod,
			"status":                 o.Status,
			"total_quantity":         o.TotalQuantity,
			"total_amount":           o.TotalAmount,
			"notes":                  o.Notes,
			"user_owner":             o.UserOwner,
			"updated_at":             o.UpdatedAt,
		}).
		Where(sq.Eq{"pk_production_order_id": o.ID})

	affected, err := r.client.Exec(ctx, update)
	if err != nil {
		return fmt.Errorf("update production order: %w", err)
	}
	if affected == 0 {
		return orderserrors.ErrOrderNotFound
	}
	return nil
}

func (r *sqlRepository) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := r.client.Exec(ctx, r.client.Builder().Delete(table).Where(sq.Eq{"pk_production_order_id": id}))
	if err != nil {
		return 0, fmt.Errorf("delete production order: %w", err)
	}
	return affected, nil
}

func (r *sqlRepository) List(ctx context.Context, opts pagination.Options) (pagination.Page[models.ProductionOrderResponse], error) {
	return r.Search(ctx, search.Filter{}, opts)
}

func (r *sqlRepository) Search(ctx context.Context, filter search.Filter, opts pagination.Options) (pagination.Page[models.ProductionOrderResponse], error) {
	page, err := pagination.Paginate[orderRow](ctx, r.client.Executor(ctx), r.client.Placeholder(), joinedQuery, filter, opts)
	if err != nil {
		return pagination.Page[models.ProductionOrderResponse]{}, err
	}
	return pagination.Map(page, orderRow.response), nil
}

func (r *sqlRepository) CheckReferences(ctx context.Context, customerID, factoryID int64) error {
	checks := []struct {
		table, pk string
		id        int64
	}{
		{"customers", "pk_customer_id", customerID},
		{"factories", "pk_factories_id", factoryID},
	}

	for _, check := range checks {
		var n int64
		query := r.client.Builder().Select("COUNT(*)").From(check.table).Where(sq.Eq{check.pk: check.id})
		if err := r.client.Get(ctx, &n, query); err != nil {
			return fmt.Errorf("check %s reference: %w", check.table, err)
		}
		if n == 0 {
			return fmt.Errorf("%w: %s %d", orderserrors.ErrInvalidReference, check.table, check.id)
		}
	}
	return nil
}
