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
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/samber/lo"

	factorieserrors "github.com/qolzam/backoffice/factories/errors"
	"github.com/qolzam/backoffice/factories/models"
	"github.com/qolzam/backoffice/internal/database/sqldb"
	"github.com/qolzam/backoffice/internal/pagination"
	"github.com/qolzam/backoffice/internal/search"
	"github.com/qolzam/backoffice/internal/types"
)

const table = "factories"

var columns = []string{
	"pk_factories_id", "fk_factories_type_id", "fk_factories_service_id", "fk_location_id",
	"status", "name", "email", "website_url", "industry", "tags", "notes", "user_owner",
	"created_at", "updated_at",
}

// qualified are the factory columns under the "factory" alias used by search.
var qualified = lo.Map(columns, func(col string, _ int) string { return "factory." + col })

type sqlRepository struct {
	client *sqldb.Client
}

// NewSQLRepository creates a factory repository on client.
func NewSQLRepository(client *sqldb.Client) Repository {
	return &sqlRepository{client: client}
}

func (r *sqlRepository) Create(ctx context.Context, f *models.Factory) (int64, error) {
	insert := r.client.Builder().
		Insert(table).
		Columns(columns[1:]...).
		Values(f.FactoryTypeID, f.ServiceCategoryID, f.LocationID, f.Status, f.Name,
			f.Email, f.WebsiteURL, f.Industry, f.Tags, f.Notes, f.UserOwner,
			f.CreatedAt, f.UpdatedAt)

	id, err := r.client.Insert(ctx, insert, "pk_factories_id")
	if err != nil {
		return 0, fmt.Errorf("insert factory: %w", err)
	}
	return id, nil
}

func (r *sqlRepository) Get(ctx context.Context, id int64) (*models.Factory, error) {
	var factory models.Factory
	query := r.client.Builder().Select(columns...).From(table).Where(sq.Eq{"pk_factories_id": id})
	if err := r.client.Get(ctx, &factory, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, factorieserrors.ErrFactoryNotFound
		}
		return nil, fmt.Errorf("get factory: %w", err)
	}
	return &factory, nil
}

func (r *sqlRepository) Update(ctx context.Context, f *models.Factory) error {
	update := r.client.Builder().
		Update(table).
		SetMap(map[string]interface{}{
			"fk_factories_type_id":    f.FactoryTypeID,
			"fk_factories_service_id": f.ServiceCategoryID,
			"fk_location_id":          f.LocationID,
			"status":                  f.Status,
			"name":                    f.Name,
			"email":                   f.Email,
			"website_url":             f.WebsiteURL,
			"industry":                f.Industry,
			"tags":                    f.Tags,
			"notes":                   f.Notes,
			"updated_at":              f.UpdatedAt,
		}).
		Where(sq.Eq{"pk_factories_id": f.ID})

	affected, err := r.client.Exec(ctx, update)
	if err != nil {
		return fmt.Errorf("update factory: %w", err)
	}
	if affected == 0 {
		return factorieserrors.ErrFactoryNotFound
	}
	return nil
}

func (r *sqlRepository) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := r.client.Exec(ctx, r.client.Builder().Delete(table).Where(sq.Eq{"pk_factories_id": id}))
	if err != nil {
		return 0, fmt.Errorf("delete factory: %w", err)
	}
	return affected, nil
}

func (r *sqlRepository) List(ctx context.Context, opts pagination.Options) (pagination.Page[models.Factory], error) {
	q := pagination.Query{
		From:    "factories factory",
		Columns: qualified,
		OrderBy: "factory.created_at",
	}
	return pagination.Paginate[models.Factory](ctx, r.client.Executor(ctx), r.client.Placeholder(), q, search.Filter{}, opts)
}

// searchQuery joins every contact of the factory, so a factory matches when
// any of its contacts does. DISTINCT keeps one row per factory.
func searchQuery() pagination.Query {
	return pagination.Query{
		From: "factories factory",
		Joins: []pagination.Join{
			{Clause: "contacts contact ON contact.fk_id = factory.pk_factories_id AND contact.ref_table = ?", Args: []any{types.TableFactories}},
			{Clause: "factory_types factoriesType ON factoriesType.id = factory.fk_factories_type_id"},
			{Clause: "service_categories serviceCategory ON serviceCategory.id = factory.fk_factories_service_id"},
			{Clause: "location_types locationType ON locationType.pk_location_type_id = factory.fk_location_id"},
		},
		Columns:   qualified,
		Distinct:  true,
		CountExpr: "COUNT(DISTINCT factory.pk_factories_id)",
		OrderBy:   "factory.created_at",
	}
}

func (r *sqlRepository) Search(ctx context.Context, filter search.Filter, opts pagination.Options) (pagination.Page[models.Factory], error) {
	return pagination.Paginate[models.Factory](ctx, r.client.Executor(ctx), r.client.Placeholder(), searchQuery(), filter, opts)
}

func (r *sqlRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []models.GroupCount
	query := r.client.Builder().
		Select("status AS group_key", "COUNT(*) AS group_count").
		From(table).
		GroupBy("status")
	if err := r.client.Select(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("count factories by status: %w", err)
	}
	return lo.SliceToMap(rows, func(row models.GroupCount) (string, int64) {
		return row.Key, row.Count
	}), nil
}

func (r *sqlRepository) CountBy(ctx context.Context, dim Dimension) ([]models.IDCount, error) {
	switch dim {
	case ByFactoryType, ByServiceCategory, ByLocationType:
	default:
		return nil, fmt.Errorf("unknown factory dimension %q", dim)
	}

	var rows []models.IDCount
	query := r.client.Builder().
		Select(string(dim)+" AS group_key", "COUNT(*) AS group_count").
		From(table).
		GroupBy(string(dim))
	if err := r.client.Select(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("count factories by %s: %w", dim, err)
	}
	return rows, nil
}

func (r *sqlRepository) CountByIndustry(ctx context.Context) ([]models.GroupCount, error) {
	var rows []models.GroupCount
	query := r.client.Builder().
		Select("industry AS group_key", "COUNT(*) AS group_count").
		From(table).
		Where(sq.And{
			sq.NotEq{"industry": nil},
			sq.NotEq{"industry": []string{"", types.Placeholder}},
		}).
		GroupBy("industry")
	if err := r.client.Select(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("count factories by industry: %w", err)
	}
	return rows, nil
}

func (r *sqlRepository) RegistrationsSince(ctx context.Context, since time.Time) ([]models.Registration, error) {
	var rows []models.Registration
	query := r.client.Builder().
		Select("status", "created_at").
		From(table).
		Where(sq.GtOrEq{"created_at": since})
	if err := r.client.Select(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list factory registrations: %w", err)
	}
	return rows, nil
}
