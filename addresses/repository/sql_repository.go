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

	addresseserrors "github.com/qolzam/backoffice/addresses/errors"
	"github.com/qolzam/backoffice/addresses/models"
	"github.com/qolzam/backoffice/internal/database/sqldb"
	"github.com/qolzam/backoffice/internal/pagination"
	"github.com/qolzam/backoffice/internal/search"
)

const table = "addresses"

var columns = []string{
	"pk_address_id", "fk_id", "ref_table", "address_type", "address1", "address2",
	"city", "state", "zip", "country", "created_at", "updated_at",
}

type sqlRepository struct {
	client *sqldb.Client
}

// NewSQLRepository creates an address repository on client.
func NewSQLRepository(client *sqldb.Client) Repository {
	return &sqlRepository{client: client}
}

func (r *sqlRepository) Create(ctx context.Context, a *models.Address) (int64, error) {
	insert := r.client.Builder().
		Insert(table).
		Columns(columns[1:]...).
		Values(a.FkID, a.Table, a.AddressType, a.Address1, a.Address2,
			a.City, a.State, a.Zip, a.Country, a.CreatedAt, a.UpdatedAt)

	id, err := r.client.Insert(ctx, insert, "pk_address_id")
	if err != nil {
		return 0, fmt.Errorf("insert address: %w", err)
	}
	return id, nil
}

func (r *sqlRepository) Get(ctx context.Context, id int64) (*models.Address, error) {
	return r.first(ctx, sq.Eq{"pk_address_id": id})
}

func (r *sqlRepository) Update(ctx context.Context, a *models.Address) error {
	update := r.client.Builder().
		Update(table).
		SetMap(map[string]interface{}{
			"address_type": a.AddressType,
			"address1":     a.Address1,
			"address2":     a.Address2,
			"city":         a.City,
			"state":        a.State,
			"zip":          a.Zip,
			"country":      a.Country,
			"updated_at":   a.UpdatedAt,
		}).
		Where(sq.Eq{"pk_address_id": a.ID})

	affected, err := r.client.Exec(ctx, update)
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	if affected == 0 {
		return addresseserrors.ErrAddressNotFound
	}
	return nil
}

func (r *sqlRepository) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := r.client.Exec(ctx, r.client.Builder().Delete(table).Where(sq.Eq{"pk_address_id": id}))
	if err != nil {
		return 0, fmt.Errorf("delete address: %w", err)
	}
	return affected, nil
}

func (r *sqlRepository) ListByOwner(ctx context.Context, fkID int64, refTable, addressType string, opts pagination.Options) (pagination.Page[models.Address], error) {
	where := sq.Eq{"fk_id": fkID, "ref_table": refTable}
	if addressType != "" {
		where["address_type"] = addressType
	}
	q := pagination.Query{
		From:    table,
		Columns: columns,
		Where:   []sq.Sqlizer{where},
		OrderBy: "created_at",
	}
	return pagination.Paginate[models.Address](ctx, r.client.Executor(ctx), r.client.Placeholder(), q, search.Filter{}, opts)
}

func (r *sqlRepository) FindByDetails(ctx context.Context, fkID int64, refTable, addressType string) (*models.Address, error) {
	return r.first(ctx, sq.Eq{"fk_id": fkID, "ref_table": refTable, "address_type": addressType})
}

func (r *sqlRepository) first(ctx context.Context, where sq.Eq) (*models.Address, error) {
	var address models.Address
	query := r.client.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("pk_address_id").
		Limit(1)
	if err := r.client.Get(ctx, &address, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, addresseserrors.ErrAddressNotFound
		}
		return nil, fmt.Errorf("get address: %w", err)
	}
	return &address, nil
}
