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

	contactserrors "github.com/qolzam/backoffice/contacts/errors"
	"github.com/qolzam/backoffice/contacts/models"
	"github.com/qolzam/backoffice/internal/database/sqldb"
	"github.com/qolzam/backoffice/internal/pagination"
	"github.com/qolzam/backoffice/internal/search"
)

const table = "contacts"

var columns = []string{
	"pk_contact_id", "fk_id", "ref_table", "first_name", "last_name", "email",
	"phone_number", "mobile_number", "position_title", "contact_type",
	"created_at", "updated_at",
}

type sqlRepository struct {
	client *sqldb.Client
}

// NewSQLRepository creates a contact repository on client.
func NewSQLRepository(client *sqldb.Client) Repository {
	return &sqlRepository{client: client}
}

func (r *sqlRepository) Create(ctx context.Context, c *models.Contact) (int64, error) {
	insert := r.client.Builder().
		Insert(table).
		Columns(columns[1:]...).
		Values(c.FkID, c.Table, c.FirstName, c.LastName, c.Email,
			c.PhoneNumber, c.MobileNumber, c.PositionTitle, c.ContactType,
			c.CreatedAt, c.UpdatedAt)

	id, err := r.client.Insert(ctx, insert, "pk_contact_id")
	if err != nil {
		return 0, fmt.Errorf("insert contact: %w", err)
	}
	return id, nil
}

func (r *sqlRepository) Get(ctx context.Context, id int64) (*models.Contact, error) {
	var contact models.Contact
	query := r.client.Builder().Select(columns...).From(table).Where(sq.Eq{"pk_contact_id": id})
	if err := r.client.Get(ctx, &contact, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, contactserrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return &contact, nil
}

func (r *sqlRepository) Update(ctx context.Context, c *models.Contact) error {
	update := r.client.Builder().
		Update(table).
		SetMap(map[string]interface{}{
			"first_name":     c.FirstName,
			"last_name":      c.LastName,
			"email":          c.Email,
			"phone_number":   c.PhoneNumber,
			"mobile_number":  c.MobileNumber,
			"position_title": c.PositionTitle,
			"contact_type":   c.ContactType,
			"updated_at":     c.UpdatedAt,
		}).
		Where(sq.Eq{"pk_contact_id": c.ID})

	affected, err := r.client.Exec(ctx, update)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	if affected == 0 {
		return contactserrors.ErrContactNotFound
	}
	return nil
}

func (r *sqlRepository) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := r.client.Exec(ctx, r.client.Builder().Delete(table).Where(sq.Eq{"pk_contact_id": id}))
	if err != nil {
		return 0, fmt.Errorf("delete contact: %w", err)
	}
	return affected, nil
}

func (r *sqlRepository) ListByOwner(ctx context.Context, fkID int64, refTable string, opts pagination.Options) (pagination.Page[models.Contact], error) {
	q := pagination.Query{
		From:    table,
		Columns: columns,
		Where:   []sq.Sqlizer{sq.Eq{"fk_id": fkID, "ref_table": refTable}},
		OrderBy: "created_at",
	}
	return pagination.Paginate[models.Contact](ctx, r.client.Executor(ctx), r.client.Placeholder(), q, search.Filter{}, opts)
}

func (r *sqlRepository) FindByOwner(ctx context.Context, fkID int64, refTable, contactType string) (*models.Contact, error) {
	var contact models.Contact
	query := r.client.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"fk_id": fkID, "ref_table": refTable, "contact_type": contactType}).
		OrderBy("pk_contact_id").
		Limit(1)
	if err := r.client.Get(ctx, &contact, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, contactserrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("find contact: %w", err)
	}
	return &contact, nil
}

func (r *sqlRepository) FindByOwners(ctx context.Context, fkIDs []int64, refTable, contactType string) (map[int64]models.Contact, error) {
	found := make(map[int64]models.Contact, len(fkIDs))
	if len(fkIDs) == 0 {
		return found, nil
	}

	var rows []models.Contact
	query := r.client.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"fk_id": fkIDs, "ref_table": refTable, "contact_type": contactType}).
		OrderBy("pk_contact_id")
	if err := r.client.Select(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("find contacts: %w", err)
	}

	for _, row := range rows {
		if _, ok := found[row.FkID]; !ok {
			found[row.FkID] = row
		}
	}
	return found, nil
}
