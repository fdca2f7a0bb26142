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

	galleryerrors "github.com/qolzam/backoffice/imagegallery/errors"
	"github.com/qolzam/backoffice/imagegallery/models"
	"github.com/qolzam/backoffice/internal/database/sqldb"
	"github.com/qolzam/backoffice/internal/pagination"
	"github.com/qolzam/backoffice/internal/search"
)

const table = "image_gallery"

var columns = []string{
	"id", "fk_item_id", "fk_item_type", "type", "url", "filename", "file_extension",
	"created_at", "updated_at",
}

type sqlRepository struct {
	client *sqldb.Client
}

func NewSQLRepository(client *sqldb.Client) Repository {
	return &sqlRepository{client: client}
}

func (r *sqlRepository) Create(ctx context.Context, img *models.Image) (int64, error) {
	insert := r.client.Builder().
		Insert(table).
		Columns(columns[1:]...).
		Values(img.FkItemID, img.FkItemType, img.Type, img.URL, img.Filename, img.FileExtension,
			img.CreatedAt, img.UpdatedAt)

	id, err := r.client.Insert(ctx, insert, "id")
	if err != nil {
		return 0, fmt.Errorf("insert image: %w", err)
	}
	return id, nil
}

func (r *sqlRepository) Get(ctx context.Context, id int64) (*models.Image, error) {
	var img models.Image
	query := r.client.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})
	if err := r.client.Get(ctx, &img, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, galleryerrors.ErrImageNotFound
		}
		return nil, fmt.Errorf("get image: %w", err)
	}
	return &img, nil
}

func (r *sqlRepository) Update(ctx context.Context, img *models.Image) error {
	update := r.client.Builder().
		Update(table).
		SetMap(map[string]interface{}{
			"fk_item_id":     img.FkItemID,
			"fk_item_type":   img.FkItemType,
			"type":           img.Type,
			"url":            img.URL,
			"filename":       img.Filename,
			"file_extension": img.FileExtension,
			"updated_at":     img.UpdatedAt,
		}).
		Where(sq.Eq{"id": img.ID})

	affected, err := r.client.Exec(ctx, update)
	if err != nil {
		return fmt.Errorf("update image: %w", err)
	}
	if affected == 0 {
		return galleryerrors.ErrImageNotFound
	}
	return nil
}

func (r *sqlRepository) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := r.client.Exec(ctx, r.client.Builder().Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return 0, fmt.Errorf("delete image: %w", err)
	}
	return affected, nil
}

func (r *sqlRepository) List(ctx context.Context, opts pagination.Options) (pagination.Page[models.Image], error) {
	q := pagination.Query{From: table, Columns: columns, OrderBy: "created_at"}
	return pagination.Paginate[models.Image](ctx, r.client.Executor(ctx), r.client.Placeholder(), q, search.Filter{}, opts)
}

func (r *sqlRepository) ListByItem(ctx context.Context, fkItemID int64, fkItemType string, opts pagination.Options) (pagination.Page[models.Image], error) {
	q := pagination.Query{
		From:    table,
		Columns: columns,
		Where:   []sq.Sqlizer{sq.Eq{"fk_item_id": fkItemID, "fk_item_type": fkItemType}},
		OrderBy: "created_at",
	}
	return pagination.Paginate[models.Image](ctx, r.client.Executor(ctx), r.client.Placeholder(), q, search.Filter{}, opts)
}
