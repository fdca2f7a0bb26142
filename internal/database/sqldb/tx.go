// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package sqldb

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type txKey struct{}

// WithTx stores tx in ctx so repositories sharing the context join it.
func WithTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// Executor returns either the transaction from context or the DB connection
func (c *Client) Executor(ctx context.Context) sqlx.ExtContext {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok && tx != nil {
		return tx
	}
	return c.db
}

// WithTransaction runs fn inside a transaction. Nested calls reuse the
// outer transaction.
func (c *Client) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := c.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Insert executes an INSERT and returns the generated key of pkColumn.
// Postgres and SQLite use RETURNING; MySQL reports LastInsertId.
func (c *Client) Insert(ctx context.Context, b sq.InsertBuilder, pkColumn string) (int64, error) {
	b = b.PlaceholderFormat(c.Placeholder())
	exec := c.Executor(ctx)

	if c.dialect == MySQL {
		query, args, err := b.ToSql()
		if err != nil {
			return 0, fmt.Errorf("build insert: %w", err)
		}
		res, err := exec.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	}

	query, args, err := b.Suffix("RETURNING " + pkColumn).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert: %w", err)
	}
	var id int64
	if err := sqlx.GetContext(ctx, exec, &id, query, args...); err != nil {
		return 0, err
	}
	return id, nil
}

// Exec renders and executes a statement, returning the affected row count.
func (c *Client) Exec(ctx context.Context, b sq.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build statement: %w", err)
	}
	res, err := c.Executor(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Get renders b and scans a single row into dest.
func (c *Client) Get(ctx context.Context, dest interface{}, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return sqlx.GetContext(ctx, c.Executor(ctx), dest, query, args...)
}

// Select renders b and scans all rows into dest.
func (c *Client) Select(ctx context.Context, dest interface{}, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return sqlx.SelectContext(ctx, c.Executor(ctx), dest, query, args...)
}
