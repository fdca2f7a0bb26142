// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package pagination

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/qolzam/backoffice/internal/search"
)

// Join is a LEFT JOIN clause with its positional ('?') arguments.
type Join struct {
	Clause string
	Args   []any
}

// Query describes the base SELECT a paginated search runs against.
// Row and count statements are built from the same joins and predicates so
// the reported total always matches the filtered rows.
type Query struct {
	From    string
	Joins   []Join
	Columns []string
	// Where holds fixed predicates ANDed with the search filter.
	Where []sq.Sqlizer
	// Distinct collapses duplicate rows produced by one-to-many joins.
	Distinct bool
	// CountExpr defaults to COUNT(*).
	CountExpr string
	// OrderBy is always applied in descending order.
	OrderBy string
}

func (q Query) base(b sq.SelectBuilder, filter search.Filter) (sq.SelectBuilder, error) {
	b = b.From(q.From)
	for _, join := range q.Joins {
		b = b.LeftJoin(join.Clause, join.Args...)
	}
	for _, pred := range q.Where {
		b = b.Where(pred)
	}
	expr, err := filter.Sqlizer()
	if err != nil {
		return b, err
	}
	if expr != nil {
		b = b.Where(expr)
	}
	return b, nil
}

// RowsSQL renders the page query.
func (q Query) RowsSQL(filter search.Filter, opts Options, format sq.PlaceholderFormat) (string, []any, error) {
	opts = opts.Normalize()

	b := sq.Select(q.Columns...)
	if q.Distinct {
		b = b.Distinct()
	}
	b, err := q.base(b, filter)
	if err != nil {
		return "", nil, err
	}
	if q.OrderBy != "" {
		b = b.OrderBy(q.OrderBy + " DESC")
	}
	return b.Limit(uint64(opts.Limit)).
		Offset(opts.Offset()).
		PlaceholderFormat(format).
		ToSql()
}

// CountSQL renders the total query with the same predicate as RowsSQL.
func (q Query) CountSQL(filter search.Filter, format sq.PlaceholderFormat) (string, []any, error) {
	countExpr := q.CountExpr
	if countExpr == "" {
		countExpr = "COUNT(*)"
	}
	b, err := q.base(sq.Select(countExpr), filter)
	if err != nil {
		return "", nil, err
	}
	return b.PlaceholderFormat(format).ToSql()
}

// Paginate runs the row and count queries and assembles a Page.
func Paginate[T any](ctx context.Context, db sqlx.QueryerContext, format sq.PlaceholderFormat, q Query, filter search.Filter, opts Options) (Page[T], error) {
	opts = opts.Normalize()

	rowsSQL, rowsArgs, err := q.RowsSQL(filter, opts, format)
	if err != nil {
		return Page[T]{}, fmt.Errorf("build page query: %w", err)
	}
	countSQL, countArgs, err := q.CountSQL(filter, format)
	if err != nil {
		return Page[T]{}, fmt.Errorf("build count query: %w", err)
	}

	items := []T{}
	if err := sqlx.SelectContext(ctx, db, &items, rowsSQL, rowsArgs...); err != nil {
		return Page[T]{}, fmt.Errorf("failed to query page: %w", err)
	}

	var total int64
	if err := sqlx.GetContext(ctx, db, &total, countSQL, countArgs...); err != nil {
		return Page[T]{}, fmt.Errorf("failed to count rows: %w", err)
	}

	return Page[T]{Items: items, Meta: NewMeta(total, len(items), opts)}, nil
}
