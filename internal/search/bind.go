// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package search

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// Bind converts the named filter into positional SQL. The result uses '?'
// placeholders unless rebind is given, e.g. db.Rebind for the active driver.
func (f Filter) Bind(rebind func(string) string) (string, []any, error) {
	if f.IsEmpty() {
		return "", nil, nil
	}
	query, args, err := sqlx.Named(f.Where, f.Params)
	if err != nil {
		return "", nil, fmt.Errorf("bind search filter: %w", err)
	}
	if rebind != nil {
		query = rebind(query)
	}
	return query, args, nil
}

// Sqlizer returns the filter as a squirrel expression so it can be used in
// Where clauses. Placeholders are renumbered by the enclosing builder.
func (f Filter) Sqlizer() (sq.Sqlizer, error) {
	if f.IsEmpty() {
		return nil, nil
	}
	query, args, err := f.Bind(nil)
	if err != nil {
		return nil, err
	}
	return sq.Expr(query, args...), nil
}
