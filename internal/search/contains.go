// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package search

import "strings"

// Contains builds the simple substring filter used by list screens that do
// not need per-field strategies: every expression is tested against the
// same %term% parameter.
func Contains(term string, expressions ...string) Filter {
	term = strings.TrimSpace(term)
	if term == "" || len(expressions) == 0 {
		return emptyFilter()
	}

	parts := make([]string, 0, len(expressions))
	for _, expr := range expressions {
		parts = append(parts, expr+" LIKE :q")
	}

	return Filter{
		Where:  "(" + strings.Join(parts, " OR ") + ")",
		Params: map[string]any{"q": "%" + term + "%"},
	}
}
