// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package pagination

import (
	"math"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Options are the 1-based page and page size requested by a caller.
type Options struct {
	Page  int `schema:"page" json:"page"`
	Limit int `schema:"limit" json:"limit"`
}

// Normalize clamps page to >= 1 and limit to [1, MaxLimit].
func (o Options) Normalize() Options {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 {
		o.Limit = DefaultLimit
	}
	if o.Limit > MaxLimit {
		o.Limit = MaxLimit
	}
	return o
}

// Offset is the number of rows skipped before the requested page.
func (o Options) Offset() uint64 {
	o = o.Normalize()
	return uint64((o.Page - 1) * o.Limit)
}

// Meta describes a page within the full filtered result.
type Meta struct {
	TotalItems   int64 `json:"totalItems"`
	ItemCount    int   `json:"itemCount"`
	ItemsPerPage int   `json:"itemsPerPage"`
	TotalPages   int   `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
}

// NewMeta computes page metadata for total filtered rows.
func NewMeta(total int64, itemCount int, opts Options) Meta {
	opts = opts.Normalize()
	return Meta{
		TotalItems:   total,
		ItemCount:    itemCount,
		ItemsPerPage: opts.Limit,
		TotalPages:   int(math.Ceil(float64(total) / float64(opts.Limit))),
		CurrentPage:  opts.Page,
	}
}

// Page is one page of results.
type Page[T any] struct {
	Items []T  `json:"items"`
	Meta  Meta `json:"meta"`
}

// Empty returns a page with no items for opts.
func Empty[T any](opts Options) Page[T] {
	return Page[T]{Items: []T{}, Meta: NewMeta(0, 0, opts)}
}

// Map converts the items of a page, keeping its metadata.
func Map[T, R any](p Page[T], fn func(T) R) Page[R] {
	items := make([]R, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, fn(item))
	}
	return Page[R]{Items: items, Meta: p.Meta}
}
