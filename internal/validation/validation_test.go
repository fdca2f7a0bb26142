package validation

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string `json:"name" validate:"required,max=10"`
	Email  string `json:"email" validate:"omitempty,email"`
	Status string `json:"status" validate:"required,oneof=active inactive"`
	Date   string `json:"date" validate:"omitempty,ymd"`
}

func TestStruct(t *testing.T) {
	require.NoError(t, Struct(&sample{Name: "Acme", Status: "active", Date: "2024-02-29"}))

	err := Struct(&sample{Email: "nope", Status: "paused", Date: "29/02/2024"})
	var verr *Error
	require.True(t, errors.As(err, &verr))

	fields := map[string]string{}
	for _, f := range verr.Fields {
		fields[f.Field] = f.Rule
	}
	assert.Equal(t, map[string]string{
		"name":   "required",
		"email":  "email",
		"status": "oneof",
		"date":   "ymd",
	}, fields)
	assert.Contains(t, err.Error(), "name is required")
}

type listQuery struct {
	Q     string `schema:"q"`
	Page  int    `schema:"page"`
	Limit int    `schema:"limit"`
}

func TestDecodeValues(t *testing.T) {
	var q listQuery
	require.NoError(t, DecodeValues(url.Values{"q": {"acme"}, "page": {"2"}, "other": {"x"}}, &q))
	assert.Equal(t, listQuery{Q: "acme", Page: 2}, q)

	require.ErrorIs(t, DecodeValues(url.Values{"page": {"two"}}, &q), ErrInvalidInput)
}
