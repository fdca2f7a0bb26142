package models

import (
	"strings"
	"time"

	"github.com/qolzam/backoffice/internal/pagination"
)

const (
	TypeBilling  = "BILLING"
	TypeShipping = "SHIPPING"
)

// Address belongs to a row of another table through (FkID, Table).
type Address struct {
	ID          int64     `db:"pk_address_id" json:"id"`
	FkID        int64     `db:"fk_id" json:"fkId"`
	Table       string    `db:"ref_table" json:"table"`
	AddressType string    `db:"address_type" json:"addressType"`
	Address1    string    `db:"address1" json:"address1"`
	Address2    string    `db:"address2" json:"address2"`
	City        string    `db:"city" json:"city"`
	State       string    `db:"state" json:"state"`
	Zip         string    `db:"zip" json:"zip"`
	Country     string    `db:"country" json:"country"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// NormalizeType upper-cases t so "billing" and "BILLING" are equivalent.
func NormalizeType(t string) string {
	return strings.ToUpper(strings.TrimSpace(t))
}

// ValidType reports whether t names a billing or shipping address.
func ValidType(t string) bool {
	return t == TypeBilling || t == TypeShipping
}

type CreateAddressRequest struct {
	FkID        int64  `json:"fkId" validate:"required,gt=0"`
	Table       string `json:"table" validate:"required,max=64"`
	AddressType string `json:"addressType" validate:"required,oneof=BILLING SHIPPING"`
	Address1    string `json:"address1" validate:"required,max=255"`
	Address2    string `json:"address2" validate:"max=255"`
	City        string `json:"city" validate:"required,max=128"`
	State       string `json:"state" validate:"max=128"`
	Zip         string `json:"zip" validate:"max=32"`
	Country     string `json:"country" validate:"required,max=128"`
}

// UpdateAddressRequest changes only the fields that are present.
type UpdateAddressRequest struct {
	AddressType *string `json:"addressType" validate:"omitempty,oneof=BILLING SHIPPING"`
	Address1    *string `json:"address1" validate:"omitempty,max=255"`
	Address2    *string `json:"address2" validate:"omitempty,max=255"`
	City        *string `json:"city" validate:"omitempty,max=128"`
	State       *string `json:"state" validate:"omitempty,max=128"`
	Zip         *string `json:"zip" validate:"omitempty,max=32"`
	Country     *string `json:"country" validate:"omitempty,max=128"`
}

// ListQuery selects the addresses of one owner row. Type values other
// than BILLING or SHIPPING are ignored.
type ListQuery struct {
	FkID  int64  `schema:"fkId" validate:"required,gt=0"`
	Table string `schema:"table" validate:"required"`
	Type  string `schema:"type"`
	pagination.Options
}
