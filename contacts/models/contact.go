package models

import (
	"time"

	"github.com/qolzam/backoffice/internal/pagination"
)

// Contact types recognised by the back office.
const (
	TypePrimary  = "primary"
	TypeBilling  = "billing"
	TypeShipping = "shipping"
)

// Contact is a person attached to a row of another table (a factory, a
// customer) through the (FkID, Table) pair.
type Contact struct {
	ID            int64     `db:"pk_contact_id" json:"id"`
	FkID          int64     `db:"fk_id" json:"fkId"`
	Table         string    `db:"ref_table" json:"table"`
	FirstName     string    `db:"first_name" json:"firstName"`
	LastName      string    `db:"last_name" json:"lastName"`
	Email         string    `db:"email" json:"email"`
	PhoneNumber   string    `db:"phone_number" json:"phoneNumber"`
	MobileNumber  string    `db:"mobile_number" json:"mobileNumber"`
	PositionTitle string    `db:"position_title" json:"positionTitle"`
	ContactType   string    `db:"contact_type" json:"contactType"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// FullName joins first and last name the way search matches them.
func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

type CreateContactRequest struct {
	FkID          int64  `json:"fkId" validate:"required,gt=0"`
	Table         string `json:"table" validate:"required,max=64"`
	FirstName     string `json:"firstName" validate:"max=255"`
	LastName      string `json:"lastName" validate:"max=255"`
	Email         string `json:"email" validate:"omitempty,email,max=255"`
	PhoneNumber   string `json:"phoneNumber" validate:"max=64"`
	MobileNumber  string `json:"mobileNumber" validate:"max=64"`
	PositionTitle string `json:"positionTitle" validate:"max=255"`
	ContactType   string `json:"contactType" validate:"max=32"`
}

// UpdateContactRequest changes only the fields that are present.
type UpdateContactRequest struct {
	FirstName     *string `json:"firstName" validate:"omitempty,max=255"`
	LastName      *string `json:"lastName" validate:"omitempty,max=255"`
	Email         *string `json:"email" validate:"omitempty,email,max=255"`
	PhoneNumber   *string `json:"phoneNumber" validate:"omitempty,max=64"`
	MobileNumber  *string `json:"mobileNumber" validate:"omitempty,max=64"`
	PositionTitle *string `json:"positionTitle" validate:"omitempty,max=255"`
	ContactType   *string `json:"contactType" validate:"omitempty,max=32"`
}

// ListQuery selects the contacts of one owner row.
type ListQuery struct {
	FkID  int64  `schema:"fkId" validate:"required,gt=0"`
	Table string `schema:"table" validate:"required"`
	pagination.Options
}
