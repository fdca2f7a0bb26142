package models

import (
	"time"

	contactmodels "github.com/qolzam/backoffice/contacts/models"
	"github.com/qolzam/backoffice/internal/pagination"
)

// Factory statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Factory is a row of the factories table.
type Factory struct {
	ID                int64     `db:"pk_factories_id" json:"id"`
	FactoryTypeID     int64     `db:"fk_factories_type_id" json:"factoryTypeId"`
	ServiceCategoryID int64     `db:"fk_factories_service_id" json:"serviceCategoryId"`
	LocationID        int64     `db:"fk_location_id" json:"locationId"`
	Status            string    `db:"status" json:"status"`
	Name              string    `db:"name" json:"name"`
	Email             string    `db:"email" json:"email"`
	WebsiteURL        string    `db:"website_url" json:"websiteUrl"`
	Industry          string    `db:"industry" json:"industry"`
	Tags              string    `db:"tags" json:"tags"`
	Notes             string    `db:"notes" json:"notes"`
	UserOwner         string    `db:"user_owner" json:"userOwner"`
	CreatedAt         time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time `db:"updated_at" json:"updatedAt"`
}

type CreateFactoryRequest struct {
	FactoryTypeID     int64  `json:"fkFactoriesTypeId" validate:"required,gt=0"`
	ServiceCategoryID int64  `json:"fkFactoriesServiceCategoryId" validate:"required,gt=0"`
	LocationID        int64  `json:"fkLocationId" validate:"required,gt=0"`
	Status            string `json:"status" validate:"required,oneof=active inactive"`
	Name              string `json:"name" validate:"required,max=255"`
	Email             string `json:"email" validate:"max=255"`
	WebsiteURL        string `json:"websiteURL" validate:"max=512"`
	Industry          string `json:"industry" validate:"max=255"`
	// Tags is a JSON array encoded as a string; anything else is stored as "[]".
	Tags      string `json:"tags"`
	Notes     string `json:"notes"`
	UserOwner string `json:"userOwner" validate:"max=255"`
}

// UpdateFactoryRequest changes only the fields that are present.
type UpdateFactoryRequest struct {
	FactoryTypeID     *int64  `json:"fkFactoriesTypeId" validate:"omitempty,gt=0"`
	ServiceCategoryID *int64  `json:"fkFactoriesServiceCategoryId" validate:"omitempty,gt=0"`
	LocationID        *int64  `json:"fkLocationId" validate:"omitempty,gt=0"`
	Status            *string `json:"status" validate:"omitempty,oneof=active inactive"`
	Name              *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email             *string `json:"email" validate:"omitempty,max=255"`
	WebsiteURL        *string `json:"websiteURL" validate:"omitempty,max=512"`
	Industry          *string `json:"industry" validate:"omitempty,max=255"`
	Tags              *string `json:"tags"`
	Notes             *string `json:"notes"`
}

// SearchQuery is the decoded query string of GET /factories/search.
// Fields is a comma separated list of search field names.
type SearchQuery struct {
	Q      string `schema:"q"`
	Match  string `schema:"match" validate:"omitempty,oneof=partial exact phrase"`
	Fields string `schema:"fields"`
	pagination.Options
}

// Reference is an id/name pair of a lookup row.
type Reference struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type LocationReference struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// FactoryResponse is a factory with its lookups and primary contact resolved.
// References whose rows no longer exist are null.
type FactoryResponse struct {
	ID              int64                  `json:"id"`
	FactoryType     *Reference             `json:"factoryType"`
	ServiceCategory *Reference             `json:"serviceCategory"`
	LocationType    *LocationReference     `json:"locationType"`
	Contact         *contactmodels.Contact `json:"contact"`
	Status          string                 `json:"status"`
	Name            string                 `json:"name"`
	Email           string                 `json:"email"`
	WebsiteURL      string                 `json:"websiteUrl"`
	Industry        string                 `json:"industry"`
	Tags            string                 `json:"tags"`
	Notes           string                 `json:"notes"`
	UserOwner       string                 `json:"userOwner"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}
