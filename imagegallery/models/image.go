package models

import (
	"time"

	"github.com/qolzam/backoffice/internal/pagination"
)

// Image is a row of the image_gallery table. Filename is the object key for
// uploaded files and the last URL segment for images registered by URL.
type Image struct {
	ID            int64     `db:"id" json:"id"`
	FkItemID      int64     `db:"fk_item_id" json:"fkItemId"`
	FkItemType    string    `db:"fk_item_type" json:"fkItemType"`
	Type          string    `db:"type" json:"type"`
	URL           string    `db:"url" json:"url"`
	Filename      string    `db:"filename" json:"filename"`
	FileExtension string    `db:"file_extension" json:"fileExtension"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// Upload is a file received in a multipart request.
type Upload struct {
	Filename string
	Data     []byte
}

// UploadRequest holds the form fields sent with a multipart upload.
type UploadRequest struct {
	FkItemID   int64  `schema:"fkItemId" json:"fkItemId" validate:"required,gt=0"`
	FkItemType string `schema:"fkItemType" json:"fkItemType" validate:"required,max=64"`
	Type       string `schema:"type" json:"type" validate:"max=64"`
}

type CreateFromURLRequest struct {
	FkItemID   int64  `json:"fkItemId" validate:"required,gt=0"`
	FkItemType string `json:"fkItemType" validate:"required,max=64"`
	Type       string `json:"type" validate:"max=64"`
	URL        string `json:"url" validate:"required,url"`
}

// UpdateRequest changes only the fields that are present.
type UpdateRequest struct {
	FkItemID   *int64  `schema:"fkItemId" json:"fkItemId" validate:"omitempty,gt=0"`
	FkItemType *string `schema:"fkItemType" json:"fkItemType" validate:"omitempty,min=1,max=64"`
	Type       *string `schema:"type" json:"type" validate:"omitempty,max=64"`
}

type ListQuery struct {
	FkItemID   int64  `schema:"fkItemId" validate:"required,gt=0"`
	FkItemType string `schema:"fkItemType" validate:"required"`
	pagination.Options
}
