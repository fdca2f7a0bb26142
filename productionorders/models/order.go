package models

import (
	"strings"
	"time"

	contactmodels "github.com/qolzam/backoffice/contacts/models"
	"github.com/qolzam/backoffice/internal/pagination"
)

// Shipping methods.
const (
	ShippingOcean   = "ocean"
	ShippingAir     = "air"
	ShippingGround  = "ground"
	ShippingExpress = "express"
)

// Order statuses.
const (
	StatusPending      = "pending"
	StatusInProgress   = "in_progress"
	StatusQualityCheck = "quality_check"
	StatusReadyToShip  = "ready_to_ship"
	StatusShipped      = "shipped"
	StatusDelivered    = "delivered"
	StatusCompleted    = "completed"
	StatusCancelled    = "cancelled"
)

// ProductionOrder is a row of the production_orders table.
type ProductionOrder struct {
	ID                   int64     `db:"pk_production_order_id" json:"id"`
	CustomerID           int64     `db:"fk_customer_id" json:"customerId"`
	FactoryID            int64     `db:"fk_factory_id" json:"factoryId"`
	PONumber             string    `db:"po_number" json:"poNumber"`
	OrderDate            Date      `db:"order_date" json:"orderDate"`
	ExpectedDeliveryDate Date      `db:"expected_delivery_date" json:"expectedDeliveryDate"`
	ActualDeliveryDate   *Date     `db:"actual_delivery_date" json:"actualDeliveryDate"`
	ShippingMethod       string    `db:"shipping_method" json:"shippingMethod"`
	Status               string    `db:"status" json:"status"`
	TotalQuantity        int64     `db:"total_quantity" json:"totalQuantity"`
	TotalAmount          float64   `db:"total_amount" json:"totalAmount"`
	Notes                *string   `db:"notes" json:"notes"`
	UserOwner            *string   `db:"user_owner" json:"userOwner"`
	CreatedAt            time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt            time.Time `db:"updated_at" json:"updatedAt"`
}

// Normalize lower-cases the enum inputs so "OCEAN" and "ocean" are equivalent.
func Normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

type CreateOrderRequest struct {
	CustomerID           int64   `json:"fkCustomerId" validate:"required,gt=0"`
	FactoryID            int64   `json:"fkFactoryId" validate:"required,gt=0"`
	PONumber             string  `json:"poNumber" validate:"required,max=64"`
	OrderDate            string  `json:"orderDate" validate:"required,ymd"`
	ExpectedDeliveryDate string  `json:"expectedDeliveryDate" validate:"required,ymd"`
	ActualDeliveryDate   string  `json:"actualDeliveryDate" validate:"omitempty,ymd"`
	ShippingMethod       string  `json:"shippingMethod" validate:"omitempty,oneof=ocean air ground express"`
	Status               string  `json:"status" validate:"omitempty,oneof=pending in_progress quality_check ready_to_ship shipped delivered completed cancelled"`
	TotalQuantity        int64   `json:"totalQuantity" validate:"gte=0"`
	TotalAmount          float64 `json:"totalAmount" validate:"gte=0"`
	Notes                string  `json:"notes"`
	UserOwner            string  `json:"userOwner" validate:"max=255"`
}

// UpdateOrderRequest changes only the fields that are present. An empty
// actualDeliveryDate clears it.
type UpdateOrderRequest struct {
	CustomerID           *int64   `json:"fkCustomerId" validate:"omitempty,gt=0"`
	FactoryID            *int64   `json:"fkFactoryId" validate:"omitempty,gt=0"`
	PONumber             *string  `json:"poNumber" validate:"omitempty,min=1,max=64"`
	OrderDate            *string  `json:"orderDate" validate:"omitempty,ymd"`
	ExpectedDeliveryDate *string  `json:"expectedDeliveryDate" validate:"omitempty,ymd"`
	ActualDeliveryDate   *string  `json:"actualDeliveryDate" validate:"omitempty,ymd"`
	ShippingMethod       *string  `json:"shippingMethod" validate:"omitempty,oneof=ocean air ground express"`
	Status               *string  `json:"status" validate:"omitempty,oneof=pending in_progress quality_check ready_to_ship shipped delivered completed cancelled"`
	TotalQuantity        *int64   `json:"totalQuantity" validate:"omitempty,gte=0"`
	TotalAmount          *float64 `json:"totalAmount" validate:"omitempty,gte=0"`
	Notes                *string  `json:"notes"`
	UserOwner            *string  `json:"userOwner" validate:"omitempty,max=255"`
}

type SearchQuery struct {
	Q string `schema:"q"`
	pagination.Options
}

// Party is the customer or factory an order points at. Contact is only
// resolved on single-order reads.
type Party struct {
	ID      int64                  `json:"id"`
	Name    string                 `json:"name"`
	Contact *contactmodels.Contact `json:"contact,omitempty"`
}

type ProductionOrderResponse struct {
	ProductionOrder
	Customer Party `json:"customer"`
	Factory  Party `json:"factory"`
}
