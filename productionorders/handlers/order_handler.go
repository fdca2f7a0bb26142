package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/qolzam/backoffice/internal/middleware/constraints"
	"github.com/qolzam/backoffice/internal/pagination"
	"github.com/qolzam/backoffice/internal/types"
	"github.com/qolzam/backoffice/internal/validation"
	"github.com/qolzam/backoffice/productionorders/errors"
	"github.com/qolzam/backoffice/productionorders/models"
	"github.com/qolzam/backoffice/productionorders/services"
)

type OrderHandler struct {
	service services.Service
}

func NewOrderHandler(service services.Service) *OrderHandler {
	return &OrderHandler{service: service}
}

// Endpoint: GET /production-orders?page=&limit=
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var opts pagination.Options
	if err := validation.ParseQuery(c, &opts); err != nil {
		return errors.HandleServiceError(c, err)
	}

	page, err := h.service.List(c.UserContext(), opts)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(page)
}

// Search matches q against the PO number, notes, owner, customer and
// factory names. A blank q lists every order.
// Endpoint: GET /production-orders/search?q=&page=&limit=
func (h *OrderHandler) Search(c *fiber.Ctx) error {
	var query models.SearchQuery
	if err := validation.ParseQuery(c, &query); err != nil {
		return errors.HandleServiceError(c, err)
	}

	page, err := h.service.Search(c.UserContext(), &query)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(page)
}

// Endpoint: GET /production-orders/:id
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := constraints.ParamID(c, "id")
	if err != nil {
		return errors.HandleValidationError(c, "id must be a positive integer")
	}

	order, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(order)
}

// Endpoint: POST /production-orders
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req models.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}
	if strings.TrimSpace(req.UserOwner) == "" {
		req.UserOwner = c.Get(types.HeaderUserOwner)
	}

	order, err := h.service.Create(c.UserContext(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(order)
}

// Endpoint: PUT /production-orders/:id
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := constraints.ParamID(c, "id")
	if err != nil {
		return errors.HandleValidationError(c, "id must be a positive integer")
	}

	var req models.UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}

	order, err := h.service.Update(c.UserContext(), id, &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(order)
}

// Endpoint: DELETE /production-orders/:id
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := constraints.ParamID(c, "id")
	if err != nil {
		return errors.HandleValidationError(c, "id must be a positive integer")
	}

	affected, err := h.service.Delete(c.UserContext(), id)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"affected": affected})
}
