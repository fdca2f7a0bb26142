package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/qolzam/backoffice/internal/middleware/constraints"
	"github.com/qolzam/backoffice/lookups/errors"
	"github.com/qolzam/backoffice/lookups/services"
)

type LookupHandler struct {
	service services.Service
}

func NewLookupHandler(service services.Service) *LookupHandler {
	return &LookupHandler{service: service}
}

// Endpoint: GET /lookups/factory-types
func (h *LookupHandler) ListFactoryTypes(c *fiber.Ctx) error {
	items, err := h.service.ListFactoryTypes(c.UserContext())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(items)
}

// Endpoint: GET /lookups/service-categories
func (h *LookupHandler) ListServiceCategories(c *fiber.Ctx) error {
	items, err := h.service.ListServiceCategories(c.UserContext())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(items)
}

// Endpoint: GET /lookups/location-types
func (h *LookupHandler) ListLocationTypes(c *fiber.Ctx) error {
	items, err := h.service.ListLocationTypes(c.UserContext())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(items)
}

// Endpoint: GET /lookups/customers
func (h *LookupHandler) ListCustomers(c *fiber.Ctx) error {
	items, err := h.service.ListCustomers(c.UserContext())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(items)
}

// Endpoint: GET /lookups/customers/:id
func (h *LookupHandler) GetCustomer(c *fiber.Ctx) error {
	id, err := constraints.ParamID(c, "id")
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrInvalidRequest)
	}
	customer, err := h.service.GetCustomer(c.UserContext(), id)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(customer)
}
