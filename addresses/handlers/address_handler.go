package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/qolzam/backoffice/addresses/errors"
	"github.com/qolzam/backoffice/addresses/models"
	"github.com/qolzam/backoffice/addresses/services"
	"github.com/qolzam/backoffice/internal/middleware/constraints"
	"github.com/qolzam/backoffice/internal/validation"
)

type AddressHandler struct {
	service services.Service
}

func NewAddressHandler(service services.Service) *AddressHandler {
	return &AddressHandler{service: service}
}

// List returns the addresses of one owner row, optionally of one type.
// Endpoint: GET /addresses?fkId=&table=&type=&page=&limit=
func (h *AddressHandler) List(c *fiber.Ctx) error {
	var query models.ListQuery
	if err := validation.ParseQuery(c, &query); err != nil {
		return errors.HandleServiceError(c, err)
	}

	page, err := h.service.ListByOwner(c.UserContext(), &query)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(page)
}

// Endpoint: GET /addresses/:id
func (h *AddressHandler) Get(c *fiber.Ctx) error {
	id, err := constraints.ParamID(c, "id")
	if err != nil {
		return errors.HandleValidationError(c, "id must be a positive integer")
	}

	address, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(address)
}

// GetByReference returns the owner's BILLING or SHIPPING address.
// Endpoint: GET /addresses/by-reference/:fkId/:table/:addressType
func (h *AddressHandler) GetByReference(c *fiber.Ctx) error {
	fkID, err := constraints.ParamID(c, "fkId")
	if err != nil {
		return errors.HandleValidationError(c, "fkId must be a positive integer")
	}

	address, err := h.service.FindByDetails(c.UserContext(), fkID, c.Params("table"), c.Params("addressType"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(address)
}

// Endpoint: POST /addresses
func (h *AddressHandler) Create(c *fiber.Ctx) error {
	var req models.CreateAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}

	address, err := h.service.Create(c.UserContext(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(address)
}

// Endpoint: PUT /addresses/:id
func (h *AddressHandler) Update(c *fiber.Ctx) error {
	id, err := constraints.ParamID(c, "id")
	if err != nil {
		return errors.HandleValidationError(c, "id must be a positive integer")
	}

	var req models.UpdateAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}

	address, err := h.service.Update(c.UserContext(), id, &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(address)
}

// Endpoint: DELETE /addresses/:id
func (h *AddressHandler) Delete(c *fiber.Ctx) error {
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
