package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/qolzam/backoffice/contacts/errors"
	"github.com/qolzam/backoffice/contacts/models"
	"github.com/qolzam/backoffice/contacts/services"
	"github.com/qolzam/backoffice/internal/middleware/constraints"
	"github.com/qolzam/backoffice/internal/validation"
)

type ContactHandler struct {
	service services.Service
}

func NewContactHandler(service services.Service) *ContactHandler {
	return &ContactHandler{service: service}
}

// List returns the contacts of one owner row.
// Endpoint: GET /contacts?fkId=&table=&page=&limit=
func (h *ContactHandler) List(c *fiber.Ctx) error {
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

// Endpoint: GET /contacts/:id
func (h *ContactHandler) Get(c *fiber.Ctx) error {
	id, err := constraints.ParamID(c, "id")
	if err != nil {
		return errors.HandleValidationError(c, "id must be a positive integer")
	}

	contact, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(contact)
}

// GetByReference returns the owner's contact of the given type.
// Endpoint: GET /contacts/by-reference/:fkId/:table/:contactType
func (h *ContactHandler) GetByReference(c *fiber.Ctx) error {
	fkID, err := constraints.ParamID(c, "fkId")
	if err != nil {
		return errors.HandleValidationError(c, "fkId must be a positive integer")
	}

	contact, err := h.service.FindByOwner(c.UserContext(), fkID, c.Params("table"), c.Params("contactType"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(contact)
}

// Endpoint: POST /contacts
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var req models.CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}

	contact, err := h.service.Create(c.UserContext(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(contact)
}

// Endpoint: PUT /contacts/:id
func (h *ContactHandler) Update(c *fiber.Ctx) error {
	id, err := constraints.ParamID(c, "id")
	if err != nil {
		return errors.HandleValidationError(c, "id must be a positive integer")
	}

	var req models.UpdateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}

	contact, err := h.service.Update(c.UserContext(), id, &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(contact)
}

// Endpoint: DELETE /contacts/:id
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
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
