package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/qolzam/backoffice/factories/errors"
	"github.com/qolzam/backoffice/factories/models"
	"github.com/qolzam/backoffice/factories/services"
	"github.com/qolzam/backoffice/internal/middleware/constraints"
	"github.com/qolzam/backoffice/internal/pagination"
	"github.com/qolzam/backoffice/internal/types"
	"github.com/qolzam/backoffice/internal/validation"
)

type FactoryHandler struct {
	service services.Service
}

func NewFactoryHandler(service services.Service) *FactoryHandler {
	return &FactoryHandler{service: service}
}

// Endpoint: GET /factories?page=&limit=
func (h *FactoryHandler) List(c *fiber.Ctx) error {
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

// Search answers an empty page for a blank term without touching the database.
// Endpoint: GET /factories/search?q=&match=&fields=&page=&limit=
func (h *FactoryHandler) Search(c *fiber.Ctx) error {
	var query models.SearchQuery
	if err := validation.ParseQuery(c, &query); err != nil {
		return errors.HandleServiceError(c, err)
	}
	if strings.TrimSpace(query.Q) == "" {
		return c.Status(http.StatusOK).JSON(pagination.Empty[models.FactoryResponse](query.Options))
	}

	page, err := h.service.Search(c.UserContext(), &query)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(page)
}

// Endpoint: GET /factories/kpi
func (h *FactoryHandler) KPI(c *fiber.Ctx) error {
	summary, err := h.service.KPISummary(c.UserContext())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(summary)
}

// Endpoint: GET /factories/:id
func (h *FactoryHandler) Get(c *fiber.Ctx) error {
	id, err := constraints.ParamID(c, "id")
	if err != nil {
		return errors.HandleValidationError(c, "id must be a positive integer")
	}

	factory, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(factory)
}

// Create records the X-User-Owner header as owner when the body names none.
// Endpoint: POST /factories
func (h *FactoryHandler) Create(c *fiber.Ctx) error {
	var req models.CreateFactoryRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}
	if strings.TrimSpace(req.UserOwner) == "" {
		req.UserOwner = c.Get(types.HeaderUserOwner)
	}

	factory, err := h.service.Create(c.UserContext(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(factory)
}

// Endpoint: PUT /factories/:id
func (h *FactoryHandler) Update(c *fiber.Ctx) error {
	id, err := constraints.ParamID(c, "id")
	if err != nil {
		return errors.HandleValidationError(c, "id must be a positive integer")
	}

	var req models.UpdateFactoryRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}

	factory, err := h.service.Update(c.UserContext(), id, &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(factory)
}

// Endpoint: DELETE /factories/:id
func (h *FactoryHandler) Delete(c *fiber.Ctx) error {
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
