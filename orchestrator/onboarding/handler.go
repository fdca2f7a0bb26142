package onboarding

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/qolzam/backoffice/factories/errors"
	"github.com/qolzam/backoffice/internal/types"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Onboard answers 201 once the factory exists, even when a later step failed.
// Endpoint: POST /factories/onboard
func (h *Handler) Onboard(c *fiber.Ctx) error {
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}
	if strings.TrimSpace(req.Factory.UserOwner) == "" {
		req.Factory.UserOwner = c.Get(types.HeaderUserOwner)
	}

	result, err := h.service.Onboard(c.UserContext(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(result)
}

// RegisterRoutes mounts the pipeline next to the factory routes.
func RegisterRoutes(router fiber.Router, handler *Handler) {
	router.Post("/factories/onboard", handler.Onboard)
}
