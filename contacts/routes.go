package contacts

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qolzam/backoffice/contacts/handlers"
	"github.com/qolzam/backoffice/internal/middleware/constraints"
)

type Handlers struct {
	ContactHandler *handlers.ContactHandler
}

// RegisterRoutes wires contact endpoints.
func RegisterRoutes(router fiber.Router, handlers *Handlers) {
	group := router.Group("/contacts")

	group.Get("/", handlers.ContactHandler.List)
	group.Post("/", handlers.ContactHandler.Create)
	group.Get("/by-reference/:fkId/:table/:contactType", constraints.RequireNumericID("fkId"), handlers.ContactHandler.GetByReference)

	group.Get("/:id", constraints.RequireNumericID("id"), handlers.ContactHandler.Get)
	group.Put("/:id", constraints.RequireNumericID("id"), handlers.ContactHandler.Update)
	group.Delete("/:id", constraints.RequireNumericID("id"), handlers.ContactHandler.Delete)
}
