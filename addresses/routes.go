package addresses

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qolzam/backoffice/addresses/handlers"
	"github.com/qolzam/backoffice/internal/middleware/constraints"
)

type Handlers struct {
	AddressHandler *handlers.AddressHandler
}

// RegisterRoutes wires address endpoints.
func RegisterRoutes(router fiber.Router, handlers *Handlers) {
	group := router.Group("/addresses")

	group.Get("/", handlers.AddressHandler.List)
	group.Post("/", handlers.AddressHandler.Create)
	group.Get("/by-reference/:fkId/:table/:addressType", constraints.RequireNumericID("fkId"), handlers.AddressHandler.GetByReference)

	group.Get("/:id", constraints.RequireNumericID("id"), handlers.AddressHandler.Get)
	group.Put("/:id", constraints.RequireNumericID("id"), handlers.AddressHandler.Update)
	group.Delete("/:id", constraints.RequireNumericID("id"), handlers.AddressHandler.Delete)
}
