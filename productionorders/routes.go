package productionorders

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qolzam/backoffice/internal/middleware/constraints"
	"github.com/qolzam/backoffice/productionorders/handlers"
)

type Handlers struct {
	OrderHandler *handlers.OrderHandler
}

// RegisterRoutes wires production order endpoints.
func RegisterRoutes(router fiber.Router, handlers *Handlers) {
	group := router.Group("/production-orders")

	group.Get("/", handlers.OrderHandler.List)
	group.Get("/search", handlers.OrderHandler.Search)
	group.Post("/", handlers.OrderHandler.Create)

	group.Get("/:id", constraints.RequireNumericID("id"), handlers.OrderHandler.Get)
	group.Put("/:id", constraints.RequireNumericID("id"), handlers.OrderHandler.Update)
	group.Delete("/:id", constraints.RequireNumericID("id"), handlers.OrderHandler.Delete)
}
