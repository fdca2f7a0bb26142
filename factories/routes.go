package factories

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qolzam/backoffice/factories/handlers"
	"github.com/qolzam/backoffice/internal/middleware/constraints"
)

type Handlers struct {
	FactoryHandler *handlers.FactoryHandler
}

// RegisterRoutes wires factory endpoints. Static paths are registered
// before /:id.
func RegisterRoutes(router fiber.Router, handlers *Handlers) {
	group := router.Group("/factories")

	group.Get("/", handlers.FactoryHandler.List)
	group.Get("/search", handlers.FactoryHandler.Search)
	group.Get("/kpi", handlers.FactoryHandler.KPI)
	group.Post("/", handlers.FactoryHandler.Create)

	group.Get("/:id", constraints.RequireNumericID("id"), handlers.FactoryHandler.Get)
	group.Put("/:id", constraints.RequireNumericID("id"), handlers.FactoryHandler.Update)
	group.Delete("/:id", constraints.RequireNumericID("id"), handlers.FactoryHandler.Delete)
}
