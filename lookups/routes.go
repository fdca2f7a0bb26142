package lookups

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qolzam/backoffice/internal/middleware/constraints"
	"github.com/qolzam/backoffice/lookups/handlers"
)

type Handlers struct {
	LookupHandler *handlers.LookupHandler
}

// RegisterRoutes wires the read-only reference endpoints.
func RegisterRoutes(router fiber.Router, handlers *Handlers) {
	group := router.Group("/lookups")

	group.Get("/factory-types", handlers.LookupHandler.ListFactoryTypes)
	group.Get("/service-categories", handlers.LookupHandler.ListServiceCategories)
	group.Get("/location-types", handlers.LookupHandler.ListLocationTypes)
	group.Get("/customers", handlers.LookupHandler.ListCustomers)
	group.Get("/customers/:id", constraints.RequireNumericID("id"), handlers.LookupHandler.GetCustomer)
}
