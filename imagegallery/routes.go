package imagegallery

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qolzam/backoffice/imagegallery/handlers"
	"github.com/qolzam/backoffice/internal/middleware/constraints"
)

type Handlers struct {
	ImageHandler *handlers.ImageHandler
}

// RegisterRoutes wires gallery endpoints. uploadLimiter guards the routes
// that accept files; pass nil to leave them unlimited.
func RegisterRoutes(router fiber.Router, handlers *Handlers, uploadLimiter fiber.Handler) {
	if uploadLimiter == nil {
		uploadLimiter = func(c *fiber.Ctx) error { return c.Next() }
	}
	group := router.Group("/image-gallery")

	group.Get("/", handlers.ImageHandler.List)
	group.Get("/by-item", handlers.ImageHandler.ListByItem)
	group.Post("/", uploadLimiter, handlers.ImageHandler.Upload)
	group.Post("/url", handlers.ImageHandler.CreateFromURL)

	group.Get("/:id", constraints.RequireNumericID("id"), handlers.ImageHandler.Get)
	group.Put("/:id", constraints.RequireNumericID("id"), uploadLimiter, handlers.ImageHandler.Update)
	group.Delete("/:id", constraints.RequireNumericID("id"), handlers.ImageHandler.Delete)
}
