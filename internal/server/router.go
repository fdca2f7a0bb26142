package server

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/qolzam/backoffice/addresses"
	addresshandlers "github.com/qolzam/backoffice/addresses/handlers"
	addressrepo "github.com/qolzam/backoffice/addresses/repository"
	addressservices "github.com/qolzam/backoffice/addresses/services"
	"github.com/qolzam/backoffice/contacts"
	contacthandlers "github.com/qolzam/backoffice/contacts/handlers"
	contactrepo "github.com/qolzam/backoffice/contacts/repository"
	contactservices "github.com/qolzam/backoffice/contacts/services"
	"github.com/qolzam/backoffice/factories"
	factoryhandlers "github.com/qolzam/backoffice/factories/handlers"
	factoryrepo "github.com/qolzam/backoffice/factories/repository"
	factoryservices "github.com/qolzam/backoffice/factories/services"
	"github.com/qolzam/backoffice/imagegallery"
	galleryhandlers "github.com/qolzam/backoffice/imagegallery/handlers"
	galleryrepo "github.com/qolzam/backoffice/imagegallery/repository"
	galleryservices "github.com/qolzam/backoffice/imagegallery/services"
	"github.com/qolzam/backoffice/internal/cache"
	"github.com/qolzam/backoffice/internal/database/sqldb"
	"github.com/qolzam/backoffice/internal/middleware/ratelimit"
	"github.com/qolzam/backoffice/internal/middleware/requestid"
	"github.com/qolzam/backoffice/internal/pkg/log"
	"github.com/qolzam/backoffice/internal/platform/config"
	"github.com/qolzam/backoffice/internal/types"
	"github.com/qolzam/backoffice/lookups"
	lookuphandlers "github.com/qolzam/backoffice/lookups/handlers"
	lookuprepo "github.com/qolzam/backoffice/lookups/repository"
	lookupservices "github.com/qolzam/backoffice/lookups/services"
	"github.com/qolzam/backoffice/orchestrator/onboarding"
	"github.com/qolzam/backoffice/productionorders"
	orderhandlers "github.com/qolzam/backoffice/productionorders/handlers"
	orderrepo "github.com/qolzam/backoffice/productionorders/repository"
	orderservices "github.com/qolzam/backoffice/productionorders/services"
	"github.com/qolzam/backoffice/storage/provider"
)

// Dependencies are the shared clients every module is built on.
type Dependencies struct {
	DB    *sqldb.Client
	Cache *cache.Service
	Blobs provider.BlobProvider
}

// Router builds the application with every module mounted under
// cfg.Server.BaseRoute.
func Router(cfg *config.Config, deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "Backoffice API",
		BodyLimit: cfg.Server.BodyLimit,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			log.ErrorWithContext(c.UserContext(), "[ErrorHandler] %s %s: %v (%d)", c.Method(), c.Path(), err, code)

			// Handlers that already wrote a body keep it.
			if len(c.Response().Body()) > 0 {
				return nil
			}
			return c.Status(code).JSON(fiber.Map{"code": http.StatusText(code), "message": err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.Server.AllowOrigins, ","),
		AllowHeaders: strings.Join([]string{"Origin", types.HeaderContentType, "Accept", types.HeaderRequestID, types.HeaderUserOwner}, ", "),
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := deps.DB.HealthCheck(c.UserContext()); err != nil {
			return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group(cfg.Server.BaseRoute, ratelimit.FromConfig("api", cfg.RateLimits.API))

	lookupService := lookupservices.NewService(lookuprepo.NewSQLRepository(deps.DB), deps.Cache)
	contactService := contactservices.NewService(contactrepo.NewSQLRepository(deps.DB))
	addressService := addressservices.NewService(addressrepo.NewSQLRepository(deps.DB))
	factoryService := factoryservices.NewService(factoryrepo.NewSQLRepository(deps.DB), lookupService, contactService)
	orderService := orderservices.NewService(orderrepo.NewSQLRepository(deps.DB), contactService)
	galleryService := galleryservices.NewService(
		galleryrepo.NewSQLRepository(deps.DB),
		provider.NewStore(deps.Blobs, cfg.Storage.KeyPrefix, cfg.Storage.SignedURLTTL),
		galleryservices.Options{AllowedTypes: cfg.Storage.AllowedTypes, MaxUploadSize: cfg.Storage.MaxUploadSize},
	)

	onboarding.RegisterRoutes(api, onboarding.NewHandler(onboarding.NewService(factoryService, contactService, addressService)))

	lookups.RegisterRoutes(api, &lookups.Handlers{LookupHandler: lookuphandlers.NewLookupHandler(lookupService)})
	factories.RegisterRoutes(api, &factories.Handlers{FactoryHandler: factoryhandlers.NewFactoryHandler(factoryService)})
	contacts.RegisterRoutes(api, &contacts.Handlers{ContactHandler: contacthandlers.NewContactHandler(contactService)})
	addresses.RegisterRoutes(api, &addresses.Handlers{AddressHandler: addresshandlers.NewAddressHandler(addressService)})
	productionorders.RegisterRoutes(api, &productionorders.Handlers{OrderHandler: orderhandlers.NewOrderHandler(orderService)})
	imagegallery.RegisterRoutes(api, &imagegallery.Handlers{ImageHandler: galleryhandlers.NewImageHandler(galleryService)},
		ratelimit.FromConfig("upload", cfg.RateLimits.Upload))

	return app
}
