package constraints

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// RequireNumericID answers 404 unless the path parameter is a positive
// integer, so "/search" style siblings never reach an /:id handler.
// Static routes must still be registered before parameterized ones.
func RequireNumericID(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		value := c.Params(param)
		if value == "" {
			return c.Next()
		}
		if id, err := strconv.ParseInt(value, 10, 64); err != nil || id <= 0 {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Next()
	}
}

// ParamID returns the numeric path parameter validated by RequireNumericID.
func ParamID(c *fiber.Ctx, param string) (int64, error) {
	return strconv.ParseInt(c.Params(param), 10, 64)
}
