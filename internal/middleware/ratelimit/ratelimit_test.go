package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qolzam/backoffice/internal/platform/config"
)

func newApp(h fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(h)
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	return app
}

func TestRateLimit_RejectsExcessiveRequests(t *testing.T) {
	app := newApp(New(Config{Name: "upload", Max: 3, Duration: time.Minute}))

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestFromConfig_Disabled(t *testing.T) {
	app := newApp(FromConfig("api", config.RateLimitConfig{Enabled: false, Max: 1, Duration: time.Minute}))

	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
}
