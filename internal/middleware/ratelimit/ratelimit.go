// Package ratelimit limits requests per client IP and route group.
package ratelimit

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/qolzam/backoffice/internal/pkg/log"
	"github.com/qolzam/backoffice/internal/platform/config"
)

// Config holds the configuration for rate limiting middleware
type Config struct {
	// Name labels the limited group in logs and responses, e.g. "api" or "upload".
	Name string

	Max      int
	Duration time.Duration

	// Next defines a function to skip this middleware when returned true
	Next func(c *fiber.Ctx) bool

	// KeyGenerator defaults to client IP plus Name.
	KeyGenerator func(c *fiber.Ctx) string
}

func configDefault(cfg Config) Config {
	if cfg.Max <= 0 {
		cfg.Max = 60
	}
	if cfg.Duration <= 0 {
		cfg.Duration = time.Minute
	}
	if cfg.KeyGenerator == nil {
		name := cfg.Name
		cfg.KeyGenerator = func(c *fiber.Ctx) string {
			return name + ":" + c.IP()
		}
	}
	return cfg
}

// New creates a new rate limiting middleware handler
func New(config Config) fiber.Handler {
	cfg := configDefault(config)

	return limiter.New(limiter.Config{
		Max:          cfg.Max,
		Expiration:   cfg.Duration,
		KeyGenerator: cfg.KeyGenerator,
		Next:         cfg.Next,
		LimitReached: func(c *fiber.Ctx) error {
			log.Warn("[RateLimit] %s limit exceeded from IP: %s", cfg.Name, c.IP())
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"code":       "RATE_LIMIT_EXCEEDED",
				"message":    fmt.Sprintf("Too many %s requests. Please try again later.", cfg.Name),
				"retryAfter": int(cfg.Duration.Seconds()),
			})
		},
	})
}

// FromConfig builds a limiter from a config section. Disabled sections
// return a pass-through handler.
func FromConfig(name string, rl config.RateLimitConfig) fiber.Handler {
	if !rl.Enabled {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return New(Config{Name: name, Max: rl.Max, Duration: rl.Duration})
}
