package errors

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qolzam/backoffice/internal/validation"
)

func TestHandleServiceError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("get: %w", ErrFactoryNotFound), http.StatusNotFound},
		{"bad reference", ErrInvalidReference, http.StatusUnprocessableEntity},
		{"validation", &validation.Error{Fields: []validation.FieldError{{Field: "name", Rule: "required"}}}, http.StatusBadRequest},
		{"decode", fmt.Errorf("%w: boom", validation.ErrInvalidInput), http.StatusBadRequest},
		{"database", ErrDatabaseOperation, http.StatusServiceUnavailable},
		{"other", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return HandleServiceError(c, tc.err) })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}
