package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/qolzam/backoffice/internal/validation"
)

var (
	ErrFactoryNotFound   = errors.New("factory not found")
	ErrInvalidReference  = errors.New("referenced lookup does not exist")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrDatabaseOperation = errors.New("database operation failed")
)

const (
	CodeFactoryNotFound  = "FACTORY_NOT_FOUND"
	CodeInvalidReference = "INVALID_REFERENCE"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeDatabaseError    = "DATABASE_ERROR"
	CodeInternalError    = "INTERNAL_ERROR"
)

type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Code: CodeValidationFailed, Message: verr.Error(), Details: verr.Fields})
	case errors.Is(err, validation.ErrInvalidInput), errors.Is(err, ErrInvalidRequest):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Code: CodeInvalidRequest, Message: err.Error(), Details: err.Error()})
	case errors.Is(err, ErrFactoryNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{Code: CodeFactoryNotFound, Message: "Factory not found", Details: err.Error()})
	case errors.Is(err, ErrInvalidReference):
		return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{Code: CodeInvalidReference, Message: err.Error(), Details: err.Error()})
	case errors.Is(err, ErrDatabaseOperation):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{Code: CodeDatabaseError, Message: err.Error(), Details: err.Error()})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Code: CodeInternalError, Message: "An unexpected error occurred", Details: err.Error()})
	}
}

func HandleValidationError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Code: CodeInvalidRequest, Message: message, Details: message})
}
