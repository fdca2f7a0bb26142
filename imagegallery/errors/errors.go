package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/qolzam/backoffice/internal/validation"
)

var (
	ErrImageNotFound        = errors.New("image not found")
	ErrFileRequired         = errors.New("file is required")
	ErrFileTooLarge         = errors.New("file exceeds the upload size limit")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrStorage              = errors.New("object storage operation failed")
	ErrInvalidRequest       = errors.New("invalid request")
	ErrDatabaseOperation    = errors.New("database operation failed")
)

const (
	CodeImageNotFound        = "IMAGE_NOT_FOUND"
	CodeFileRequired         = "FILE_REQUIRED"
	CodeFileTooLarge         = "FILE_TOO_LARGE"
	CodeUnsupportedMediaType = "UNSUPPORTED_MEDIA_TYPE"
	CodeStorageError         = "STORAGE_ERROR"
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeValidationFailed     = "VALIDATION_FAILED"
	CodeDatabaseError        = "DATABASE_ERROR"
	CodeInternalError        = "INTERNAL_ERROR"
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
	case errors.Is(err, ErrFileRequired):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Code: CodeFileRequired, Message: "File is required"})
	case errors.Is(err, ErrFileTooLarge):
		return c.Status(http.StatusRequestEntityTooLarge).JSON(ErrorResponse{Code: CodeFileTooLarge, Message: err.Error()})
	case errors.Is(err, ErrUnsupportedMediaType):
		return c.Status(http.StatusUnsupportedMediaType).JSON(ErrorResponse{Code: CodeUnsupportedMediaType, Message: err.Error(), Details: err.Error()})
	case errors.Is(err, ErrImageNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{Code: CodeImageNotFound, Message: "Image not found", Details: err.Error()})
	case errors.Is(err, ErrStorage):
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{Code: CodeStorageError, Message: "Object storage is unavailable", Details: err.Error()})
	case errors.Is(err, ErrDatabaseOperation):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{Code: CodeDatabaseError, Message: err.Error(), Details: err.Error()})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Code: CodeInternalError, Message: "An unexpected error occurred", Details: err.Error()})
	}
}

func HandleValidationError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Code: CodeInvalidRequest, Message: message, Details: message})
}
