package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/qolzam/backoffice/imagegallery/errors"
	"github.com/qolzam/backoffice/imagegallery/models"
	"github.com/qolzam/backoffice/imagegallery/services"
	"github.com/qolzam/backoffice/internal/middleware/constraints"
	"github.com/qolzam/backoffice/internal/pagination"
	"github.com/qolzam/backoffice/internal/validation"
)

// FileField is the multipart field carrying the image.
const FileField = "imageFile"

type ImageHandler struct {
	service services.Service
}

func NewImageHandler(service services.Service) *ImageHandler {
	return &ImageHandler{service: service}
}

// Endpoint: GET /image-gallery?page=&limit=
func (h *ImageHandler) List(c *fiber.Ctx) error {
	var opts pagination.Options
	if err := validation.ParseQuery(c, &opts); err != nil {
		return errors.HandleServiceError(c, err)
	}

	page, err := h.service.List(c.UserContext(), opts)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(page)
}

// Endpoint: GET /image-gallery/by-item?fkItemId=&fkItemType=&page=&limit=
func (h *ImageHandler) ListByItem(c *fiber.Ctx) error {
	var query models.ListQuery
	if err := validation.ParseQuery(c, &query); err != nil {
		return errors.HandleServiceError(c, err)
	}

	page, err := h.service.ListByItem(c.UserContext(), &query)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(page)
}

// Endpoint: GET /image-gallery/:id
func (h *ImageHandler) Get(c *fiber.Ctx) error {
	id, err := constraints.ParamID(c, "id")
	if err != nil {
		return errors.HandleValidationError(c, "id must be a positive integer")
	}

	img, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(img)
}

// Upload expects multipart/form-data with the file in imageFile and the
// item fields as form values.
// Endpoint: POST /image-gallery
func (h *ImageHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrFileRequired)
	}

	var req models.UploadRequest
	if err := validation.DecodeValues(url.Values(form.Value), &req); err != nil {
		return errors.HandleServiceError(c, err)
	}

	file, err := readUpload(form)
	if err != nil {
		return errors.HandleValidationError(c, "could not read uploaded file")
	}

	img, err := h.service.Upload(c.UserContext(), &req, file)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(img)
}

// Endpoint: POST /image-gallery/url
func (h *ImageHandler) CreateFromURL(c *fiber.Ctx) error {
	var req models.CreateFromURLRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}

	img, err := h.service.CreateFromURL(c.UserContext(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(img)
}

// Update accepts either a JSON body or a multipart form. A file in the
// form replaces the stored object.
// Endpoint: PUT /image-gallery/:id
func (h *ImageHandler) Update(c *fiber.Ctx) error {
	id, err := constraints.ParamID(c, "id")
	if err != nil {
		return errors.HandleValidationError(c, "id must be a positive integer")
	}

	var (
		req  models.UpdateRequest
		file *models.Upload
	)
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return errors.HandleValidationError(c, "invalid multipart form")
		}
		if err := validation.DecodeValues(url.Values(form.Value), &req); err != nil {
			return errors.HandleServiceError(c, err)
		}
		if file, err = readUpload(form); err != nil {
			return errors.HandleValidationError(c, "could not read uploaded file")
		}
	} else if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}

	img, err := h.service.Update(c.UserContext(), id, &req, file)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(img)
}

// Endpoint: DELETE /image-gallery/:id
func (h *ImageHandler) Delete(c *fiber.Ctx) error {
	id, err := constraints.ParamID(c, "id")
	if err != nil {
		return errors.HandleValidationError(c, "id must be a positive integer")
	}

	affected, err := h.service.Delete(c.UserContext(), id)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"affected": affected})
}

// readUpload returns the first imageFile part, or nil when the form has none.
func readUpload(form *multipart.Form) (*models.Upload, error) {
	headers := form.File[FileField]
	if len(headers) == 0 {
		return nil, nil
	}

	f, err := headers[0].Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &models.Upload{Filename: headers[0].Filename, Data: data}, nil
}
