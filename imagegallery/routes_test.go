package imagegallery

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qolzam/backoffice/imagegallery/errors"
	"github.com/qolzam/backoffice/imagegallery/handlers"
	"github.com/qolzam/backoffice/imagegallery/models"
	"github.com/qolzam/backoffice/imagegallery/repository"
	"github.com/qolzam/backoffice/imagegallery/services"
	"github.com/qolzam/backoffice/internal/middleware/ratelimit"
	"github.com/qolzam/backoffice/internal/pagination"
	"github.com/qolzam/backoffice/internal/testutil"
	"github.com/qolzam/backoffice/storage/provider"
)

var pngData = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)

func newTestApp(t *testing.T, uploadLimiter fiber.Handler) (*testutil.HTTPHelper, *provider.MemoryProvider) {
	client := testutil.NewSQLiteClient(t)
	mem := provider.NewMemoryProvider("https://objects.test")
	svc := services.NewService(repository.NewSQLRepository(client), provider.NewStore(mem, "", 0), services.Options{
		AllowedTypes:  []string{"image/jpeg", "image/png", "image/webp"},
		MaxUploadSize: 1 << 20,
	})

	app := fiber.New()
	RegisterRoutes(app, &Handlers{ImageHandler: handlers.NewImageHandler(svc)}, uploadLimiter)
	return testutil.NewHTTPHelper(t, app), mem
}

func TestImageGalleryRoutes(t *testing.T) {
	h, mem := newTestApp(t, nil)

	var uploaded models.Image
	h.NewRequest(http.MethodPost, "/image-gallery", nil).
		AsMultipartForm(
			map[string]string{"fkItemId": "12", "fkItemType": "product", "type": "gallery"},
			map[string]testutil.File{handlers.FileField: {Name: "front.png", ContentType: "application/octet-stream", Content: pngData}},
		).SendJSON(http.StatusCreated, &uploaded)
	assert.Equal(t, int64(12), uploaded.FkItemID)
	assert.Equal(t, "png", uploaded.FileExtension)
	assert.True(t, strings.HasPrefix(uploaded.URL, "https://objects.test/"))
	assert.Contains(t, uploaded.URL, "expires=604800")
	_, stored := mem.Object(uploaded.Filename)
	assert.True(t, stored)

	var missingFile errors.ErrorResponse
	h.NewRequest(http.MethodPost, "/image-gallery", nil).
		AsMultipartForm(map[string]string{"fkItemId": "12", "fkItemType": "product"}, nil).
		SendJSON(http.StatusBadRequest, &missingFile)
	assert.Equal(t, errors.CodeFileRequired, missingFile.Code)

	var wrongType errors.ErrorResponse
	h.NewRequest(http.MethodPost, "/image-gallery", nil).
		AsMultipartForm(
			map[string]string{"fkItemId": "12", "fkItemType": "product"},
			map[string]testutil.File{handlers.FileField: {Name: "notes.png", ContentType: "image/png", Content: []byte("plain text pretending to be a picture")}},
		).SendJSON(http.StatusUnsupportedMediaType, &wrongType)
	assert.Equal(t, errors.CodeUnsupportedMediaType, wrongType.Code)

	var linked models.Image
	h.NewRequest(http.MethodPost, "/image-gallery/url", models.CreateFromURLRequest{
		FkItemID: 12, FkItemType: "product", URL: "https://cdn.test/catalog/back",
	}).SendJSON(http.StatusCreated, &linked)
	assert.Equal(t, "back", linked.Filename)
	assert.Equal(t, "jpg", linked.FileExtension)

	var byItem pagination.Page[models.Image]
	h.NewRequest(http.MethodGet, "/image-gallery/by-item?fkItemId=12&fkItemType=product", nil).SendJSON(http.StatusOK, &byItem)
	assert.Equal(t, int64(2), byItem.Meta.TotalItems)

	var noItem errors.ErrorResponse
	h.NewRequest(http.MethodGet, "/image-gallery/by-item?fkItemType=product", nil).SendJSON(http.StatusBadRequest, &noItem)
	assert.Equal(t, errors.CodeValidationFailed, noItem.Code)

	var replaced models.Image
	h.NewRequest(http.MethodPut, fmt.Sprintf("/image-gallery/%d", uploaded.ID), nil).
		AsMultipartForm(
			map[string]string{"type": "cover"},
			map[string]testutil.File{handlers.FileField: {Name: "new.png", Content: pngData}},
		).SendJSON(http.StatusOK, &replaced)
	assert.Equal(t, "cover", replaced.Type)
	assert.NotEqual(t, uploaded.Filename, replaced.Filename)
	_, oldStored := mem.Object(uploaded.Filename)
	assert.False(t, oldStored)

	var retyped models.Image
	h.NewRequest(http.MethodPut, fmt.Sprintf("/image-gallery/%d", linked.ID), map[string]string{"type": "thumbnail"}).
		SendJSON(http.StatusOK, &retyped)
	assert.Equal(t, "thumbnail", retyped.Type)
	assert.Equal(t, "back", retyped.Filename)

	var notFound errors.ErrorResponse
	h.NewRequest(http.MethodPut, "/image-gallery/9999", map[string]string{"type": "x"}).SendJSON(http.StatusNotFound, &notFound)
	assert.Equal(t, errors.CodeImageNotFound, notFound.Code)

	var deleted map[string]int64
	h.NewRequest(http.MethodDelete, fmt.Sprintf("/image-gallery/%d", uploaded.ID), nil).SendJSON(http.StatusOK, &deleted)
	assert.Equal(t, int64(1), deleted["affected"])
	assert.Zero(t, mem.Len())

	h.NewRequest(http.MethodDelete, fmt.Sprintf("/image-gallery/%d", uploaded.ID), nil).SendJSON(http.StatusOK, &deleted)
	assert.Equal(t, int64(0), deleted["affected"])

	resp := h.NewRequest(http.MethodGet, "/image-gallery/abc", nil).Send()
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestImageGalleryUploadLimiter(t *testing.T) {
	limiter := ratelimit.New(ratelimit.Config{Name: "upload", Max: 1, Duration: time.Minute})
	h, _ := newTestApp(t, limiter)

	form := map[string]string{"fkItemId": "3", "fkItemType": "factory"}
	files := map[string]testutil.File{handlers.FileField: {Name: "a.png", Content: pngData}}

	h.NewRequest(http.MethodPost, "/image-gallery", nil).AsMultipartForm(form, files).SendJSON(http.StatusCreated, nil)

	resp := h.NewRequest(http.MethodPost, "/image-gallery", nil).AsMultipartForm(form, files).Send()
	defer resp.Body.Close()
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	h.NewRequest(http.MethodGet, "/image-gallery", nil).SendJSON(http.StatusOK, nil)
}
