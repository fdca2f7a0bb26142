package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/qolzam/backoffice/internal/types"
)

// HTTPHelper drives a Fiber app through app.Test with fatal error checks.
type HTTPHelper struct {
	t   *testing.T
	app *fiber.App
}

// NewHTTPHelper creates a new test helper for a given Fiber app.
func NewHTTPHelper(t *testing.T, app *fiber.App) *HTTPHelper {
	require.NotNil(t, app, "Fiber app provided to HTTPHelper cannot be nil")
	return &HTTPHelper{t: t, app: app}
}

// Request represents a test request under construction.
type Request struct {
	helper  *HTTPHelper
	method  string
	path    string
	body    []byte
	headers http.Header
}

// File is a multipart file part.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// NewRequest begins a request. Non-nil bodies other than []byte and string
// are sent as JSON.
func (h *HTTPHelper) NewRequest(method, path string, body interface{}) *Request {
	req := &Request{helper: h, method: method, path: path, headers: make(http.Header)}

	switch b := body.(type) {
	case nil:
	case []byte:
		req.body = b
	case string:
		req.body = []byte(b)
	default:
		jsonBytes, err := json.Marshal(body)
		require.NoError(h.t, err, "Failed to marshal request body to JSON")
		req.body = jsonBytes
	}
	if body != nil {
		req.WithHeader(types.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return req
}

// WithHeader adds a header to the request.
func (r *Request) WithHeader(key, value string) *Request {
	r.headers.Set(key, value)
	return r
}

// AsMultipartForm replaces the body with a multipart/form-data payload.
func (r *Request) AsMultipartForm(formData map[string]string, files map[string]File) *Request {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	for key, val := range formData {
		require.NoError(r.helper.t, writer.WriteField(key, val))
	}

	for field, file := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, file.Name))
		if file.ContentType != "" {
			header.Set(types.HeaderContentType, file.ContentType)
		}
		part, err := writer.CreatePart(header)
		require.NoError(r.helper.t, err)
		_, err = part.Write(file.Content)
		require.NoError(r.helper.t, err)
	}

	require.NoError(r.helper.t, writer.Close())

	r.body = body.Bytes()
	r.WithHeader(types.HeaderContentType, writer.FormDataContentType())
	return r
}

// Send executes the request and returns the response.
func (r *Request) Send() *http.Response {
	req := httptest.NewRequest(r.method, r.path, bytes.NewReader(r.body))
	req.Header = r.headers

	resp, err := r.helper.app.Test(req, int(10*time.Second.Milliseconds()))
	require.NoError(r.helper.t, err, "app.Test should not return an error")
	require.NotNil(r.helper.t, resp, "app.Test response should not be nil")
	return resp
}

// SendJSON executes the request, checks the status and decodes the body into out.
func (r *Request) SendJSON(wantStatus int, out interface{}) {
	resp := r.Send()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(r.helper.t, err)
	require.Equal(r.helper.t, wantStatus, resp.StatusCode, "body: %s", raw)

	if out != nil {
		require.NoError(r.helper.t, json.Unmarshal(raw, out), "body: %s", raw)
	}
}
