// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package provider

import (
	"context"
	"io"
	"time"
)

// BlobProvider is the object store the image gallery writes to. Keys are
// full object keys, prefix included.
type BlobProvider interface {
	// Upload streams body to key.
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// SignedURL returns a GET URL for key valid for expires.
	SignedURL(ctx context.Context, key string, expires time.Duration) (string, error)
}
