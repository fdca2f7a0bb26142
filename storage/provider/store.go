// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package provider

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	uuid "github.com/gofrs/uuid"
)

// DefaultKeyPrefix is the folder gallery objects are written under.
const DefaultKeyPrefix = "image-gallery-items/"

// DefaultSignedURLTTL is how long the URL returned by Put stays valid.
const DefaultSignedURLTTL = 7 * 24 * time.Hour

// Object describes an uploaded file. Filename is the full object key.
type Object struct {
	URL           string `json:"url"`
	Filename      string `json:"filename"`
	FileExtension string `json:"fileExtension"`
}

// Store names objects and hands out signed URLs on top of a BlobProvider.
type Store struct {
	provider BlobProvider
	prefix   string
	ttl      time.Duration
}

// NewStore wraps provider. Empty prefix and non-positive ttl fall back to the defaults.
func NewStore(provider BlobProvider, prefix string, ttl time.Duration) *Store {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	if ttl <= 0 {
		ttl = DefaultSignedURLTTL
	}
	return &Store{provider: provider, prefix: prefix, ttl: ttl}
}

// Put uploads body under a fresh "<prefix><uuid><ext>" key, where ext is
// taken from originalName.
func (s *Store) Put(ctx context.Context, originalName string, body io.Reader, contentType string) (*Object, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("generate object name: %w", err)
	}

	ext := path.Ext(originalName)
	key := s.prefix + id.String() + ext
	if err := s.provider.Upload(ctx, key, body, contentType); err != nil {
		return nil, fmt.Errorf("upload %s: %w", key, err)
	}

	url, err := s.provider.SignedURL(ctx, key, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("sign %s: %w", key, err)
	}

	return &Object{URL: url, Filename: key, FileExtension: strings.TrimPrefix(ext, ".")}, nil
}

// Remove deletes filename, adding the prefix when it is missing.
func (s *Store) Remove(ctx context.Context, filename string) error {
	return s.provider.Delete(ctx, s.Key(filename))
}

// Key returns the object key for filename.
func (s *Store) Key(filename string) string {
	if strings.HasPrefix(filename, s.prefix) {
		return filename
	}
	return s.prefix + filename
}
