// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"

	galleryerrors "github.com/qolzam/backoffice/imagegallery/errors"
	"github.com/qolzam/backoffice/imagegallery/models"
	"github.com/qolzam/backoffice/imagegallery/repository"
	"github.com/qolzam/backoffice/internal/pagination"
	"github.com/qolzam/backoffice/internal/pkg/log"
	"github.com/qolzam/backoffice/internal/validation"
	"github.com/qolzam/backoffice/storage/provider"
)

// defaultExtension is recorded for URL images whose name has no extension.
const defaultExtension = "jpg"

type Service interface {
	// Upload stores file in the object store and records it against the item.
	Upload(ctx context.Context, req *models.UploadRequest, file *models.Upload) (*models.Image, error)

	// CreateFromURL records an externally hosted image without uploading anything.
	CreateFromURL(ctx context.Context, req *models.CreateFromURLRequest) (*models.Image, error)

	Get(ctx context.Context, id int64) (*models.Image, error)
	List(ctx context.Context, opts pagination.Options) (pagination.Page[models.Image], error)
	ListByItem(ctx context.Context, q *models.ListQuery) (pagination.Page[models.Image], error)

	// Update replaces the stored object when file is not nil. The old
	// object is deleted before the new one is uploaded.
	Update(ctx context.Context, id int64, req *models.UpdateRequest, file *models.Upload) (*models.Image, error)

	// Delete removes the object and then the row. A missing row reports 0.
	Delete(ctx context.Context, id int64) (int64, error)
}

// Options restricts what Upload and Update accept.
type Options struct {
	AllowedTypes  []string
	MaxUploadSize int64
}

type service struct {
	repo  repository.Repository
	store *provider.Store
	opts  Options
	now   func() time.Time
}

func NewService(repo repository.Repository, store *provider.Store, opts Options) Service {
	return &service{
		repo:  repo,
		store: store,
		opts:  opts,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Upload(ctx context.Context, req *models.UploadRequest, file *models.Upload) (*models.Image, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	obj, err := s.put(ctx, file)
	if err != nil {
		return nil, err
	}

	now := s.now()
	img := &models.Image{
		FkItemID:      req.FkItemID,
		FkItemType:    req.FkItemType,
		Type:          req.Type,
		URL:           obj.URL,
		Filename:      obj.Filename,
		FileExtension: obj.FileExtension,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	id, err := s.repo.Create(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("create image: %w", err)
	}
	img.ID = id

	log.InfoWithContext(ctx, "image %d uploaded as %s for %s %d", id, img.Filename, img.FkItemType, img.FkItemID)
	return img, nil
}

func (s *service) CreateFromURL(ctx context.Context, req *models.CreateFromURLRequest) (*models.Image, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	filename, ext, err := nameFromURL(req.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", galleryerrors.ErrInvalidRequest, err)
	}

	now := s.now()
	img := &models.Image{
		FkItemID:      req.FkItemID,
		FkItemType:    req.FkItemType,
		Type:          req.Type,
		URL:           req.URL,
		Filename:      filename,
		FileExtension: ext,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	id, err := s.repo.Create(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("create image: %w", err)
	}
	img.ID = id
	return img, nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.Image, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) List(ctx context.Context, opts pagination.Options) (pagination.Page[models.Image], error) {
	return s.repo.List(ctx, opts)
}

func (s *service) ListByItem(ctx context.Context, q *models.ListQuery) (pagination.Page[models.Image], error) {
	if err := validation.Struct(q); err != nil {
		return pagination.Page[models.Image]{}, err
	}
	return s.repo.ListByItem(ctx, q.FkItemID, q.FkItemType, q.Options)
}

func (s *service) Update(ctx context.Context, id int64, req *models.UpdateRequest, file *models.Upload) (*models.Image, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	img, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if file != nil {
		if _, err := s.sniff(file); err != nil {
			return nil, err
		}
		if err := s.store.Remove(ctx, img.Filename); err != nil {
			return nil, fmt.Errorf("%w: %v", galleryerrors.ErrStorage, err)
		}
		obj, err := s.put(ctx, file)
		if err != nil {
			return nil, err
		}
		img.URL, img.Filename, img.FileExtension = obj.URL, obj.Filename, obj.FileExtension
	}

	if req.FkItemID != nil {
		img.FkItemID = *req.FkItemID
	}
	if req.FkItemType != nil {
		img.FkItemType = *req.FkItemType
	}
	if req.Type != nil {
		img.Type = *req.Type
	}
	img.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *service) Delete(ctx context.Context, id int64) (int64, error) {
	img, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, galleryerrors.ErrImageNotFound) {
			return 0, nil
		}
		return 0, err
	}

	if err := s.store.Remove(ctx, img.Filename); err != nil {
		log.ErrorWithContext(ctx, "delete object %s of image %d: %v", img.Filename, id, err)
		return 0, fmt.Errorf("%w: %v", galleryerrors.ErrStorage, err)
	}
	return s.repo.Delete(ctx, id)
}

// sniff checks size and content type of file, ignoring any client supplied type.
func (s *service) sniff(file *models.Upload) (*mimetype.MIME, error) {
	if file == nil || len(file.Data) == 0 {
		return nil, galleryerrors.ErrFileRequired
	}
	if s.opts.MaxUploadSize > 0 && int64(len(file.Data)) > s.opts.MaxUploadSize {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", galleryerrors.ErrFileTooLarge, len(file.Data), s.opts.MaxUploadSize)
	}

	mtype := mimetype.Detect(file.Data)
	if len(s.opts.AllowedTypes) > 0 && !lo.ContainsBy(s.opts.AllowedTypes, func(allowed string) bool { return mtype.Is(allowed) }) {
		return nil, fmt.Errorf("%w: %s", galleryerrors.ErrUnsupportedMediaType, mtype.String())
	}
	return mtype, nil
}

func (s *service) put(ctx context.Context, file *models.Upload) (*provider.Object, error) {
	mtype, err := s.sniff(file)
	if err != nil {
		return nil, err
	}

	name := file.Filename
	if path.Ext(name) == "" {
		name += mtype.Extension()
	}

	obj, err := s.store.Put(ctx, name, bytes.NewReader(file.Data), mtype.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", galleryerrors.ErrStorage, err)
	}
	return obj, nil
}

// nameFromURL returns the last path segment of raw and its extension.
func nameFromURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}

	name := u.Path[strings.LastIndex(u.Path, "/")+1:]
	if name == "" {
		name = u.Host
	}

	parts := strings.Split(name, ".")
	if len(parts) > 1 && parts[len(parts)-1] != "" {
		return name, parts[len(parts)-1], nil
	}
	return name, defaultExtension, nil
}
