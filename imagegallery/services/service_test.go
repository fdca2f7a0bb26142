package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	galleryerrors "github.com/qolzam/backoffice/imagegallery/errors"
	"github.com/qolzam/backoffice/imagegallery/models"
	"github.com/qolzam/backoffice/internal/validation"
	"github.com/qolzam/backoffice/storage/provider"
)

var pngData = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)

func newTestService(repo *MockRepository) (Service, *provider.MemoryProvider) {
	mem := provider.NewMemoryProvider("")
	svc := NewService(repo, provider.NewStore(mem, "", 0), Options{
		AllowedTypes:  []string{"image/jpeg", "image/png"},
		MaxUploadSize: 1024,
	})
	return svc, mem
}

func TestUpload(t *testing.T) {
	ctx := context.Background()
	req := &models.UploadRequest{FkItemID: 5, FkItemType: "product", Type: "gallery"}

	t.Run("stores sniffed image", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(img *models.Image) bool {
			return strings.HasPrefix(img.Filename, provider.DefaultKeyPrefix) &&
				img.FileExtension == "png" &&
				img.FkItemID == 5
		})).Return(int64(3), nil).Once()

		svc, mem := newTestService(repo)
		img, err := svc.Upload(ctx, req, &models.Upload{Filename: "shot.png", Data: pngData})
		require.NoError(t, err)
		assert.Equal(t, int64(3), img.ID)

		obj, ok := mem.Object(img.Filename)
		require.True(t, ok)
		assert.Equal(t, "image/png", obj.ContentType)
		repo.AssertExpectations(t)
	})

	t.Run("extension comes from content when the name has none", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(img *models.Image) bool {
			return img.FileExtension == "png"
		})).Return(int64(4), nil).Once()

		svc, _ := newTestService(repo)
		_, err := svc.Upload(ctx, req, &models.Upload{Filename: "blob", Data: pngData})
		require.NoError(t, err)
	})

	t.Run("rejects non images", func(t *testing.T) {
		repo := new(MockRepository)
		svc, mem := newTestService(repo)

		_, err := svc.Upload(ctx, req, &models.Upload{Filename: "evil.png", Data: []byte("#!/bin/sh\necho hi\n")})
		require.ErrorIs(t, err, galleryerrors.ErrUnsupportedMediaType)
		assert.Zero(t, mem.Len())
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects oversized files", func(t *testing.T) {
		svc, _ := newTestService(new(MockRepository))
		big := append(append([]byte{}, pngData...), make([]byte, 2048)...)

		_, err := svc.Upload(ctx, req, &models.Upload{Filename: "big.png", Data: big})
		require.ErrorIs(t, err, galleryerrors.ErrFileTooLarge)
	})

	t.Run("requires a file", func(t *testing.T) {
		svc, _ := newTestService(new(MockRepository))
		_, err := svc.Upload(ctx, req, nil)
		require.ErrorIs(t, err, galleryerrors.ErrFileRequired)
	})

	t.Run("validates form fields", func(t *testing.T) {
		svc, _ := newTestService(new(MockRepository))
		_, err := svc.Upload(ctx, &models.UploadRequest{FkItemType: "product"}, &models.Upload{Filename: "a.png", Data: pngData})
		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
	})
}

func TestNameFromURL(t *testing.T) {
	cases := []struct {
		url, name, ext string
	}{
		{"https://cdn.test/images/photo.final.webp", "photo.final.webp", "webp"},
		{"https://cdn.test/images/photo", "photo", "jpg"},
		{"https://cdn.test/a/b.png?sig=1", "b.png", "png"},
		{"https://cdn.test/", "cdn.test", "test"},
	}
	for _, tc := range cases {
		name, ext, err := nameFromURL(tc.url)
		require.NoError(t, err, tc.url)
		assert.Equal(t, tc.name, name, tc.url)
		assert.Equal(t, tc.ext, ext, tc.url)
	}
}

func TestCreateFromURL(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("Create", ctx, mock.MatchedBy(func(img *models.Image) bool {
		return img.Filename == "front" && img.FileExtension == "jpg" && img.URL == "https://cdn.test/front"
	})).Return(int64(8), nil).Once()

	svc, mem := newTestService(repo)
	img, err := svc.CreateFromURL(ctx, &models.CreateFromURLRequest{FkItemID: 1, FkItemType: "factory", URL: "https://cdn.test/front"})
	require.NoError(t, err)
	assert.Equal(t, int64(8), img.ID)
	assert.Zero(t, mem.Len())

	_, err = svc.CreateFromURL(ctx, &models.CreateFromURLRequest{FkItemID: 1, FkItemType: "factory", URL: "not a url"})
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
}

func TestUpdateReplacesObject(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc, mem := newTestService(repo)

	old, err := provider.NewStore(mem, "", 0).Put(ctx, "old.png", strings.NewReader("old"), "image/png")
	require.NoError(t, err)

	repo.On("Get", ctx, int64(2)).Return(&models.Image{ID: 2, FkItemType: "product", Filename: old.Filename, FileExtension: "png"}, nil).Once()
	repo.On("Update", ctx, mock.AnythingOfType("*models.Image")).Return(nil).Once()

	kind := "cover"
	img, err := svc.Update(ctx, 2, &models.UpdateRequest{Type: &kind}, &models.Upload{Filename: "new.png", Data: pngData})
	require.NoError(t, err)

	assert.Equal(t, "cover", img.Type)
	assert.NotEqual(t, old.Filename, img.Filename)
	_, stillThere := mem.Object(old.Filename)
	assert.False(t, stillThere)
	_, uploaded := mem.Object(img.Filename)
	assert.True(t, uploaded)
	assert.Equal(t, 1, mem.Len())
}

func TestUpdateWithoutFileKeepsObject(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("Get", ctx, int64(2)).Return(&models.Image{ID: 2, Filename: "image-gallery-items/x.png"}, nil).Once()
	repo.On("Update", ctx, mock.AnythingOfType("*models.Image")).Return(nil).Once()

	svc, _ := newTestService(repo)
	itemID := int64(9)
	img, err := svc.Update(ctx, 2, &models.UpdateRequest{FkItemID: &itemID}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(9), img.FkItemID)
	assert.Equal(t, "image-gallery-items/x.png", img.Filename)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes object then row", func(t *testing.T) {
		repo := new(MockRepository)
		svc, mem := newTestService(repo)
		obj, err := provider.NewStore(mem, "", 0).Put(ctx, "a.png", strings.NewReader("x"), "image/png")
		require.NoError(t, err)

		repo.On("Get", ctx, int64(4)).Return(&models.Image{ID: 4, Filename: obj.Filename}, nil).Once()
		repo.On("Delete", ctx, int64(4)).Return(int64(1), nil).Once()

		affected, err := svc.Delete(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
		assert.Zero(t, mem.Len())
	})

	t.Run("missing row", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Get", ctx, int64(5)).Return(nil, galleryerrors.ErrImageNotFound).Once()

		svc, _ := newTestService(repo)
		affected, err := svc.Delete(ctx, 5)
		require.NoError(t, err)
		assert.Zero(t, affected)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
