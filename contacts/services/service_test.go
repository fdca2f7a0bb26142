package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	contactserrors "github.com/qolzam/backoffice/contacts/errors"
	"github.com/qolzam/backoffice/contacts/models"
	"github.com/qolzam/backoffice/internal/validation"
)

func strPtr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults contact type to primary", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("Create", ctx, mock.MatchedBy(func(c *models.Contact) bool {
			return c.ContactType == models.TypePrimary && c.FirstName == "Ada" && !c.CreatedAt.IsZero()
		})).Return(int64(12), nil).Once()

		svc := NewService(mockRepo)
		contact, err := svc.Create(ctx, &models.CreateContactRequest{FkID: 3, Table: "Factories", FirstName: " Ada "})

		require.NoError(t, err)
		assert.Equal(t, int64(12), contact.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Create(ctx, &models.CreateContactRequest{FkID: 3, Table: "Factories", Email: "nope"})

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("applies present fields only", func(t *testing.T) {
		existing := &models.Contact{ID: 5, FirstName: "Ada", LastName: "Lovelace", ContactType: models.TypePrimary}
		mockRepo := new(MockRepository)
		mockRepo.On("Get", ctx, int64(5)).Return(existing, nil).Once()
		mockRepo.On("Update", ctx, mock.AnythingOfType("*models.Contact")).Return(nil).Once()

		svc := NewService(mockRepo)
		contact, err := svc.Update(ctx, 5, &models.UpdateContactRequest{LastName: strPtr("Byron")})

		require.NoError(t, err)
		assert.Equal(t, "Ada", contact.FirstName)
		assert.Equal(t, "Byron", contact.LastName)
		assert.False(t, contact.UpdatedAt.IsZero())
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing contact", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("Get", ctx, int64(9)).Return(nil, contactserrors.ErrContactNotFound).Once()

		svc := NewService(mockRepo)
		_, err := svc.Update(ctx, 9, &models.UpdateContactRequest{})

		require.True(t, errors.Is(err, contactserrors.ErrContactNotFound))
	})
}

func TestFindByOwner_DefaultsToPrimary(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	mockRepo.On("FindByOwner", ctx, int64(3), "Factories", models.TypePrimary).
		Return(&models.Contact{ID: 1}, nil).Once()

	svc := NewService(mockRepo)
	_, err := svc.FindByOwner(ctx, 3, "Factories", "")

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
