// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/qolzam/backoffice/contacts/models"
	"github.com/qolzam/backoffice/contacts/repository"
	"github.com/qolzam/backoffice/internal/pagination"
	"github.com/qolzam/backoffice/internal/pkg/log"
	"github.com/qolzam/backoffice/internal/validation"
)

// Service defines contact operations.
type Service interface {
	Create(ctx context.Context, req *models.CreateContactRequest) (*models.Contact, error)
	Get(ctx context.Context, id int64) (*models.Contact, error)
	Update(ctx context.Context, id int64, req *models.UpdateContactRequest) (*models.Contact, error)
	Delete(ctx context.Context, id int64) (int64, error)
	ListByOwner(ctx context.Context, query *models.ListQuery) (pagination.Page[models.Contact], error)

	// FindByOwner returns the owner's contact of contactType, "primary" when empty.
	FindByOwner(ctx context.Context, fkID int64, table, contactType string) (*models.Contact, error)

	// FindPrimaryByOwners returns the primary contact per owner id.
	FindPrimaryByOwners(ctx context.Context, fkIDs []int64, table string) (map[int64]models.Contact, error)
}

type service struct {
	repo repository.Repository
	now  func() time.Time
}

// NewService constructs a contact service.
func NewService(repo repository.Repository) Service {
	return &service{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *service) Create(ctx context.Context, req *models.CreateContactRequest) (*models.Contact, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	now := s.now()
	contact := &models.Contact{
		FkID:          req.FkID,
		Table:         req.Table,
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		Email:         strings.TrimSpace(req.Email),
		PhoneNumber:   req.PhoneNumber,
		MobileNumber:  req.MobileNumber,
		PositionTitle: req.PositionTitle,
		ContactType:   contactTypeOrDefault(req.ContactType),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	id, err := s.repo.Create(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	contact.ID = id

	log.InfoWithContext(ctx, "contact %d created for %s/%d", id, contact.Table, contact.FkID)
	return contact, nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.Contact, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Update(ctx context.Context, id int64, req *models.UpdateContactRequest) (*models.Contact, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	contact, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	assign(&contact.FirstName, req.FirstName)
	assign(&contact.LastName, req.LastName)
	assign(&contact.Email, req.Email)
	assign(&contact.PhoneNumber, req.PhoneNumber)
	assign(&contact.MobileNumber, req.MobileNumber)
	assign(&contact.PositionTitle, req.PositionTitle)
	assign(&contact.ContactType, req.ContactType)
	contact.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *service) Delete(ctx context.Context, id int64) (int64, error) {
	return s.repo.Delete(ctx, id)
}

func (s *service) ListByOwner(ctx context.Context, query *models.ListQuery) (pagination.Page[models.Contact], error) {
	if err := validation.Struct(query); err != nil {
		return pagination.Page[models.Contact]{}, err
	}
	return s.repo.ListByOwner(ctx, query.FkID, query.Table, query.Options)
}

func (s *service) FindByOwner(ctx context.Context, fkID int64, table, contactType string) (*models.Contact, error) {
	return s.repo.FindByOwner(ctx, fkID, table, contactTypeOrDefault(contactType))
}

func (s *service) FindPrimaryByOwners(ctx context.Context, fkIDs []int64, table string) (map[int64]models.Contact, error) {
	return s.repo.FindByOwners(ctx, fkIDs, table, models.TypePrimary)
}

func contactTypeOrDefault(contactType string) string {
	if contactType = strings.TrimSpace(contactType); contactType == "" {
		return models.TypePrimary
	}
	return contactType
}

func assign(dst *string, value *string) {
	if value != nil {
		*dst = *value
	}
}
