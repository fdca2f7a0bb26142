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

	addresseserrors "github.com/qolzam/backoffice/addresses/errors"
	"github.com/qolzam/backoffice/addresses/models"
	"github.com/qolzam/backoffice/addresses/repository"
	"github.com/qolzam/backoffice/internal/pagination"
	"github.com/qolzam/backoffice/internal/pkg/log"
	"github.com/qolzam/backoffice/internal/validation"
)

// Service defines address operations.
type Service interface {
	Create(ctx context.Context, req *models.CreateAddressRequest) (*models.Address, error)
	Get(ctx context.Context, id int64) (*models.Address, error)
	Update(ctx context.Context, id int64, req *models.UpdateAddressRequest) (*models.Address, error)
	Delete(ctx context.Context, id int64) (int64, error)
	ListByOwner(ctx context.Context, query *models.ListQuery) (pagination.Page[models.Address], error)
	FindByDetails(ctx context.Context, fkID int64, table, addressType string) (*models.Address, error)
}

type service struct {
	repo repository.Repository
	now  func() time.Time
}

// NewService constructs an address service.
func NewService(repo repository.Repository) Service {
	return &service{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *service) Create(ctx context.Context, req *models.CreateAddressRequest) (*models.Address, error) {
	req.AddressType = models.NormalizeType(req.AddressType)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	now := s.now()
	address := &models.Address{
		FkID:        req.FkID,
		Table:       req.Table,
		AddressType: req.AddressType,
		Address1:    strings.TrimSpace(req.Address1),
		Address2:    strings.TrimSpace(req.Address2),
		City:        req.City,
		State:       req.State,
		Zip:         req.Zip,
		Country:     req.Country,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.repo.Create(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}
	address.ID = id

	log.InfoWithContext(ctx, "%s address %d created for %s/%d", address.AddressType, id, address.Table, address.FkID)
	return address, nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.Address, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Update(ctx context.Context, id int64, req *models.UpdateAddressRequest) (*models.Address, error) {
	if req.AddressType != nil {
		normalized := models.NormalizeType(*req.AddressType)
		req.AddressType = &normalized
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	address, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	assign(&address.AddressType, req.AddressType)
	assign(&address.Address1, req.Address1)
	assign(&address.Address2, req.Address2)
	assign(&address.City, req.City)
	assign(&address.State, req.State)
	assign(&address.Zip, req.Zip)
	assign(&address.Country, req.Country)
	address.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *service) Delete(ctx context.Context, id int64) (int64, error) {
	return s.repo.Delete(ctx, id)
}

func (s *service) ListByOwner(ctx context.Context, query *models.ListQuery) (pagination.Page[models.Address], error) {
	if err := validation.Struct(query); err != nil {
		return pagination.Page[models.Address]{}, err
	}

	addressType := models.NormalizeType(query.Type)
	if !models.ValidType(addressType) {
		addressType = ""
	}
	return s.repo.ListByOwner(ctx, query.FkID, query.Table, addressType, query.Options)
}

func (s *service) FindByDetails(ctx context.Context, fkID int64, table, addressType string) (*models.Address, error) {
	addressType = models.NormalizeType(addressType)
	if !models.ValidType(addressType) {
		return nil, fmt.Errorf("%w: address type must be either BILLING or SHIPPING", addresseserrors.ErrInvalidRequest)
	}
	return s.repo.FindByDetails(ctx, fkID, table, addressType)
}

func assign(dst *string, value *string) {
	if value != nil {
		*dst = *value
	}
}
