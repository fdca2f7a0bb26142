// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	contactmodels "github.com/qolzam/backoffice/contacts/models"
	factorieserrors "github.com/qolzam/backoffice/factories/errors"
	"github.com/qolzam/backoffice/factories/models"
	"github.com/qolzam/backoffice/factories/repository"
	"github.com/qolzam/backoffice/internal/pagination"
	"github.com/qolzam/backoffice/internal/pkg/log"
	"github.com/qolzam/backoffice/internal/search"
	"github.com/qolzam/backoffice/internal/types"
	"github.com/qolzam/backoffice/internal/validation"
	lookupserrors "github.com/qolzam/backoffice/lookups/errors"
	lookupmodels "github.com/qolzam/backoffice/lookups/models"
)

// Service defines factory operations.
type Service interface {
	Create(ctx context.Context, req *models.CreateFactoryRequest) (*models.Factory, error)
	Get(ctx context.Context, id int64) (*models.FactoryResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateFactoryRequest) (*models.Factory, error)
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context, opts pagination.Options) (pagination.Page[models.FactoryResponse], error)

	// Search compiles q against the factory vocabulary. A blank term
	// applies no filter.
	Search(ctx context.Context, q *models.SearchQuery) (pagination.Page[models.FactoryResponse], error)

	KPISummary(ctx context.Context) (*models.KPISummary, error)
}

// lookupProvider captures the subset of the lookup service used to
// validate and hydrate factories.
type lookupProvider interface {
	GetFactoryType(ctx context.Context, id int64) (*lookupmodels.FactoryType, error)
	GetServiceCategory(ctx context.Context, id int64) (*lookupmodels.ServiceCategory, error)
	GetLocationType(ctx context.Context, id int64) (*lookupmodels.LocationType, error)
}

// contactProvider resolves primary contacts for a page of factories.
type contactProvider interface {
	FindPrimaryByOwners(ctx context.Context, fkIDs []int64, table string) (map[int64]contactmodels.Contact, error)
}

type service struct {
	repo     repository.Repository
	lookups  lookupProvider
	contacts contactProvider
	now      func() time.Time
}

// NewService constructs a factory service.
func NewService(repo repository.Repository, lookups lookupProvider, contacts contactProvider) Service {
	return &service{
		repo:     repo,
		lookups:  lookups,
		contacts: contacts,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Create(ctx context.Context, req *models.CreateFactoryRequest) (*models.Factory, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req.FactoryTypeID, req.ServiceCategoryID, req.LocationID); err != nil {
		return nil, err
	}

	now := s.now()
	factory := &models.Factory{
		FactoryTypeID:     req.FactoryTypeID,
		ServiceCategoryID: req.ServiceCategoryID,
		LocationID:        req.LocationID,
		Status:            req.Status,
		Name:              strings.TrimSpace(req.Name),
		Email:             orPlaceholder(req.Email),
		WebsiteURL:        orPlaceholder(req.WebsiteURL),
		Industry:          orPlaceholder(req.Industry),
		Tags:              normalizeTags(req.Tags),
		Notes:             orPlaceholder(req.Notes),
		UserOwner:         lo.Ternary(strings.TrimSpace(req.UserOwner) == "", types.DefaultUserOwner, strings.TrimSpace(req.UserOwner)),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	id, err := s.repo.Create(ctx, factory)
	if err != nil {
		return nil, fmt.Errorf("create factory: %w", err)
	}
	factory.ID = id

	log.InfoWithContext(ctx, "factory %d (%s) created by %s", id, factory.Name, factory.UserOwner)
	return factory, nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.FactoryResponse, error) {
	factory, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	responses, err := s.hydrate(ctx, []models.Factory{*factory})
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

func (s *service) Update(ctx context.Context, id int64, req *models.UpdateFactoryRequest) (*models.Factory, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	factory, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FactoryTypeID != nil {
		factory.FactoryTypeID = *req.FactoryTypeID
	}
	if req.ServiceCategoryID != nil {
		factory.ServiceCategoryID = *req.ServiceCategoryID
	}
	if req.LocationID != nil {
		factory.LocationID = *req.LocationID
	}
	if req.FactoryTypeID != nil || req.ServiceCategoryID != nil || req.LocationID != nil {
		if err := s.checkReferences(ctx, factory.FactoryTypeID, factory.ServiceCategoryID, factory.LocationID); err != nil {
			return nil, err
		}
	}

	if req.Status != nil {
		factory.Status = *req.Status
	}
	if req.Name != nil {
		factory.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		factory.Email = orPlaceholder(*req.Email)
	}
	if req.WebsiteURL != nil {
		factory.WebsiteURL = orPlaceholder(*req.WebsiteURL)
	}
	if req.Industry != nil {
		factory.Industry = orPlaceholder(*req.Industry)
	}
	if req.Tags != nil {
		factory.Tags = normalizeTags(*req.Tags)
	}
	if req.Notes != nil {
		factory.Notes = orPlaceholder(*req.Notes)
	}
	factory.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, factory); err != nil {
		return nil, err
	}
	return factory, nil
}

func (s *service) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if affected > 0 {
		log.InfoWithContext(ctx, "factory %d deleted", id)
	}
	return affected, nil
}

func (s *service) List(ctx context.Context, opts pagination.Options) (pagination.Page[models.FactoryResponse], error) {
	page, err := s.repo.List(ctx, opts)
	if err != nil {
		return pagination.Page[models.FactoryResponse]{}, err
	}
	return s.hydratePage(ctx, page)
}

func (s *service) Search(ctx context.Context, q *models.SearchQuery) (pagination.Page[models.FactoryResponse], error) {
	if err := validation.Struct(q); err != nil {
		return pagination.Page[models.FactoryResponse]{}, err
	}

	fields := ParseFields(q.Fields)
	if len(fields) == 0 {
		fields = search.DefaultFactoryFields
	}

	filter := search.FactoryVocabulary.Compile(strings.TrimSpace(q.Q), search.MatchType(q.Match), fields)
	log.Debug("factory search %q -> %s %v", q.Q, filter.Where, filter.Params)

	page, err := s.repo.Search(ctx, filter, q.Options)
	if err != nil {
		return pagination.Page[models.FactoryResponse]{}, err
	}
	return s.hydratePage(ctx, page)
}

// ParseFields splits a comma separated field list, dropping blanks.
func ParseFields(raw string) []string {
	return lo.Compact(lo.Map(strings.Split(raw, ","), func(f string, _ int) string {
		return strings.TrimSpace(f)
	}))
}

func (s *service) checkReferences(ctx context.Context, typeID, serviceID, locationID int64) error {
	if _, err := s.lookups.GetFactoryType(ctx, typeID); err != nil {
		return referenceError("factory type", typeID, err)
	}
	if _, err := s.lookups.GetServiceCategory(ctx, serviceID); err != nil {
		return referenceError("service category", serviceID, err)
	}
	if _, err := s.lookups.GetLocationType(ctx, locationID); err != nil {
		return referenceError("location type", locationID, err)
	}
	return nil
}

func referenceError(what string, id int64, err error) error {
	if errors.Is(err, lookupserrors.ErrLookupNotFound) {
		return fmt.Errorf("%w: %s %d", factorieserrors.ErrInvalidReference, what, id)
	}
	return err
}

func orPlaceholder(value string) string {
	if value = strings.TrimSpace(value); value == "" {
		return types.Placeholder
	}
	return value
}

func normalizeTags(tags string) string {
	if tags = strings.TrimSpace(tags); tags == "" || !json.Valid([]byte(tags)) {
		return "[]"
	}
	return tags
}
