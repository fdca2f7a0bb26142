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

	"github.com/samber/lo"

	contactmodels "github.com/qolzam/backoffice/contacts/models"
	"github.com/qolzam/backoffice/internal/pagination"
	"github.com/qolzam/backoffice/internal/pkg/log"
	"github.com/qolzam/backoffice/internal/search"
	"github.com/qolzam/backoffice/internal/types"
	"github.com/qolzam/backoffice/internal/validation"
	orderserrors "github.com/qolzam/backoffice/productionorders/errors"
	"github.com/qolzam/backoffice/productionorders/models"
	"github.com/qolzam/backoffice/productionorders/repository"
)

type Service interface {
	Create(ctx context.Context, req *models.CreateOrderRequest) (*models.ProductionOrder, error)

	// Get resolves the primary contacts of the customer and the factory.
	Get(ctx context.Context, id int64) (*models.ProductionOrderResponse, error)

	Update(ctx context.Context, id int64, req *models.UpdateOrderRequest) (*models.ProductionOrder, error)
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context, opts pagination.Options) (pagination.Page[models.ProductionOrderResponse], error)
	Search(ctx context.Context, q *models.SearchQuery) (pagination.Page[models.ProductionOrderResponse], error)
}

type contactProvider interface {
	FindPrimaryByOwners(ctx context.Context, fkIDs []int64, table string) (map[int64]contactmodels.Contact, error)
}

type service struct {
	repo     repository.Repository
	contacts contactProvider
	now      func() time.Time
}

func NewService(repo repository.Repository, contacts contactProvider) Service {
	return &service{
		repo:     repo,
		contacts: contacts,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Create(ctx context.Context, req *models.CreateOrderRequest) (*models.ProductionOrder, error) {
	req.ShippingMethod = models.Normalize(req.ShippingMethod)
	req.Status = models.Normalize(req.Status)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	orderDate, err := models.ParseDate(req.OrderDate)
	if err != nil {
		return nil, invalidDate("orderDate", err)
	}
	expected, err := models.ParseDate(req.ExpectedDeliveryDate)
	if err != nil {
		return nil, invalidDate("expectedDeliveryDate", err)
	}
	actual, err := optionalDate(req.ActualDeliveryDate)
	if err != nil {
		return nil, invalidDate("actualDeliveryDate", err)
	}

	if err := s.repo.CheckReferences(ctx, req.CustomerID, req.FactoryID); err != nil {
		return nil, err
	}

	now := s.now()
	order := &models.ProductionOrder{
		CustomerID:           req.CustomerID,
		FactoryID:            req.FactoryID,
		PONumber:             strings.TrimSpace(req.PONumber),
		OrderDate:            orderDate,
		ExpectedDeliveryDate: expected,
		ActualDeliveryDate:   actual,
		ShippingMethod:       lo.CoalesceOrEmpty(req.ShippingMethod, models.ShippingOcean),
		Status:               lo.CoalesceOrEmpty(req.Status, models.StatusPending),
		TotalQuantity:        req.TotalQuantity,
		TotalAmount:          req.TotalAmount,
		Notes:                nullable(req.Notes),
		UserOwner:            nullable(req.UserOwner),
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	id, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create production order: %w", err)
	}
	order.ID = id

	log.InfoWithContext(ctx, "production order %d (%s) created for factory %d", id, order.PONumber, order.FactoryID)
	return order, nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.ProductionOrderResponse, error) {
	order, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	customers, err := s.contacts.FindPrimaryByOwners(ctx, []int64{order.CustomerID}, types.TableCustomers)
	if err != nil {
		return nil, err
	}
	factories, err := s.contacts.FindPrimaryByOwners(ctx, []int64{order.FactoryID}, types.TableFactories)
	if err != nil {
		return nil, err
	}

	if contact, ok := customers[order.CustomerID]; ok {
		order.Customer.Contact = &contact
	}
	if contact, ok := factories[order.FactoryID]; ok {
		order.Factory.Contact = &contact
	}
	return order, nil
}

func (s *service) Update(ctx context.Context, id int64, req *models.UpdateOrderRequest) (*models.ProductionOrder, error) {
	if req.ShippingMethod != nil {
		req.ShippingMethod = lo.ToPtr(models.Normalize(*req.ShippingMethod))
	}
	if req.Status != nil {
		req.Status = lo.ToPtr(models.Normalize(*req.Status))
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	order := existing.ProductionOrder

	if req.CustomerID != nil {
		order.CustomerID = *req.CustomerID
	}
	if req.FactoryID != nil {
		order.FactoryID = *req.FactoryID
	}
	if req.CustomerID != nil || req.FactoryID != nil {
		if err := s.repo.CheckReferences(ctx, order.CustomerID, order.FactoryID); err != nil {
			return nil, err
		}
	}

	if req.PONumber != nil {
		order.PONumber = strings.TrimSpace(*req.PONumber)
	}
	if req.OrderDate != nil {
		if order.OrderDate, err = models.ParseDate(*req.OrderDate); err != nil {
			return nil, invalidDate("orderDate", err)
		}
	}
	if req.ExpectedDeliveryDate != nil {
		if order.ExpectedDeliveryDate, err = models.ParseDate(*req.ExpectedDeliveryDate); err != nil {
			return nil, invalidDate("expectedDeliveryDate", err)
		}
	}
	if req.ActualDeliveryDate != nil {
		if order.ActualDeliveryDate, err = optionalDate(*req.ActualDeliveryDate); err != nil {
			return nil, invalidDate("actualDeliveryDate", err)
		}
	}
	if req.ShippingMethod != nil && *req.ShippingMethod != "" {
		order.ShippingMethod = *req.ShippingMethod
	}
	if req.Status != nil && *req.Status != "" {
		order.Status = *req.Status
	}
	if req.TotalQuantity != nil {
		order.TotalQuantity = *req.TotalQuantity
	}
	if req.TotalAmount != nil {
		order.TotalAmount = *req.TotalAmount
	}
	if req.Notes != nil {
		order.Notes = nullable(*req.Notes)
	}
	if req.UserOwner != nil {
		order.UserOwner = nullable(*req.UserOwner)
	}
	order.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *service) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if affected > 0 {
		log.InfoWithContext(ctx, "production order %d deleted", id)
	}
	return affected, nil
}

func (s *service) List(ctx context.Context, opts pagination.Options) (pagination.Page[models.ProductionOrderResponse], error) {
	return s.repo.List(ctx, opts)
}

func (s *service) Search(ctx context.Context, q *models.SearchQuery) (pagination.Page[models.ProductionOrderResponse], error) {
	filter := search.Contains(q.Q, repository.SearchExpressions...)
	return s.repo.Search(ctx, filter, q.Options)
}

func optionalDate(value string) (*models.Date, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	d, err := models.ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func invalidDate(field string, err error) error {
	return fmt.Errorf("%w: %s: %v", orderserrors.ErrInvalidRequest, field, err)
}

func nullable(value string) *string {
	if value = strings.TrimSpace(value); value == "" {
		return nil
	}
	return &value
}
