// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"fmt"

	"github.com/qolzam/backoffice/internal/cache"
	"github.com/qolzam/backoffice/lookups/models"
	"github.com/qolzam/backoffice/lookups/repository"
)

// Service serves reference data, read through the cache.
type Service interface {
	ListFactoryTypes(ctx context.Context) ([]models.FactoryType, error)
	GetFactoryType(ctx context.Context, id int64) (*models.FactoryType, error)
	ListServiceCategories(ctx context.Context) ([]models.ServiceCategory, error)
	GetServiceCategory(ctx context.Context, id int64) (*models.ServiceCategory, error)
	ListLocationTypes(ctx context.Context) ([]models.LocationType, error)
	GetLocationType(ctx context.Context, id int64) (*models.LocationType, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*models.Customer, error)
}

type service struct {
	repo  repository.Repository
	cache *cache.Service
}

// NewService constructs the lookup service. cacheService may be nil.
func NewService(repo repository.Repository, cacheService *cache.Service) Service {
	return &service{repo: repo, cache: cacheService}
}

func (s *service) ListFactoryTypes(ctx context.Context) ([]models.FactoryType, error) {
	return cache.Remember(ctx, s.cache, "lookups:factory-types", s.repo.ListFactoryTypes)
}

func (s *service) GetFactoryType(ctx context.Context, id int64) (*models.FactoryType, error) {
	return cache.Remember(ctx, s.cache, fmt.Sprintf("lookups:factory-type:%d", id), func(ctx context.Context) (*models.FactoryType, error) {
		return s.repo.GetFactoryType(ctx, id)
	})
}

func (s *service) ListServiceCategories(ctx context.Context) ([]models.ServiceCategory, error) {
	return cache.Remember(ctx, s.cache, "lookups:service-categories", s.repo.ListServiceCategories)
}

func (s *service) GetServiceCategory(ctx context.Context, id int64) (*models.ServiceCategory, error) {
	return cache.Remember(ctx, s.cache, fmt.Sprintf("lookups:service-category:%d", id), func(ctx context.Context) (*models.ServiceCategory, error) {
		return s.repo.GetServiceCategory(ctx, id)
	})
}

func (s *service) ListLocationTypes(ctx context.Context) ([]models.LocationType, error) {
	return cache.Remember(ctx, s.cache, "lookups:location-types", s.repo.ListLocationTypes)
}

func (s *service) GetLocationType(ctx context.Context, id int64) (*models.LocationType, error) {
	return cache.Remember(ctx, s.cache, fmt.Sprintf("lookups:location-type:%d", id), func(ctx context.Context) (*models.LocationType, error) {
		return s.repo.GetLocationType(ctx, id)
	})
}

// Customers change more often than the other tables and are not cached.
func (s *service) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.repo.ListCustomers(ctx)
}

func (s *service) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	return s.repo.GetCustomer(ctx, id)
}
