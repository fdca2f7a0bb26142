// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"errors"

	"github.com/samber/lo"

	"github.com/qolzam/backoffice/factories/models"
	"github.com/qolzam/backoffice/internal/pagination"
	"github.com/qolzam/backoffice/internal/types"
	lookupserrors "github.com/qolzam/backoffice/lookups/errors"
)

func (s *service) hydratePage(ctx context.Context, page pagination.Page[models.Factory]) (pagination.Page[models.FactoryResponse], error) {
	items, err := s.hydrate(ctx, page.Items)
	if err != nil {
		return pagination.Page[models.FactoryResponse]{}, err
	}
	return pagination.Page[models.FactoryResponse]{Items: items, Meta: page.Meta}, nil
}

// hydrate attaches lookups and primary contacts. Lookup reads go through
// the cached lookup service; contacts are fetched in one query.
func (s *service) hydrate(ctx context.Context, factories []models.Factory) ([]models.FactoryResponse, error) {
	out := make([]models.FactoryResponse, 0, len(factories))
	if len(factories) == 0 {
		return out, nil
	}

	ids := lo.Map(factories, func(f models.Factory, _ int) int64 { return f.ID })
	contacts, err := s.contacts.FindPrimaryByOwners(ctx, ids, types.TableFactories)
	if err != nil {
		return nil, err
	}

	typeRefs := map[int64]*models.Reference{}
	serviceRefs := map[int64]*models.Reference{}
	locationRefs := map[int64]*models.LocationReference{}

	for _, f := range factories {
		if _, ok := typeRefs[f.FactoryTypeID]; !ok {
			ft, err := s.lookups.GetFactoryType(ctx, f.FactoryTypeID)
			if err = ignoreMissing(err); err != nil {
				return nil, err
			}
			typeRefs[f.FactoryTypeID] = nil
			if ft != nil {
				typeRefs[f.FactoryTypeID] = &models.Reference{ID: ft.ID, Name: ft.Name}
			}
		}
		if _, ok := serviceRefs[f.ServiceCategoryID]; !ok {
			sc, err := s.lookups.GetServiceCategory(ctx, f.ServiceCategoryID)
			if err = ignoreMissing(err); err != nil {
				return nil, err
			}
			serviceRefs[f.ServiceCategoryID] = nil
			if sc != nil {
				serviceRefs[f.ServiceCategoryID] = &models.Reference{ID: sc.ID, Name: sc.Name}
			}
		}
		if _, ok := locationRefs[f.LocationID]; !ok {
			lt, err := s.lookups.GetLocationType(ctx, f.LocationID)
			if err = ignoreMissing(err); err != nil {
				return nil, err
			}
			locationRefs[f.LocationID] = nil
			if lt != nil {
				locationRefs[f.LocationID] = &models.LocationReference{ID: lt.ID, Name: lt.Name, Color: lt.Color}
			}
		}

		resp := models.FactoryResponse{
			ID:              f.ID,
			FactoryType:     typeRefs[f.FactoryTypeID],
			ServiceCategory: serviceRefs[f.ServiceCategoryID],
			LocationType:    locationRefs[f.LocationID],
			Status:          f.Status,
			Name:            f.Name,
			Email:           f.Email,
			WebsiteURL:      f.WebsiteURL,
			Industry:        f.Industry,
			Tags:            f.Tags,
			Notes:           f.Notes,
			UserOwner:       f.UserOwner,
			CreatedAt:       f.CreatedAt,
			UpdatedAt:       f.UpdatedAt,
		}
		if contact, ok := contacts[f.ID]; ok {
			resp.Contact = &contact
		}
		out = append(out, resp)
	}
	return out, nil
}

func ignoreMissing(err error) error {
	if errors.Is(err, lookupserrors.ErrLookupNotFound) {
		return nil
	}
	return err
}
