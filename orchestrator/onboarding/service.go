// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package onboarding

import (
	"context"
	"fmt"

	addressmodels "github.com/qolzam/backoffice/addresses/models"
	contactmodels "github.com/qolzam/backoffice/contacts/models"
	factorymodels "github.com/qolzam/backoffice/factories/models"
	"github.com/qolzam/backoffice/internal/pkg/log"
	"github.com/qolzam/backoffice/internal/types"
)

type FactoryCreator interface {
	Create(ctx context.Context, req *factorymodels.CreateFactoryRequest) (*factorymodels.Factory, error)
}

type ContactCreator interface {
	Create(ctx context.Context, req *contactmodels.CreateContactRequest) (*contactmodels.Contact, error)
}

type AddressCreator interface {
	Create(ctx context.Context, req *addressmodels.CreateAddressRequest) (*addressmodels.Address, error)
}

// Service coordinates the creation of a factory together with its primary
// contact and addresses across module boundaries.
type Service interface {
	// Onboard runs the steps in order without a transaction. A factory
	// failure is returned as the error; later failures are only reported
	// in the result.
	Onboard(ctx context.Context, req *Request) (*Result, error)
}

type service struct {
	factories FactoryCreator
	contacts  ContactCreator
	addresses AddressCreator
}

func NewService(factories FactoryCreator, contacts ContactCreator, addresses AddressCreator) Service {
	return &service{
		factories: factories,
		contacts:  contacts,
		addresses: addresses,
	}
}

func (s *service) Onboard(ctx context.Context, req *Request) (*Result, error) {
	if req == nil {
		return nil, fmt.Errorf("onboarding request is required")
	}

	factory, err := s.factories.Create(ctx, &req.Factory)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Factory: factory,
		Steps:   []StepResult{{Step: StepFactory, Status: StatusCreated, ID: factory.ID}},
	}

	if req.Contact == nil {
		result.Steps = append(result.Steps, StepResult{Step: StepContact, Status: StatusSkipped})
	} else {
		contact, err := s.contacts.Create(ctx, &contactmodels.CreateContactRequest{
			FkID:          factory.ID,
			Table:         types.TableFactories,
			FirstName:     req.Contact.FirstName,
			LastName:      req.Contact.LastName,
			Email:         req.Contact.Email,
			PhoneNumber:   req.Contact.PhoneNumber,
			MobileNumber:  req.Contact.MobileNumber,
			PositionTitle: req.Contact.PositionTitle,
			ContactType:   contactmodels.TypePrimary,
		})
		result.Steps = append(result.Steps, s.record(ctx, factory.ID, StepContact, err, func() int64 {
			result.Contact = contact
			return contact.ID
		}))
	}

	result.BillingAddress = s.address(ctx, result, factory.ID, StepBillingAddress, addressmodels.TypeBilling, req.BillingAddress)
	result.ShippingAddress = s.address(ctx, result, factory.ID, StepShippingAddress, addressmodels.TypeShipping, req.ShippingAddress)

	if result.Complete() {
		log.InfoWithContext(ctx, "factory %d onboarded", factory.ID)
	}
	return result, nil
}

func (s *service) address(ctx context.Context, result *Result, factoryID int64, step, addressType string, details *AddressDetails) *addressmodels.Address {
	if details == nil {
		result.Steps = append(result.Steps, StepResult{Step: step, Status: StatusSkipped})
		return nil
	}

	addr, err := s.addresses.Create(ctx, &addressmodels.CreateAddressRequest{
		FkID:        factoryID,
		Table:       types.TableFactories,
		AddressType: addressType,
		Address1:    details.Address1,
		Address2:    details.Address2,
		City:        details.City,
		State:       details.State,
		Zip:         details.Zip,
		Country:     details.Country,
	})
	result.Steps = append(result.Steps, s.record(ctx, factoryID, step, err, func() int64 { return addr.ID }))
	if err != nil {
		return nil
	}
	return addr
}

// record turns the outcome of a step into a StepResult. id is only called on success.
func (s *service) record(ctx context.Context, factoryID int64, step string, err error, id func() int64) StepResult {
	if err != nil {
		log.WarnWithContext(ctx, "onboarding factory %d: %s step failed: %v", factoryID, step, err)
		return StepResult{Step: step, Status: StatusFailed, Error: err.Error()}
	}
	return StepResult{Step: step, Status: StatusCreated, ID: id()}
}
