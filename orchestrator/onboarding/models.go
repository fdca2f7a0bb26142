package onboarding

import (
	addressmodels "github.com/qolzam/backoffice/addresses/models"
	contactmodels "github.com/qolzam/backoffice/contacts/models"
	factorymodels "github.com/qolzam/backoffice/factories/models"
)

const (
	StepFactory         = "factory"
	StepContact         = "contact"
	StepBillingAddress  = "billing_address"
	StepShippingAddress = "shipping_address"
)

const (
	StatusCreated = "created"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// ContactDetails is the primary contact of a new factory.
type ContactDetails struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phoneNumber"`
	MobileNumber  string `json:"mobileNumber"`
	PositionTitle string `json:"positionTitle"`
}

type AddressDetails struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
}

// Request describes a factory with its optional contact and addresses.
// A nil section is skipped.
type Request struct {
	Factory         factorymodels.CreateFactoryRequest `json:"factory"`
	Contact         *ContactDetails                    `json:"contact"`
	BillingAddress  *AddressDetails                    `json:"billingAddress"`
	ShippingAddress *AddressDetails                    `json:"shippingAddress"`
}

type StepResult struct {
	Step   string `json:"step"`
	Status string `json:"status"`
	ID     int64  `json:"id,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Result reports every step. Rows created before a failing step are kept.
type Result struct {
	Factory         *factorymodels.Factory `json:"factory"`
	Contact         *contactmodels.Contact `json:"contact,omitempty"`
	BillingAddress  *addressmodels.Address `json:"billingAddress,omitempty"`
	ShippingAddress *addressmodels.Address `json:"shippingAddress,omitempty"`
	Steps           []StepResult           `json:"steps"`
}

// Complete reports whether no step failed.
func (r *Result) Complete() bool {
	for _, s := range r.Steps {
		if s.Status == StatusFailed {
			return false
		}
	}
	return true
}
