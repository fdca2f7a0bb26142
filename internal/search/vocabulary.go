// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package search

import "github.com/samber/lo"

// Field is a logical, caller-facing search field name.
type Field string

const (
	FactoriesID       Field = "factories_id"
	FactoriesName     Field = "factories_name"
	FactoriesEmail    Field = "factories_email"
	FactoriesWebsite  Field = "factories_website"
	FactoriesIndustry Field = "factories_industry"
	FactoriesStatus   Field = "factories_status"
	ContactName       Field = "contact_name"
	ContactEmail      Field = "contact_email"
	ContactPosition   Field = "contact_position"
	FactoriesType     Field = "factories_type"
	FactoriesService  Field = "factories_service"
	LocationType      Field = "location_type"
)

// FieldSpec maps a logical field to the physical SQL expressions it covers.
// A Numeric field only ever matches by equality against a single numeric token.
type FieldSpec struct {
	Field       Field
	Expressions []string
	Numeric     bool
}

// Vocabulary is the ordered set of searchable fields for one query shape.
// Compile visits fields in this order regardless of request order.
type Vocabulary []FieldSpec

// Lookup returns the spec registered for name.
func (v Vocabulary) Lookup(name string) (FieldSpec, bool) {
	return lo.Find(v, func(spec FieldSpec) bool {
		return string(spec.Field) == name
	})
}

// Names lists the logical field names in declaration order.
func (v Vocabulary) Names() []string {
	return lo.Map(v, func(spec FieldSpec, _ int) string {
		return string(spec.Field)
	})
}

// FactoryVocabulary covers the factory search query, which joins the
// primary contact (contact), factory type (factoriesType), service
// category (serviceCategory) and location type (locationType).
var FactoryVocabulary = Vocabulary{
	{Field: FactoriesID, Expressions: []string{"factory.pk_factories_id"}, Numeric: true},
	{Field: FactoriesName, Expressions: []string{"factory.name"}},
	{Field: FactoriesEmail, Expressions: []string{"factory.email"}},
	{Field: FactoriesWebsite, Expressions: []string{"factory.website_url"}},
	{Field: FactoriesIndustry, Expressions: []string{"factory.industry"}},
	{Field: FactoriesStatus, Expressions: []string{"factory.status"}},
	{Field: ContactName, Expressions: []string{
		"CONCAT(COALESCE(contact.first_name, ''), ' ', COALESCE(contact.last_name, ''))",
		"contact.first_name",
		"contact.last_name",
	}},
	{Field: ContactEmail, Expressions: []string{"contact.email"}},
	{Field: ContactPosition, Expressions: []string{"contact.position_title"}},
	{Field: FactoriesType, Expressions: []string{"factoriesType.name"}},
	{Field: FactoriesService, Expressions: []string{"serviceCategory.name"}},
	{Field: LocationType, Expressions: []string{"locationType.name"}},
}

// DefaultFactoryFields is used when a factory search names no fields.
var DefaultFactoryFields = FactoryVocabulary.Names()
