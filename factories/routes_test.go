package factories

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contactmodels "github.com/qolzam/backoffice/contacts/models"
	contactsrepo "github.com/qolzam/backoffice/contacts/repository"
	contactsservices "github.com/qolzam/backoffice/contacts/services"
	"github.com/qolzam/backoffice/factories/errors"
	"github.com/qolzam/backoffice/factories/handlers"
	"github.com/qolzam/backoffice/factories/models"
	"github.com/qolzam/backoffice/factories/repository"
	"github.com/qolzam/backoffice/factories/services"
	"github.com/qolzam/backoffice/internal/pagination"
	"github.com/qolzam/backoffice/internal/testutil"
	"github.com/qolzam/backoffice/internal/types"
	lookupsrepo "github.com/qolzam/backoffice/lookups/repository"
	lookupsservices "github.com/qolzam/backoffice/lookups/services"
)

func TestFactoryRoutes(t *testing.T) {
	client := testutil.NewSQLiteClient(t)
	ids := testutil.SeedLookups(t, client)

	contacts := contactsservices.NewService(contactsrepo.NewSQLRepository(client))
	lookups := lookupsservices.NewService(lookupsrepo.NewSQLRepository(client), nil)
	svc := services.NewService(repository.NewSQLRepository(client), lookups, contacts)

	app := fiber.New()
	RegisterRoutes(app, &Handlers{FactoryHandler: handlers.NewFactoryHandler(svc)})
	h := testutil.NewHTTPHelper(t, app)

	var created models.Factory
	h.NewRequest(http.MethodPost, "/factories", models.CreateFactoryRequest{
		FactoryTypeID: ids.FactoryTypeID, ServiceCategoryID: ids.ServiceCategoryID, LocationID: ids.LocationTypeID,
		Status: models.StatusActive, Name: "Acme Mills", Industry: "Textiles",
	}).WithHeader(types.HeaderUserOwner, "maria").SendJSON(http.StatusCreated, &created)
	assert.Equal(t, "maria", created.UserOwner)
	assert.Equal(t, types.Placeholder, created.Email)

	_, err := contacts.Create(t.Context(), &contactmodels.CreateContactRequest{
		FkID: created.ID, Table: types.TableFactories, FirstName: "John", LastName: "Smith",
	})
	require.NoError(t, err)

	var badRef errors.ErrorResponse
	h.NewRequest(http.MethodPost, "/factories", models.CreateFactoryRequest{
		FactoryTypeID: 999, ServiceCategoryID: ids.ServiceCategoryID, LocationID: ids.LocationTypeID,
		Status: models.StatusActive, Name: "Ghost",
	}).SendJSON(http.StatusUnprocessableEntity, &badRef)
	assert.Equal(t, errors.CodeInvalidReference, badRef.Code)

	var invalid errors.ErrorResponse
	h.NewRequest(http.MethodPost, "/factories", models.CreateFactoryRequest{Name: "x"}).
		SendJSON(http.StatusBadRequest, &invalid)
	assert.Equal(t, errors.CodeValidationFailed, invalid.Code)

	var got models.FactoryResponse
	h.NewRequest(http.MethodGet, fmt.Sprintf("/factories/%d", created.ID), nil).SendJSON(http.StatusOK, &got)
	require.NotNil(t, got.FactoryType)
	assert.Equal(t, "Knitting", got.FactoryType.Name)
	require.NotNil(t, got.LocationType)
	assert.Equal(t, "#1e88e5", got.LocationType.Color)
	require.NotNil(t, got.Contact)
	assert.Equal(t, "John", got.Contact.FirstName)

	var found pagination.Page[models.FactoryResponse]
	h.NewRequest(http.MethodGet, "/factories/search?q=smith&fields=contact_name", nil).SendJSON(http.StatusOK, &found)
	require.Len(t, found.Items, 1)
	assert.Equal(t, created.ID, found.Items[0].ID)

	var blank pagination.Page[models.FactoryResponse]
	h.NewRequest(http.MethodGet, "/factories/search?q=", nil).SendJSON(http.StatusOK, &blank)
	assert.Empty(t, blank.Items)
	assert.Zero(t, blank.Meta.TotalItems)

	h.NewRequest(http.MethodGet, "/factories/search?q=a&match=fuzzy", nil).SendJSON(http.StatusBadRequest, nil)

	var kpi models.KPISummary
	h.NewRequest(http.MethodGet, "/factories/kpi", nil).SendJSON(http.StatusOK, &kpi)
	assert.Equal(t, int64(1), kpi.Overview.TotalFactories)
	assert.Equal(t, int64(1), kpi.Overview.RecentRegistrations)
	require.Len(t, kpi.FactoryTypes, 1)
	assert.Equal(t, 100.0, kpi.FactoryTypes[0].Percentage)
	assert.Len(t, kpi.RegistrationTrends, 12)

	var updated models.Factory
	status := models.StatusInactive
	h.NewRequest(http.MethodPut, fmt.Sprintf("/factories/%d", created.ID), models.UpdateFactoryRequest{Status: &status}).
		SendJSON(http.StatusOK, &updated)
	assert.Equal(t, models.StatusInactive, updated.Status)
	assert.Equal(t, "Acme Mills", updated.Name)

	var deleted map[string]int64
	h.NewRequest(http.MethodDelete, fmt.Sprintf("/factories/%d", created.ID), nil).SendJSON(http.StatusOK, &deleted)
	assert.Equal(t, int64(1), deleted["affected"])

	h.NewRequest(http.MethodGet, fmt.Sprintf("/factories/%d", created.ID), nil).SendJSON(http.StatusNotFound, nil)
	h.NewRequest(http.MethodGet, "/factories/abc", nil).SendJSON(http.StatusNotFound, nil)
}
