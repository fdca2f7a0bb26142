package contacts

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/qolzam/backoffice/contacts/errors"
	"github.com/qolzam/backoffice/contacts/handlers"
	"github.com/qolzam/backoffice/contacts/models"
	"github.com/qolzam/backoffice/contacts/repository"
	"github.com/qolzam/backoffice/contacts/services"
	"github.com/qolzam/backoffice/internal/pagination"
	"github.com/qolzam/backoffice/internal/testutil"
)

func TestContactRoutes(t *testing.T) {
	client := testutil.NewSQLiteClient(t)
	svc := services.NewService(repository.NewSQLRepository(client))

	app := fiber.New()
	RegisterRoutes(app, &Handlers{ContactHandler: handlers.NewContactHandler(svc)})
	h := testutil.NewHTTPHelper(t, app)

	var created models.Contact
	h.NewRequest(http.MethodPost, "/contacts", models.CreateContactRequest{
		FkID: 7, Table: "Factories", FirstName: "John", LastName: "Smith", Email: "john@acme.test",
	}).SendJSON(http.StatusCreated, &created)
	assert.Equal(t, models.TypePrimary, created.ContactType)

	var invalid errors.ErrorResponse
	h.NewRequest(http.MethodPost, "/contacts", models.CreateContactRequest{Table: "Factories"}).
		SendJSON(http.StatusBadRequest, &invalid)
	assert.Equal(t, errors.CodeValidationFailed, invalid.Code)

	var page pagination.Page[models.Contact]
	h.NewRequest(http.MethodGet, "/contacts?fkId=7&table=Factories", nil).SendJSON(http.StatusOK, &page)
	assert.Equal(t, int64(1), page.Meta.TotalItems)

	var primary models.Contact
	h.NewRequest(http.MethodGet, "/contacts/by-reference/7/Factories/primary", nil).SendJSON(http.StatusOK, &primary)
	assert.Equal(t, created.ID, primary.ID)

	var updated models.Contact
	title := "Sales Manager"
	h.NewRequest(http.MethodPut, fmt.Sprintf("/contacts/%d", created.ID), models.UpdateContactRequest{PositionTitle: &title}).
		SendJSON(http.StatusOK, &updated)
	assert.Equal(t, "Sales Manager", updated.PositionTitle)
	assert.Equal(t, "John", updated.FirstName)

	var deleted map[string]int64
	h.NewRequest(http.MethodDelete, fmt.Sprintf("/contacts/%d", created.ID), nil).SendJSON(http.StatusOK, &deleted)
	assert.Equal(t, int64(1), deleted["affected"])

	h.NewRequest(http.MethodGet, fmt.Sprintf("/contacts/%d", created.ID), nil).SendJSON(http.StatusNotFound, nil)
}
