package productionorders

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
	"github.com/qolzam/backoffice/internal/pagination"
	"github.com/qolzam/backoffice/internal/testutil"
	"github.com/qolzam/backoffice/internal/types"
	"github.com/qolzam/backoffice/productionorders/errors"
	"github.com/qolzam/backoffice/productionorders/handlers"
	"github.com/qolzam/backoffice/productionorders/models"
	"github.com/qolzam/backoffice/productionorders/repository"
	"github.com/qolzam/backoffice/productionorders/services"
)

func TestProductionOrderRoutes(t *testing.T) {
	client := testutil.NewSQLiteClient(t)
	ids := testutil.SeedLookups(t, client)
	factoryID := testutil.SeedFactory(t, client, ids, "Acme Mills")

	contacts := contactsservices.NewService(contactsrepo.NewSQLRepository(client))
	_, err := contacts.Create(t.Context(), &contactmodels.CreateContactRequest{
		FkID: factoryID, Table: types.TableFactories, FirstName: "John", LastName: "Smith",
	})
	require.NoError(t, err)

	svc := services.NewService(repository.NewSQLRepository(client), contacts)
	app := fiber.New()
	RegisterRoutes(app, &Handlers{OrderHandler: handlers.NewOrderHandler(svc)})
	h := testutil.NewHTTPHelper(t, app)

	var created models.ProductionOrder
	h.NewRequest(http.MethodPost, "/production-orders", models.CreateOrderRequest{
		CustomerID: ids.CustomerID, FactoryID: factoryID, PONumber: "PO-1001",
		OrderDate: "2024-03-01", ExpectedDeliveryDate: "2024-04-15", TotalQuantity: 100,
	}).WithHeader(types.HeaderUserOwner, "maria").SendJSON(http.StatusCreated, &created)
	assert.Equal(t, models.ShippingOcean, created.ShippingMethod)
	assert.Equal(t, models.StatusPending, created.Status)
	require.NotNil(t, created.UserOwner)
	assert.Equal(t, "maria", *created.UserOwner)

	var invalid errors.ErrorResponse
	h.NewRequest(http.MethodPost, "/production-orders", models.CreateOrderRequest{
		CustomerID: ids.CustomerID, FactoryID: factoryID, PONumber: "PO-1",
		OrderDate: "2024-13-45", ExpectedDeliveryDate: "2024-04-15",
	}).SendJSON(http.StatusBadRequest, &invalid)
	assert.Equal(t, errors.CodeValidationFailed, invalid.Code)

	var badRef errors.ErrorResponse
	h.NewRequest(http.MethodPost, "/production-orders", models.CreateOrderRequest{
		CustomerID: ids.CustomerID, FactoryID: 999, PONumber: "PO-1",
		OrderDate: "2024-03-01", ExpectedDeliveryDate: "2024-04-15",
	}).SendJSON(http.StatusUnprocessableEntity, &badRef)
	assert.Equal(t, errors.CodeInvalidReference, badRef.Code)

	var got models.ProductionOrderResponse
	h.NewRequest(http.MethodGet, fmt.Sprintf("/production-orders/%d", created.ID), nil).SendJSON(http.StatusOK, &got)
	assert.Equal(t, "2024-03-01", got.OrderDate.String())
	assert.Equal(t, "Northwind", got.Customer.Name)
	require.NotNil(t, got.Factory.Contact)
	assert.Equal(t, "John", got.Factory.Contact.FirstName)
	assert.Nil(t, got.Customer.Contact)

	var found pagination.Page[models.ProductionOrderResponse]
	h.NewRequest(http.MethodGet, "/production-orders/search?q=acme", nil).SendJSON(http.StatusOK, &found)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Acme Mills", found.Items[0].Factory.Name)

	h.NewRequest(http.MethodGet, "/production-orders/search?q=zzz", nil).SendJSON(http.StatusOK, &found)
	assert.Empty(t, found.Items)

	var updated models.ProductionOrder
	delivered := "2024-04-12"
	h.NewRequest(http.MethodPut, fmt.Sprintf("/production-orders/%d", created.ID), models.UpdateOrderRequest{ActualDeliveryDate: &delivered}).
		SendJSON(http.StatusOK, &updated)
	require.NotNil(t, updated.ActualDeliveryDate)
	assert.Equal(t, delivered, updated.ActualDeliveryDate.String())

	h.NewRequest(http.MethodPut, "/production-orders/999", models.UpdateOrderRequest{}).SendJSON(http.StatusNotFound, nil)

	var deleted map[string]int64
	h.NewRequest(http.MethodDelete, fmt.Sprintf("/production-orders/%d", created.ID), nil).SendJSON(http.StatusOK, &deleted)
	assert.Equal(t, int64(1), deleted["affected"])

	h.NewRequest(http.MethodGet, fmt.Sprintf("/production-orders/%d", created.ID), nil).SendJSON(http.StatusNotFound, nil)
}
