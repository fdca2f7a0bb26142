package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	factorymodels "github.com/qolzam/backoffice/factories/models"
	"github.com/qolzam/backoffice/internal/cache"
	"github.com/qolzam/backoffice/internal/pagination"
	"github.com/qolzam/backoffice/internal/platform/config"
	"github.com/qolzam/backoffice/internal/testutil"
	"github.com/qolzam/backoffice/internal/types"
	lookupmodels "github.com/qolzam/backoffice/lookups/models"
	"github.com/qolzam/backoffice/orchestrator/onboarding"
	"github.com/qolzam/backoffice/storage/provider"
)

func TestRouter(t *testing.T) {
	cfg, err := config.LoadFromMap(map[string]string{
		"DB_TYPE":                   config.DatabaseSQLite,
		"RATE_LIMIT_API_ENABLED":    "false",
		"RATE_LIMIT_UPLOAD_ENABLED": "false",
	})
	require.NoError(t, err)

	client := testutil.NewSQLiteClient(t)
	ids := testutil.SeedLookups(t, client)

	app := Router(cfg, Dependencies{
		DB:    client,
		Cache: cache.NewService(cache.NewMemoryCache(100, 0), cfg.Cache.Prefix, cfg.Cache.TTL),
		Blobs: provider.NewMemoryProvider(""),
	})
	h := testutil.NewHTTPHelper(t, app)

	var health map[string]string
	h.NewRequest(http.MethodGet, "/health", nil).SendJSON(http.StatusOK, &health)
	assert.Equal(t, "ok", health["status"])

	resp := h.NewRequest(http.MethodGet, "/v1/lookups/factory-types", nil).WithHeader(types.HeaderRequestID, "req-1").Send()
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "req-1", resp.Header.Get(types.HeaderRequestID))

	var factoryTypes []lookupmodels.FactoryType
	h.NewRequest(http.MethodGet, "/v1/lookups/factory-types", nil).SendJSON(http.StatusOK, &factoryTypes)
	require.Len(t, factoryTypes, 1)
	assert.Equal(t, "Knitting", factoryTypes[0].Name)

	var result onboarding.Result
	h.NewRequest(http.MethodPost, "/v1/factories/onboard", onboarding.Request{
		Factory: factorymodels.CreateFactoryRequest{
			FactoryTypeID: ids.FactoryTypeID, ServiceCategoryID: ids.ServiceCategoryID, LocationID: ids.LocationTypeID,
			Status: factorymodels.StatusActive, Name: "Acme Mills",
		},
		Contact: &onboarding.ContactDetails{FirstName: "John"},
	}).SendJSON(http.StatusCreated, &result)
	assert.True(t, result.Complete())

	var page pagination.Page[factorymodels.FactoryResponse]
	h.NewRequest(http.MethodGet, "/v1/factories", nil).SendJSON(http.StatusOK, &page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Acme Mills", page.Items[0].Name)

	missing := h.NewRequest(http.MethodGet, "/factories", nil).Send()
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}
