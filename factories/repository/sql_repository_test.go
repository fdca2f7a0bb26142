package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contactmodels "github.com/qolzam/backoffice/contacts/models"
	contactsrepo "github.com/qolzam/backoffice/contacts/repository"
	factorieserrors "github.com/qolzam/backoffice/factories/errors"
	"github.com/qolzam/backoffice/factories/models"
	"github.com/qolzam/backoffice/internal/pagination"
	"github.com/qolzam/backoffice/internal/search"
	"github.com/qolzam/backoffice/internal/testutil"
	"github.com/qolzam/backoffice/internal/types"
)

func TestSQLRepository(t *testing.T) {
	ctx := context.Background()
	client := testutil.NewSQLiteClient(t)
	ids := testutil.SeedLookups(t, client)
	repo := NewSQLRepository(client)
	contacts := contactsrepo.NewSQLRepository(client)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	newFactory := func(name, status, industry string, created time.Time) *models.Factory {
		return &models.Factory{
			FactoryTypeID: ids.FactoryTypeID, ServiceCategoryID: ids.ServiceCategoryID, LocationID: ids.LocationTypeID,
			Status: status, Name: name, Email: types.Placeholder, WebsiteURL: types.Placeholder,
			Industry: industry, Tags: "[]", Notes: types.Placeholder, UserOwner: types.DefaultUserOwner,
			CreatedAt: created, UpdatedAt: created,
		}
	}

	acmeID, err := repo.Create(ctx, newFactory("Acme Mills", models.StatusActive, "Textiles", base))
	require.NoError(t, err)
	bravoID, err := repo.Create(ctx, newFactory("Bravo Knits", models.StatusActive, "Textiles", base.Add(time.Hour)))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newFactory("Cobalt Dye", models.StatusInactive, types.Placeholder, base.Add(2*time.Hour)))
	require.NoError(t, err)

	for _, first := range []string{"John", "Johnny"} {
		_, err := contacts.Create(ctx, &contactmodels.Contact{
			FkID: acmeID, Table: types.TableFactories, FirstName: first, LastName: "Smith",
			ContactType: contactmodels.TypePrimary, CreatedAt: base, UpdatedAt: base,
		})
		require.NoError(t, err)
	}

	opts := pagination.Options{Page: 1, Limit: 10}

	t.Run("Get and Update", func(t *testing.T) {
		factory, err := repo.Get(ctx, bravoID)
		require.NoError(t, err)
		assert.Equal(t, "Bravo Knits", factory.Name)

		factory.Notes = "audited"
		require.NoError(t, repo.Update(ctx, factory))

		factory, err = repo.Get(ctx, bravoID)
		require.NoError(t, err)
		assert.Equal(t, "audited", factory.Notes)

		_, err = repo.Get(ctx, 999)
		require.ErrorIs(t, err, factorieserrors.ErrFactoryNotFound)
		require.ErrorIs(t, repo.Update(ctx, &models.Factory{ID: 999}), factorieserrors.ErrFactoryNotFound)
	})

	t.Run("List newest first", func(t *testing.T) {
		page, err := repo.List(ctx, opts)
		require.NoError(t, err)
		require.Len(t, page.Items, 3)
		assert.Equal(t, "Cobalt Dye", page.Items[0].Name)
		assert.Equal(t, int64(3), page.Meta.TotalItems)
	})

	t.Run("Search by contact name counts each factory once", func(t *testing.T) {
		filter := search.FactoryVocabulary.Compile("John", search.MatchPartial, []string{string(search.ContactName)})
		page, err := repo.Search(ctx, filter, opts)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, acmeID, page.Items[0].ID)
		assert.Equal(t, int64(1), page.Meta.TotalItems)
	})

	t.Run("Search by numeric id", func(t *testing.T) {
		filter := search.FactoryVocabulary.Compile("2", search.MatchPartial, []string{string(search.FactoriesID)})
		page, err := repo.Search(ctx, filter, opts)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, bravoID, page.Items[0].ID)
	})

	t.Run("Search by lookup name", func(t *testing.T) {
		filter := search.FactoryVocabulary.Compile("Knitting", search.MatchExact, []string{string(search.FactoriesType)})
		page, err := repo.Search(ctx, filter, opts)
		require.NoError(t, err)
		assert.Equal(t, int64(3), page.Meta.TotalItems)
	})

	t.Run("empty filter matches everything", func(t *testing.T) {
		page, err := repo.Search(ctx, search.Filter{}, opts)
		require.NoError(t, err)
		assert.Equal(t, int64(3), page.Meta.TotalItems)
	})

	t.Run("aggregates", func(t *testing.T) {
		byStatus, err := repo.CountByStatus(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]int64{models.StatusActive: 2, models.StatusInactive: 1}, byStatus)

		byType, err := repo.CountBy(ctx, ByFactoryType)
		require.NoError(t, err)
		assert.Equal(t, []models.IDCount{{ID: ids.FactoryTypeID, Count: 3}}, byType)

		_, err = repo.CountBy(ctx, Dimension("name"))
		require.Error(t, err)

		industries, err := repo.CountByIndustry(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.GroupCount{{Key: "Textiles", Count: 2}}, industries)

		regs, err := repo.RegistrationsSince(ctx, base.Add(30*time.Minute))
		require.NoError(t, err)
		assert.Len(t, regs, 2)
	})

	t.Run("Delete", func(t *testing.T) {
		affected, err := repo.Delete(ctx, bravoID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		affected, err = repo.Delete(ctx, bravoID)
		require.NoError(t, err)
		assert.Zero(t, affected)
	})
}
