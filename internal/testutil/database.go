package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/qolzam/backoffice/internal/database/sqldb"
)

// NewSQLiteClient returns a migrated, private in-memory database that is
// closed when the test ends.
func NewSQLiteClient(t *testing.T) *sqldb.Client {
	t.Helper()
	ctx := context.Background()

	client, err := sqldb.Open(ctx, sqldb.SQLite, sqldb.SQLiteDSN(":memory:"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	_, err = client.Migrate(ctx)
	require.NoError(t, err)
	return client
}

// Lookups holds the ids created by SeedLookups.
type Lookups struct {
	FactoryTypeID     int64
	ServiceCategoryID int64
	LocationTypeID    int64
	CustomerID        int64
}

// SeedLookups inserts one row in each reference table.
func SeedLookups(t *testing.T, client *sqldb.Client) Lookups {
	t.Helper()
	ctx := context.Background()
	b := client.Builder()

	insert := func(table, pk string, columns []string, values ...interface{}) int64 {
		id, err := client.Insert(ctx, b.Insert(table).Columns(columns...).Values(values...), pk)
		require.NoError(t, err, table)
		return id
	}

	return Lookups{
		FactoryTypeID:     insert("factory_types", "id", []string{"name"}, "Knitting"),
		ServiceCategoryID: insert("service_categories", "id", []string{"name"}, "Full Package"),
		LocationTypeID:    insert("location_types", "pk_location_type_id", []string{"name", "color"}, "Overseas", "#1e88e5"),
		CustomerID:        insert("customers", "pk_customer_id", []string{"name"}, "Northwind"),
	}
}

// SeedFactory inserts an active factory pointing at the seeded lookups.
func SeedFactory(t *testing.T, client *sqldb.Client, lookups Lookups, name string) int64 {
	t.Helper()
	now := time.Now().UTC()

	id, err := client.Insert(context.Background(), client.Builder().
		Insert("factories").
		Columns("fk_factories_type_id", "fk_factories_service_id", "fk_location_id", "status", "name", "created_at", "updated_at").
		Values(lookups.FactoryTypeID, lookups.ServiceCategoryID, lookups.LocationTypeID, "active", name, now, now),
		"pk_factories_id")
	require.NoError(t, err)
	return id
}
