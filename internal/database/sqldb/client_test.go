// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package sqldb

import (
	"context"
	"errors"
	"os"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qolzam/backoffice/internal/platform/config"
)

func openMemory(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()

	client, err := Open(ctx, SQLite, SQLiteDSN(":memory:"))
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestMigrate_SQLite(t *testing.T) {
	ctx := context.Background()
	client := openMemory(t)

	ran, err := client.Migrate(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_init"}, ran)

	ran, err = client.Migrate(ctx)
	require.NoError(t, err)
	assert.Empty(t, ran, "second run should be a no-op")

	for _, table := range []string{"factories", "contacts", "addresses", "production_orders", "image_gallery", "customers"} {
		var n int
		require.NoError(t, client.Get(ctx, &n, client.Builder().Select("COUNT(*)").From(table)), table)
	}
}

func TestMigrationFiles_AllDialects(t *testing.T) {
	for _, d := range []Dialect{Postgres, MySQL, SQLite} {
		c := &Client{dialect: d}
		files, err := c.MigrationFiles()
		require.NoError(t, err)
		assert.NotEmpty(t, files, d)
	}
}

func TestInsertAndTransaction(t *testing.T) {
	ctx := context.Background()
	client := openMemory(t)
	_, err := client.Migrate(ctx)
	require.NoError(t, err)

	id, err := client.Insert(ctx, client.Builder().Insert("customers").Columns("name").Values("Acme"), "pk_customer_id")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	t.Run("rollback on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := client.WithTransaction(ctx, func(ctx context.Context) error {
			_, err := client.Insert(ctx, client.Builder().Insert("customers").Columns("name").Values("Ghost"), "pk_customer_id")
			require.NoError(t, err)
			return boom
		})
		require.ErrorIs(t, err, boom)

		var n int
		require.NoError(t, client.Get(ctx, &n, client.Builder().Select("COUNT(*)").From("customers")))
		assert.Equal(t, 1, n)
	})

	t.Run("commit", func(t *testing.T) {
		err := client.WithTransaction(ctx, func(ctx context.Context) error {
			affected, err := client.Exec(ctx, client.Builder().Update("customers").Set("name", "Acme Ltd").Where(sq.Eq{"pk_customer_id": id}))
			require.Equal(t, int64(1), affected)
			return err
		})
		require.NoError(t, err)

		var name string
		require.NoError(t, client.Get(ctx, &name, client.Builder().Select("name").From("customers").Where(sq.Eq{"pk_customer_id": id})))
		assert.Equal(t, "Acme Ltd", name)
	})
}

func TestSplitStatements(t *testing.T) {
	stmts := splitStatements("-- comment\nCREATE TABLE a (\n id INT\n);\n\nCREATE INDEX i ON a(id);\nSELECT 1")
	require.Len(t, stmts, 3)
	assert.Equal(t, "CREATE TABLE a (\n id INT\n)", stmts[0])
	assert.Equal(t, "SELECT 1", stmts[2])
}

func TestResolve(t *testing.T) {
	d, dsn, err := resolve(config.DatabaseConfig{Type: config.DatabaseMySQL, MySQL: config.MySQLConfig{
		Host: "db", Port: 3306, Username: "u", Password: "p", Database: "bo",
	}})
	require.NoError(t, err)
	assert.Equal(t, MySQL, d)
	assert.Contains(t, dsn, "u:p@tcp(db:3306)/bo")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "clientFoundRows=true")

	d, dsn, err = resolve(config.DatabaseConfig{Type: config.DatabasePostgres, Postgres: config.PostgresConfig{
		Host: "pg", Port: 5432, Database: "bo", SSLMode: "disable",
	}})
	require.NoError(t, err)
	assert.Equal(t, Postgres, d)
	assert.Equal(t, "host=pg port=5432 dbname=bo sslmode=disable", dsn)

	_, _, err = resolve(config.DatabaseConfig{Type: "oracle"})
	assert.Error(t, err)

	assert.Equal(t, sq.Dollar, (&Client{dialect: Postgres}).Placeholder())
	assert.Equal(t, sq.Question, (&Client{dialect: MySQL}).Placeholder())
}

func TestNewClient_Postgres(t *testing.T) {
	if os.Getenv("RUN_DB_TESTS") != "1" {
		t.Skip("set RUN_DB_TESTS=1 to run against a live PostgreSQL")
	}
	cfg, err := config.LoadFromEnv()
	require.NoError(t, err)

	client, err := NewClient(context.Background(), cfg.Database)
	require.NoError(t, err)
	defer client.Close()
	require.NoError(t, client.HealthCheck(context.Background()))
}
