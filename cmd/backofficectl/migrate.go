package main

import (
	"fmt"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qolzam/backoffice/internal/database/sqldb"
	"github.com/qolzam/backoffice/internal/platform/config"
)

func newMigrateCmd() *cobra.Command {
	var (
		dbType string
		dsn    string
		list   bool
	)

	c := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Long:  "Apply the embedded SQL migrations that are not yet recorded in schema_migrations. Connection settings come from the environment (DB_TYPE, DB_DSN, ...) unless overridden by flags.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFromEnv()
			if err != nil {
				return err
			}
			if dbType != "" {
				cfg.Database.Type = dbType
			}
			if dsn != "" {
				cfg.Database.DSN = dsn
			}

			client, err := sqldb.NewClient(cmd.Context(), cfg.Database)
			if err != nil {
				return fmt.Errorf("connect to %s: %w", cfg.Database.Type, err)
			}
			defer client.Close()

			if list {
				files, err := client.MigrationFiles()
				if err != nil {
					return err
				}
				table := newTable(cmd.OutOrStdout(), "Version", "File")
				for _, f := range files {
					table.Append([]string{strings.TrimSuffix(path.Base(f), ".sql"), f})
				}
				table.Render()
				return nil
			}

			applied, err := client.Migrate(cmd.Context())
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
				return nil
			}
			for _, version := range applied {
				fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", version)
			}
			return nil
		},
	}

	c.Flags().StringVar(&dbType, "db-type", "", "database type: postgresql, mysql or sqlite")
	c.Flags().StringVar(&dsn, "dsn", "", "connection string, overrides DB_DSN")
	c.Flags().BoolVar(&list, "list", false, "list the embedded migrations instead of applying them")
	return c
}
