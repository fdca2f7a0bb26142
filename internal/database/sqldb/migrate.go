// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package sqldb

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/qolzam/backoffice/internal/pkg/log"
)

//go:embed migrations
var migrationFS embed.FS

const migrationsTable = "schema_migrations"

// Migrate applies the embedded migrations for the client's dialect that
// have not been recorded in schema_migrations yet. It returns the versions
// applied by this call.
func (c *Client) Migrate(ctx context.Context) ([]string, error) {
	create := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		version VARCHAR(255) NOT NULL PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL
	)`, migrationsTable)
	if _, err := c.db.ExecContext(ctx, create); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", migrationsTable, err)
	}

	var done []string
	if err := c.Select(ctx, &done, c.Builder().Select("version").From(migrationsTable)); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", migrationsTable, err)
	}
	applied := make(map[string]bool, len(done))
	for _, v := range done {
		applied[v] = true
	}

	files, err := c.MigrationFiles()
	if err != nil {
		return nil, err
	}

	var ran []string
	for _, file := range files {
		version := strings.TrimSuffix(path.Base(file), ".sql")
		if applied[version] {
			continue
		}

		body, err := migrationFS.ReadFile(file)
		if err != nil {
			return ran, fmt.Errorf("failed to read migration %s: %w", file, err)
		}

		err = c.WithTransaction(ctx, func(ctx context.Context) error {
			exec := c.Executor(ctx)
			for _, stmt := range splitStatements(string(body)) {
				if _, err := exec.ExecContext(ctx, stmt); err != nil {
					return fmt.Errorf("migration %s: %w", version, err)
				}
			}
			_, err := c.Exec(ctx, c.Builder().
				Insert(migrationsTable).
				Columns("version", "applied_at").
				Values(version, time.Now().UTC()))
			return err
		})
		if err != nil {
			return ran, err
		}

		log.Info("applied migration %s (%s)", version, c.dialect)
		ran = append(ran, version)
	}

	return ran, nil
}

// MigrationFiles lists the embedded migration paths for the dialect in order.
func (c *Client) MigrationFiles() ([]string, error) {
	dir := path.Join("migrations", string(c.dialect))
	entries, err := fs.ReadDir(migrationFS, dir)
	if err != nil {
		return nil, fmt.Errorf("no migrations for %s: %w", c.dialect, err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, path.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// splitStatements splits a script on semicolons that end a line. The
// migrations never contain semicolons inside literals.
func splitStatements(script string) []string {
	var stmts []string
	var current strings.Builder
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			stmt := strings.TrimSuffix(strings.TrimSpace(current.String()), ";")
			stmts = append(stmts, stmt)
			current.Reset()
		}
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		stmts = append(stmts, rest)
	}
	return stmts
}
