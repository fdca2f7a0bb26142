// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/qolzam/backoffice/internal/platform/config"
)

// Dialect identifies the SQL backend a Client talks to.
type Dialect string

const (
	Postgres Dialect = "postgres"
	MySQL    Dialect = "mysql"
	SQLite   Dialect = "sqlite"
)

func init() {
	// modernc registers "sqlite", which sqlx does not know by name.
	sqlx.BindDriver(string(SQLite), sqlx.QUESTION)
}

// Client wraps sqlx.DB and provides connection pooling, health checks, and transaction management
type Client struct {
	db      *sqlx.DB
	dialect Dialect
}

// NewClient opens the database selected by cfg.Type.
func NewClient(ctx context.Context, cfg config.DatabaseConfig) (*Client, error) {
	dialect, dsn, err := resolve(cfg)
	if err != nil {
		return nil, err
	}

	client, err := Open(ctx, dialect, dsn)
	if err != nil {
		return nil, err
	}

	db := client.db
	if dialect != SQLite {
		if cfg.MaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			db.SetMaxIdleConns(cfg.MaxIdleConns)
		}
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return client, nil
}

// Open connects with an explicit dialect and DSN and pings the server.
func Open(ctx context.Context, dialect Dialect, dsn string) (*Client, error) {
	db, err := sqlx.ConnectContext(ctx, string(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", dialect, err)
	}

	// A single connection keeps in-memory databases alive and serializes writers.
	if dialect == SQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s: %w", dialect, err)
	}

	return &Client{db: db, dialect: dialect}, nil
}

func resolve(cfg config.DatabaseConfig) (Dialect, string, error) {
	switch cfg.Type {
	case config.DatabasePostgres:
		if cfg.DSN != "" {
			return Postgres, cfg.DSN, nil
		}
		return Postgres, postgresDSN(cfg.Postgres), nil
	case config.DatabaseMySQL:
		if cfg.DSN != "" {
			return MySQL, cfg.DSN, nil
		}
		return MySQL, mysqlDSN(cfg.MySQL), nil
	case config.DatabaseSQLite:
		if cfg.DSN != "" {
			return SQLite, cfg.DSN, nil
		}
		return SQLite, SQLiteDSN(cfg.SQLitePath), nil
	default:
		return "", "", fmt.Errorf("unsupported database type %q", cfg.Type)
	}
}

// postgresDSN builds a key=value connection string.
func postgresDSN(pg config.PostgresConfig) string {
	parts := []string{
		fmt.Sprintf("host=%s", pg.Host),
		fmt.Sprintf("port=%d", pg.Port),
		fmt.Sprintf("dbname=%s", pg.Database),
	}
	if pg.Username != "" {
		parts = append(parts, fmt.Sprintf("user=%s", pg.Username))
	}
	if pg.Password != "" {
		parts = append(parts, fmt.Sprintf("password=%s", pg.Password))
	}
	if pg.SSLMode != "" {
		parts = append(parts, fmt.Sprintf("sslmode=%s", pg.SSLMode))
	}
	return strings.Join(parts, " ")
}

func mysqlDSN(my config.MySQLConfig) string {
	c := mysql.NewConfig()
	c.User = my.Username
	c.Passwd = my.Password
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(my.Host, strconv.Itoa(my.Port))
	c.DBName = my.Database
	c.ParseTime = true
	c.Loc = time.UTC
	// Report matched rather than changed rows so no-op updates are not
	// mistaken for missing rows.
	c.ClientFoundRows = true
	return c.FormatDSN()
}

// SQLiteDSN returns a modernc DSN for path (":memory:" for a private in-memory db).
func SQLiteDSN(path string) string {
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"
}

// DB returns the underlying *sqlx.DB connection
func (c *Client) DB() *sqlx.DB {
	return c.db
}

func (c *Client) Dialect() Dialect {
	return c.dialect
}

// Placeholder is the squirrel placeholder format for the dialect.
func (c *Client) Placeholder() sq.PlaceholderFormat {
	if c.dialect == Postgres {
		return sq.Dollar
	}
	return sq.Question
}

// Builder returns a squirrel statement builder bound to the dialect.
func (c *Client) Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(c.Placeholder())
}

// Ping tests the database connection
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// BeginTxx starts a new transaction with the given context
func (c *Client) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	return c.db.BeginTxx(ctx, opts)
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}

// HealthCheck performs a health check on the database connection
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.Ping(ctx)
}
