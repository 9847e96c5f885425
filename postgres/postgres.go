// Package postgres implements a PostgreSQL-backed connection for executing
// rendered sqlbridge statements, using the pgx driver through database/sql.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"

	// pgx driver registration for database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/sqlbridge/sqlbridge/internal/configfile"
	"github.com/sqlbridge/sqlbridge/sqlstmt"
)

// DefaultPort is used when a config file does not name a port.
const DefaultPort = 5432

// Credentials authenticate a connection. Only username/password pairs are
// supported.
type Credentials struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// Config mirrors the on-disk connection config (JSON, YAML or TOML).
type Config struct {
	Host        string      `mapstructure:"host"`
	Port        int         `mapstructure:"port"`
	Database    string      `mapstructure:"database"`
	Credentials Credentials `mapstructure:"credentials"`
}

// Database is a pooled connection to one PostgreSQL database.
type Database struct {
	db *sql.DB
}

func dsn(host string, port int, database string, creds Credentials) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(creds.Username, creds.Password),
		Host:   fmt.Sprintf("%s:%d", host, port),
		Path:   "/" + database,
	}
	return u.String()
}

// Open creates a connection pool for the given endpoint. The server is not
// contacted until the first statement; use Ping to fail fast.
func Open(host string, port int, database string, creds Credentials) (*Database, error) {
	slog.Info("opening PostgreSQL connection pool", "host", host, "port", port, "database", database)
	db, err := sql.Open("pgx", dsn(host, port, database, creds))
	if err != nil {
		return nil, fmt.Errorf("postgres: open pool to %s:%d/%s: %w", host, port, database, err)
	}
	return &Database{db: db}, nil
}

// OpenPath reads a Config from the given file and opens a pool with it.
func OpenPath(path string) (*Database, error) {
	var cfg Config
	if err := configfile.Load(path, map[string]any{"port": DefaultPort}, &cfg); err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}
	return Open(cfg.Host, cfg.Port, cfg.Database, cfg.Credentials)
}

// Ping verifies the pool can reach the server.
func (d *Database) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// Exec renders the statement and executes it.
func (d *Database) Exec(ctx context.Context, stmt sqlstmt.Statement) error {
	text, err := stmt.SQL()
	if err != nil {
		return err
	}
	return d.ExecSQL(ctx, text)
}

// ExecSQL executes already-rendered SQL text.
func (d *Database) ExecSQL(ctx context.Context, query string) error {
	slog.Debug("executing statement", "sql", query)
	if _, err := d.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("postgres: exec: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (d *Database) Close() error {
	return d.db.Close()
}
