// Package mysql implements a MySQL-backed connection for executing rendered
// sqlbridge statements. Pooling is handled by database/sql.
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	// MySQL driver registration.
	_ "github.com/go-sql-driver/mysql"

	"github.com/sqlbridge/sqlbridge/internal/configfile"
	"github.com/sqlbridge/sqlbridge/sqlstmt"
)

// DefaultPort is used when a config file does not name a port.
const DefaultPort = 3306

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

// Database is a pooled connection to one MySQL database.
type Database struct {
	db *sql.DB
}

func dsn(host string, port int, database string, creds Credentials) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		creds.Username, creds.Password, host, port, database)
}

// Open creates a connection pool for the given endpoint. The server is not
// contacted until the first statement; use Ping to fail fast.
func Open(host string, port int, database string, creds Credentials) (*Database, error) {
	slog.Info("opening MySQL connection pool", "host", host, "port", port, "database", database)
	db, err := sql.Open("mysql", dsn(host, port, database, creds))
	if err != nil {
		return nil, fmt.Errorf("mysql: open pool to %s:%d/%s: %w", host, port, database, err)
	}
	return &Database{db: db}, nil
}

// OpenPath reads a Config from the given file and opens a pool with it.
func OpenPath(path string) (*Database, error) {
	var cfg Config
	if err := configfile.Load(path, map[string]any{"port": DefaultPort}, &cfg); err != nil {
		return nil, fmt.Errorf("mysql: %w", err)
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
		return fmt.Errorf("mysql: exec: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (d *Database) Close() error {
	return d.db.Close()
}
