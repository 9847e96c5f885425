// Package sqlite implements a file-backed SQLite connection for executing
// rendered sqlbridge statements.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	// SQLite driver registration (pure-Go build).
	_ "modernc.org/sqlite"

	"github.com/sqlbridge/sqlbridge/internal/configfile"
	"github.com/sqlbridge/sqlbridge/sqlstmt"
)

// Config mirrors the on-disk connection config (JSON, YAML or TOML).
type Config struct {
	Path string `mapstructure:"path"`
}

// InitFunc seeds a database file that did not exist before Open.
type InitFunc func(*Database) error

// Database is a connection to one SQLite database file.
type Database struct {
	db *sql.DB
}

// Open opens (or creates) the database file at path. When the file did not
// previously exist, init is run once against the fresh database; a nil init
// is skipped. If init fails the file is left behind for inspection.
func Open(path string, init InitFunc) (*Database, error) {
	slog.Info("opening SQLite database", "path", path)

	_, statErr := os.Stat(path)
	fresh := os.IsNotExist(statErr)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}
	d := &Database{db: db}

	if fresh && init != nil {
		slog.Debug("initializing fresh database file", "path", path)
		if err := init(d); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite: initialize %q: %w", path, err)
		}
	}
	return d, nil
}

// OpenPath reads a Config from the given file and opens the database it
// names.
func OpenPath(cfgPath string, init InitFunc) (*Database, error) {
	var cfg Config
	if err := configfile.Load(cfgPath, nil, &cfg); err != nil {
		return nil, fmt.Errorf("sqlite: %w", err)
	}
	return Open(cfg.Path, init)
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
		return fmt.Errorf("sqlite: exec: %w", err)
	}
	return nil
}

// Close releases the underlying connection.
func (d *Database) Close() error {
	return d.db.Close()
}
