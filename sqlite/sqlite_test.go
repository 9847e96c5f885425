package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlbridge/sqlbridge/sqlstmt"
	"github.com/sqlbridge/sqlbridge/sqltype"
)

func usersTable(t *testing.T) *sqlstmt.CreateTable {
	t.Helper()
	id := sqlstmt.NewColumnDef("id", sqltype.Int)
	id.SetNotNull(true)
	stmt, err := sqlstmt.NewCreateTable("users", id, sqlstmt.NewColumnDef("name", sqltype.VarChar(32)))
	require.NoError(t, err)
	return stmt
}

func TestOpen_RunsInitOnFreshFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")

	initRan := false
	db, err := Open(path, func(d *Database) error {
		initRan = true
		return d.Exec(context.Background(), usersTable(t))
	})
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, initRan)
	// The table created by init is usable.
	require.NoError(t, db.ExecSQL(context.Background(), `INSERT INTO "users" ("id") VALUES (1);`))
}

func TestOpen_SkipsInitOnExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")

	db, err := Open(path, func(d *Database) error {
		return d.Exec(context.Background(), usersTable(t))
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	initRan := false
	db, err = Open(path, func(d *Database) error {
		initRan = true
		return nil
	})
	require.NoError(t, err)
	defer db.Close()

	assert.False(t, initRan)
}

func TestOpen_NilInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")

	db, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestOpen_InitFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")

	initErr := errors.New("seed failed")
	_, err := Open(path, func(d *Database) error { return initErr })
	require.ErrorIs(t, err, initErr)
}

func TestOpenPath_YAML(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "app.db")
	cfgPath := filepath.Join(dir, "conn.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("path: "+dbPath+"\n"), 0o644))

	db, err := OpenPath(cfgPath, nil)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestExecSQL_BackendErrorSurfaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")

	db, err := Open(path, nil)
	require.NoError(t, err)
	defer db.Close()

	require.Error(t, db.ExecSQL(context.Background(), "NOT SQL AT ALL;"))
}
