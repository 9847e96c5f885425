package mysql

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	got := dsn("db.example.com", 3306, "app", Credentials{Username: "u", Password: "p"})
	assert.Equal(t, "u:p@tcp(db.example.com:3306)/app?parseTime=true", got)
}

func TestOpen_DoesNotDial(t *testing.T) {
	// sql.Open only validates the DSN; no server is needed.
	db, err := Open("127.0.0.1", 3306, "app", Credentials{Username: "u", Password: "p"})
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestOpenPath_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conn.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"host": "127.0.0.1",
		"database": "app",
		"credentials": {"username": "u", "password": "p"}
	}`), 0o644))

	db, err := OpenPath(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestOpenPath_YAMLWithDefaultPort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conn.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"host: 127.0.0.1\ndatabase: app\ncredentials:\n  username: u\n  password: p\n",
	), 0o644))

	db, err := OpenPath(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestOpenPath_UnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conn.ini")
	require.NoError(t, os.WriteFile(path, []byte("host=h\n"), 0o644))

	_, err := OpenPath(path)
	require.Error(t, err)
}
