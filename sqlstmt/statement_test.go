package sqlstmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlbridge/sqlbridge/sqltype"
	"github.com/sqlbridge/sqlbridge/sqlvalue"
)

func TestUseDatabase_SQL(t *testing.T) {
	stmt, err := NewUseDatabase("foo")
	require.NoError(t, err)

	got, err := stmt.SQL()
	require.NoError(t, err)
	assert.Equal(t, "USE foo;", got)
}

func TestNewUseDatabase_EmptyName(t *testing.T) {
	_, err := NewUseDatabase("")
	require.ErrorIs(t, err, ErrEmptyName)
}

func TestCreateTable_SQL(t *testing.T) {
	stmt, err := NewCreateTable("foo",
		NewColumnDef("bar", sqltype.IntUnsigned),
		NewColumnDef("baz", sqltype.VarChar(32)),
	)
	require.NoError(t, err)

	got, err := stmt.SQL()
	require.NoError(t, err)
	assert.Equal(t, `CREATE TABLE "foo" ("bar" INT UNSIGNED, "baz" VARCHAR(32));`, got)
}

func TestCreateTable_SQL_SingleColumn(t *testing.T) {
	stmt, err := NewCreateTable("t", NewColumnDef("c", sqltype.Date))
	require.NoError(t, err)

	got, err := stmt.SQL()
	require.NoError(t, err)
	assert.Equal(t, `CREATE TABLE "t" ("c" DATE);`, got)
}

func TestNewCreateTable_EmptyName(t *testing.T) {
	_, err := NewCreateTable("", NewColumnDef("c", sqltype.Int))
	require.ErrorIs(t, err, ErrEmptyName)
}

func TestNewCreateTable_DuplicateColumn(t *testing.T) {
	_, err := NewCreateTable("t",
		NewColumnDef("c", sqltype.Int),
		NewColumnDef("c", sqltype.BigInt),
	)
	require.ErrorIs(t, err, ErrDuplicateColumn)
}

func TestCreateTable_SQL_FullColumnSpec(t *testing.T) {
	id := NewColumnDef("id", sqltype.Int)
	id.SetAutoIncrement(true).SetNotNull(true)

	nick := NewColumnDef("nick", sqltype.VarChar(16))
	require.NoError(t, nick.SetDefault(sqlvalue.String("anon")))

	stmt, err := NewCreateTable("users", id, nick)
	require.NoError(t, err)

	got, err := stmt.SQL()
	require.NoError(t, err)
	assert.Equal(t,
		`CREATE TABLE "users" ("id" INT AUTO_INCREMENT NOT NULL, "nick" VARCHAR(16) DEFAULT "anon");`,
		got)
}

func TestCreateTable_SQL_BlobDefaultPropagates(t *testing.T) {
	payload := NewColumnDef("payload", sqltype.Blob(2))
	require.NoError(t, payload.SetDefault(sqlvalue.Blob([]byte{1, 2})))

	stmt, err := NewCreateTable("t", payload)
	require.NoError(t, err)

	_, err = stmt.SQL()
	require.ErrorIs(t, err, sqlvalue.ErrNotImplemented)
}

func TestStatement_InterfaceDispatch(t *testing.T) {
	use, err := NewUseDatabase("db")
	require.NoError(t, err)
	create, err := NewCreateTable("t", NewColumnDef("c", sqltype.Int))
	require.NoError(t, err)

	for _, stmt := range []Statement{use, create} {
		got, err := stmt.SQL()
		require.NoError(t, err)
		assert.NotEmpty(t, got)
		assert.Equal(t, byte(';'), got[len(got)-1])
	}
}
