// Package sqlbridge builds typed SQL statements and hands their rendered text
// to a backend connection (see the mysql, postgres and sqlite packages).
//
// The core is a small, closed type system: sqltype enumerates column types
// and decides which trivial casts are allowed, sqlvalue pairs runtime
// literals with their natural types, and sqlstmt assembles validated column
// definitions into CREATE TABLE / USE statements that serialize
// deterministically.
package sqlbridge

import (
	"github.com/sqlbridge/sqlbridge/sqlstmt"
	"github.com/sqlbridge/sqlbridge/sqltype"
	"github.com/sqlbridge/sqlbridge/sqlvalue"
)

type (
	Type      = sqltype.Type
	Value     = sqlvalue.Value
	ColumnDef = sqlstmt.ColumnDef
	Statement = sqlstmt.Statement
)

var (
	NewColumnDef   = sqlstmt.NewColumnDef
	NewCreateTable = sqlstmt.NewCreateTable
	NewUseDatabase = sqlstmt.NewUseDatabase
)
