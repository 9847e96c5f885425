package sqlstmt

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyName       = errors.New("sqlstmt: name must not be empty")
	ErrDuplicateColumn = errors.New("sqlstmt: duplicate column name")
)

// Statement is the root interface for all SQL statements. Rendering produces
// a single terminated statement with no trailing newline.
type Statement interface {
	stmtNode()
	SQL() (string, error)
}

// CreateTable creates a table with an ordered list of columns.
type CreateTable struct {
	Name    string
	Columns []ColumnDef
}

func (*CreateTable) stmtNode() {}

// NewCreateTable builds a CREATE TABLE statement. The table name must be
// non-empty and column names must be unique.
func NewCreateTable(name string, columns ...ColumnDef) (*CreateTable, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		if _, dup := seen[col.name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, col.name)
		}
		seen[col.name] = struct{}{}
	}
	return &CreateTable{Name: name, Columns: columns}, nil
}

// SQL renders `CREATE TABLE "{name}" (col, col, ...);`.
func (s *CreateTable) SQL() (string, error) {
	cols := make([]string, len(s.Columns))
	for i := range s.Columns {
		spec, err := s.Columns[i].SQL()
		if err != nil {
			return "", err
		}
		cols[i] = spec
	}
	name := strings.ReplaceAll(s.Name, `"`, `""`)
	return `CREATE TABLE "` + name + `" (` + strings.Join(cols, ", ") + `);`, nil
}

// UseDatabase switches the active database.
type UseDatabase struct {
	Name string
}

func (*UseDatabase) stmtNode() {}

// NewUseDatabase builds a USE statement for a non-empty database name.
func NewUseDatabase(name string) (*UseDatabase, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &UseDatabase{Name: name}, nil
}

// SQL renders `USE {name};`.
func (s *UseDatabase) SQL() (string, error) {
	return "USE " + s.Name + ";", nil
}
