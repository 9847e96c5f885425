// Package sqlstmt holds the statement AST: validated column definitions, the
// closed set of supported statements, and their rendering to SQL text.
package sqlstmt

import (
	"strings"

	"github.com/sqlbridge/sqlbridge/sqltype"
	"github.com/sqlbridge/sqlbridge/sqlvalue"
)

// TypeMismatchError is returned by a ColumnDef mutation that would leave the
// default value incompatible with the declared column type.
type TypeMismatchError struct {
	Attempted sqltype.Type
	Required  sqltype.Type
}

func (e *TypeMismatchError) Error() string {
	return "sqlstmt: type " + e.Attempted.SQL() + " is not compatible with " + e.Required.SQL()
}

// ColumnDef specifies one table column. The zero value is not usable; create
// one with NewColumnDef and change it through the setters only, so the
// invariant "the default value's type is compatible with the declared type"
// holds after every mutation.
type ColumnDef struct {
	name          string
	typ           sqltype.Type
	autoIncrement bool
	notNull       bool
	def           sqlvalue.Value // nil when the column has no default
}

// NewColumnDef creates a nullable, non-auto-increment column with no default.
func NewColumnDef(name string, typ sqltype.Type) ColumnDef {
	return ColumnDef{name: name, typ: typ}
}

func (c *ColumnDef) Name() string            { return c.name }
func (c *ColumnDef) Type() sqltype.Type      { return c.typ }
func (c *ColumnDef) AutoIncrement() bool     { return c.autoIncrement }
func (c *ColumnDef) NotNull() bool           { return c.notNull }
func (c *ColumnDef) Default() sqlvalue.Value { return c.def }

// SetName renames the column. Returns the receiver for chaining.
func (c *ColumnDef) SetName(name string) *ColumnDef {
	c.name = name
	return c
}

// SetType changes the declared type. If a default is present, the default's
// type must still be compatible with the new type; otherwise the column is
// left unchanged and a *TypeMismatchError is returned.
func (c *ColumnDef) SetType(typ sqltype.Type) error {
	if c.def != nil {
		if dt := c.def.Type(); !dt.CompatibleWith(typ) {
			return &TypeMismatchError{Attempted: dt, Required: typ}
		}
	}
	c.typ = typ
	return nil
}

// SetAutoIncrement toggles AUTO_INCREMENT. Returns the receiver for chaining.
func (c *ColumnDef) SetAutoIncrement(on bool) *ColumnDef {
	c.autoIncrement = on
	return c
}

// SetNotNull toggles NOT NULL. Returns the receiver for chaining.
func (c *ColumnDef) SetNotNull(on bool) *ColumnDef {
	c.notNull = on
	return c
}

// SetDefault sets the column's default value. The value's type must be
// compatible with the declared column type; otherwise the column is left
// unchanged and a *TypeMismatchError is returned.
func (c *ColumnDef) SetDefault(v sqlvalue.Value) error {
	if vt := v.Type(); !vt.CompatibleWith(c.typ) {
		return &TypeMismatchError{Attempted: vt, Required: c.typ}
	}
	c.def = v
	return nil
}

// ClearDefault removes the default value. Returns the receiver for chaining.
func (c *ColumnDef) ClearDefault() *ColumnDef {
	c.def = nil
	return c
}

// SQL renders the column specification: double-quoted name, type, then
// AUTO_INCREMENT, NOT NULL and DEFAULT in that fixed order. The only possible
// error is sqlvalue.ErrNotImplemented from an unrenderable default literal.
func (c *ColumnDef) SQL() (string, error) {
	var b strings.Builder
	b.WriteString(`"` + strings.ReplaceAll(c.name, `"`, `""`) + `" `)
	b.WriteString(c.typ.SQL())
	if c.autoIncrement {
		b.WriteString(" AUTO_INCREMENT")
	}
	if c.notNull {
		b.WriteString(" NOT NULL")
	}
	if c.def != nil {
		lit, err := c.def.Literal()
		if err != nil {
			return "", err
		}
		b.WriteString(" DEFAULT " + lit)
	}
	return b.String(), nil
}
