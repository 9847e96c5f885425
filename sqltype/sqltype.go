// Package sqltype defines the closed catalog of SQL column types used across
// sqlbridge, the directed compatibility relation between them, and their
// canonical SQL spellings.
package sqltype

import "strconv"

// Kind discriminates the members of the type catalog.
type Kind uint8

const (
	KindBoolean Kind = iota + 1
	KindTinyInt
	KindSmallInt
	KindInt
	KindBigInt
	KindTinyIntUnsigned
	KindSmallIntUnsigned
	KindIntUnsigned
	KindBigIntUnsigned
	KindFloat
	KindReal
	KindCharacter
	KindVarChar
	KindDate
	KindTime
	KindDateTime
	KindBlob
	KindClob
)

// Type is one member of the catalog. N carries the width parameter for
// Float (bit precision), Character/VarChar/Clob (character count) and Blob
// (byte count); it is zero for every other kind. Types are plain values and
// compare structurally with ==.
type Type struct {
	Kind Kind
	N    int
}

// Parameterless types.
var (
	Boolean = Type{Kind: KindBoolean}

	TinyInt  = Type{Kind: KindTinyInt}
	SmallInt = Type{Kind: KindSmallInt}
	Int      = Type{Kind: KindInt}
	BigInt   = Type{Kind: KindBigInt}

	TinyIntUnsigned  = Type{Kind: KindTinyIntUnsigned}
	SmallIntUnsigned = Type{Kind: KindSmallIntUnsigned}
	IntUnsigned      = Type{Kind: KindIntUnsigned}
	BigIntUnsigned   = Type{Kind: KindBigIntUnsigned}

	Real = Type{Kind: KindReal}

	Date     = Type{Kind: KindDate}
	Time     = Type{Kind: KindTime}
	DateTime = Type{Kind: KindDateTime}
)

// Float is a floating point number with the given bit precision.
func Float(precision int) Type { return Type{Kind: KindFloat, N: precision} }

// Character is a fixed-width string of at most n characters.
func Character(n int) Type { return Type{Kind: KindCharacter, N: n} }

// VarChar is a variable-width string of at most n characters.
func VarChar(n int) Type { return Type{Kind: KindVarChar, N: n} }

// Blob is a large binary object of n bytes.
func Blob(n int) Type { return Type{Kind: KindBlob, N: n} }

// Clob is a large character object of n characters.
func Clob(n int) Type { return Type{Kind: KindClob, N: n} }

// SQL returns the canonical SQL spelling of the type. The mapping is total;
// every catalog member has exactly one uppercase rendering.
func (t Type) SQL() string {
	switch t.Kind {
	case KindBoolean:
		return "BOOLEAN"
	case KindTinyInt:
		return "TINYINT"
	case KindSmallInt:
		return "SMALLINT"
	case KindInt:
		return "INT"
	case KindBigInt:
		return "BIGINT"
	case KindTinyIntUnsigned:
		return "TINYINT UNSIGNED"
	case KindSmallIntUnsigned:
		return "SMALLINT UNSIGNED"
	case KindIntUnsigned:
		return "INT UNSIGNED"
	case KindBigIntUnsigned:
		return "BIGINT UNSIGNED"
	case KindFloat:
		return "FLOAT(" + strconv.Itoa(t.N) + ")"
	case KindReal:
		return "REAL"
	case KindCharacter:
		return "CHAR(" + strconv.Itoa(t.N) + ")"
	case KindVarChar:
		return "VARCHAR(" + strconv.Itoa(t.N) + ")"
	case KindDate:
		return "DATE"
	case KindTime:
		return "TIME"
	case KindDateTime:
		return "TIMESTAMP"
	case KindBlob:
		return "BLOB(" + strconv.Itoa(t.N) + ")"
	case KindClob:
		return "CLOB(" + strconv.Itoa(t.N) + ")"
	default:
		return "UNKNOWN"
	}
}

// String implements fmt.Stringer using the SQL spelling.
func (t Type) String() string { return t.SQL() }
