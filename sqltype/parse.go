package sqltype

import "strings"

// UnknownTypeError is returned when Parse does not recognize a spelling.
type UnknownTypeError struct {
	Raw string
}

func (e *UnknownTypeError) Error() string {
	return "sqltype: unknown SQL column type '" + e.Raw + "'"
}

// Legacy is the historical 2-type vocabulary kept for ad-hoc column
// definitions. It is a view over the full catalog, not a second one.
var Legacy = []Type{TinyInt, IntUnsigned}

// spellings maps lowercased fixed spellings back to catalog members.
// Parameterized types (FLOAT, CHAR, VARCHAR, BLOB, CLOB) have no fixed
// spelling and are not parseable.
var spellings = map[string]Type{
	"boolean":           Boolean,
	"tinyint":           TinyInt,
	"smallint":          SmallInt,
	"int":               Int,
	"bigint":            BigInt,
	"tinyint unsigned":  TinyIntUnsigned,
	"smallint unsigned": SmallIntUnsigned,
	"int unsigned":      IntUnsigned,
	"bigint unsigned":   BigIntUnsigned,
	"real":              Real,
	"date":              Date,
	"time":              Time,
	"timestamp":         DateTime,
}

// Parse resolves a textual type identifier, case-insensitively, to a catalog
// member. Unrecognized input yields an *UnknownTypeError.
func Parse(s string) (Type, error) {
	t, ok := spellings[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Type{}, &UnknownTypeError{Raw: s}
	}
	return t, nil
}
