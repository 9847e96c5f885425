// Package sqlvalue defines the closed set of typed SQL literals. Every value
// reports its natural sqltype.Type and renders itself as SQL literal text.
package sqlvalue

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sqlbridge/sqlbridge/sqltype"
)

// ErrNotImplemented is returned when a literal rendering is reached that the
// serializer does not support yet. Currently only Blob literals hit this.
var ErrNotImplemented = errors.New("sqlvalue: rendering BLOB literals is not implemented")

// Value is a typed SQL literal.
//
// Type is computed from the live payload for String, Blob and Clob, so the
// width parameter always tracks the current contents. Literal returns SQL
// literal syntax; it fails only for kinds that cannot be rendered yet.
type Value interface {
	Type() sqltype.Type
	Literal() (string, error)
}

type (
	Bool bool

	TinyInt  int8
	SmallInt int16
	Int      int32
	BigInt   int64

	TinyIntUnsigned  uint8
	SmallIntUnsigned uint16
	IntUnsigned      uint32
	BigIntUnsigned   uint64

	Float  float32
	Double float64

	// String is a text literal typed as Character(n) with n the number of
	// characters in the payload.
	String string

	// DateTime is an absolute instant, rendered in UTC.
	DateTime time.Time

	// Blob is a binary literal typed as Blob(n) with n the byte count.
	Blob []byte

	// Clob is a large text literal typed as Clob(n) with n the character count.
	Clob string
)

func (v Bool) Type() sqltype.Type { return sqltype.Boolean }

func (v TinyInt) Type() sqltype.Type  { return sqltype.TinyInt }
func (v SmallInt) Type() sqltype.Type { return sqltype.SmallInt }
func (v Int) Type() sqltype.Type      { return sqltype.Int }
func (v BigInt) Type() sqltype.Type   { return sqltype.BigInt }

func (v TinyIntUnsigned) Type() sqltype.Type  { return sqltype.TinyIntUnsigned }
func (v SmallIntUnsigned) Type() sqltype.Type { return sqltype.SmallIntUnsigned }
func (v IntUnsigned) Type() sqltype.Type      { return sqltype.IntUnsigned }
func (v BigIntUnsigned) Type() sqltype.Type   { return sqltype.BigIntUnsigned }

func (v Float) Type() sqltype.Type  { return sqltype.Float(32) }
func (v Double) Type() sqltype.Type { return sqltype.Real }

func (v String) Type() sqltype.Type {
	return sqltype.Character(utf8.RuneCountInString(string(v)))
}

func (v DateTime) Type() sqltype.Type { return sqltype.DateTime }

func (v Blob) Type() sqltype.Type { return sqltype.Blob(len(v)) }

func (v Clob) Type() sqltype.Type {
	return sqltype.Clob(utf8.RuneCountInString(string(v)))
}

// quote renders a double-quoted string literal, doubling any embedded double
// quote so the output stays well-formed.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func (v Bool) Literal() (string, error) {
	if v {
		return "1", nil
	}
	return "0", nil
}

func (v TinyInt) Literal() (string, error)  { return strconv.FormatInt(int64(v), 10), nil }
func (v SmallInt) Literal() (string, error) { return strconv.FormatInt(int64(v), 10), nil }
func (v Int) Literal() (string, error)      { return strconv.FormatInt(int64(v), 10), nil }
func (v BigInt) Literal() (string, error)   { return strconv.FormatInt(int64(v), 10), nil }

func (v TinyIntUnsigned) Literal() (string, error)  { return strconv.FormatUint(uint64(v), 10), nil }
func (v SmallIntUnsigned) Literal() (string, error) { return strconv.FormatUint(uint64(v), 10), nil }
func (v IntUnsigned) Literal() (string, error)      { return strconv.FormatUint(uint64(v), 10), nil }
func (v BigIntUnsigned) Literal() (string, error)   { return strconv.FormatUint(uint64(v), 10), nil }

func (v Float) Literal() (string, error) {
	return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
}

func (v Double) Literal() (string, error) {
	return strconv.FormatFloat(float64(v), 'f', -1, 64), nil
}

func (v String) Literal() (string, error) { return quote(string(v)), nil }

func (v DateTime) Literal() (string, error) {
	return time.Time(v).UTC().Format("2006-01-02 15:04:05"), nil
}

func (v Blob) Literal() (string, error) { return "", ErrNotImplemented }

func (v Clob) Literal() (string, error) { return quote(string(v)), nil }
