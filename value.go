package json

import (
	"time"

	"github.com/oarkflow/date"
)

// Type identifies the kind of a parsed value.
type Type int

const (
	TypeNull Type = iota
	TypeBoolean
	TypeInteger
	TypeReal
	TypeString
)

// Reason is the kind of structural notification delivered to a callback.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonBeginObject
	ReasonEndObject
	ReasonBeginArray
	ReasonEndArray
	ReasonName
	ReasonValue
)

// Value is a tagged union over the scalar kinds the parser produces.
// String values alias the parse buffer and are only valid while the
// buffer is alive and unparsed regions remain untouched.
type Value struct {
	typ Type
	b   bool
	i   int64
	f   float64
	s   string
}

func NullValue() Value           { return Value{} }
func BooleanValue(b bool) Value  { return Value{typ: TypeBoolean, b: b} }
func IntegerValue(i int64) Value { return Value{typ: TypeInteger, i: i} }
func RealValue(f float64) Value  { return Value{typ: TypeReal, f: f} }
func StringValue(s string) Value { return Value{typ: TypeString, s: s} }

func (v Value) Type() Type { return v.typ }

func (v Value) Bool() (bool, Result) {
	if v.typ != TypeBoolean {
		return false, ResultTypeMismatch
	}
	return v.b, ResultOK
}

func (v Value) Integer() (int64, Result) {
	if v.typ != TypeInteger {
		return 0, ResultTypeMismatch
	}
	return v.i, ResultOK
}

func (v Value) Real() (float64, Result) {
	if v.typ != TypeReal {
		return 0, ResultTypeMismatch
	}
	return v.f, ResultOK
}

func (v Value) Str() (string, Result) {
	if v.typ != TypeString {
		return "", ResultTypeMismatch
	}
	return v.s, ResultOK
}

// Time coerces a string value into a time.Time. Any non-string value or
// unparseable date reports a type mismatch.
func (v Value) Time() (time.Time, Result) {
	if v.typ != TypeString {
		return time.Time{}, ResultTypeMismatch
	}
	t, err := date.Parse(v.s)
	if err != nil {
		return time.Time{}, ResultTypeMismatch
	}
	return t, ResultOK
}
