package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseScalar parses {"k":<literal>} and returns the single value event.
func parseScalar(t *testing.T, literal string) (Value, Result) {
	t.Helper()
	var got Value
	cb := func(p *Parser, reason Reason, v Value) Result {
		if reason == ReasonValue {
			got = v
		}
		return ResultOK
	}
	p, r := NewParser([]byte(`{"k":`+literal+`}`), cb, HeapAllocator{}, Options{})
	require.Equal(t, ResultOK, r)
	return got, p.Parse()
}

func TestStringEscapes(t *testing.T) {
	v, r := parseScalar(t, `"\n\t\\\"\/"`)
	require.Equal(t, ResultOK, r)
	s, sr := v.Str()
	require.Equal(t, ResultOK, sr)
	assert.Equal(t, "\n\t\\\"/", s)

	v, r = parseScalar(t, `"\b\f\r"`)
	require.Equal(t, ResultOK, r)
	s, _ = v.Str()
	assert.Equal(t, "\b\f\r", s)
}

// uescape builds the six-byte backslash-u-XXXX escape from its hex
// digits, so the backslash reaches the lexer as a byte rather than being
// interpreted by the source tooling.
func uescape(hex string) string {
	return string(append([]byte{0x5C, 'u'}, hex...))
}

func TestUnicodeEscape(t *testing.T) {
	v, r := parseScalar(t, `"`+uescape("0041")+`"`)
	require.Equal(t, ResultOK, r)
	s, _ := v.Str()
	assert.Equal(t, "A", s)

	v, r = parseScalar(t, `"x`+uescape("00e9")+`y"`)
	require.Equal(t, ResultOK, r)
	s, _ = v.Str()
	assert.Equal(t, "x\xe9y", s)
}

func TestUnicodeEscapeUnsupported(t *testing.T) {
	_, r := parseScalar(t, `"`+uescape("0100")+`"`)
	assert.Equal(t, ResultUnsupported, r)
}

func TestUnicodeEscapeBadHex(t *testing.T) {
	_, r := parseScalar(t, `"`+uescape("00zz")+`"`)
	assert.Equal(t, ResultBadSyntax, r)
}

func TestUnknownEscape(t *testing.T) {
	_, r := parseScalar(t, `"\x"`)
	assert.Equal(t, ResultFailed, r)
}

// Escapes inside arrays decode once: the sizing lookahead must not touch
// the buffer, or the real pass would see already-decoded bytes.
func TestEscapeInsideArrayDecodesOnce(t *testing.T) {
	var got []string
	cb := func(p *Parser, reason Reason, v Value) Result {
		if reason == ReasonValue {
			s, _ := v.Str()
			got = append(got, s)
		}
		return ResultOK
	}
	p, r := NewParser([]byte(`{"a":["A\\n","\t"]}`), cb, HeapAllocator{}, Options{})
	require.Equal(t, ResultOK, r)
	require.Equal(t, ResultOK, p.Parse())
	require.Equal(t, []string{`A\n`, "\t"}, got)
}

func TestNumberClassification(t *testing.T) {
	v, r := parseScalar(t, `123`)
	require.Equal(t, ResultOK, r)
	require.Equal(t, TypeInteger, v.Type())
	n, _ := v.Integer()
	assert.Equal(t, int64(123), n)

	v, r = parseScalar(t, `123.0`)
	require.Equal(t, ResultOK, r)
	assert.Equal(t, TypeReal, v.Type())

	v, r = parseScalar(t, `1e3`)
	require.Equal(t, ResultOK, r)
	require.Equal(t, TypeReal, v.Type())
	f, _ := v.Real()
	assert.Equal(t, 1000.0, f)
}

func TestNumberMinInt64(t *testing.T) {
	v, r := parseScalar(t, `-9223372036854775808`)
	require.Equal(t, ResultOK, r)
	n, nr := v.Integer()
	require.Equal(t, ResultOK, nr)
	assert.Equal(t, int64(-9223372036854775808), n)
}

func TestNumberBadSyntax(t *testing.T) {
	for _, literal := range []string{
		`--1`,
		`1.2.3`,
		`9223372036854775808`,
		`-`,
	} {
		_, r := parseScalar(t, literal)
		assert.Equal(t, ResultBadSyntax, r, "literal %q", literal)
	}
}

func TestUnterminatedString(t *testing.T) {
	_, r := parseScalar(t, `"abc`)
	assert.Equal(t, ResultEOF, r)

	_, r = parseScalar(t, `"abc\`)
	assert.Equal(t, ResultEOF, r)

	_, r = parseScalar(t, `"abc\u00`)
	assert.Equal(t, ResultEOF, r)
}

func TestValueAccessorMismatch(t *testing.T) {
	v := IntegerValue(7)
	_, r := v.Str()
	assert.Equal(t, ResultTypeMismatch, r)
	_, r = v.Bool()
	assert.Equal(t, ResultTypeMismatch, r)
	_, r = v.Real()
	assert.Equal(t, ResultTypeMismatch, r)
}

func TestValueTime(t *testing.T) {
	ts, r := StringValue("2021-08-09T10:11:12Z").Time()
	require.Equal(t, ResultOK, r)
	assert.Equal(t, 2021, ts.Year())

	_, r = StringValue("not a date").Time()
	assert.Equal(t, ResultTypeMismatch, r)

	_, r = IntegerValue(5).Time()
	assert.Equal(t, ResultTypeMismatch, r)
}
