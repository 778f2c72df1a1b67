package json

import (
	"strconv"
	"strings"
)

// WriteFunc is the byte-sink capability the printer emits through. The
// destination medium travels by closure capture.
type WriteFunc func(data []byte)

var hexUpper = "0123456789ABCDEF"

func printString(write WriteFunc, s string) {
	write([]byte(`"`))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			write([]byte(`\"`))
		case '\\':
			write([]byte(`\\`))
		case '/':
			write([]byte(`\/`))
		case '\b':
			write([]byte(`\b`))
		case '\f':
			write([]byte(`\f`))
		case '\n':
			write([]byte(`\n`))
		case '\r':
			write([]byte(`\r`))
		case '\t':
			write([]byte(`\t`))
		default:
			if c >= 0x20 && c < 0x7F {
				write([]byte{c})
			} else {
				write([]byte{'\\', 'u', '0', '0', hexUpper[c>>4], hexUpper[c&0x0F]})
			}
		}
	}
	write([]byte(`"`))
}

// formatReal keeps a decimal point or exponent in the rendering so the
// printed form classifies as a real when parsed back.
func formatReal(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// PrintValue renders a single scalar through the sink.
func PrintValue(write WriteFunc, v Value) {
	switch v.typ {
	case TypeNull:
		write([]byte("null"))
	case TypeBoolean:
		if v.b {
			write([]byte("true"))
		} else {
			write([]byte("false"))
		}
	case TypeInteger:
		write([]byte(strconv.FormatInt(v.i, 10)))
	case TypeReal:
		write([]byte(formatReal(v.f)))
	case TypeString:
		printString(write, v.s)
	}
}

// printState is the reference event consumer: it rebuilds formatted text
// with two-space indentation, commas between siblings (suppressed after a
// member name and before a container's first child) and a trailing
// newline once the outermost container closes.
type printState struct {
	depth   int
	newline bool
	comma   bool
	write   WriteFunc
}

func indent(write WriteFunc, depth int) {
	for i := 0; i < depth; i++ {
		write([]byte("  "))
	}
}

func (s *printState) callback(_ *Parser, reason Reason, v Value) Result {
	write := s.write

	if reason != ReasonEndArray && reason != ReasonEndObject && s.comma {
		s.comma = false
		write([]byte(","))
	}

	if reason == ReasonEndObject || reason == ReasonEndArray {
		s.depth--
	}

	if s.newline {
		s.newline = false
		write([]byte("\n"))
		indent(write, s.depth)
	}

	switch reason {
	case ReasonNone:
		// Unreachable.
	case ReasonName:
		name, _ := v.Str()
		printString(write, name)
		write([]byte(": "))
		s.comma = false
	case ReasonBeginObject:
		s.depth++
		s.newline = true
		s.comma = false
		write([]byte("{"))
	case ReasonEndObject:
		s.newline = true
		s.comma = true
		write([]byte("}"))
	case ReasonBeginArray:
		s.depth++
		s.newline = true
		s.comma = false
		write([]byte("["))
	case ReasonEndArray:
		s.newline = true
		s.comma = true
		write([]byte("]"))
	case ReasonValue:
		s.newline = true
		s.comma = true
		PrintValue(write, v)
	}

	if (reason == ReasonEndObject || reason == ReasonEndArray) && s.depth == 0 {
		write([]byte("\n"))
	}

	return ResultOK
}

// Print reformats data through the sink. Parsing mutates its input, so
// the bytes are first copied into a working buffer obtained from the
// allocator and released on every exit path.
func Print(write WriteFunc, data []byte, alloc Allocator) Result {
	if write == nil || len(data) == 0 || alloc == nil {
		return ResultBadParameter
	}

	buf := alloc.Allocate(len(data))
	if buf == nil {
		return ResultOutOfMemory
	}
	defer alloc.Free(buf)
	copy(buf, data)

	state := &printState{write: write}
	p, r := NewParser(buf, state.callback, alloc, Options{AllowWhitespace: true})
	if r != ResultOK {
		return ResultFailed
	}
	if p.Parse() != ResultOK {
		return ResultBadSyntax
	}
	if state.depth != 0 {
		return ResultBadSyntax
	}
	return ResultOK
}
