package json

import (
	"bytes"
	"errors"
	"strings"

	"github.com/goccy/go-reflect"

	"github.com/radhikaj/mystikos/marshaler"
	"github.com/radhikaj/mystikos/unmarshaler"
)

func Marshal(data any) ([]byte, error) {
	return marshaler.Instance()(data)
}

// Unmarshal decodes data into dst through the configured unmarshaler.
// Object documents are first validated structurally by the streaming
// parser, so malformed input is rejected with a result-code error before
// any reflection work happens.
func Unmarshal(data []byte, dst any) error {
	if reflect.ValueOf(dst).Kind() != reflect.Ptr {
		return errors.New("dst is not pointer type")
	}
	if t := bytes.TrimSpace(data); len(t) > 0 && t[0] == '{' {
		if r := Validate(data, Options{AllowWhitespace: true}); r != ResultOK {
			return r.Err()
		}
	}
	return unmarshaler.Instance()(data, dst)
}

// Validate runs the streaming parser over a private copy of data with a
// discarding callback. With Options.AllowWhitespace false it acts as a
// canonical/compact-input check.
func Validate(data []byte, options Options) Result {
	if len(data) == 0 {
		return ResultBadParameter
	}
	alloc := HeapAllocator{}
	buf := alloc.Allocate(len(data))
	if buf == nil {
		return ResultOutOfMemory
	}
	defer alloc.Free(buf)
	copy(buf, data)

	discard := func(*Parser, Reason, Value) Result { return ResultOK }
	p, r := NewParser(buf, discard, alloc, options)
	if r != ResultOK {
		return r
	}
	return p.Parse()
}

// Reformat pretty-prints data into a fresh buffer. The input is left
// untouched.
func Reformat(data []byte) ([]byte, error) {
	var out bytes.Buffer
	write := func(b []byte) { out.Write(b) }
	if r := Print(write, data, HeapAllocator{}); r != ResultOK {
		return nil, r.Err()
	}
	return out.Bytes(), nil
}

// Is reports whether s looks like a JSON document: a cheap balanced
// bracket and quote scan, not a full parse.
func Is(s string) bool {
	if len(s) == 0 {
		return false
	}
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return false
	}
	if s[0] != '{' && s[0] != '[' {
		return false
	}
	if s[len(s)-1] != '}' && s[len(s)-1] != ']' {
		return false
	}
	const maxDepth = 1024
	var stack [maxDepth]rune
	sp := 0

	for i := 0; i < len(s); i++ {
		char := s[i]
		switch char {
		case '{', '[':
			if sp >= maxDepth {
				return false
			}
			stack[sp] = rune(char)
			sp++
		case '}', ']':
			if sp == 0 {
				return false
			}
			sp--
			opening := stack[sp]
			if (char == '}' && opening != '{') || (char == ']' && opening != '[') {
				return false
			}
		case '"':
			i++
			for i < len(s) {
				if s[i] == '\\' {
					i++
				} else if s[i] == '"' {
					break
				}
				i++
			}
		}
	}

	return sp == 0
}
