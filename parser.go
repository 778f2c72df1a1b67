package json

import "strconv"

// MaxNesting is the static bound on concurrently open objects and arrays.
const MaxNesting = 64

// notNumber marks a path entry whose name is not a decimal literal.
const notNumber = ^uint64(0)

// pathEntry records the state of one active nesting level: the current
// member name (or, for an array level, the decimal rendering of the
// element index being visited), the numeric interpretation of that name
// when it has one, and the array position and total element count.
type pathEntry struct {
	name   string
	number uint64
	index  int
	size   int
	array  bool
}

// Options controls parsing behavior. With AllowWhitespace false any
// whitespace between tokens is rejected, which turns the parser into a
// canonical/compact-input validator.
type Options struct {
	AllowWhitespace bool
}

// Callback receives one notification per recognized syntactic unit. Any
// non-OK return aborts the parse and is handed back to the caller
// unchanged. Consumer state travels by closure capture.
type Callback func(p *Parser, reason Reason, v Value) Result

// Parser drives a single recursive-descent pass over a mutable buffer,
// decoding strings in place and reporting each unit through the callback.
// One instance parses one buffer once; it is not safe for concurrent use.
type Parser struct {
	buf      []byte
	pos      int
	end      int
	depth    int
	path     [MaxNesting]pathEntry
	scan     bool
	callback Callback
	alloc    Allocator
	trace    TraceFunc
	options  Options
}

// NewParser borrows data for the duration of one parse. The buffer is
// mutated in place as strings decode, so callers needing the original
// bytes must pass a copy. A nil or empty buffer, nil callback or nil
// allocator is a contract violation.
func NewParser(data []byte, callback Callback, alloc Allocator, options Options) (*Parser, Result) {
	if len(data) == 0 || callback == nil || alloc == nil {
		return nil, ResultBadParameter
	}
	return &Parser{
		buf:      data,
		end:      len(data),
		callback: callback,
		alloc:    alloc,
		options:  options,
	}, ResultOK
}

// SetTrace installs an instance-scoped trace hook. It must be set before
// Parse is called.
func (p *Parser) SetTrace(trace TraceFunc) { p.trace = trace }

// Depth reports the number of currently open objects and arrays.
func (p *Parser) Depth() int { return p.depth }

// Parse consumes the whole buffer, which must hold a single object at the
// document root, and drives the callback to completion or first error.
func (p *Parser) Parse() Result {
	if p.buf == nil {
		return ResultBadParameter
	}
	if r := p.skipSpace(); r != ResultOK {
		return p.raise(r)
	}
	if p.pos == p.end {
		return p.raise(ResultEOF)
	}
	if p.buf[p.pos] != '{' {
		return p.raise(ResultBadSyntax)
	}
	p.pos++
	return p.raise(p.getObject())
}

func (p *Parser) emit(reason Reason, v Value) Result {
	if p.scan {
		return ResultOK
	}
	return p.callback(p, reason, v)
}

// skipSpace advances past whitespace and // line comments. Whitespace is
// itself a syntax error when the options disallow it.
func (p *Parser) skipSpace() Result {
	for {
		for p.pos < p.end && isSpace(p.buf[p.pos]) {
			if !p.options.AllowWhitespace {
				return ResultBadSyntax
			}
			p.pos++
		}
		if p.end-p.pos >= 2 && p.buf[p.pos] == '/' && p.buf[p.pos+1] == '/' {
			for p.pos < p.end && p.buf[p.pos] != '\n' && p.buf[p.pos] != '\r' {
				p.pos++
			}
			continue
		}
		return ResultOK
	}
}

func (p *Parser) expect(s string) bool {
	if p.end-p.pos >= len(s) && b2s(p.buf[p.pos:p.pos+len(s)]) == s {
		p.pos += len(s)
		return true
	}
	return false
}

// object = begin-object [ member *( value-separator member ) ] end-object
func (p *Parser) getObject() Result {
	if r := p.emit(ReasonBeginObject, NullValue()); r != ResultOK {
		return p.raise(r)
	}
	if p.depth == MaxNesting {
		return p.raise(ResultNestingOverflow)
	}
	p.depth++

	for {
		if r := p.skipSpace(); r != ResultOK {
			return p.raise(r)
		}
		if p.pos == p.end {
			return p.raise(ResultEOF)
		}
		c := p.buf[p.pos]
		p.pos++
		if c == '}' {
			break
		}
		if c == ',' {
			continue
		}
		if c != '"' {
			return p.raise(ResultBadSyntax)
		}
		if r := p.getMember(); r != ResultOK {
			return p.raise(r)
		}
	}

	if p.depth == 0 {
		return p.raise(ResultNestingUnderflow)
	}
	if r := p.emit(ReasonEndObject, NullValue()); r != ResultOK {
		return p.raise(r)
	}
	p.depth--
	return ResultOK
}

// member = string name-separator value
func (p *Parser) getMember() Result {
	name, r := p.getString()
	if r != ResultOK {
		return p.raise(r)
	}

	if !p.scan {
		entry := pathEntry{name: name, number: notNumber}
		if n, err := strconv.ParseUint(name, 10, 64); err == nil {
			entry.number = n
		}
		p.path[p.depth-1] = entry
	}

	if r := p.emit(ReasonName, StringValue(name)); r != ResultOK {
		return p.raise(r)
	}

	if r := p.skipSpace(); r != ResultOK {
		return p.raise(r)
	}
	if p.pos == p.end {
		return p.raise(ResultEOF)
	}
	if p.buf[p.pos] != ':' {
		return p.raise(ResultBadSyntax)
	}
	p.pos++

	return p.raise(p.getValue())
}

// value = false / null / true / object / array / number / string
func (p *Parser) getValue() Result {
	if r := p.skipSpace(); r != ResultOK {
		return p.raise(r)
	}
	if p.pos == p.end {
		return p.raise(ResultEOF)
	}
	c := p.buf[p.pos]
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	p.pos++

	switch c {
	case 'f':
		if !p.expect("alse") {
			return p.raise(ResultBadSyntax)
		}
		if r := p.emit(ReasonValue, BooleanValue(false)); r != ResultOK {
			return p.raise(r)
		}
	case 'n':
		if !p.expect("ull") {
			return p.raise(ResultBadSyntax)
		}
		if r := p.emit(ReasonValue, NullValue()); r != ResultOK {
			return p.raise(r)
		}
	case 't':
		if !p.expect("rue") {
			return p.raise(ResultBadSyntax)
		}
		if r := p.emit(ReasonValue, BooleanValue(true)); r != ResultOK {
			return p.raise(r)
		}
	case '{':
		return p.raise(p.getObject())
	case '[':
		return p.raise(p.getArray())
	case '"':
		s, r := p.getString()
		if r != ResultOK {
			return p.raise(r)
		}
		if r := p.emit(ReasonValue, StringValue(s)); r != ResultOK {
			return p.raise(r)
		}
	default:
		p.pos--
		v, r := p.getNumber()
		if r != ResultOK {
			return p.raise(ResultBadSyntax)
		}
		if r := p.emit(ReasonValue, v); r != ResultOK {
			return p.raise(r)
		}
	}
	return ResultOK
}

// getArray sizes the array with a side-effect-free lookahead over the
// same span, attaches the count to the begin event, then replays the span
// for real. Lookahead failures surface uniformly as a syntax error so
// that detail from a speculative pass never leaks.
func (p *Parser) getArray() Result {
	if p.depth == MaxNesting {
		return p.raise(ResultNestingOverflow)
	}

	size := 0
	scanner := *p
	scanner.scan = true
	scanner.pushArray(0)
	if scanner.getArrayBody(&size) != ResultOK {
		return p.raise(ResultBadSyntax)
	}

	if r := p.emit(ReasonBeginArray, IntegerValue(int64(size))); r != ResultOK {
		return p.raise(r)
	}
	p.pushArray(size)

	if r := p.getArrayBody(nil); r != ResultOK {
		return p.raise(r)
	}

	if p.depth == 0 {
		return p.raise(ResultNestingUnderflow)
	}
	if r := p.emit(ReasonEndArray, IntegerValue(int64(size))); r != ResultOK {
		return p.raise(r)
	}
	p.depth--
	return ResultOK
}

func (p *Parser) pushArray(size int) {
	p.depth++
	p.path[p.depth-1] = pathEntry{number: notNumber, size: size, array: true}
}

// array = begin-array [ value *( value-separator value ) ] end-array
// The leading '[' has already been consumed; the array's own path level
// is live at depth-1 and tracks the element being visited.
func (p *Parser) getArrayBody(size *int) Result {
	index := 0
	for {
		if r := p.skipSpace(); r != ResultOK {
			return p.raise(r)
		}
		if p.pos == p.end {
			return p.raise(ResultEOF)
		}
		c := p.buf[p.pos]
		p.pos++
		if c == ',' {
			continue
		}
		if c == ']' {
			return ResultOK
		}
		p.pos--

		entry := &p.path[p.depth-1]
		entry.index = index
		if !p.scan {
			entry.name = strconv.Itoa(index)
			entry.number = uint64(index)
		}
		index++

		if r := p.getValue(); r != ResultOK {
			return p.raise(r)
		}
		if size != nil {
			*size++
		}
	}
}
