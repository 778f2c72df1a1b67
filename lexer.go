package json

import "strconv"

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isNumberChar(c byte) bool {
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == 'e' || c == 'E' || c == '.'
}

func isDecimalOrExponent(c byte) bool {
	return c == '.' || c == 'e' || c == 'E'
}

func nibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0xFF
}

func hex4(s []byte) (uint32, bool) {
	n0 := nibble(s[0])
	n1 := nibble(s[1])
	n2 := nibble(s[2])
	n3 := nibble(s[3])
	if (n0|n1|n2|n3)&0xF0 != 0 {
		return 0, false
	}
	return uint32(n0)<<12 | uint32(n1)<<8 | uint32(n2)<<4 | uint32(n3), true
}

// getString consumes a string body starting just past the opening quote
// and ending at the matching unescaped closing quote. On a real pass the
// recognized escapes are decoded in place: every decoded form is no longer
// than its encoded form, so the tail compacts leftward over bytes already
// scanned and the returned span aliases the buffer. A scan pass only
// advances the cursor and leaves the buffer untouched.
func (p *Parser) getString() (string, Result) {
	start := p.pos
	i := start
	escaped := false

	for i < p.end && p.buf[i] != '"' {
		if p.buf[i] == '\\' {
			escaped = true
			i++
			if i == p.end {
				return "", ResultEOF
			}
			if p.buf[i] == 'u' {
				if p.end-i-1 < 4 {
					return "", ResultEOF
				}
				i += 4
			}
		}
		i++
	}
	if i == p.end {
		return "", ResultEOF
	}
	p.pos = i + 1

	if p.scan || !escaped {
		return b2s(p.buf[start:i]), ResultOK
	}

	w := start
	for r := start; r < i; r++ {
		c := p.buf[r]
		if c != '\\' {
			p.buf[w] = c
			w++
			continue
		}
		r++
		switch p.buf[r] {
		case '"', '\\', '/':
			p.buf[w] = p.buf[r]
		case 'b':
			p.buf[w] = '\b'
		case 'f':
			p.buf[w] = '\f'
		case 'n':
			p.buf[w] = '\n'
		case 'r':
			p.buf[w] = '\r'
		case 't':
			p.buf[w] = '\t'
		case 'u':
			x, ok := hex4(p.buf[r+1 : r+5])
			if !ok {
				return "", ResultBadSyntax
			}
			if x >= 256 {
				// Multi-byte code points are not decoded.
				return "", ResultUnsupported
			}
			p.buf[w] = byte(x)
			r += 4
		default:
			return "", ResultFailed
		}
		w++
	}
	return b2s(p.buf[start:w]), ResultOK
}

// getNumber greedily consumes the longest run of number characters and
// converts the span: int64 when neither a decimal point nor an exponent
// appeared, float64 otherwise. The conversion must accept the exact span,
// which rejects runs like "12x" truncated by the scan.
func (p *Parser) getNumber() (Value, Result) {
	start := p.pos
	isInteger := true

	for p.pos < p.end && isNumberChar(p.buf[p.pos]) {
		if isDecimalOrExponent(p.buf[p.pos]) {
			isInteger = false
		}
		p.pos++
	}

	span := b2s(p.buf[start:p.pos])
	if span == "" {
		return Value{}, ResultBadSyntax
	}
	if isInteger {
		n, err := strconv.ParseInt(span, 10, 64)
		if err != nil {
			return Value{}, ResultBadSyntax
		}
		return IntegerValue(n), ResultOK
	}
	f, err := strconv.ParseFloat(span, 64)
	if err != nil {
		return Value{}, ResultBadSyntax
	}
	return RealValue(f), ResultOK
}
