package json

import "errors"

// Result is the closed set of outcome codes returned by every parser,
// matcher and printer operation. ResultNoMatch is a structural outcome
// from pattern matching, not a failure.
type Result int

const (
	ResultOK Result = iota
	ResultFailed
	ResultUnexpected
	ResultBadParameter
	ResultOutOfMemory
	ResultEOF
	ResultUnsupported
	ResultBadSyntax
	ResultTypeMismatch
	ResultNestingOverflow
	ResultNestingUnderflow
	ResultBufferOverflow
	ResultUnknownValue
	ResultOutOfBounds
	ResultNoMatch
)

var resultStrings = [...]string{
	ResultOK:               "ok",
	ResultFailed:           "failed",
	ResultUnexpected:       "unexpected",
	ResultBadParameter:     "bad parameter",
	ResultOutOfMemory:      "out of memory",
	ResultEOF:              "end of input",
	ResultUnsupported:      "unsupported",
	ResultBadSyntax:        "bad syntax",
	ResultTypeMismatch:     "type mismatch",
	ResultNestingOverflow:  "nesting overflow",
	ResultNestingUnderflow: "nesting underflow",
	ResultBufferOverflow:   "buffer overflow",
	ResultUnknownValue:     "unknown value",
	ResultOutOfBounds:      "out of bounds",
	ResultNoMatch:          "no match",
}

func (r Result) String() string {
	if r < 0 || int(r) >= len(resultStrings) {
		return "unknown"
	}
	return resultStrings[r]
}

// Err converts a Result into an error for callers working with the
// package facade. Only ResultOK maps to nil.
func (r Result) Err() error {
	if r == ResultOK {
		return nil
	}
	return errors.New("json: " + r.String())
}
