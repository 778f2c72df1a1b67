package json

import (
	"strconv"
	"strings"

	"github.com/oarkflow/expr"
)

// Wildcard is the pattern segment that matches any level whose name is an
// unsigned decimal literal, the convention for "any index-like segment".
const Wildcard = "#"

// Match compares a dot-separated pattern against the live path. Matching
// requires exact depth equality; a same-depth literal difference is the
// structural ResultNoMatch, not an error. A pattern with more segments
// than the nesting bound is malformed, and a wildcard aimed at a level
// whose name has no numeric interpretation is a type mismatch.
func (p *Parser) Match(pattern string) Result {
	if pattern == "" {
		return p.raise(ResultBadParameter)
	}
	segments := strings.Split(pattern, ".")
	if len(segments) > MaxNesting {
		return p.raise(ResultNestingOverflow)
	}
	if p.depth != len(segments) {
		return ResultNoMatch
	}
	for i, segment := range segments {
		if segment == Wildcard {
			if p.path[i].number == notNumber {
				return p.raise(ResultTypeMismatch)
			}
		} else if segment != p.path[i].name {
			return ResultNoMatch
		}
	}
	return ResultOK
}

// MatchExpr evaluates an expression against the live path state. The
// environment exposes depth, the path names, and the innermost level's
// name, index and size. Expressions must yield a boolean.
func (p *Parser) MatchExpr(expression string) (bool, Result) {
	if expression == "" {
		return false, p.raise(ResultBadParameter)
	}
	env := map[string]any{
		"depth": p.depth,
		"path":  p.pathNames(),
	}
	if p.depth > 0 {
		top := p.path[p.depth-1]
		env["name"] = top.name
		env["index"] = top.index
		env["size"] = top.size
	}
	out, err := expr.Eval(expression, env)
	if err != nil {
		return false, p.raise(ResultFailed)
	}
	b, ok := out.(bool)
	if !ok {
		return false, p.raise(ResultTypeMismatch)
	}
	return b, ResultOK
}

func (p *Parser) pathNames() []string {
	names := make([]string, p.depth)
	for i := 0; i < p.depth; i++ {
		names[i] = p.path[i].name
	}
	return names
}

// ArrayIndex reports the index of the current element within its
// immediate enclosing array, or -1 when fewer than two levels are open or
// the enclosing level is not an array.
func (p *Parser) ArrayIndex() int {
	if p.depth < 2 || !p.path[p.depth-1].array {
		return -1
	}
	return p.path[p.depth-1].index
}

// DumpPath writes the live path through the sink, one dotted segment per
// level with array sizes in brackets. An array level that has not yet
// visited an element carries no name and is omitted.
func (p *Parser) DumpPath(write WriteFunc) {
	if write == nil {
		return
	}
	first := true
	for i := 0; i < p.depth; i++ {
		if p.path[i].name == "" {
			continue
		}
		if !first {
			write([]byte("."))
		}
		first = false
		write([]byte(p.path[i].name))
		if p.path[i].size != 0 {
			write([]byte("["))
			write([]byte(strconv.Itoa(p.path[i].size)))
			write([]byte("]"))
		}
	}
	write([]byte("\n"))
}
