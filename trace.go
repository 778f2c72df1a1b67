package json

import "runtime"

// TraceFunc observes every non-success result a parser is about to
// propagate. origin names the engine function raising the result. The
// hook is instance-scoped and never alters control flow.
type TraceFunc func(p *Parser, origin string, result Result)

func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	return fn.Name()
}

// raise reports r through the trace hook and hands it back unchanged, so
// call sites read `return p.raise(r)`. Propagating frames wrap their
// returns in raise as well, which yields one trace line per frame on the
// way out.
func (p *Parser) raise(r Result) Result {
	if p.trace != nil && r != ResultOK {
		p.trace(p, callerName(2), r)
	}
	return r
}
