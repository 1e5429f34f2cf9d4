package patmatch

import (
	"github.com/npillmayer/patmatch/term"
)

// matchEffectBind matches an effect request: effect, operation number and
// arguments have to match. If the continuation sub-pattern is a variable, the
// continuation of the request is captured and appended to the bindings.
//
// The continuation sub-pattern is consulted only after the arguments matched.
func (m *Matcher) matchEffectBind(p term.PEffectBind, req term.RequestWithContinuation, depth int) (Bindings, bool) {
	if req.Number != p.Number || len(req.Args) != len(p.Args) || !term.SameRef(p.Ref, req.Ref) {
		return nil, false
	}
	all, ok := m.matchAll(p.Args, req.Args, depth)
	if !ok {
		return nil, false
	}
	switch p.Kont.(type) {
	case term.PVar:
		all = append(all, captureContinuation(p, req))
	case term.PUnbound:
	default:
		violation(ErrContinuationPattern, p, "found %v", p.Kont)
	}
	return all, true
}

// captureContinuation unwinds the handler stack of req to the handling frame:
// frames above it are dropped and the handler of the frame itself is cleared,
// as it has just been consumed. The stack of req is left unchanged.
func captureContinuation(p term.PEffectBind, req term.RequestWithContinuation) term.Continuation {
	cur := req.Current
	if cur < 0 || cur >= req.Stack.Len() {
		violation(ErrStackIndex, p, "frame %d of %d", cur, req.Stack.Len())
	}
	stack := req.Stack.Truncate(cur + 1)
	stack = stack.WithFrame(cur, stack.At(cur).WithoutHandler())
	tracer().Debugf("captured continuation @%d with %d of %d frames", req.Idx, stack.Len(), req.Stack.Len())
	return term.Continuation{Idx: req.Idx, Stack: stack}
}
