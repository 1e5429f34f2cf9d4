package patmatch

import (
	"github.com/npillmayer/patmatch/maybe"
	"github.com/npillmayer/patmatch/term"
	"github.com/npillmayer/schuko/tracing"
)

// Matcher matches patterns against values. A Matcher is immutable and may be
// shared between goroutines. The zero value is a matcher without depth limit.
type Matcher struct {
	maxDepth int
}

// Option is a type to help configuring matchers at creation time.
type Option func(Matcher) Matcher

// MaxDepth limits the nesting depth of the patterns a matcher will descend
// into. Exceeding the limit is a contract violation (ErrDepthExceeded).
// n ≤ 0 means unlimited, which is the default.
//
//	m := patmatch.New(patmatch.MaxDepth(64))
func MaxDepth(n int) Option {
	return func(m Matcher) Matcher {
		if n < 0 {
			n = 0
		}
		m.maxDepth = n
		return m
	}
}

// New creates a matcher with options, if you need any.
func New(opts ...Option) *Matcher {
	m := Matcher{}
	for _, option := range opts {
		m = option(m)
	}
	return &m
}

var defaultMatcher = New()

// Match matches pattern against value using a matcher with default settings.
func Match(pattern term.Pattern, value term.Value) (Bindings, bool) {
	return defaultMatcher.Match(pattern, value)
}

// TryMatch is like Match, but returns contract violations as errors.
func TryMatch(pattern term.Pattern, value term.Value) (Bindings, bool, error) {
	return defaultMatcher.TryMatch(pattern, value)
}

// Matches is like Match, but wraps the outcome in a Maybe.
func Matches(pattern term.Pattern, value term.Value) maybe.Maybe[Bindings] {
	return defaultMatcher.Matches(pattern, value)
}

// Match matches pattern against value. If the value matches, Match returns the
// values bound by the pattern and true. Otherwise it returns nil and false.
//
// Match panics with a *ContractError if pattern is malformed.
func (m *Matcher) Match(pattern term.Pattern, value term.Value) (Bindings, bool) {
	if tracer().GetTraceLevel() == tracing.LevelDebug {
		tracer().Debugf("match %v against %v", pattern, value)
		tracer().Debugf("pattern tree:\n%s", term.PatternTree(pattern))
	}
	b, ok := m.match(pattern, value, 0)
	if !ok {
		return nil, false
	}
	return b, true
}

// TryMatch is like Match, but recovers contract violations and returns them
// as an error. Panics other than *ContractError are passed on.
func (m *Matcher) TryMatch(pattern term.Pattern, value term.Value) (b Bindings, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			cerr, isContract := r.(*ContractError)
			if !isContract {
				panic(r)
			}
			b, ok, err = nil, false, cerr
		}
	}()
	b, ok = m.Match(pattern, value)
	return b, ok, nil
}

// Matches is like Match, but returns Just the bindings or Nothing.
// Contract violations panic, as with Match.
func (m *Matcher) Matches(pattern term.Pattern, value term.Value) maybe.Maybe[Bindings] {
	if b, ok := m.Match(pattern, value); ok {
		return maybe.Just(b)
	}
	return maybe.Nothing[Bindings]()
}

// --- Dispatch --------------------------------------------------------------

// match dispatches on the pattern, then on the value. Pairs without a case
// do not match.
func (m *Matcher) match(p term.Pattern, v term.Value, depth int) (Bindings, bool) {
	if m.maxDepth > 0 && depth >= m.maxDepth {
		violation(ErrDepthExceeded, p, "limit is %d", m.maxDepth)
	}
	switch p := p.(type) {
	case term.PUnbound:
		return Bindings{}, true
	case term.PVar:
		return Bindings{v}, true
	case term.PAs:
		inner, ok := m.match(p.Inner, v, depth+1)
		if !ok {
			return nil, false
		}
		return append(Bindings{v}, inner...), true
	case term.PBoolean:
		x, ok := v.(term.Boolean)
		return literal(ok && bool(x) == bool(p))
	case term.PInt:
		x, ok := v.(term.Int)
		return literal(ok && int64(x) == int64(p))
	case term.PNat:
		x, ok := v.(term.Nat)
		return literal(ok && uint64(x) == uint64(p))
	case term.PFloat:
		x, ok := v.(term.Float)
		return literal(ok && float64(x) == float64(p))
	case term.PText:
		x, ok := v.(term.Text)
		return literal(ok && string(x) == string(p))
	case term.PChar:
		x, ok := v.(term.Char)
		return literal(ok && rune(x) == rune(p))
	case term.PConstructor:
		return matchConstructor(p.Ref, p.Tag, v)
	case term.PPartialConstructor:
		return m.matchPartialConstructor(p, v, depth)
	case term.PSequenceLiteral:
		if items, ok := v.(term.Sequence); ok {
			return m.matchSequenceLiteral(p, items, depth)
		}
	case term.PSequenceOp:
		if items, ok := v.(term.Sequence); ok {
			return m.matchSequenceOp(p, items, depth)
		}
	case term.PEffectBind:
		if req, ok := v.(term.RequestWithContinuation); ok {
			return m.matchEffectBind(p, req, depth)
		}
	case term.PEffectPure:
		if pure, ok := v.(term.RequestPure); ok {
			return m.match(p.Inner, pure.Inner, depth+1)
		}
	case nil:
		violation(ErrMalformed, p, "missing pattern")
	}
	return nil, false
}

// literal turns the outcome of a literal comparison into a match result.
// Literals never bind.
func literal(equal bool) (Bindings, bool) {
	if equal {
		return Bindings{}, true
	}
	return nil, false
}

// matchAll matches patterns against values pairwise and concatenates the
// bindings. The first failing pair fails the whole match.
// Callers make sure that len(ps) == len(vs).
func (m *Matcher) matchAll(ps []term.Pattern, vs []term.Value, depth int) (Bindings, bool) {
	all := Bindings{}
	for i, p := range ps {
		b, ok := m.match(p, vs[i], depth+1)
		if !ok {
			return nil, false
		}
		all = append(all, b...)
	}
	return all, true
}
