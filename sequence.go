package patmatch

import (
	"github.com/npillmayer/patmatch/term"
)

// matchSequenceLiteral matches a fixed-length sequence pattern. Lengths have to
// agree exactly; there is no prefix matching.
func (m *Matcher) matchSequenceLiteral(ps term.PSequenceLiteral, items term.Sequence, depth int) (Bindings, bool) {
	if len(ps) != len(items) {
		return nil, false
	}
	return m.matchAll(ps, items, depth)
}

// matchSequenceOp decomposes a sequence in exactly one way, determined by the
// operator and, for Concat, by the side with a fixed length. There is no
// backtracking over alternative split points.
func (m *Matcher) matchSequenceOp(p term.PSequenceOp, items term.Sequence, depth int) (Bindings, bool) {
	n := len(items)
	switch p.Op {
	case term.Cons:
		if n == 0 {
			return nil, false
		}
		return m.matchSplit(p, items[0], items[1:], depth)
	case term.Snoc:
		if n == 0 {
			return nil, false
		}
		return m.matchSplit(p, items[:n-1:n-1], items[n-1], depth)
	case term.Concat:
		var split int
		if k, ok := term.FixedLength(p.Left); ok {
			if n < k {
				return nil, false
			}
			split = k
		} else if k, ok := term.FixedLength(p.Right); ok {
			if n < k {
				return nil, false
			}
			split = n - k
		} else {
			violation(ErrConcatNeedsFixedSide, p, "neither %s nor %s is a sequence literal", p.Left, p.Right)
		}
		tracer().Debugf("concat splits sequence of length %d at %d", n, split)
		return m.matchSplit(p, items[:split:split], items[split:], depth)
	}
	violation(ErrMalformed, p, "unknown sequence operator %s", p.Op)
	return nil, false
}

// matchSplit matches the left operand of p against left and the right operand
// against right, concatenating the bindings.
func (m *Matcher) matchSplit(p term.PSequenceOp, left, right term.Value, depth int) (Bindings, bool) {
	lb, ok := m.match(p.Left, left, depth+1)
	if !ok {
		return nil, false
	}
	rb, ok := m.match(p.Right, right, depth+1)
	if !ok {
		return nil, false
	}
	return append(lb, rb...), true
}
