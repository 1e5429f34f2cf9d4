package patmatch

import (
	"github.com/npillmayer/patmatch/term"
)

// matchConstructor matches a constructor pattern without arguments. Only
// constructor values without arguments can match.
func matchConstructor(ref term.Ref, tag int, v term.Value) (Bindings, bool) {
	c, ok := v.(term.Constructor)
	if !ok || c.Tag != tag || !term.SameRef(ref, c.Ref) {
		return nil, false
	}
	return Bindings{}, true
}

// matchPartialConstructor matches a constructor pattern with arguments against
// a partially applied constructor of the same arity. A pattern without
// children is treated as a plain constructor pattern.
func (m *Matcher) matchPartialConstructor(p term.PPartialConstructor, v term.Value, depth int) (Bindings, bool) {
	if len(p.Children) == 0 {
		return matchConstructor(p.Ref, p.Tag, v)
	}
	c, ok := v.(term.PartialConstructor)
	if !ok || c.Tag != p.Tag || !term.SameRef(p.Ref, c.Ref) {
		return nil, false
	}
	if len(c.Children) != len(p.Children) {
		return nil, false
	}
	return m.matchAll(p.Children, c.Children, depth)
}
