package patmatch_test

import (
	"testing"

	"github.com/npillmayer/patmatch"
	"github.com/npillmayer/patmatch/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorExactness(t *testing.T) {
	none := term.PConstructor{Ref: optional, Tag: 0}
	cases := []struct {
		v  term.Value
		ok bool
	}{
		{term.Constructor{Ref: optional, Tag: 0}, true},
		{term.Constructor{Ref: optional, Tag: 1}, false},
		{term.Constructor{Ref: abort, Tag: 0}, false},
		{term.PartialConstructor{Ref: optional, Tag: 0, Children: []term.Value{term.Int(1)}}, false},
		{term.Int(0), false},
	}
	for _, c := range cases {
		b, ok := patmatch.Match(none, c.v)
		assert.Equal(t, c.ok, ok, "match %s against %s", none, c.v)
		if ok {
			assert.Len(t, b, 0)
		}
	}
}

func TestPartialConstructor(t *testing.T) {
	pair := term.Derived(term.Hash("pair"), 0, 1)
	p := term.PPartialConstructor{Ref: pair, Tag: 0, Children: []term.Pattern{term.PVar{}, term.PInt(2)}}
	b, ok := patmatch.Match(p, term.PartialConstructor{Ref: pair, Tag: 0, Children: []term.Value{term.Text("x"), term.Int(2)}})
	require.True(t, ok)
	assert.True(t, patmatch.Bindings{term.Text("x")}.Equal(b))

	for _, v := range []term.Value{
		// a failing child fails the whole match
		term.PartialConstructor{Ref: pair, Tag: 0, Children: []term.Value{term.Text("x"), term.Int(3)}},
		// arity
		term.PartialConstructor{Ref: pair, Tag: 0, Children: []term.Value{term.Text("x")}},
		term.PartialConstructor{Ref: pair, Tag: 0, Children: []term.Value{term.Text("x"), term.Int(2), term.Int(2)}},
		// tag and reference
		term.PartialConstructor{Ref: pair, Tag: 1, Children: []term.Value{term.Text("x"), term.Int(2)}},
		term.PartialConstructor{Ref: optional, Tag: 0, Children: []term.Value{term.Text("x"), term.Int(2)}},
		// arity class
		term.Constructor{Ref: pair, Tag: 0},
	} {
		b, ok := patmatch.Match(p, v)
		assert.False(t, ok, "expected %s not to match %s", p, v)
		assert.Nil(t, b)
	}
}

func TestPartialConstructorWithoutChildren(t *testing.T) {
	p := term.PPartialConstructor{Ref: optional, Tag: 0}
	_, ok := patmatch.Match(p, term.Constructor{Ref: optional, Tag: 0})
	assert.True(t, ok)
	_, ok = patmatch.Match(p, term.PartialConstructor{Ref: optional, Tag: 0})
	assert.False(t, ok)
}

func TestNestedConstructors(t *testing.T) {
	some := func(v term.Value) term.Value {
		return term.PartialConstructor{Ref: optional, Tag: 1, Children: []term.Value{v}}
	}
	psome := func(p term.Pattern) term.Pattern {
		return term.PPartialConstructor{Ref: optional, Tag: 1, Children: []term.Pattern{p}}
	}
	v := some(some(ints(1, 2, 3)))
	p := psome(term.PAs{Inner: psome(term.PSequenceOp{Left: term.PVar{}, Op: term.Cons, Right: term.PUnbound{}})})
	b, ok := patmatch.Match(p, v)
	require.True(t, ok)
	expected := patmatch.Bindings{some(ints(1, 2, 3)), term.Int(1)}
	assert.True(t, expected.Equal(b), "expected %s, have %s", expected, b)
}
