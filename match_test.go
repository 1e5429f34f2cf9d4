package patmatch_test

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/patmatch"
	"github.com/npillmayer/patmatch/term"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	optional = term.Builtin("Optional")
	abort    = term.Builtin("Abort")
	store    = term.FromHash(term.Hash("store-effect"))
)

// someValues covers every kind of value.
func someValues() []term.Value {
	return []term.Value{
		term.Boolean(true), term.Int(-7), term.Nat(7), term.Float(0.5),
		term.Text("hello"), term.Char('λ'),
		term.Sequence{}, term.Sequence{term.Int(1), term.Int(2)},
		term.Constructor{Ref: optional, Tag: 0},
		term.PartialConstructor{Ref: optional, Tag: 1, Children: []term.Value{term.Int(3)}},
		request(abort, 0, nil, 0, 1),
		term.RequestPure{Inner: term.Text("done")},
		term.Continuation{Idx: 3, Stack: term.NewStack(frame("main", 0, false))},
	}
}

func TestUnboundMatchesEverything(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patmatch")
	defer teardown()
	//
	for _, v := range someValues() {
		b, ok := patmatch.Match(term.PUnbound{}, v)
		if !ok {
			t.Errorf("expected _ to match %s", v)
			continue
		}
		if b == nil || len(b) != 0 {
			t.Errorf("expected _ to bind nothing for %s, bound %v", v, b)
		}
	}
}

func TestVarBindsValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patmatch")
	defer teardown()
	//
	for _, v := range someValues() {
		b, ok := patmatch.Match(term.PVar{}, v)
		require.True(t, ok, "v should match %s", v)
		require.Len(t, b, 1)
		assert.True(t, term.Equal(v, b[0]), "expected binding %s, have %s", v, b[0])
	}
}

func TestLiterals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patmatch")
	defer teardown()
	//
	cases := []struct {
		p  term.Pattern
		v  term.Value
		ok bool
	}{
		{term.PInt(5), term.Int(5), true},
		{term.PInt(5), term.Int(6), false},
		{term.PInt(5), term.Nat(5), false},
		{term.PNat(5), term.Nat(5), true},
		{term.PBoolean(false), term.Boolean(false), true},
		{term.PBoolean(false), term.Boolean(true), false},
		{term.PFloat(1.25), term.Float(1.25), true},
		{term.PFloat(math.NaN()), term.Float(math.NaN()), false},
		{term.PText("a"), term.Text("a"), true},
		{term.PText("a"), term.Text("A"), false},
		{term.PText("a"), term.Char('a'), false},
		{term.PChar('x'), term.Char('x'), true},
		{term.PChar('x'), term.Sequence{term.Char('x')}, false},
	}
	for _, c := range cases {
		b, ok := patmatch.Match(c.p, c.v)
		if ok != c.ok {
			t.Errorf("match %s against %s: expected %v, have %v", c.p, c.v, c.ok, ok)
		}
		if ok && len(b) != 0 {
			t.Errorf("expected literal %s to bind nothing, bound %v", c.p, b)
		}
		if !ok && b != nil {
			t.Errorf("expected failed match to return no bindings, have %v", b)
		}
	}
}

func TestAsPrependsWholeValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patmatch")
	defer teardown()
	//
	v := term.Sequence{term.Int(1), term.Int(2)}
	p := term.PAs{Inner: term.PSequenceOp{Left: term.PVar{}, Op: term.Cons, Right: term.PVar{}}}
	b, ok := patmatch.Match(p, v)
	require.True(t, ok)
	expected := patmatch.Bindings{v, term.Int(1), term.Sequence{term.Int(2)}}
	assert.True(t, expected.Equal(b), "expected %s, have %s", expected, b)

	_, ok = patmatch.Match(term.PAs{Inner: term.PInt(1)}, term.Int(2))
	assert.False(t, ok, "as-pattern must fail if its inner pattern fails")

	b, ok = patmatch.Match(term.PAs{Inner: term.PAs{Inner: term.PVar{}}}, term.Char('c'))
	require.True(t, ok)
	assert.Len(t, b, 3)
}

func TestMaxDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patmatch")
	defer teardown()
	//
	m := patmatch.New(patmatch.MaxDepth(2))
	_, ok, err := m.TryMatch(term.PAs{Inner: term.PVar{}}, term.Int(1))
	assert.NoError(t, err)
	assert.True(t, ok)
	_, ok, err = m.TryMatch(term.PAs{Inner: term.PAs{Inner: term.PVar{}}}, term.Int(1))
	assert.False(t, ok)
	assert.True(t, errors.Is(err, patmatch.ErrDepthExceeded), "expected depth violation, have %v", err)
	// no limit by default
	deep := term.Pattern(term.PVar{})
	for i := 0; i < 200; i++ {
		deep = term.PAs{Inner: deep}
	}
	b, ok := patmatch.Match(deep, term.Int(1))
	assert.True(t, ok)
	assert.Len(t, b, 201)
}

func TestMatchesIsMaybe(t *testing.T) {
	var b patmatch.Bindings
	switch m := patmatch.Matches(term.PVar{}, term.Int(3)).Match(); m {
	case m.Just(&b):
	case m.Nothing():
		t.Fatal("expected v to match 3")
	}
	assert.Equal(t, "[+3]", b.String())
	matched := true
	switch m := patmatch.Matches(term.PInt(4), term.Int(3)).Match(); m {
	case m.Just(&b):
	case m.Nothing():
		matched = false
	}
	assert.False(t, matched)
}

func TestNilPatternIsContractViolation(t *testing.T) {
	_, ok, err := patmatch.TryMatch(nil, term.Int(1))
	assert.False(t, ok)
	var cerr *patmatch.ContractError
	require.True(t, errors.As(err, &cerr))
	assert.True(t, errors.Is(cerr, patmatch.ErrMalformed))
}

func TestMatchPanicsOnContractViolation(t *testing.T) {
	p := term.PSequenceOp{Left: term.PVar{}, Op: term.Concat, Right: term.PVar{}}
	defer func() {
		r := recover()
		_, isContract := r.(*patmatch.ContractError)
		assert.True(t, isContract, "expected *ContractError panic, have %v", r)
	}()
	patmatch.Match(p, term.Sequence{term.Int(1)})
	t.Error("Match should not return for a malformed pattern")
}

func TestRematchIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patmatch")
	defer teardown()
	//
	req := request(store, 1, []term.Value{term.Text("k"), term.Int(9)}, 2, 4)
	p := term.PEffectBind{
		Ref:    store,
		Number: 1,
		Args:   []term.Pattern{term.PText("k"), term.PVar{}},
		Kont:   term.PVar{},
	}
	b1, ok1 := patmatch.Match(p, req)
	b2, ok2 := patmatch.Match(p, req)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.True(t, b1.Equal(b2), "%s vs %s", b1, b2)
	assert.Equal(t, 4, req.Stack.Len(), "matching must not truncate the request's stack")
}
