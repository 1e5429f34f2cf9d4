package patmatch_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/patmatch"
	"github.com/npillmayer/patmatch/term"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectBindCapturesContinuation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patmatch")
	defer teardown()
	//
	req := request(abort, 0, nil, 2, 4)
	b, ok := patmatch.Match(term.PEffectBind{Ref: abort, Number: 0, Kont: term.PVar{}}, req)
	require.True(t, ok)
	require.Len(t, b, 1)
	k, isKont := b[0].(term.Continuation)
	require.True(t, isKont, "expected a continuation, have %s", b[0])
	t.Logf("\n%s", term.ValueTree(k))
	assert.Equal(t, req.Idx, k.Idx)
	require.Equal(t, 3, k.Stack.Len())
	for i := 0; i < 2; i++ {
		assert.True(t, term.EqualFrames(req.Stack.At(i), k.Stack.At(i)), "frame %d should be kept", i)
	}
	assert.False(t, k.Stack.At(2).HasHandler(), "handler of the handling frame must be cleared")
	assert.Equal(t, req.Stack.At(2).Source, k.Stack.At(2).Source)
	// the request is untouched
	assert.Equal(t, 4, req.Stack.Len())
	assert.True(t, req.Stack.At(2).HasHandler())
}

func TestEffectBindArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patmatch")
	defer teardown()
	//
	args := []term.Value{term.Text("key"), term.Int(5)}
	req := request(store, 1, args, 0, 1)
	p := term.PEffectBind{
		Ref:    store,
		Number: 1,
		Args:   []term.Pattern{term.PVar{}, term.PVar{}},
		Kont:   term.PVar{},
	}
	b, ok := patmatch.Match(p, req)
	require.True(t, ok)
	require.Len(t, b, 3)
	assert.True(t, term.EqualAll(args, b[:2]))
	_, isKont := b[2].(term.Continuation)
	assert.True(t, isKont, "continuation comes after the arguments")

	p.Kont = term.PUnbound{}
	b, ok = patmatch.Match(p, req)
	require.True(t, ok)
	assert.True(t, patmatch.Bindings(args).Equal(b))

	for _, q := range []term.PEffectBind{
		{Ref: store, Number: 2, Args: p.Args, Kont: term.PVar{}},
		{Ref: abort, Number: 1, Args: p.Args, Kont: term.PVar{}},
		{Ref: store, Number: 1, Args: p.Args[:1], Kont: term.PVar{}},
		{Ref: store, Number: 1, Args: []term.Pattern{term.PText("other"), term.PVar{}}, Kont: term.PVar{}},
	} {
		b, ok := patmatch.Match(q, req)
		assert.False(t, ok, "expected %s not to match %s", q, req)
		assert.Nil(t, b)
	}
}

func TestEffectBindContinuationContract(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patmatch")
	defer teardown()
	//
	for _, kont := range []term.Pattern{
		term.PInt(1),
		term.PAs{Inner: term.PVar{}},
		term.PSequenceLiteral{},
	} {
		p := term.PEffectBind{Ref: abort, Number: 0, Kont: kont}
		_, ok, err := patmatch.TryMatch(p, request(abort, 0, nil, 0, 1))
		assert.False(t, ok)
		var cerr *patmatch.ContractError
		require.True(t, errors.As(err, &cerr), "expected contract violation for continuation pattern %s", kont)
		assert.True(t, errors.Is(err, patmatch.ErrContinuationPattern))
		assert.NotNil(t, cerr.Pattern)
		// the continuation pattern is not looked at for requests which do not match
		_, ok, err = patmatch.TryMatch(p, request(store, 3, []term.Value{term.Int(1)}, 0, 1))
		assert.False(t, ok)
		assert.NoError(t, err)
		p.Args = []term.Pattern{term.PInt(2)}
		_, ok, err = patmatch.TryMatch(p, request(abort, 0, []term.Value{term.Int(1)}, 0, 1))
		assert.False(t, ok)
		assert.NoError(t, err)
	}
}

func TestEffectBindBadHandlerIndex(t *testing.T) {
	req := request(abort, 0, nil, 3, 3)
	_, _, err := patmatch.TryMatch(term.PEffectBind{Ref: abort, Kont: term.PVar{}}, req)
	assert.True(t, errors.Is(err, patmatch.ErrStackIndex), "have %v", err)
	// without capture the index is never used
	_, ok, err := patmatch.TryMatch(term.PEffectBind{Ref: abort, Kont: term.PUnbound{}}, req)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestEffectPure(t *testing.T) {
	p := term.PEffectPure{Inner: term.PVar{}}
	b, ok := patmatch.Match(p, term.RequestPure{Inner: term.Int(8)})
	require.True(t, ok)
	assert.True(t, patmatch.Bindings{term.Int(8)}.Equal(b))

	_, ok = patmatch.Match(p, request(abort, 0, nil, 0, 1))
	assert.False(t, ok, "pure patterns never match requests")
	_, ok = patmatch.Match(term.PEffectBind{Ref: abort, Kont: term.PVar{}}, term.RequestPure{Inner: term.Int(8)})
	assert.False(t, ok, "request patterns never match pure results")
	_, ok = patmatch.Match(term.PEffectPure{Inner: term.PInt(1)}, term.RequestPure{Inner: term.Int(8)})
	assert.False(t, ok)
}
