package patmatch_test

import (
	"fmt"

	"github.com/npillmayer/patmatch/maybe"
	"github.com/npillmayer/patmatch/term"
)

// frame creates a frame executing builtin name, optionally with a handler installed.
func frame(name string, ret int, handled bool) term.Frame {
	f := term.Frame{Source: term.Builtin(name), Return: ret}
	if handled {
		f.Handler = maybe.Just[term.Value](term.Constructor{Ref: term.Builtin("handler-" + name), Tag: ret})
	} else {
		f.Handler = maybe.Nothing[term.Value]()
	}
	return f
}

// request creates an effect request whose stack has nframes frames, each with
// a handler installed, handled by frame current.
func request(ref term.Ref, number int, args []term.Value, current, nframes int) term.RequestWithContinuation {
	frames := make([]term.Frame, nframes)
	for i := range frames {
		frames[i] = frame(fmt.Sprintf("f%d", i), i*10, true)
	}
	return term.RequestWithContinuation{
		Ref:     ref,
		Number:  number,
		Args:    args,
		Idx:     42,
		Stack:   term.NewStack(frames...),
		Current: current,
	}
}

func ints(ns ...int64) term.Sequence {
	s := make(term.Sequence, len(ns))
	for i, n := range ns {
		s[i] = term.Int(n)
	}
	return s
}
