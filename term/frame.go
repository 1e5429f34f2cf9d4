package term

import (
	"fmt"
	"strings"

	"github.com/npillmayer/patmatch/maybe"
	"github.com/npillmayer/patmatch/persistent/vector"
)

// Frame is an activation record on a handler stack.
type Frame struct {
	Source  Ref                // definition executing in this frame
	Return  int                // index to resume at when control returns to this frame
	Handler maybe.Maybe[Value] // effect handler installed in this frame, if any
}

// HasHandler is true if an effect handler is installed in f.
func (f Frame) HasHandler() bool {
	return !maybe.IsNothing(f.Handler)
}

// WithoutHandler returns a copy of f with no handler installed.
func (f Frame) WithoutHandler() Frame {
	f.Handler = maybe.Nothing[Value]()
	return f
}

func (f Frame) String() string {
	var h Value
	switch m := f.handler().Match(); m {
	case m.Just(&h):
		return fmt.Sprintf("%s@%d handler=%s", f.Source, f.Return, h)
	case m.Nothing():
	}
	return fmt.Sprintf("%s@%d", f.Source, f.Return)
}

func (f Frame) handler() maybe.Maybe[Value] {
	if f.Handler == nil {
		return maybe.Nothing[Value]()
	}
	return f.Handler
}

// Stack is an immutable stack of frames, bottom first. Operations on a stack
// return a new stack sharing structure with the original; the zero value is
// an empty stack.
type Stack struct {
	frames vector.Vector[Frame]
}

// NewStack creates a stack from frames, the first frame being the bottom.
func NewStack(frames ...Frame) Stack {
	return Stack{frames: vector.From(frames)}
}

func (s Stack) Len() int {
	return s.frames.Len()
}

// At returns frame i, counted from the bottom.
func (s Stack) At(i int) Frame {
	return s.frames.Get(i)
}

// Push returns s with f on top.
func (s Stack) Push(f Frame) Stack {
	return Stack{frames: s.frames.Push(f)}
}

// Truncate returns the bottom n frames of s.
func (s Stack) Truncate(n int) Stack {
	return Stack{frames: s.frames.Take(n)}
}

// WithFrame returns s with frame i replaced by f.
func (s Stack) WithFrame(i int, f Frame) Stack {
	return Stack{frames: s.frames.Set(i, f)}
}

// Frames copies the frames of s, bottom first.
func (s Stack) Frames() []Frame {
	return s.frames.Slice()
}

func (s Stack) String() string {
	frames := s.Frames()
	parts := make([]string, len(frames))
	for i, f := range frames {
		parts[i] = f.String()
	}
	return "⟨" + strings.Join(parts, " | ") + "⟩"
}
