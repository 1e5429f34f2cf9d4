package term

import (
	"testing"

	"github.com/npillmayer/patmatch/maybe"
	"github.com/stretchr/testify/assert"
)

func handled(src string, ret int) Frame {
	return Frame{
		Source:  Builtin(src),
		Return:  ret,
		Handler: maybe.Just[Value](Constructor{Ref: Builtin("Handler"), Tag: ret}),
	}
}

func TestFrameHandler(t *testing.T) {
	f := handled("main", 3)
	assert.True(t, f.HasHandler())
	g := f.WithoutHandler()
	assert.False(t, g.HasHandler())
	assert.True(t, f.HasHandler(), "original frame keeps its handler")
	assert.False(t, Frame{Source: Builtin("x")}.HasHandler(), "zero handler means no handler")
}

func TestStackTruncateIsPersistent(t *testing.T) {
	s := NewStack(handled("a", 0), handled("b", 1), handled("c", 2), handled("d", 3))
	u := s.Truncate(3)
	u = u.WithFrame(2, u.At(2).WithoutHandler())
	assert.Equal(t, 3, u.Len())
	assert.False(t, u.At(2).HasHandler())
	assert.Equal(t, 4, s.Len())
	for i := 0; i < s.Len(); i++ {
		assert.True(t, s.At(i).HasHandler(), "frame %d of original stack must keep its handler", i)
	}
	assert.True(t, EqualFrames(s.At(1), u.At(1)))
	assert.False(t, EqualFrames(s.At(2), u.At(2)))
}

func TestStackString(t *testing.T) {
	s := NewStack(Frame{Source: Builtin("main")}).Push(handled("loop", 7))
	assert.Equal(t, "⟨##main@0 | ##loop@7 handler=##Handler#7⟩", s.String())
}
