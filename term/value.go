package term

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a runtime term tested against patterns. The set of values is
// closed; all implementations live in this package.
//
// Values are immutable. In particular, the items of a Sequence are never
// modified once the sequence has been created, which makes sub-slicing safe.
type Value interface {
	isValue()
	String() string
}

// Scalar values.
type (
	Boolean bool
	Int     int64
	Nat     uint64
	Float   float64
	Text    string
	Char    rune
)

// Sequence is an ordered, finite, random-access sequence of values.
type Sequence []Value

// Constructor is a data constructor without arguments.
type Constructor struct {
	Ref Ref
	Tag int
}

// PartialConstructor is a data constructor applied to one or more arguments.
type PartialConstructor struct {
	Ref      Ref
	Tag      int
	Children []Value
}

// RequestWithContinuation is an effect request captured by a handler:
// operation Number of effect Ref, called with Args. Idx is the resumption
// point, Stack the handler stack at the time of the request and Current the
// position of the handling frame in Stack.
type RequestWithContinuation struct {
	Ref     Ref
	Number  int
	Args    []Value
	Idx     int
	Stack   Stack
	Current int
}

// RequestPure is the result of a handled computation which completed without
// requesting an effect.
type RequestPure struct {
	Inner Value
}

// Continuation is a first-class captured continuation.
type Continuation struct {
	Idx   int
	Stack Stack
}

func (Boolean) isValue()                 {}
func (Int) isValue()                     {}
func (Nat) isValue()                     {}
func (Float) isValue()                   {}
func (Text) isValue()                    {}
func (Char) isValue()                    {}
func (Sequence) isValue()                {}
func (Constructor) isValue()             {}
func (PartialConstructor) isValue()      {}
func (RequestWithContinuation) isValue() {}
func (RequestPure) isValue()             {}
func (Continuation) isValue()            {}

// --- Rendering -------------------------------------------------------------

func (v Boolean) String() string { return strconv.FormatBool(bool(v)) }
func (v Int) String() string     { return fmt.Sprintf("%+d", int64(v)) }
func (v Nat) String() string     { return strconv.FormatUint(uint64(v), 10) }
func (v Float) String() string   { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v Text) String() string    { return strconv.Quote(string(v)) }
func (v Char) String() string    { return strconv.QuoteRune(rune(v)) }

func (v Sequence) String() string {
	return "[" + joinValues(v) + "]"
}

func (v Constructor) String() string {
	return fmt.Sprintf("%s#%d", v.Ref, v.Tag)
}

func (v PartialConstructor) String() string {
	return fmt.Sprintf("%s#%d(%s)", v.Ref, v.Tag, joinValues(v.Children))
}

func (v RequestWithContinuation) String() string {
	return fmt.Sprintf("{%s#%d(%s) @%d, frame %d of %d}", v.Ref, v.Number, joinValues(v.Args),
		v.Idx, v.Current, v.Stack.Len())
}

func (v RequestPure) String() string {
	return "{" + v.Inner.String() + "}"
}

func (v Continuation) String() string {
	return fmt.Sprintf("<continuation @%d, %d frames>", v.Idx, v.Stack.Len())
}

func joinValues(vs []Value) string {
	s := make([]string, len(vs))
	for i, v := range vs {
		s[i] = v.String()
	}
	return strings.Join(s, ", ")
}
