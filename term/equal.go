package term

// Equal compares two values structurally. References are compared with
// Compare, floats with ==. Continuations and requests are equal if their
// stacks hold equal frames.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case Boolean, Int, Nat, Float, Text, Char:
		return a == b
	case Sequence:
		y, ok := b.(Sequence)
		return ok && equalValues(x, y)
	case Constructor:
		y, ok := b.(Constructor)
		return ok && x.Tag == y.Tag && SameRef(x.Ref, y.Ref)
	case PartialConstructor:
		y, ok := b.(PartialConstructor)
		return ok && x.Tag == y.Tag && SameRef(x.Ref, y.Ref) && equalValues(x.Children, y.Children)
	case RequestWithContinuation:
		y, ok := b.(RequestWithContinuation)
		return ok && x.Number == y.Number && x.Idx == y.Idx && x.Current == y.Current &&
			SameRef(x.Ref, y.Ref) && equalValues(x.Args, y.Args) && EqualStacks(x.Stack, y.Stack)
	case RequestPure:
		y, ok := b.(RequestPure)
		return ok && Equal(x.Inner, y.Inner)
	case Continuation:
		y, ok := b.(Continuation)
		return ok && x.Idx == y.Idx && EqualStacks(x.Stack, y.Stack)
	}
	return false
}

// EqualAll compares two lists of values element-wise.
func EqualAll(a, b []Value) bool {
	return equalValues(a, b)
}

func equalValues(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// EqualStacks compares two stacks frame by frame.
func EqualStacks(a, b Stack) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !EqualFrames(a.At(i), b.At(i)) {
			return false
		}
	}
	return true
}

// EqualFrames compares source, return index and installed handler of two frames.
func EqualFrames(a, b Frame) bool {
	if a.Return != b.Return || !SameRef(a.Source, b.Source) {
		return false
	}
	ha, oka := a.handler().Get()
	hb, okb := b.handler().Get()
	if oka != okb {
		return false
	}
	return !oka || Equal(ha, hb)
}
