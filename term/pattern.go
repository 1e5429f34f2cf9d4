package term

import (
	"fmt"
	"strconv"
	"strings"
)

// Pattern is a source-level matchable shape. The set of patterns is closed;
// all implementations live in this package.
type Pattern interface {
	isPattern()
	String() string
}

// PUnbound is the wildcard pattern. It matches anything and binds nothing.
type PUnbound struct{}

// PVar matches anything and binds the matched value.
type PVar struct{}

// PAs binds the matched value as a whole, then matches Inner against it.
type PAs struct {
	Inner Pattern
}

// Literal patterns match values of the same kind with an equal payload.
type (
	PBoolean bool
	PInt     int64
	PNat     uint64
	PFloat   float64
	PText    string
	PChar    rune
)

// PConstructor matches a constructor without arguments.
type PConstructor struct {
	Ref Ref
	Tag int
}

// PPartialConstructor matches a constructor applied to len(Children) arguments.
type PPartialConstructor struct {
	Ref      Ref
	Tag      int
	Children []Pattern
}

// PSequenceLiteral matches sequences of exactly len(…) elements.
type PSequenceLiteral []Pattern

// SeqOp is the structural operator of a PSequenceOp.
type SeqOp int8

const (
	Cons   SeqOp = iota // head +: tail
	Snoc                // init :+ last
	Concat              // prefix ++ suffix
)

func (op SeqOp) String() string {
	switch op {
	case Cons:
		return "Cons"
	case Snoc:
		return "Snoc"
	case Concat:
		return "Concat"
	}
	return "SeqOp(" + strconv.Itoa(int(op)) + ")"
}

// ParseSeqOp is the inverse of SeqOp.String.
func ParseSeqOp(s string) (SeqOp, bool) {
	switch s {
	case "Cons":
		return Cons, true
	case "Snoc":
		return Snoc, true
	case "Concat":
		return Concat, true
	}
	return 0, false
}

// PSequenceOp decomposes a sequence with a structural operator.
type PSequenceOp struct {
	Left  Pattern
	Op    SeqOp
	Right Pattern
}

// PEffectBind matches an effect request of operation Number of effect Ref,
// together with the continuation captured at the request.
// Kont must be PVar or PUnbound.
type PEffectBind struct {
	Ref    Ref
	Number int
	Args   []Pattern
	Kont   Pattern
}

// PEffectPure matches the pure result of a handled computation.
type PEffectPure struct {
	Inner Pattern
}

func (PUnbound) isPattern()            {}
func (PVar) isPattern()                {}
func (PAs) isPattern()                 {}
func (PBoolean) isPattern()            {}
func (PInt) isPattern()                {}
func (PNat) isPattern()                {}
func (PFloat) isPattern()              {}
func (PText) isPattern()               {}
func (PChar) isPattern()               {}
func (PConstructor) isPattern()        {}
func (PPartialConstructor) isPattern() {}
func (PSequenceLiteral) isPattern()    {}
func (PSequenceOp) isPattern()         {}
func (PEffectBind) isPattern()         {}
func (PEffectPure) isPattern()         {}

// --- Rendering -------------------------------------------------------------

func (PUnbound) String() string { return "_" }
func (PVar) String() string     { return "v" }

func (p PAs) String() string {
	return "v@" + p.Inner.String()
}

func (p PBoolean) String() string { return strconv.FormatBool(bool(p)) }
func (p PInt) String() string     { return fmt.Sprintf("%+d", int64(p)) }
func (p PNat) String() string     { return strconv.FormatUint(uint64(p), 10) }
func (p PFloat) String() string   { return strconv.FormatFloat(float64(p), 'g', -1, 64) }
func (p PText) String() string    { return strconv.Quote(string(p)) }
func (p PChar) String() string    { return strconv.QuoteRune(rune(p)) }

func (p PConstructor) String() string {
	return fmt.Sprintf("%s#%d", p.Ref, p.Tag)
}

func (p PPartialConstructor) String() string {
	return fmt.Sprintf("%s#%d(%s)", p.Ref, p.Tag, joinPatterns(p.Children))
}

func (p PSequenceLiteral) String() string {
	return "[" + joinPatterns(p) + "]"
}

func (p PSequenceOp) String() string {
	var op string
	switch p.Op {
	case Cons:
		op = "+:"
	case Snoc:
		op = ":+"
	case Concat:
		op = "++"
	default:
		op = p.Op.String()
	}
	return fmt.Sprintf("(%s %s %s)", p.Left, op, p.Right)
}

func (p PEffectBind) String() string {
	return fmt.Sprintf("{%s#%d(%s) -> %s}", p.Ref, p.Number, joinPatterns(p.Args), p.Kont)
}

func (p PEffectPure) String() string {
	return "{" + p.Inner.String() + "}"
}

func joinPatterns(ps []Pattern) string {
	s := make([]string, len(ps))
	for i, p := range ps {
		s[i] = p.String()
	}
	return strings.Join(s, ", ")
}

// FixedLength reports the number of elements a pattern matches if the pattern
// is a sequence literal.
func FixedLength(p Pattern) (int, bool) {
	if lit, ok := p.(PSequenceLiteral); ok {
		return len(lit), true
	}
	return 0, false
}
