package clause

import (
	"errors"
	"fmt"

	"github.com/npillmayer/patmatch"
	"github.com/npillmayer/patmatch/result"
	"github.com/npillmayer/patmatch/term"
)

// ErrNonExhaustive is returned if no clause of a match expression applies to
// a value.
var ErrNonExhaustive = errors.New("non-exhaustive match")

// Clause is a single case of a match expression. A nil Guard always holds.
type Clause struct {
	Pattern term.Pattern
	Guard   interface{}
	Body    interface{}
}

// Evaluator evaluates guards. Holds is called with the bindings of a
// successful match, in pattern order.
type Evaluator interface {
	Holds(guard interface{}, bindings patmatch.Bindings) (bool, error)
}

// EvaluatorFunc is an adapter to use an ordinary function as an Evaluator.
type EvaluatorFunc func(guard interface{}, bindings patmatch.Bindings) (bool, error)

// Holds calls f(guard, bindings).
func (f EvaluatorFunc) Holds(guard interface{}, bindings patmatch.Bindings) (bool, error) {
	return f(guard, bindings)
}

// Selection is the outcome of a successful clause selection.
type Selection struct {
	Index    int // position of Clause in the match expression
	Clause   Clause
	Bindings patmatch.Bindings
}

func (s Selection) String() string {
	return fmt.Sprintf("clause #%d %s => %s", s.Index, s.Clause.Pattern, s.Bindings)
}

// GuardError wraps an error raised while evaluating the guard of a clause.
type GuardError struct {
	Index int
	Err   error
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("guard of clause #%d: %v", e.Index, e.Err)
}

func (e *GuardError) Unwrap() error {
	return e.Err
}

// Select selects the first clause applicable to v, using a matcher with
// default settings. eval may be nil if no clause carries a guard.
func Select(v term.Value, clauses []Clause, eval Evaluator) result.Result[Selection] {
	return SelectWith(patmatch.New(), v, clauses, eval)
}

// SelectWith is like Select, but matches with m.
//
// Select fails with ErrNonExhaustive if no clause applies, with a *GuardError if
// evaluating a guard fails and with a *patmatch.ContractError if a pattern is
// malformed. Clauses after the selected one are never looked at.
func SelectWith(m *patmatch.Matcher, v term.Value, clauses []Clause, eval Evaluator) result.Result[Selection] {
	for i, c := range clauses {
		b, ok, err := m.TryMatch(c.Pattern, v)
		if err != nil {
			return result.Err[Selection](err)
		}
		if !ok {
			continue
		}
		if c.Guard != nil {
			if eval == nil {
				return result.Err[Selection](&GuardError{Index: i, Err: errors.New("no evaluator for guard")})
			}
			holds, err := eval.Holds(c.Guard, b)
			if err != nil {
				return result.Err[Selection](&GuardError{Index: i, Err: err})
			}
			if !holds {
				tracer().Debugf("guard of clause #%d rejects %s", i, b)
				continue
			}
		}
		sel := Selection{Index: i, Clause: c, Bindings: b}
		tracer().Debugf("selected %s", sel)
		return result.Ok(sel)
	}
	tracer().Infof("no clause for %s", v)
	return result.Err[Selection](fmt.Errorf("%w: %d clauses, value %s", ErrNonExhaustive, len(clauses), v))
}
