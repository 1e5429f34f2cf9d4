package patmatch

import (
	"errors"
	"fmt"

	"github.com/npillmayer/patmatch/term"
)

// Kinds of contract violations. A contract violation is a defect of the
// pattern, not of the value: a correct front end never produces such patterns.
// Use errors.Is to test a *ContractError for one of these.
var (
	ErrContinuationPattern  = errors.New("continuation patterns must be Var or Unbound")
	ErrConcatNeedsFixedSide = errors.New("concatenation needs a fixed-length side")
	ErrStackIndex           = errors.New("handling frame is outside of the captured stack")
	ErrDepthExceeded        = errors.New("pattern nesting exceeds maximum depth")
	ErrMalformed            = errors.New("malformed pattern")
)

// ContractError is raised when matching encounters a pattern violating the
// matcher's contract. It is never the result of an ordinary non-match.
type ContractError struct {
	Kind    error        // one of the Err… kinds of this package
	Pattern term.Pattern // the offending (sub-)pattern
	Detail  string
}

func (e *ContractError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("patmatch: %s in %v", e.Kind, e.Pattern)
	}
	return fmt.Sprintf("patmatch: %s in %v: %s", e.Kind, e.Pattern, e.Detail)
}

func (e *ContractError) Unwrap() error {
	return e.Kind
}

// violation aborts the current match by panicking with a *ContractError.
func violation(kind error, p term.Pattern, format string, args ...interface{}) {
	err := &ContractError{Kind: kind, Pattern: p, Detail: fmt.Sprintf(format, args...)}
	tracer().Errorf("%v", err)
	panic(err)
}
