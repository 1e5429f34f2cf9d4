/*
Package patmatch decides whether a runtime value matches a source-level
pattern and, if it does, which values the pattern binds.

Patterns and values are the algebraic terms of package term: literals,
variables, as-patterns, sequences with cons, snoc and concatenation
operators, data constructors (possibly partially applied) and effect
requests together with their captured continuation.

A match either succeeds with a binding sequence, in left-to-right pattern
order, or fails. Failing is not an error: an interpreter tries the clauses of
a match expression in order and takes the first one which succeeds (see
package clause).

	bindings, ok := patmatch.Match(pattern, value)

Patterns violating the matcher's contract – a continuation sub-pattern other
than Var or Unbound, a concatenation without a fixed-length side – are
programming errors of the front end. Match panics with a *ContractError for
these, TryMatch returns the error instead.

Matching is side-effect free. Capturing a continuation truncates the handler
stack of the request, but handler stacks are persistent, so the request value
itself stays untouched.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package patmatch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'patmatch'.
func tracer() tracing.Trace {
	return tracing.Select("patmatch")
}
