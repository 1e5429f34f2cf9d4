/*
Package clause selects the clause of a match expression which handles a
value.

A match expression consists of clauses, each with a pattern, an optional
guard and a body. Clauses are tried in order; the first clause whose pattern
matches and whose guard holds for the bindings of the match is selected.
Guards and bodies are opaque to this package: guards are evaluated by an
Evaluator supplied by the interpreter, bodies are just handed back.

	r := clause.Select(value, clauses, eval)
	switch m := r.Match(); m {
	case m.Ok(&sel):
		// continue with sel.Clause.Body and sel.Bindings
	case m.Err(&err):
		// errors.Is(err, clause.ErrNonExhaustive) if no clause applies
	}

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package clause

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'patmatch.clause'.
func tracer() tracing.Trace {
	return tracing.Select("patmatch.clause")
}
