/*
Package termyaml reads and writes patterns and values as YAML.

Every term is either a plain scalar naming it (Unbound, Var) or a mapping
with a single key naming the kind of the term and the payload as its value:

	{Int: -5}
	{Text: hello}
	{SequenceOp: [Var, Cons, {SequenceLiteral: [Unbound]}]}
	{PartialConstructor: ["##Optional", 1, [{Nat: 3}]]}
	{EffectBind: ["##Abort", 0, [], Var]}

Effect requests and continuations carry a handler stack, written as a list of
frames:

	Request:
	  ref: "#c5h66p35"
	  number: 1
	  args: [{Text: key}]
	  idx: 12
	  current: 0
	  stack:
	    - {source: "##main", return: 3, handler: {Constructor: ["##Handler", 0]}}

References use the notation of term.ParseReference. Decoding errors report
the line and column of the offending YAML node.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package termyaml

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'patmatch.yaml'.
func tracer() tracing.Trace {
	return tracing.Select("patmatch.yaml")
}
