/*
Package term defines the algebraic terms a pattern matcher operates on:
patterns, as written in source code, and the runtime values they are matched
against.

Both are closed sum types. Each case is a distinct Go type implementing the
Pattern or Value interface, respectively; clients inspect terms with a type
switch:

	switch p := pattern.(type) {
	case term.PVar:
		…
	case term.PSequenceOp:
		…
	}

Pattern types carry a “P” prefix where a value of the same shape exists
(PInt vs Int, PConstructor vs Constructor).

Constructors and effects are identified by a Ref. This package supplies a
default implementation, Reference, but any totally ordered identifier will do.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package term
