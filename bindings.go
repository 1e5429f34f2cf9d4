package patmatch

import (
	"strings"

	"github.com/npillmayer/patmatch/term"
)

// Bindings is the ordered list of values captured by a successful match, in
// pattern traversal order: left to right, an as-pattern's own binding before
// the bindings of its inner pattern.
//
// A successful match always returns a non-nil Bindings, possibly empty.
type Bindings []term.Value

func (b Bindings) String() string {
	s := make([]string, len(b))
	for i, v := range b {
		s[i] = v.String()
	}
	return "[" + strings.Join(s, ", ") + "]"
}

// Equal compares two binding sequences value by value.
func (b Bindings) Equal(other Bindings) bool {
	return term.EqualAll(b, other)
}
