package termyaml

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrTerm is wrapped by every error about YAML which does not describe a term.
var ErrTerm = errors.New("malformed term")

// Error locates a decoding error in the YAML input.
type Error struct {
	Line, Column int
	Err          error
}

func (e *Error) Error() string {
	return fmt.Sprintf("yaml %d:%d: %v", e.Line, e.Column, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errorAt(n *yaml.Node, format string, args ...interface{}) error {
	err := &Error{Line: n.Line, Column: n.Column, Err: fmt.Errorf("%w: "+format, append([]interface{}{ErrTerm}, args...)...)}
	tracer().Debugf("%v", err)
	return err
}
