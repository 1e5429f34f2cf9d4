package termyaml

import (
	"github.com/npillmayer/patmatch/either"
	"github.com/npillmayer/patmatch/maybe"
	"github.com/npillmayer/patmatch/term"
	"gopkg.in/yaml.v3"
)

// Fixture is a test case for a matcher: a pattern, a value and the expected
// outcome of matching the pattern against the value.
//
// Expect is either the name of a contract violation (Left) or the expected
// bindings, Nothing if the match is expected to fail (Right).
type Fixture struct {
	Name    string
	Pattern term.Pattern
	Value   term.Value
	Expect  either.Either[string, maybe.Maybe[[]term.Value]]
}

type fixtureDoc struct {
	Name     string     `yaml:"name"`
	Pattern  yaml.Node  `yaml:"pattern"`
	Value    yaml.Node  `yaml:"value"`
	Bindings *yaml.Node `yaml:"bindings"`
	Error    string     `yaml:"error"`
}

// DecodeFixtures reads a list of fixtures:
//
//   - name: cons splits off the head
//     pattern: {SequenceOp: [Var, Cons, Var]}
//     value: {Sequence: [{Int: 1}, {Int: 2}]}
//     bindings: [{Int: 1}, {Sequence: [{Int: 2}]}]
//
// A fixture without bindings expects the match to fail, or to raise the
// contract violation named by error.
// Decoding fails on the first fixture which cannot be read; errors are of type
// *Error, unless the input is no YAML at all.
func DecodeFixtures(data []byte) ([]Fixture, error) {
	var docs []fixtureDoc
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, err
	}
	fixtures := make([]Fixture, len(docs))
	for i, doc := range docs {
		f := Fixture{Name: doc.Name}
		var err error
		if f.Pattern, err = PatternFromNode(&doc.Pattern); err != nil {
			return nil, err
		}
		if f.Value, err = ValueFromNode(&doc.Value); err != nil {
			return nil, err
		}
		switch {
		case doc.Error != "":
			f.Expect = either.Left[string, maybe.Maybe[[]term.Value]](doc.Error)
		case doc.Bindings != nil:
			bindings, err := values(resolve(doc.Bindings))
			if err != nil {
				return nil, err
			}
			f.Expect = either.Right[string](maybe.Just(bindings))
		default:
			f.Expect = either.Right[string](maybe.Nothing[[]term.Value]())
		}
		tracer().Debugf("fixture %q: %s against %s", f.Name, f.Pattern, f.Value)
		fixtures[i] = f
	}
	return fixtures, nil
}
