package term

import (
	"bytes"
	"encoding/base32"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Ref identifies a constructor, an effect or a definition. Refs are totally
// ordered by Compare, which returns -1, 0 or +1. The matcher only ever tests
// for equality, i.e. Compare(…) == 0.
type Ref interface {
	Compare(other Ref) int
	String() string
}

// SameRef is true if a and b compare equal. Two nil refs are the same.
func SameRef(a, b Ref) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Compare(b) == 0
}

// Hash is the content hash of a derived definition.
type Hash []byte

var hashEncoding = base32.HexEncoding.WithPadding(base32.NoPadding)

// String renders h in lower-case base32hex.
func (h Hash) String() string {
	return strings.ToLower(hashEncoding.EncodeToString(h))
}

// ParseHash is the inverse of Hash.String.
func ParseHash(s string) (Hash, error) {
	b, err := hashEncoding.DecodeString(strings.ToUpper(s))
	if err != nil {
		return nil, fmt.Errorf("invalid hash %q: %w", s, err)
	}
	return Hash(b), nil
}

// Reference is the default implementation of Ref. It is either a builtin,
// identified by name, or a derived id: the hash of a cycle of definitions
// together with the position of a definition in that cycle.
type Reference struct {
	name    string // builtin name; empty for derived ids
	derived bool
	hash    Hash
	index   int
	count   int
}

var _ Ref = Reference{}

// Builtin creates a reference to a builtin.
func Builtin(name string) Reference {
	return Reference{name: name}
}

// Derived creates a reference to definition index of a cycle of count definitions.
func Derived(h Hash, index, count int) Reference {
	if count < 1 {
		count = 1
	}
	return Reference{derived: true, hash: h, index: index, count: count}
}

// FromHash creates a reference to a definition which is not part of a cycle.
func FromHash(h Hash) Reference {
	return Derived(h, 0, 1)
}

func (r Reference) IsBuiltin() bool {
	return !r.derived
}

// Name returns the name of a builtin reference, or "" for derived ids.
func (r Reference) Name() string {
	return r.name
}

// ID returns hash, index and count of a derived reference.
func (r Reference) ID() (Hash, int, int) {
	return r.hash, r.index, r.count
}

// Compare orders builtins before derived ids. Builtins are ordered by name,
// derived ids by hash, index and count, in this order.
// References of another Ref implementation are ordered by their string form.
func (r Reference) Compare(other Ref) int {
	o, ok := other.(Reference)
	if !ok {
		return strings.Compare(r.String(), other.String())
	}
	switch {
	case r.IsBuiltin() && o.IsBuiltin():
		return strings.Compare(r.name, o.name)
	case r.IsBuiltin():
		return -1
	case o.IsBuiltin():
		return 1
	}
	if c := bytes.Compare(r.hash, o.hash); c != 0 {
		return c
	}
	if c := compareInts(r.index, o.index); c != 0 {
		return c
	}
	return compareInts(r.count, o.count)
}

// String renders builtins as “##Name” and derived ids as “#hash”, with
// “.index.count” appended for members of a cycle.
func (r Reference) String() string {
	if r.IsBuiltin() {
		return "##" + r.name
	}
	if r.count <= 1 {
		return "#" + r.hash.String()
	}
	return fmt.Sprintf("#%s.%d.%d", r.hash, r.index, r.count)
}

// ErrReference is returned for references which cannot be parsed.
var ErrReference = errors.New("malformed reference")

// ParseReference parses the string form of a Reference.
func ParseReference(s string) (Reference, error) {
	if strings.HasPrefix(s, "##") {
		if len(s) == 2 {
			return Reference{}, fmt.Errorf("%w: empty builtin name", ErrReference)
		}
		return Builtin(s[2:]), nil
	}
	if !strings.HasPrefix(s, "#") || len(s) == 1 {
		return Reference{}, fmt.Errorf("%w: %q", ErrReference, s)
	}
	parts := strings.Split(s[1:], ".")
	h, err := ParseHash(parts[0])
	if err != nil {
		return Reference{}, fmt.Errorf("%w: %v", ErrReference, err)
	}
	switch len(parts) {
	case 1:
		return FromHash(h), nil
	case 3:
		i, err1 := strconv.Atoi(parts[1])
		n, err2 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || i < 0 || i >= n {
			return Reference{}, fmt.Errorf("%w: bad cycle position in %q", ErrReference, s)
		}
		return Derived(h, i, n), nil
	}
	return Reference{}, fmt.Errorf("%w: %q", ErrReference, s)
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
