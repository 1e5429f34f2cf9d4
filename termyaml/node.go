package termyaml

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/patmatch/term"
	"gopkg.in/yaml.v3"
)

// --- Reading nodes ---------------------------------------------------------

// resolve skips document and alias nodes.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return n
			}
			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return n
}

// tagged splits a term node into the name of its kind and its payload.
// Payload is nil for scalar terms.
func tagged(n *yaml.Node) (string, *yaml.Node, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return n.Value, nil, nil
	case yaml.MappingNode:
		if len(n.Content) == 2 {
			return n.Content[0].Value, resolve(n.Content[1]), nil
		}
		return "", nil, errorAt(n, "term mapping has %d keys, expected 1", len(n.Content)/2)
	}
	return "", nil, errorAt(n, "expected a term, found a %s", kindName(n))
}

// items returns the elements of a sequence node. If want ≥ 0, the sequence
// must have exactly want elements.
func items(n *yaml.Node, want int) ([]*yaml.Node, error) {
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil, errorAt(orSelf(n), "expected a list, found a %s", kindName(n))
	}
	if want >= 0 && len(n.Content) != want {
		return nil, errorAt(n, "expected %d elements, found %d", want, len(n.Content))
	}
	nodes := make([]*yaml.Node, len(n.Content))
	for i, c := range n.Content {
		nodes[i] = resolve(c)
	}
	return nodes, nil
}

// fields returns the entries of a mapping node by key. Keys not contained in
// known are rejected, as are keys in required which are missing.
func fields(n *yaml.Node, known []string, required int) (map[string]*yaml.Node, error) {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, errorAt(orSelf(n), "expected a mapping, found a %s", kindName(n))
	}
	m := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		if !contains(known, key.Value) {
			return nil, errorAt(key, "unknown key %q", key.Value)
		}
		if _, dup := m[key.Value]; dup {
			return nil, errorAt(key, "duplicate key %q", key.Value)
		}
		m[key.Value] = resolve(n.Content[i+1])
	}
	for _, k := range known[:required] {
		if _, ok := m[k]; !ok {
			return nil, errorAt(n, "missing key %q", k)
		}
	}
	return m, nil
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// scalar decodes a scalar payload into x.
func scalar(n *yaml.Node, x interface{}) error {
	if n == nil || n.Kind != yaml.ScalarNode {
		return errorAt(orSelf(n), "expected a scalar, found a %s", kindName(n))
	}
	if n.ShortTag() == "!!null" {
		return errorAt(n, "missing value")
	}
	if err := n.Decode(x); err != nil {
		return errorAt(n, "%v", err)
	}
	return nil
}

func integer(n *yaml.Node) (int, error) {
	var i int
	err := scalar(n, &i)
	return i, err
}

func char(n *yaml.Node) (rune, error) {
	var s string
	if err := scalar(n, &s); err != nil {
		return 0, err
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, errorAt(n, "expected a single character, found %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func reference(n *yaml.Node) (term.Ref, error) {
	var s string
	if err := scalar(n, &s); err != nil {
		return nil, err
	}
	ref, err := term.ParseReference(s)
	if err != nil {
		return nil, errorAt(n, "%v", err)
	}
	return ref, nil
}

func kindName(n *yaml.Node) string {
	if n == nil {
		return "nothing"
	}
	switch n.Kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "mapping"
	case yaml.DocumentNode:
		return "empty document"
	}
	return "node"
}

var nowhere = &yaml.Node{}

func orSelf(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nowhere
	}
	return n
}

// --- Building nodes --------------------------------------------------------

func str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func intNode(i int64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(i, 10)}
}

func natNode(n uint64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(n, 10)}
}

func boolNode(b bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}
}

func floatNode(f float64) *yaml.Node {
	var s string
	switch {
	case math.IsNaN(f):
		s = ".nan"
	case math.IsInf(f, 1):
		s = ".inf"
	case math.IsInf(f, -1):
		s = "-.inf"
	default:
		s = strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: s}
}

func refNode(r term.Ref) *yaml.Node {
	return str(r.String())
}

// single creates a term node {key: payload}.
func single(key string, payload *yaml.Node) *yaml.Node {
	return flowIfFlat(&yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{str(key), payload}})
}

func list(nodes ...*yaml.Node) *yaml.Node {
	return flowIfFlat(&yaml.Node{Kind: yaml.SequenceNode, Content: nodes})
}

// flowIfFlat switches n to flow style if all of its children are scalars or
// flow-style collections. Block-style records stay readable that way.
func flowIfFlat(n *yaml.Node) *yaml.Node {
	for _, c := range n.Content {
		if c.Kind != yaml.ScalarNode && c.Style&yaml.FlowStyle == 0 {
			return n
		}
	}
	n.Style = yaml.FlowStyle
	return n
}

// record creates a block-style mapping from alternating keys and values.
func record(kv ...interface{}) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for i := 0; i+1 < len(kv); i += 2 {
		n.Content = append(n.Content, str(kv[i].(string)), kv[i+1].(*yaml.Node))
	}
	return n
}

func marshal(n *yaml.Node) ([]byte, error) {
	return yaml.Marshal(n)
}
