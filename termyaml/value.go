package termyaml

import (
	"fmt"

	"github.com/npillmayer/patmatch/maybe"
	"github.com/npillmayer/patmatch/term"
	"gopkg.in/yaml.v3"
)

// DecodeValue reads a single value from YAML.
func DecodeValue(data []byte) (term.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return ValueFromNode(&doc)
}

// ValueFromNode converts a YAML node into a value.
func ValueFromNode(n *yaml.Node) (term.Value, error) {
	n = resolve(n)
	if n == nil || n.Kind == yaml.DocumentNode {
		return nil, errorAt(orSelf(n), "expected a value, found nothing")
	}
	tag, payload, err := tagged(n)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, errorAt(n, "unknown value %q", tag)
	}
	switch tag {
	case "Boolean":
		var b bool
		err := scalar(payload, &b)
		return term.Boolean(b), err
	case "Int":
		var i int64
		err := scalar(payload, &i)
		return term.Int(i), err
	case "Nat":
		var u uint64
		err := scalar(payload, &u)
		return term.Nat(u), err
	case "Float":
		var f float64
		err := scalar(payload, &f)
		return term.Float(f), err
	case "Text":
		var s string
		err := scalar(payload, &s)
		return term.Text(s), err
	case "Char":
		r, err := char(payload)
		return term.Char(r), err
	case "Sequence":
		vs, err := values(payload)
		if err != nil {
			return nil, err
		}
		return term.Sequence(vs), nil
	case "Constructor":
		ref, tag, _, err := constructor(payload, 2)
		if err != nil {
			return nil, err
		}
		return term.Constructor{Ref: ref, Tag: tag}, nil
	case "PartialConstructor":
		ref, tag, children, err := constructor(payload, 3)
		if err != nil {
			return nil, err
		}
		vs, err := values(children)
		if err != nil {
			return nil, err
		}
		return term.PartialConstructor{Ref: ref, Tag: tag, Children: vs}, nil
	case "Request":
		return request(payload)
	case "Pure":
		inner, err := ValueFromNode(payload)
		if err != nil {
			return nil, err
		}
		return term.RequestPure{Inner: inner}, nil
	case "Continuation":
		return continuation(payload)
	}
	return nil, errorAt(n, "unknown value %q", tag)
}

func values(n *yaml.Node) ([]term.Value, error) {
	nodes, err := items(n, -1)
	if err != nil {
		return nil, err
	}
	vs := make([]term.Value, len(nodes))
	for i, c := range nodes {
		if vs[i], err = ValueFromNode(c); err != nil {
			return nil, err
		}
	}
	return vs, nil
}

var requestKeys = []string{"ref", "number", "idx", "current", "stack", "args"}

func request(payload *yaml.Node) (term.Value, error) {
	f, err := fields(payload, requestKeys, 5)
	if err != nil {
		return nil, err
	}
	req := term.RequestWithContinuation{Args: []term.Value{}}
	if req.Ref, err = reference(f["ref"]); err != nil {
		return nil, err
	}
	if req.Number, err = integer(f["number"]); err != nil {
		return nil, err
	}
	if req.Idx, err = integer(f["idx"]); err != nil {
		return nil, err
	}
	if req.Current, err = integer(f["current"]); err != nil {
		return nil, err
	}
	if req.Stack, err = stack(f["stack"]); err != nil {
		return nil, err
	}
	if args, ok := f["args"]; ok {
		if req.Args, err = values(args); err != nil {
			return nil, err
		}
	}
	return req, nil
}

var continuationKeys = []string{"idx", "stack"}

func continuation(payload *yaml.Node) (term.Value, error) {
	f, err := fields(payload, continuationKeys, 2)
	if err != nil {
		return nil, err
	}
	k := term.Continuation{}
	if k.Idx, err = integer(f["idx"]); err != nil {
		return nil, err
	}
	if k.Stack, err = stack(f["stack"]); err != nil {
		return nil, err
	}
	return k, nil
}

var frameKeys = []string{"source", "return", "handler"}

func stack(n *yaml.Node) (term.Stack, error) {
	nodes, err := items(n, -1)
	if err != nil {
		return term.Stack{}, err
	}
	frames := make([]term.Frame, len(nodes))
	for i, c := range nodes {
		f, err := fields(c, frameKeys, 2)
		if err != nil {
			return term.Stack{}, err
		}
		frame := term.Frame{Handler: maybe.Nothing[term.Value]()}
		if frame.Source, err = reference(f["source"]); err != nil {
			return term.Stack{}, err
		}
		if frame.Return, err = integer(f["return"]); err != nil {
			return term.Stack{}, err
		}
		if h, ok := f["handler"]; ok {
			handler, err := ValueFromNode(h)
			if err != nil {
				return term.Stack{}, err
			}
			frame.Handler = maybe.Just(handler)
		}
		frames[i] = frame
	}
	return term.NewStack(frames...), nil
}

// --- Encoding --------------------------------------------------------------

// EncodeValue writes a value as YAML.
func EncodeValue(v term.Value) ([]byte, error) {
	n, err := ValueNode(v)
	if err != nil {
		return nil, err
	}
	return marshal(n)
}

// ValueNode converts a value into a YAML node.
func ValueNode(v term.Value) (*yaml.Node, error) {
	switch v := v.(type) {
	case term.Boolean:
		return single("Boolean", boolNode(bool(v))), nil
	case term.Int:
		return single("Int", intNode(int64(v))), nil
	case term.Nat:
		return single("Nat", natNode(uint64(v))), nil
	case term.Float:
		return single("Float", floatNode(float64(v))), nil
	case term.Text:
		return single("Text", str(string(v))), nil
	case term.Char:
		return single("Char", str(string(rune(v)))), nil
	case term.Sequence:
		vs, err := valueList(v)
		if err != nil {
			return nil, err
		}
		return single("Sequence", vs), nil
	case term.Constructor:
		return single("Constructor", list(refNode(v.Ref), intNode(int64(v.Tag)))), nil
	case term.PartialConstructor:
		children, err := valueList(v.Children)
		if err != nil {
			return nil, err
		}
		return single("PartialConstructor", list(refNode(v.Ref), intNode(int64(v.Tag)), children)), nil
	case term.RequestWithContinuation:
		args, err := valueList(v.Args)
		if err != nil {
			return nil, err
		}
		stack, err := stackNode(v.Stack)
		if err != nil {
			return nil, err
		}
		return single("Request", record(
			"ref", refNode(v.Ref),
			"number", intNode(int64(v.Number)),
			"args", args,
			"idx", intNode(int64(v.Idx)),
			"current", intNode(int64(v.Current)),
			"stack", stack,
		)), nil
	case term.RequestPure:
		inner, err := ValueNode(v.Inner)
		if err != nil {
			return nil, err
		}
		return single("Pure", inner), nil
	case term.Continuation:
		stack, err := stackNode(v.Stack)
		if err != nil {
			return nil, err
		}
		return single("Continuation", record(
			"idx", intNode(int64(v.Idx)),
			"stack", stack,
		)), nil
	}
	return nil, fmt.Errorf("%w: cannot encode value %v", ErrTerm, v)
}

func valueList(vs []term.Value) (*yaml.Node, error) {
	nodes := make([]*yaml.Node, len(vs))
	for i, v := range vs {
		n, err := ValueNode(v)
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}
	return list(nodes...), nil
}

func stackNode(s term.Stack) (*yaml.Node, error) {
	frames := s.Frames()
	nodes := make([]*yaml.Node, len(frames))
	for i, f := range frames {
		n := record("source", refNode(f.Source), "return", intNode(int64(f.Return)))
		if h, ok := handlerOf(f); ok {
			hn, err := ValueNode(h)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, str("handler"), hn)
		}
		nodes[i] = flowIfFlat(n)
	}
	n := &yaml.Node{Kind: yaml.SequenceNode, Content: nodes}
	return n, nil
}

func handlerOf(f term.Frame) (term.Value, bool) {
	if !f.HasHandler() {
		return nil, false
	}
	return f.Handler.Get()
}
