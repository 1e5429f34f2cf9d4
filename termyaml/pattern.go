package termyaml

import (
	"fmt"

	"github.com/npillmayer/patmatch/term"
	"gopkg.in/yaml.v3"
)

// DecodePattern reads a single pattern from YAML.
func DecodePattern(data []byte) (term.Pattern, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return PatternFromNode(&doc)
}

// PatternFromNode converts a YAML node into a pattern.
func PatternFromNode(n *yaml.Node) (term.Pattern, error) {
	n = resolve(n)
	if n == nil || n.Kind == yaml.DocumentNode {
		return nil, errorAt(orSelf(n), "expected a pattern, found nothing")
	}
	tag, payload, err := tagged(n)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		switch tag {
		case "Unbound":
			return term.PUnbound{}, nil
		case "Var":
			return term.PVar{}, nil
		}
		return nil, errorAt(n, "unknown pattern %q", tag)
	}
	switch tag {
	case "As":
		inner, err := PatternFromNode(payload)
		return term.PAs{Inner: inner}, err
	case "Boolean":
		var b bool
		err := scalar(payload, &b)
		return term.PBoolean(b), err
	case "Int":
		var i int64
		err := scalar(payload, &i)
		return term.PInt(i), err
	case "Nat":
		var u uint64
		err := scalar(payload, &u)
		return term.PNat(u), err
	case "Float":
		var f float64
		err := scalar(payload, &f)
		return term.PFloat(f), err
	case "Text":
		var s string
		err := scalar(payload, &s)
		return term.PText(s), err
	case "Char":
		r, err := char(payload)
		return term.PChar(r), err
	case "Constructor":
		ref, tag, _, err := constructor(payload, 2)
		if err != nil {
			return nil, err
		}
		return term.PConstructor{Ref: ref, Tag: tag}, nil
	case "PartialConstructor":
		ref, tag, children, err := constructor(payload, 3)
		if err != nil {
			return nil, err
		}
		ps, err := patterns(children)
		if err != nil {
			return nil, err
		}
		return term.PPartialConstructor{Ref: ref, Tag: tag, Children: ps}, nil
	case "SequenceLiteral":
		ps, err := patterns(payload)
		if err != nil {
			return nil, err
		}
		return term.PSequenceLiteral(ps), nil
	case "SequenceOp":
		return sequenceOp(payload)
	case "EffectBind":
		return effectBind(payload)
	case "EffectPure":
		inner, err := PatternFromNode(payload)
		return term.PEffectPure{Inner: inner}, err
	}
	return nil, errorAt(n, "unknown pattern %q", tag)
}

// constructor decodes [ref, tag] or [ref, tag, children].
func constructor(payload *yaml.Node, arity int) (term.Ref, int, *yaml.Node, error) {
	parts, err := items(payload, arity)
	if err != nil {
		return nil, 0, nil, err
	}
	ref, err := reference(parts[0])
	if err != nil {
		return nil, 0, nil, err
	}
	tag, err := integer(parts[1])
	if err != nil {
		return nil, 0, nil, err
	}
	if arity == 3 {
		return ref, tag, parts[2], nil
	}
	return ref, tag, nil, nil
}

func patterns(n *yaml.Node) ([]term.Pattern, error) {
	nodes, err := items(n, -1)
	if err != nil {
		return nil, err
	}
	ps := make([]term.Pattern, len(nodes))
	for i, c := range nodes {
		if ps[i], err = PatternFromNode(c); err != nil {
			return nil, err
		}
	}
	return ps, nil
}

func sequenceOp(payload *yaml.Node) (term.Pattern, error) {
	parts, err := items(payload, 3)
	if err != nil {
		return nil, err
	}
	var name string
	if err := scalar(parts[1], &name); err != nil {
		return nil, err
	}
	op, ok := term.ParseSeqOp(name)
	if !ok {
		return nil, errorAt(parts[1], "unknown sequence operator %q", name)
	}
	left, err := PatternFromNode(parts[0])
	if err != nil {
		return nil, err
	}
	right, err := PatternFromNode(parts[2])
	if err != nil {
		return nil, err
	}
	return term.PSequenceOp{Left: left, Op: op, Right: right}, nil
}

// effectBind decodes [ref, number, args, continuation]. The continuation
// pattern is not checked; the matcher does that.
func effectBind(payload *yaml.Node) (term.Pattern, error) {
	parts, err := items(payload, 4)
	if err != nil {
		return nil, err
	}
	ref, err := reference(parts[0])
	if err != nil {
		return nil, err
	}
	number, err := integer(parts[1])
	if err != nil {
		return nil, err
	}
	args, err := patterns(parts[2])
	if err != nil {
		return nil, err
	}
	kont, err := PatternFromNode(parts[3])
	if err != nil {
		return nil, err
	}
	return term.PEffectBind{Ref: ref, Number: number, Args: args, Kont: kont}, nil
}

// --- Encoding --------------------------------------------------------------

// EncodePattern writes a pattern as YAML.
func EncodePattern(p term.Pattern) ([]byte, error) {
	n, err := PatternNode(p)
	if err != nil {
		return nil, err
	}
	return marshal(n)
}

// PatternNode converts a pattern into a YAML node.
func PatternNode(p term.Pattern) (*yaml.Node, error) {
	switch p := p.(type) {
	case term.PUnbound:
		return str("Unbound"), nil
	case term.PVar:
		return str("Var"), nil
	case term.PAs:
		inner, err := PatternNode(p.Inner)
		if err != nil {
			return nil, err
		}
		return single("As", inner), nil
	case term.PBoolean:
		return single("Boolean", boolNode(bool(p))), nil
	case term.PInt:
		return single("Int", intNode(int64(p))), nil
	case term.PNat:
		return single("Nat", natNode(uint64(p))), nil
	case term.PFloat:
		return single("Float", floatNode(float64(p))), nil
	case term.PText:
		return single("Text", str(string(p))), nil
	case term.PChar:
		return single("Char", str(string(rune(p)))), nil
	case term.PConstructor:
		return single("Constructor", list(refNode(p.Ref), intNode(int64(p.Tag)))), nil
	case term.PPartialConstructor:
		children, err := patternList(p.Children)
		if err != nil {
			return nil, err
		}
		return single("PartialConstructor", list(refNode(p.Ref), intNode(int64(p.Tag)), children)), nil
	case term.PSequenceLiteral:
		ps, err := patternList(p)
		if err != nil {
			return nil, err
		}
		return single("SequenceLiteral", ps), nil
	case term.PSequenceOp:
		left, err := PatternNode(p.Left)
		if err != nil {
			return nil, err
		}
		right, err := PatternNode(p.Right)
		if err != nil {
			return nil, err
		}
		return single("SequenceOp", list(left, str(p.Op.String()), right)), nil
	case term.PEffectBind:
		args, err := patternList(p.Args)
		if err != nil {
			return nil, err
		}
		kont, err := PatternNode(p.Kont)
		if err != nil {
			return nil, err
		}
		return single("EffectBind", list(refNode(p.Ref), intNode(int64(p.Number)), args, kont)), nil
	case term.PEffectPure:
		inner, err := PatternNode(p.Inner)
		if err != nil {
			return nil, err
		}
		return single("EffectPure", inner), nil
	}
	return nil, fmt.Errorf("%w: cannot encode pattern %v", ErrTerm, p)
}

func patternList(ps []term.Pattern) (*yaml.Node, error) {
	nodes := make([]*yaml.Node, len(ps))
	for i, p := range ps {
		n, err := PatternNode(p)
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}
	return list(nodes...), nil
}
