package term

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// PatternTree renders a pattern as an indented tree, for tracing and debugging.
func PatternTree(p Pattern) string {
	root := treeprint.New()
	addPattern(root, p)
	return root.String()
}

// ValueTree renders a value as an indented tree, for tracing and debugging.
func ValueTree(v Value) string {
	root := treeprint.New()
	addValue(root, v)
	return root.String()
}

func addPattern(t treeprint.Tree, p Pattern) {
	switch p := p.(type) {
	case PAs:
		addPattern(t.AddBranch("As"), p.Inner)
	case PPartialConstructor:
		b := t.AddMetaBranch(p.Tag, fmt.Sprint(p.Ref))
		for _, c := range p.Children {
			addPattern(b, c)
		}
	case PSequenceLiteral:
		b := t.AddMetaBranch(len(p), "SequenceLiteral")
		for _, c := range p {
			addPattern(b, c)
		}
	case PSequenceOp:
		b := t.AddBranch(p.Op.String())
		addPattern(b, p.Left)
		addPattern(b, p.Right)
	case PEffectBind:
		b := t.AddMetaBranch(p.Number, "EffectBind "+fmt.Sprint(p.Ref))
		for _, a := range p.Args {
			addPattern(b, a)
		}
		addPattern(b.AddBranch("continuation"), p.Kont)
	case PEffectPure:
		addPattern(t.AddBranch("EffectPure"), p.Inner)
	case nil:
		t.AddNode("<nil>")
	default:
		t.AddMetaNode(kindOf(p), p.String())
	}
}

func addValue(t treeprint.Tree, v Value) {
	switch v := v.(type) {
	case Sequence:
		b := t.AddMetaBranch(len(v), "Sequence")
		for _, x := range v {
			addValue(b, x)
		}
	case PartialConstructor:
		b := t.AddMetaBranch(v.Tag, fmt.Sprint(v.Ref))
		for _, c := range v.Children {
			addValue(b, c)
		}
	case RequestWithContinuation:
		b := t.AddMetaBranch(v.Number, "Request "+fmt.Sprint(v.Ref))
		for _, a := range v.Args {
			addValue(b, a)
		}
		addStack(b.AddMetaBranch(v.Current, "stack"), v.Stack)
	case RequestPure:
		addValue(t.AddBranch("Pure"), v.Inner)
	case Continuation:
		addStack(t.AddMetaBranch(v.Idx, "Continuation"), v.Stack)
	case nil:
		t.AddNode("<nil>")
	default:
		t.AddMetaNode(kindOf(v), v.String())
	}
}

func addStack(t treeprint.Tree, s Stack) {
	for i, f := range s.Frames() {
		t.AddMetaNode(i, f.String())
	}
}

func kindOf(x interface{}) string {
	return fmt.Sprintf("%T", x)[len("term."):]
}
