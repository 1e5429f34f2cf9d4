package vector

import (
	"fmt"
	"strings"
)

const defaultBits uint32 = 3

// props are the shape parameters of a vector's trie.
type props struct {
	bits   uint32 // bits of index consumed per trie level
	degree uint32 // 2^bits
	mask   uint32 // degree-1
}

func makeProps(bits uint32) props {
	p := props{bits: bits}
	p.degree = 1 << p.bits
	p.mask = p.degree - 1
	return p
}

func (p props) init() props {
	if p.bits == 0 {
		return makeProps(defaultBits)
	}
	return p
}

// vnode represents node in the tree a vector is made of. Inner nodes carry
// children, leaf nodes carry a bucket of elements.
type vnode[T any] struct {
	leaf     bool
	children []*vnode[T]
	leafs    []T
}

func emptyNode[T any](degree uint32) *vnode[T] {
	return &vnode[T]{
		children: make([]*vnode[T], degree),
	}
}

func newLeaf[T any](bucket []T) *vnode[T] {
	return &vnode[T]{
		leaf:  true,
		leafs: bucket,
	}
}

// newPath creates a chain of single-child inner nodes from level down to node.
func newPath[T any](level, bits, degree uint32, node *vnode[T]) *vnode[T] {
	if level == 0 {
		return node
	}
	path := emptyNode[T](degree)
	path.children[0] = newPath(level-bits, bits, degree, node)
	return path
}

// clone is the copy-on-write primitive. Children and leafs are copied
// shallowly.
func (node *vnode[T]) clone() *vnode[T] {
	cow := &vnode[T]{leaf: node.leaf}
	if node.leaf {
		cow.leafs = make([]T, len(node.leafs))
		copy(cow.leafs, node.leafs)
	} else {
		cow.children = make([]*vnode[T], len(node.children))
		copy(cow.children, node.children)
	}
	return cow
}

func cloneTail[T any](tail []T, n int) []T {
	newTail := make([]T, n)
	copy(newTail, tail)
	return newTail
}

func (node vnode[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	if node.leaf {
		for i, l := range node.leafs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(fmt.Sprintf("%v", l))
		}
	} else {
		for i, c := range node.children {
			if i > 0 {
				b.WriteByte(',')
			}
			if c == nil {
				b.WriteByte('_')
			} else {
				b.WriteString("▪︎")
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vector: "+msg, msgargs...)
		panic(msg)
	}
}
