package vector

import (
	"fmt"

	"github.com/npillmayer/patmatch/maybe"
)

// Vector is an immutable persistent vector. The zero value is an empty vector
// with default properties.
//
// Elements live in a trie of nodes with 2^bits children each, plus a tail
// holding up to 2^bits trailing elements which is not yet part of the trie.
type Vector[T any] struct {
	props
	length uint32
	shift  uint32 // level of the root node; 0 means “not yet initialized”
	tail   []T
	root   *vnode[T]
}

// Immutable creates an empty vector with options, if you need any.
func Immutable[T any](opts ...Option) Vector[T] {
	v := Vector[T]{}
	for _, option := range opts {
		v.props = option.config(v.props)
	}
	return v
}

// From creates a vector holding the items of a slice, in order.
func From[T any](items []T, opts ...Option) Vector[T] {
	v := Immutable[T](opts...)
	for _, item := range items {
		v = v.Push(item)
	}
	return v
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(props) props
}

// DegreeExponent is an option to indirectly set the degree of the underlying tree for a vector.
// The degree of the tree will be 2^exp. Accepted exponents are [1…5]; default is 3, i.e.
// a degree of 8.
//
// Use it like this:
//
//	vec := vector.Immutable[int](DegreeExponent(5))
func DegreeExponent(n int) Option {
	conf := func(p props) props {
		if n <= 0 {
			n = 1
		} else if n > 5 {
			n = 5
		}
		return makeProps(uint32(n))
	}
	return Option{config: conf}
}

// --- API -------------------------------------------------------------------

func (v Vector[T]) Len() int {
	return int(v.length)
}

func (v Vector[T]) Last() maybe.Maybe[T] {
	if v.length == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.tail[len(v.tail)-1])
}

func (v Vector[T]) Get(i int) T {
	assertThat(i >= 0 && uint32(i) < v.length, "vector index out of bounds: %d with length %d", i, v.length)
	v = v.init()
	return v.leafsFor(uint32(i))[uint32(i)&v.mask]
}

// Set returns a copy of v with position i replaced by value.
func (v Vector[T]) Set(i int, value T) Vector[T] {
	assertThat(i >= 0 && uint32(i) < v.length, "vector index out of bounds: %d with length %d", i, v.length)
	v = v.init()
	if uint32(i) >= v.tailOffset() {
		newTail := cloneTail(v.tail, len(v.tail))
		newTail[uint32(i)&v.mask] = value
		v.tail = newTail
		return v
	}
	v.root = v.assoc(v.shift, v.root, uint32(i), value)
	return v
}

// Push returns a copy of v with value appended.
func (v Vector[T]) Push(value T) Vector[T] {
	v = v.init()
	if !v.tailFull() { // just append value to tail
		newTail := cloneTail(v.tail, len(v.tail)+1)
		newTail[len(newTail)-1] = value
		v.tail = newTail
		v.length++
		return v
	}
	// tail is full ⇒ have to move tail into tree
	tailNode := newLeaf(v.tail)
	if v.root == nil {
		v.root = emptyNode[T](v.degree)
	}
	if (v.length >> v.bits) > (1 << v.shift) { // root is full ⇒ grow by one level
		newRoot := emptyNode[T](v.degree)
		newRoot.children[0] = v.root
		newRoot.children[1] = newPath(v.shift, v.bits, v.degree, tailNode)
		v.root = newRoot
		v.shift += v.bits
		tracer().Debugf("vector grows to shift %d at length %d", v.shift, v.length+1)
	} else {
		v.root = v.pushTail(v.shift, v.root, tailNode)
	}
	v.tail = []T{value}
	v.length++
	return v
}

// Pop returns a copy of v without its last element.
func (v Vector[T]) Pop() Vector[T] {
	assertThat(v.length > 0, "attempt to remove item from empty vector")
	v = v.init()
	if v.length == 1 {
		return Vector[T]{props: v.props, shift: v.bits}
	}
	if v.length-v.tailOffset() > 1 {
		v.tail = cloneTail(v.tail, len(v.tail)-1)
		v.length--
		return v
	}
	newTail := v.leafsFor(v.length - 2)
	newRoot := v.popTail(v.shift, v.root)
	newShift := v.shift
	if newRoot == nil {
		newRoot = emptyNode[T](v.degree)
	}
	if v.shift > v.bits && newRoot.children[1] == nil { // can lower the height
		newRoot = newRoot.children[0]
		newShift -= v.bits
	}
	return Vector[T]{props: v.props, length: v.length - 1, shift: newShift, root: newRoot, tail: newTail}
}

// Take returns a vector holding the first n elements of v.
// Structure is shared with v wherever possible.
func (v Vector[T]) Take(n int) Vector[T] {
	assertThat(n >= 0, "cannot take %d elements of a vector", n)
	if uint32(n) >= v.length {
		return v
	}
	if n <= int(v.length)/2 { // cheaper to rebuild
		w := Vector[T]{props: v.props}
		for i := 0; i < n; i++ {
			w = w.Push(v.Get(i))
		}
		return w
	}
	for v.length > uint32(n) {
		v = v.Pop()
	}
	return v
}

// Each calls f for every element of v, in order.
func (v Vector[T]) Each(f func(int, T)) {
	if v.length == 0 {
		return
	}
	v = v.init()
	for i := uint32(0); i < v.length; i += v.degree {
		for j, x := range v.leafsFor(i) {
			f(int(i)+j, x)
		}
	}
}

// Slice copies the elements of v into a new slice.
func (v Vector[T]) Slice() []T {
	s := make([]T, 0, v.length)
	v.Each(func(_ int, x T) {
		s = append(s, x)
	})
	return s
}

func (v Vector[T]) String() string {
	return fmt.Sprintf("%v", v.Slice())
}

// --- Internals -------------------------------------------------------------

func (v Vector[T]) init() Vector[T] {
	v.props = v.props.init()
	if v.shift == 0 {
		v.shift = v.bits
	}
	return v
}

func (v Vector[T]) tailOffset() uint32 {
	if v.length < v.degree {
		return 0
	}
	return ((v.length - 1) >> v.bits) << v.bits
}

func (v Vector[T]) tailFull() bool {
	return v.length-v.tailOffset() >= v.degree
}

// leafsFor returns the bucket containing element i.
func (v Vector[T]) leafsFor(i uint32) []T {
	if i >= v.tailOffset() {
		return v.tail
	}
	node := v.root
	for level := v.shift; level > 0; level -= v.bits {
		node = node.children[(i>>level)&v.mask]
	}
	return node.leafs
}

func (v Vector[T]) assoc(level uint32, node *vnode[T], i uint32, value T) *vnode[T] {
	cow := node.clone()
	if level == 0 {
		cow.leafs[i&v.mask] = value
		return cow
	}
	subidx := (i >> level) & v.mask
	cow.children[subidx] = v.assoc(level-v.bits, node.children[subidx], i, value)
	return cow
}

func (v Vector[T]) pushTail(level uint32, parent *vnode[T], tailNode *vnode[T]) *vnode[T] {
	subidx := ((v.length - 1) >> level) & v.mask
	cow := parent.clone()
	var insert *vnode[T]
	if level == v.bits {
		insert = tailNode
	} else if child := parent.children[subidx]; child != nil {
		insert = v.pushTail(level-v.bits, child, tailNode)
	} else {
		insert = newPath(level-v.bits, v.bits, v.degree, tailNode)
	}
	cow.children[subidx] = insert
	return cow
}

func (v Vector[T]) popTail(level uint32, node *vnode[T]) *vnode[T] {
	subidx := ((v.length - 2) >> level) & v.mask
	if level > v.bits {
		newChild := v.popTail(level-v.bits, node.children[subidx])
		if newChild == nil && subidx == 0 {
			return nil
		}
		cow := node.clone()
		cow.children[subidx] = newChild
		return cow
	}
	if subidx == 0 {
		return nil
	}
	cow := node.clone()
	cow.children[subidx] = nil
	return cow
}
