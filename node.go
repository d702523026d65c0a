package fingertree

// nodeKind tags the sum type node.Leaf(A) | Node2(v,x,y) | Node3(v,x,y,z).
// Go has no algebraic sum types, so a kind tag plus unused-field convention
// stands in for it.
type nodeKind uint8

const (
	leafKind nodeKind = iota
	node2Kind
	node3Kind
)

// node is a 2-3 tree cell at some implicit depth. A node of depth 0 is a
// Leaf; a node of depth k+1 is a Node2/Node3 of depth-k children. The type
// itself is depth-erased: the same node[V,A] represents every level, and
// depth consistency across siblings is a runtime invariant maintained by
// construction, not something the Go type system tracks.
type node[V any, A any] struct {
	kind nodeKind
	v    V
	leaf A
	c    []*node[V, A] // len 2 for Node2, len 3 for Node3; nil for Leaf
}

// measure returns the cached measure of n. For a Leaf this was computed at
// construction time from the element's Measurer; for Node2/Node3 it is the
// join of the children's measures, cached by new2/new3.
func (n *node[V, A]) measure() V {
	return n.v
}

// newLeaf wraps a raw element as a depth-0 node, computing its measure via
// the supplied Measurer. This is the only place an element A enters the
// tree as a node.
func newLeaf[V any, A any](measure Measurer[A, V], a A) *node[V, A] {
	return &node[V, A]{kind: leafKind, v: measure(a), leaf: a}
}

// new2 is the sole sanctioned constructor for an internal 2-ary node. It
// guarantees the cached measure is always join(measure(x), measure(y)) —
// order matters, since Join need not be commutative.
func new2[V any, A any](m Monoid[V], x, y *node[V, A]) *node[V, A] {
	return &node[V, A]{
		kind: node2Kind,
		v:    m.Join(x.measure(), y.measure()),
		c:    []*node[V, A]{x, y},
	}
}

// new3 is the sole sanctioned constructor for an internal 3-ary node. The
// cached measure is join(join(measure(x),measure(y)),measure(z)).
func new3[V any, A any](m Monoid[V], x, y, z *node[V, A]) *node[V, A] {
	return &node[V, A]{
		kind: node3Kind,
		v:    m.Join(m.Join(x.measure(), y.measure()), z.measure()),
		c:    []*node[V, A]{x, y, z},
	}
}

// isLeaf reports whether n is a depth-0 node.
func (n *node[V, A]) isLeaf() bool {
	return n.kind == leafKind
}

// head walks the leftmost spine of n and returns a pointer to the leftmost
// element. Total on any node of any depth, since every node has at least
// one leaf underneath it.
func (n *node[V, A]) head() *A {
	for !n.isLeaf() {
		n = n.c[0]
	}
	return &n.leaf
}

// last walks the rightmost spine of n and returns a pointer to the
// rightmost element.
func (n *node[V, A]) last() *A {
	for !n.isLeaf() {
		n = n.c[len(n.c)-1]
	}
	return &n.leaf
}

// toDigit converts a Node2/Node3 into a digit holding its 2 or 3 children.
// Panics on a Leaf: undefined for a node with no children.
func (n *node[V, A]) toDigit() digit[V, A] {
	if n.isLeaf() {
		panic("fingertree: toDigit called on a Leaf")
	}
	var d digit[V, A]
	for _, c := range n.c {
		d.pushBack(c)
	}
	return d
}

// descend performs measure-guided descent into an internal node: given an
// accumulator acc and a monotone predicate p, it returns the running
// accumulator for everything strictly before the chosen child, the chosen
// child itself, and its index among n's children. It chooses the first
// child whose inclusive prefix measure satisfies p. Defined only on
// internal nodes; p(join(acc, n.measure())) must hold, i.e. the caller must
// already know the split point lies within n.
func (n *node[V, A]) descend(m Monoid[V], acc V, p func(V) bool) (pre V, child *node[V, A], idx int) {
	if n.isLeaf() {
		panic("fingertree: descend called on a Leaf")
	}
	for i, c := range n.c {
		next := m.Join(acc, c.measure())
		if p(next) {
			return acc, c, i
		}
		acc = next
	}
	// Unreachable if the precondition p(join(acc, n.measure())) held.
	panic("fingertree: descend predicate never satisfied")
}
