// Package fingertree implements a monoid-parameterised 2-3 finger tree: a
// general-purpose sequence with amortised O(1) access/modification at both
// ends, O(log n) concatenation, and O(log n) search/split by a cumulative
// monoidal measure.
//
// The tree is generic over an element type A and an associated measure type
// V forming a Monoid; every element reports a measure via a Measurer, the
// tree caches measures at internal nodes, and Split/Lookup navigate by
// monoidal accumulation rather than by index. See the deque subpackage for
// a Size-monoid specialisation as a double-ended queue; it offers access at
// both ends only, with no access by position.
package fingertree

// treeKind tags the sum type Tree = Empty | Single(node) | Deep(v,pre,mid,suf).
type treeKind uint8

const (
	emptyKind treeKind = iota
	singleKind
	deepKind
)

// Ops bundles everything a Tree[V,A] needs to build and cache measures: the
// monoid over V, and the function that measures a raw leaf element A. It is
// supplied once, at construction, and carried unchanged through every
// recursive call into deeper spine levels — those levels measure nodes via
// their cached value, never by re-invoking Measure, so Ops never needs to
// change shape as recursion descends.
type Ops[V any, A any] struct {
	M       Monoid[V]
	Measure Measurer[A, V]
}

// Tree is the spine: Empty, Single(node), or Deep(v, prefix, inner, suffix).
// All public sequence operations live here. Every mutating method returns
// a new *Tree and leaves its receiver's contents unchanged; the two may
// share nodes.
type Tree[V any, A any] struct {
	kind treeKind
	v    V
	ops  Ops[V, A]

	one *node[V, A] // valid iff kind == singleKind

	pre digit[V, A]  // valid iff kind == deepKind
	mid *Tree[V, A]  // valid iff kind == deepKind; tree of depth+1 nodes
	suf digit[V, A]  // valid iff kind == deepKind
}

// New constructs an empty tree parameterised by the given monoid and
// measurer.
func New[V any, A any](m Monoid[V], measure Measurer[A, V]) *Tree[V, A] {
	return empty[V, A](Ops[V, A]{M: m, Measure: measure})
}

// Singleton constructs a one-element tree.
func Singleton[V any, A any](m Monoid[V], measure Measurer[A, V], a A) *Tree[V, A] {
	ops := Ops[V, A]{M: m, Measure: measure}
	return single(ops, newLeaf(measure, a))
}

// empty builds the Empty tree under ops.
func empty[V any, A any](ops Ops[V, A]) *Tree[V, A] {
	return &Tree[V, A]{kind: emptyKind, v: ops.M.Unit(), ops: ops}
}

// single builds a Single tree holding exactly one node of the current
// depth.
func single[V any, A any](ops Ops[V, A], n *node[V, A]) *Tree[V, A] {
	return &Tree[V, A]{kind: singleKind, v: n.measure(), ops: ops, one: n}
}

// deep is the sole sanctioned Deep constructor. It computes and caches
// join(m(pre), join(m(mid), m(suf))); use this wherever a new Deep is
// formed, never build the struct literal directly outside this file.
func deep[V any, A any](ops Ops[V, A], pre digit[V, A], mid *Tree[V, A], suf digit[V, A]) *Tree[V, A] {
	v := ops.M.Join(pre.measure(ops.M), ops.M.Join(mid.Measure(), suf.measure(ops.M)))
	return &Tree[V, A]{kind: deepKind, v: v, ops: ops, pre: pre, mid: mid, suf: suf}
}

// Measure returns the tree's cached cumulative measure: Unit for Empty,
// otherwise the join of every leaf's measure in left-to-right order.
func (t *Tree[V, A]) Measure() V {
	return t.v
}

// IsEmpty reports whether the tree holds no elements.
func (t *Tree[V, A]) IsEmpty() bool {
	return t.kind == emptyKind
}

// Head returns a pointer to the leftmost element. Defined only on
// non-empty trees; panics on Empty — an accessor that promises a value is
// defined only where one exists, and signals programmer error otherwise.
func (t *Tree[V, A]) Head() *A {
	switch t.kind {
	case emptyKind:
		panic("fingertree: Head called on an empty tree")
	case singleKind:
		return t.one.head()
	default:
		return t.pre.head().head()
	}
}

// Last returns a pointer to the rightmost element. Defined only on
// non-empty trees; panics on Empty. The rightmost element is the last
// element of the suffix digit's last node, not the prefix's head.
func (t *Tree[V, A]) Last() *A {
	switch t.kind {
	case emptyKind:
		panic("fingertree: Last called on an empty tree")
	case singleKind:
		return t.one.last()
	default:
		return t.suf.last().last()
	}
}
