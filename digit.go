package fingertree

// digit is an ordered run of 1 to 4 nodes, all at the same depth, forming
// the prefix/suffix shoulder of a Deep spine level. It is not cached; its
// measure is the left-fold of Join over its children.
//
// It is represented as a small inline array (capacity 4) rather than a
// slice of arbitrary backing: digit arrays are small, transient, and never
// shared, so there is no benefit to heap-allocating a backing array per
// digit. A zero-length digit is a valid
// intermediate value here (used by deepL/deepR while repairing the spine)
// but must never be handed to toTree or escape as part of a public Tree
// value — every code path that could observe one calls deepL/deepR first.
type digit[V any, A any] struct {
	items [4]*node[V, A]
	n     int8
}

// len returns the number of nodes currently held.
func (d *digit[V, A]) len() int {
	return int(d.n)
}

// full reports whether d already holds 4 nodes.
func (d *digit[V, A]) full() bool {
	return d.n == 4
}

// empty reports whether d holds no nodes.
func (d *digit[V, A]) empty() bool {
	return d.n == 0
}

// pushFront prepends x. Caller must ensure d is not already full.
func (d *digit[V, A]) pushFront(x *node[V, A]) {
	if d.full() {
		panic("fingertree: digit overflow on pushFront")
	}
	for i := d.n; i > 0; i-- {
		d.items[i] = d.items[i-1]
	}
	d.items[0] = x
	d.n++
}

// pushBack appends x. Caller must ensure d is not already full.
func (d *digit[V, A]) pushBack(x *node[V, A]) {
	if d.full() {
		panic("fingertree: digit overflow on pushBack")
	}
	d.items[d.n] = x
	d.n++
}

// popFront removes and returns the leftmost node. Caller must ensure d is
// not empty.
func (d *digit[V, A]) popFront() *node[V, A] {
	if d.empty() {
		panic("fingertree: digit underflow on popFront")
	}
	x := d.items[0]
	for i := int8(0); i < d.n-1; i++ {
		d.items[i] = d.items[i+1]
	}
	d.items[d.n-1] = nil
	d.n--
	return x
}

// popBack removes and returns the rightmost node. Caller must ensure d is
// not empty.
func (d *digit[V, A]) popBack() *node[V, A] {
	if d.empty() {
		panic("fingertree: digit underflow on popBack")
	}
	d.n--
	x := d.items[d.n]
	d.items[d.n] = nil
	return x
}

// head returns the leftmost node without removing it.
func (d *digit[V, A]) head() *node[V, A] {
	return d.items[0]
}

// last returns the rightmost node without removing it.
func (d *digit[V, A]) last() *node[V, A] {
	return d.items[d.n-1]
}

// nodes returns the held nodes as a plain slice, left to right.
func (d *digit[V, A]) nodes() []*node[V, A] {
	out := make([]*node[V, A], d.n)
	copy(out, d.items[:d.n])
	return out
}

// digitFromSlice builds a digit from 0 to 4 nodes. Unlike digitOf, a
// length-0 slice is accepted — the caller is expected to route the result
// through deepL/deepR immediately, which is the only place a 0-length
// digit is tolerated.
func digitFromSlice[V any, A any](ns []*node[V, A]) digit[V, A] {
	if len(ns) > 4 {
		panic("fingertree: digit must hold at most 4 nodes")
	}
	var d digit[V, A]
	for _, x := range ns {
		d.pushBack(x)
	}
	return d
}

// digitOf builds a digit from 1 to 4 nodes, in order.
func digitOf[V any, A any](ns ...*node[V, A]) digit[V, A] {
	if len(ns) < 1 || len(ns) > 4 {
		panic("fingertree: digit must hold 1 to 4 nodes")
	}
	var d digit[V, A]
	for _, x := range ns {
		d.pushBack(x)
	}
	return d
}

// measure folds Join over d's children, left to right, starting from Unit.
func (d *digit[V, A]) measure(m Monoid[V]) V {
	acc := m.Unit()
	for i := int8(0); i < d.n; i++ {
		acc = m.Join(acc, d.items[i].measure())
	}
	return acc
}

// toTree converts a 1-4 node digit into a Tree of those nodes at the same
// depth: 1 -> Single; 2/3/4 -> Deep with an Empty inner tree, splitting
// 1+1, 2+1, or 2+2 between prefix and suffix.
func (d *digit[V, A]) toTree(ops Ops[V, A]) *Tree[V, A] {
	switch d.n {
	case 0:
		panic("fingertree: toTree called on an empty digit")
	case 1:
		return single(ops, d.items[0])
	case 2:
		return deep(ops, digitOf(d.items[0]), empty[V, A](ops), digitOf(d.items[1]))
	case 3:
		return deep(ops, digitOf(d.items[0], d.items[1]), empty[V, A](ops), digitOf(d.items[2]))
	case 4:
		return deep(ops, digitOf(d.items[0], d.items[1]), empty[V, A](ops), digitOf(d.items[2], d.items[3]))
	}
	panic("fingertree: digit length out of range")
}

// splitPos scans d left to right, keeping a running accumulator that
// starts at v, and returns the accumulator just before the first index
// whose inclusive measure satisfies p, together with that index. If no
// such index exists it returns the digit's total measure (joined onto v)
// and ok=false.
func (d *digit[V, A]) splitPos(m Monoid[V], v V, p func(V) bool) (acc V, idx int, ok bool) {
	acc = v
	for i := int8(0); i < d.n; i++ {
		next := m.Join(acc, d.items[i].measure())
		if p(next) {
			return acc, int(i), true
		}
		acc = next
	}
	return acc, -1, false
}
