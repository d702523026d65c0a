package fingertree

// Append concatenates a and b. O(log(min(|a|,|b|))).
func Append[V any, A any](a, b *Tree[V, A]) *Tree[V, A] {
	return app3(a.ops, a, nil, b)
}

// app3 concatenates a and b with a slice of "middle" nodes — all at the
// same depth as a's and b's top-level nodes — sandwiched between them.
func app3[V any, A any](ops Ops[V, A], a *Tree[V, A], elems []*node[V, A], b *Tree[V, A]) *Tree[V, A] {
	switch {
	case a.IsEmpty():
		return prependArray(ops, elems, b)
	case b.IsEmpty():
		return appendArray(ops, a, elems)
	case a.kind == singleKind:
		return consLeft(ops, app3(ops, empty[V, A](ops), elems, b), a.one)
	case b.kind == singleKind:
		return consRight(ops, app3(ops, a, elems, empty[V, A](ops)), b.one)
	default: // both Deep
		flat := make([]*node[V, A], 0, a.suf.len()+len(elems)+b.pre.len())
		flat = append(flat, a.suf.nodes()...)
		flat = append(flat, elems...)
		flat = append(flat, b.pre.nodes()...)
		mid := bucket(ops.M, flat)
		inner := app3(ops, a.mid, mid, b.mid)
		return deep(ops, a.pre, inner, b.suf)
	}
}

// bucket groups a flat run of same-depth nodes into 2-3 nodes one level
// deeper, scanning left to right: 2 remaining -> one Node2; 4 remaining ->
// two Node2s; 3 remaining -> one Node3; otherwise (>=5) emit a Node3 and
// continue. A remaining count of 1 is impossible for any input this
// function is called with: L >= 2 always, since both operands being Deep
// contribute at least one digit node each.
func bucket[V any, A any](m Monoid[V], flat []*node[V, A]) []*node[V, A] {
	if len(flat) < 2 {
		panic("fingertree: bucket requires at least 2 nodes")
	}
	out := make([]*node[V, A], 0, (len(flat)+2)/3)
	i, n := 0, len(flat)
	for n > 0 {
		switch n {
		case 2:
			out = append(out, new2(m, flat[i], flat[i+1]))
			i += 2
			n -= 2
		case 4:
			out = append(out, new2(m, flat[i], flat[i+1]), new2(m, flat[i+2], flat[i+3]))
			i += 4
			n -= 4
		case 3:
			out = append(out, new3(m, flat[i], flat[i+1], flat[i+2]))
			i += 3
			n -= 3
		default: // >= 5
			out = append(out, new3(m, flat[i], flat[i+1], flat[i+2]))
			i += 3
			n -= 3
		}
	}
	return out
}

// prependArray pushes elems onto the front of t, in order (elems[0] ends up
// leftmost).
func prependArray[V any, A any](ops Ops[V, A], elems []*node[V, A], t *Tree[V, A]) *Tree[V, A] {
	result := t
	for i := len(elems) - 1; i >= 0; i-- {
		result = consLeft(ops, result, elems[i])
	}
	return result
}

// appendArray pushes elems onto the back of t, in order (elems[len-1] ends
// up rightmost).
func appendArray[V any, A any](ops Ops[V, A], t *Tree[V, A], elems []*node[V, A]) *Tree[V, A] {
	result := t
	for _, x := range elems {
		result = consRight(ops, result, x)
	}
	return result
}
