package fingertree

// PushFront adds a to the left end of the sequence (cons_left). Amortised
// O(1); worst case O(log n) when a digit cascade propagates into the
// middle.
func (t *Tree[V, A]) PushFront(a A) *Tree[V, A] {
	return consLeft(t.ops, t, newLeaf(t.ops.Measure, a))
}

// PushBack adds a to the right end of the sequence (cons_right).
func (t *Tree[V, A]) PushBack(a A) *Tree[V, A] {
	return consRight(t.ops, t, newLeaf(t.ops.Measure, a))
}

// consLeft adds node x, which must be at the same depth as t's top-level
// nodes, to the left end of t.
func consLeft[V any, A any](ops Ops[V, A], t *Tree[V, A], x *node[V, A]) *Tree[V, A] {
	switch t.kind {
	case emptyKind:
		return single(ops, x)
	case singleKind:
		return deep(ops, digitOf(x), empty[V, A](ops), digitOf(t.one))
	default: // deepKind
		if t.pre.len() < 4 {
			pre := t.pre
			pre.pushFront(x)
			return deep(ops, pre, t.mid, t.suf)
		}
		// Prefix is [b,c,d,e]: new prefix is [x,b], and new3(c,d,e) is
		// pushed one level deeper into mid.
		pre := t.pre
		b := pre.popFront()
		c := pre.popFront()
		d := pre.popFront()
		e := pre.popFront()
		mid := consLeft(ops, t.mid, new3(ops.M, c, d, e))
		return deep(ops, digitOf(x, b), mid, t.suf)
	}
}

// consRight adds node x to the right end of t. Symmetric to consLeft.
func consRight[V any, A any](ops Ops[V, A], t *Tree[V, A], x *node[V, A]) *Tree[V, A] {
	switch t.kind {
	case emptyKind:
		return single(ops, x)
	case singleKind:
		return deep(ops, digitOf(t.one), empty[V, A](ops), digitOf(x))
	default: // deepKind
		if t.suf.len() < 4 {
			suf := t.suf
			suf.pushBack(x)
			return deep(ops, t.pre, t.mid, suf)
		}
		// Suffix is [a,b,c,d]: new suffix is [d,x], and new3(a,b,c) is
		// pushed one level deeper into mid.
		suf := t.suf
		d := suf.popBack()
		c := suf.popBack()
		b := suf.popBack()
		a := suf.popBack()
		mid := consRight(ops, t.mid, new3(ops.M, a, b, c))
		return deep(ops, t.pre, mid, digitOf(d, x))
	}
}
