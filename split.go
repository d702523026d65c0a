package fingertree

// Split partitions the sequence at the first position i such that
// p(measure(prefix of length i+1)) holds. p must be monotone with respect
// to prefix extension: once true on a prefix measure, true on every
// extension. Violating monotonicity yields an unspecified but safe split —
// it never corrupts either resulting tree.
//
// O(log n).
func (t *Tree[V, A]) Split(p func(V) bool) (left, right *Tree[V, A]) {
	if t.IsEmpty() {
		return t, t
	}
	if !p(t.Measure()) {
		return t, empty[V, A](t.ops)
	}
	l, x, r := splitNonEmpty(t.ops, t.ops.M.Unit(), t, p)
	return l, consLeft(t.ops, r, x)
}

// splitNonEmpty splits a non-empty tree t whose measure (joined after
// accumulator v) is known to satisfy p somewhere within it. It returns the
// piece strictly before the split node, the split node itself, and the
// piece strictly after.
func splitNonEmpty[V any, A any](ops Ops[V, A], v V, t *Tree[V, A], p func(V) bool) (l *Tree[V, A], x *node[V, A], r *Tree[V, A]) {
	if t.kind == singleKind {
		return empty[V, A](ops), t.one, empty[V, A](ops)
	}

	pre, mid, suf := t.pre, t.mid, t.suf

	// 1. Try the prefix.
	if accPre, idx, ok := pre.splitPos(ops.M, v, p); ok {
		ns := pre.nodes()
		left := treeFromNodes(ops, ns[:idx])
		chosen := ns[idx]
		right := deepL(ops, digitFromSlice(ns[idx+1:]), mid, suf)
		return left, chosen, right
	} else {
		vPre := accPre // accumulator after the whole prefix

		// 2. Try the middle.
		if p(ops.M.Join(vPre, mid.Measure())) {
			ml, xs, mr := splitNonEmpty(ops, vPre, mid, p)
			xsDigit := xs.toDigit()
			xsTree := xsDigit.toTree(ops)
			vML := ops.M.Join(vPre, ml.Measure())
			ll, chosen, rr := splitNonEmpty(ops, vML, xsTree, p)
			left := deepR(ops, pre, ml, digitFromSlice(nodesOf(ops, ll)))
			right := deepL(ops, digitFromSlice(nodesOf(ops, rr)), mr, suf)
			return left, chosen, right
		}

		// 3. It must fire in the suffix.
		vMid := ops.M.Join(vPre, mid.Measure())
		_, idx2, ok2 := suf.splitPos(ops.M, vMid, p)
		if !ok2 {
			panic("fingertree: split predicate satisfied on whole tree but not in prefix, middle, or suffix")
		}
		ns := suf.nodes()
		left := deepR(ops, pre, mid, digitFromSlice(ns[:idx2]))
		chosen := ns[idx2]
		right := treeFromNodes(ops, ns[idx2+1:])
		return left, chosen, right
	}
}

// treeFromNodes builds a tree holding exactly the given nodes, in order.
// An empty slice yields the Empty tree.
func treeFromNodes[V any, A any](ops Ops[V, A], ns []*node[V, A]) *Tree[V, A] {
	t := empty[V, A](ops)
	for _, n := range ns {
		t = consRight(ops, t, n)
	}
	return t
}

// nodesOf flattens a tree into its top-level nodes, left to right. Used to
// turn the small trees produced by splitting a promoted middle-level node
// back into digit-sized node runs.
func nodesOf[V any, A any](ops Ops[V, A], t *Tree[V, A]) []*node[V, A] {
	var out []*node[V, A]
	cur := t
	for !cur.IsEmpty() {
		x, rest, ok := viewLeft(ops, cur)
		if !ok {
			break
		}
		out = append(out, x)
		cur = rest
	}
	return out
}
