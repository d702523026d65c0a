package fingertree

// Lookup locates the leftmost position whose inclusive prefix measure
// satisfies p, and returns the accumulated measure of strictly preceding
// elements together with a pointer to the element found there. ok is false
// when the tree is empty or p never fires over the whole tree; no
// structural change occurs either way.
//
// p should be monotone, as for Split.
func (t *Tree[V, A]) Lookup(p func(V) bool) (acc V, elem *A, ok bool) {
	if t.IsEmpty() || !p(t.Measure()) {
		return t.ops.M.Unit(), nil, false
	}
	pre, n := lookupStep(t.ops, t.ops.M.Unit(), t, p)
	for !n.isLeaf() {
		var child *node[V, A]
		pre, child, _ = n.descend(t.ops.M, pre, p)
		n = child
	}
	return pre, &n.leaf, true
}

// lookupStep walks down t's spine, recursing into mid as often as needed,
// and returns the accumulated measure of everything strictly before the
// chosen node and the chosen node itself.
// The chosen node may be at any depth relative to t — the caller keeps
// descending into it via node.descend until it reaches a Leaf.
func lookupStep[V any, A any](ops Ops[V, A], v V, t *Tree[V, A], p func(V) bool) (acc V, chosen *node[V, A]) {
	if t.kind == singleKind {
		return v, t.one
	}

	pre, mid, suf := t.pre, t.mid, t.suf

	if accPre, idx, ok := pre.splitPos(ops.M, v, p); ok {
		return accPre, pre.nodes()[idx]
	} else {
		vPre := accPre

		if p(ops.M.Join(vPre, mid.Measure())) {
			return lookupStep(ops, vPre, mid, p)
		}

		vMid := ops.M.Join(vPre, mid.Measure())
		accSuf, idx2, ok2 := suf.splitPos(ops.M, vMid, p)
		if !ok2 {
			panic("fingertree: lookup predicate satisfied on whole tree but not in prefix, middle, or suffix")
		}
		return accSuf, suf.nodes()[idx2]
	}
}
