package fingertree

// PopFront removes and returns the leftmost element (view_left). ok is
// false iff the tree was empty, in which case the tree is returned
// unchanged.
func (t *Tree[V, A]) PopFront() (a A, rest *Tree[V, A], ok bool) {
	x, rest, ok := viewLeft(t.ops, t)
	if !ok {
		var zero A
		return zero, t, false
	}
	return x.leaf, rest, true
}

// PopBack removes and returns the rightmost element (view_right).
func (t *Tree[V, A]) PopBack() (a A, rest *Tree[V, A], ok bool) {
	x, rest, ok := viewRight(t.ops, t)
	if !ok {
		var zero A
		return zero, t, false
	}
	return x.leaf, rest, true
}

// viewLeft removes the leftmost top-level node and returns it along with
// the remaining tree. ok is false iff t was Empty.
func viewLeft[V any, A any](ops Ops[V, A], t *Tree[V, A]) (x *node[V, A], rest *Tree[V, A], ok bool) {
	switch t.kind {
	case emptyKind:
		return nil, t, false
	case singleKind:
		return t.one, empty[V, A](ops), true
	default: // deepKind
		pre := t.pre
		x = pre.popFront()
		return x, deepL(ops, pre, t.mid, t.suf), true
	}
}

// viewRight removes the rightmost top-level node and returns it along with
// the remaining tree. Symmetric to viewLeft.
func viewRight[V any, A any](ops Ops[V, A], t *Tree[V, A]) (x *node[V, A], rest *Tree[V, A], ok bool) {
	switch t.kind {
	case emptyKind:
		return nil, t, false
	case singleKind:
		return t.one, empty[V, A](ops), true
	default: // deepKind
		suf := t.suf
		x = suf.popBack()
		return x, deepR(ops, t.pre, t.mid, suf), true
	}
}

// deepL is the smart Deep constructor used whenever the prefix might have
// become empty: if pre still holds 1-4 nodes it behaves exactly like deep;
// if pre is empty it repairs the invariant by promoting
// mid's leftmost node (itself a Node2/Node3 one level down) to a fresh
// prefix via its own children, or, if mid is also empty, collapsing the
// whole Deep to whatever shape suf's 1-4 nodes form. The possibly-empty
// digit never escapes past this call.
func deepL[V any, A any](ops Ops[V, A], pre digit[V, A], mid *Tree[V, A], suf digit[V, A]) *Tree[V, A] {
	if !pre.empty() {
		return deep(ops, pre, mid, suf)
	}
	if !mid.IsEmpty() {
		a, mid2, ok := viewLeft(ops, mid)
		if !ok {
			panic("fingertree: deepL saw non-empty mid report no leftmost node")
		}
		return deep(ops, a.toDigit(), mid2, suf)
	}
	return suf.toTree(ops)
}

// deepR is the smart Deep constructor used whenever the suffix might have
// become empty. Symmetric to deepL.
func deepR[V any, A any](ops Ops[V, A], pre digit[V, A], mid *Tree[V, A], suf digit[V, A]) *Tree[V, A] {
	if !suf.empty() {
		return deep(ops, pre, mid, suf)
	}
	if !mid.IsEmpty() {
		a, mid2, ok := viewRight(ops, mid)
		if !ok {
			panic("fingertree: deepR saw non-empty mid report no rightmost node")
		}
		return deep(ops, pre, mid2, a.toDigit())
	}
	return pre.toTree(ops)
}
