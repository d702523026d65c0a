package fingertree

// intSize measures every int as one leaf, for Size-monoid tests of the
// core package (the deque package exercises this same monoid through its
// own API; these tests exercise the Tree API directly).
func intSize(int) Size { return 1 }

func newIntTree() *Tree[Size, int] {
	return New[Size, int](SizeMonoid(), intSize)
}

// xs drains t via repeated PopFront, returning its logical sequence. Used
// only by tests; draining is the simplest trustworthy way to read back a
// Tree's contents without duplicating traversal logic the tests are
// supposed to be checking.
func xs(t *Tree[Size, int]) []int {
	var out []int
	for !t.IsEmpty() {
		var v int
		var ok bool
		v, t, ok = t.PopFront()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

func pushRight(t *Tree[Size, int], vs ...int) *Tree[Size, int] {
	for _, v := range vs {
		t = t.PushBack(v)
	}
	return t
}

func pushLeft(t *Tree[Size, int], vs ...int) *Tree[Size, int] {
	for _, v := range vs {
		t = t.PushFront(v)
	}
	return t
}

func intRange(lo, hi int) []int { // inclusive
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}
