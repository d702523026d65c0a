// Package deque layers a classic double-ended queue on top of the
// fingertree package, using the Size monoid: a count of leaves. It exists
// only to exercise the core with a concrete monoid and to fix the intended
// API shape — the package itself adds no algorithms of its own.
package deque

import (
	fingertree "github.com/rntz/fingertree"
)

// Deque is a mutable double-ended queue of A, backed by a Tree[Size, A].
// Every mutating method replaces the held tree rather than mutating it in
// place, matching the underlying Tree, whose operations return a new tree.
type Deque[A any] struct {
	tree *fingertree.Tree[fingertree.Size, A]
}

// elemSize measures every element as exactly one leaf.
func elemSize[A any](A) fingertree.Size { return 1 }

// New returns an empty deque.
func New[A any]() *Deque[A] {
	return &Deque[A]{tree: fingertree.New[fingertree.Size, A](fingertree.SizeMonoid(), elemSize[A])}
}

// Len returns the number of elements held.
func (d *Deque[A]) Len() uint64 {
	return uint64(d.tree.Measure())
}

// IsEmpty reports whether the deque holds no elements.
func (d *Deque[A]) IsEmpty() bool {
	return d.tree.IsEmpty()
}

// Push appends x to the right end (cons_right).
func (d *Deque[A]) Push(x A) {
	d.tree = d.tree.PushBack(x)
}

// Unshift prepends x to the left end (cons_left).
func (d *Deque[A]) Unshift(x A) {
	d.tree = d.tree.PushFront(x)
}

// Pop removes and returns the leftmost element (view_left). ok is false
// iff the deque was empty.
func (d *Deque[A]) Pop() (x A, ok bool) {
	x, rest, ok := d.tree.PopFront()
	if ok {
		d.tree = rest
	}
	return x, ok
}

// PopBack removes and returns the rightmost element (view_right).
func (d *Deque[A]) PopBack() (x A, ok bool) {
	x, rest, ok := d.tree.PopBack()
	if ok {
		d.tree = rest
	}
	return x, ok
}

// Head returns a pointer to the leftmost element. Panics on an empty
// deque, matching Tree.Head.
func (d *Deque[A]) Head() *A {
	return d.tree.Head()
}

// Last returns a pointer to the rightmost element. Panics on an empty
// deque, matching Tree.Last.
func (d *Deque[A]) Last() *A {
	return d.tree.Last()
}
