package fingertree

import (
	"math/rand/v2"
	"testing"
)

// TestPropertyRandomOps generates random push/pop/append/split sequences
// and checks the tree against a reference slice at every step. math/rand/v2
// with a seeded PCG source is used for reproducibility, a seeded
// rand.New(rand.NewPCG(...)) rather than the global, unseeded generator.
func TestPropertyRandomOps(t *testing.T) {
	prng := rand.New(rand.NewPCG(1, 1))
	tr := newIntTree()
	var ref []int
	next := 0

	checkEqual := func(step int) {
		if got := xs(tr); !sliceEq(got, ref) {
			t.Fatalf("step %d: tree=%v, ref=%v", step, got, ref)
		}
		if int(tr.Measure()) != len(ref) {
			t.Fatalf("step %d: measure=%d, want %d", step, tr.Measure(), len(ref))
		}
	}

	for step := 0; step < 3000; step++ {
		switch prng.IntN(6) {
		case 0: // PushFront
			v := next
			next++
			tr = tr.PushFront(v)
			ref = append([]int{v}, ref...)
		case 1: // PushBack
			v := next
			next++
			tr = tr.PushBack(v)
			ref = append(ref, v)
		case 2: // PopFront
			v, rest, ok := tr.PopFront()
			if ok != (len(ref) > 0) {
				t.Fatalf("step %d: PopFront ok=%v, want %v", step, ok, len(ref) > 0)
			}
			if ok {
				if v != ref[0] {
					t.Fatalf("step %d: PopFront=%d, want %d", step, v, ref[0])
				}
				ref = ref[1:]
				tr = rest
			}
		case 3: // PopBack
			v, rest, ok := tr.PopBack()
			if ok != (len(ref) > 0) {
				t.Fatalf("step %d: PopBack ok=%v, want %v", step, ok, len(ref) > 0)
			}
			if ok {
				if v != ref[len(ref)-1] {
					t.Fatalf("step %d: PopBack=%d, want %d", step, v, ref[len(ref)-1])
				}
				ref = ref[:len(ref)-1]
				tr = rest
			}
		case 4: // Append a small freshly built tree
			n := prng.IntN(5)
			vs := make([]int, n)
			for i := range vs {
				vs[i] = next
				next++
			}
			other := pushRight(newIntTree(), vs...)
			tr = Append(tr, other)
			ref = append(ref, vs...)
		case 5: // Split at a random count, then reassemble
			if len(ref) == 0 {
				continue
			}
			k := prng.IntN(len(ref) + 1)
			l, r := tr.Split(gtSize(Size(k)))
			if got := append(xs(l), xs(r)...); !sliceEq(got, ref) {
				t.Fatalf("step %d: split(%d) reassembly mismatch: %v vs %v", step, k, got, ref)
			}
			tr = Append(l, r)
		}
		checkEqual(step)
	}
}

// TestPropertyLookupAgainstIndex cross-checks Lookup against direct slice
// indexing for many random trees and indices.
func TestPropertyLookupAgainstIndex(t *testing.T) {
	prng := rand.New(rand.NewPCG(2, 2))
	for trial := 0; trial < 200; trial++ {
		size := prng.IntN(120)
		tr := pushRight(newIntTree(), intRange(1, size)...)
		if size == 0 {
			continue
		}
		k := prng.IntN(size)
		acc, elem, ok := tr.Lookup(gtSize(Size(k)))
		if !ok {
			t.Fatalf("trial %d size %d k %d: lookup failed", trial, size, k)
		}
		if *elem != k+1 {
			t.Fatalf("trial %d size %d k %d: elem=%d, want %d", trial, size, k, *elem, k+1)
		}
		if int(acc) != k {
			t.Fatalf("trial %d size %d k %d: acc=%d, want %d", trial, size, k, acc, k)
		}
	}
}
