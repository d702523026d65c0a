// Package digest layers a content-fingerprinted sequence on top of the
// fingertree package, using a position-weighted polynomial accumulator as
// the cached monoid instead of the plain Size count the deque package uses.
// It exists to give the crypto and persistence dependencies carried over
// from the source tree a concrete home, the same way census exercises a
// binary Merkle tree with address/weight semantics instead of raw *big.Int
// leaves.
package digest

import (
	"math/big"

	fingertree "github.com/rntz/fingertree"
)

// Digest is the cached summary value for a run of leaves: a running
// polynomial sum over Base, together with the run's length (needed to know
// how far to shift the left operand's sum when two runs are joined).
type Digest struct {
	Sum *big.Int
	Len uint64
}

// Base and Modulus fix the polynomial accumulator. Modulus is the BN254
// scalar field order, the same field MiMCBN254LeafHash and the gnark
// circuits in this module operate over, so a Digest.Sum can be fed directly
// into a BN254 circuit without an extra field-reduction step. Base is an
// arbitrary fixed odd constant distinct from 0 and 1; any value coprime to
// Modulus works, since associativity does not depend on its choice.
var (
	Modulus, _ = new(big.Int).SetString("21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)
	Base       = big.NewInt(1099511628211) // FNV-1a's 64-bit prime, reused here only as an arbitrary odd constant
)

// UnitDigest is the identity value: the empty run.
func UnitDigest() Digest {
	return Digest{Sum: big.NewInt(0), Len: 0}
}

// Join combines a left run's digest with a right run's digest, in that
// order. It is associative because the power Base^(r.Len) used to shift
// left only depends on r's length, never on how r's own subtree happens to
// be balanced internally.
func Join(l, r Digest) Digest {
	if l.Len == 0 {
		return r
	}
	if r.Len == 0 {
		return l
	}
	shift := new(big.Int).Exp(Base, new(big.Int).SetUint64(r.Len), Modulus)
	sum := new(big.Int).Mul(l.Sum, shift)
	sum.Add(sum, r.Sum)
	sum.Mod(sum, Modulus)
	return Digest{Sum: sum, Len: l.Len + r.Len}
}

// Equal reports whether two digests carry the same sum and length.
func Equal(a, b Digest) bool {
	return a.Len == b.Len && a.Sum.Cmp(b.Sum) == 0
}

// Monoid returns the Digest monoid for use with fingertree.New.
func Monoid() fingertree.Monoid[Digest] {
	return fingertree.Monoid[Digest]{Unit: UnitDigest, Join: Join}
}
