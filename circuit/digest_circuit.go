// Package circuit verifies, inside a gnark R1CS circuit, that a leaf
// combines with a claimed prefix and suffix digest to the claimed overall
// root, the in-circuit analogue of digest.VerifyProof.
package circuit

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/vocdoni/gnark-crypto-primitives/hash/bn254/poseidon"
)

// MaxSuffixLenBits bounds how many elements may follow the proved leaf;
// 32 bits comfortably covers any sequence this module is meant to handle,
// well under a billion elements.
const MaxSuffixLenBits = 32

// Base must match digest.Base; it is baked in as a circuit constant rather
// than threaded through as a parameter, since both sides of a proof always
// agree on which accumulator they are instantiating.
var Base = big.NewInt(1099511628211)

// DigestProof mirrors digest.Proof, translated to circuit variables: the
// leaf is proved via its own Poseidon hash rather than carried pre-hashed,
// so the circuit binds the *preimage*, not just its digest.
type DigestProof struct {
	Leaf      frontend.Variable // preimage hashed in-circuit via Poseidon
	PrefixSum frontend.Variable
	SuffixSum frontend.Variable
	SuffixLen frontend.Variable // public: length of the run after Leaf
}

// Verify recomputes Join(Join(Prefix, hash(Leaf)), Suffix) and returns 1
// iff it equals root. The two required powers of Base (Base^SuffixLen and
// Base^(SuffixLen+1)) are built with a standard square-and-multiply walk
// over SuffixLen's bits, the same bit-driven Select pattern the sibling
// walk in the binary Merkle circuit uses, just applied to exponentiation
// instead of hash selection.
func (p DigestProof) Verify(api frontend.API, root frontend.Variable) (frontend.Variable, error) {
	leafDigest, err := poseidon.Hash(api, p.Leaf)
	if err != nil {
		return frontend.Variable(0), err
	}

	bits := api.ToBinary(p.SuffixLen, MaxSuffixLenBits)
	shift := frontend.Variable(1)
	sq := frontend.Variable(Base)
	for i := 0; i < MaxSuffixLenBits; i++ {
		multiplied := api.Mul(shift, sq)
		shift = api.Select(bits[i], multiplied, shift)
		sq = api.Mul(sq, sq)
	}

	prefixShifted := api.Mul(p.PrefixSum, api.Mul(shift, Base))
	leafShifted := api.Mul(leafDigest, shift)
	combined := api.Add(api.Add(prefixShifted, leafShifted), p.SuffixSum)

	return api.IsZero(api.Sub(combined, root)), nil
}

// VerifyDigestProof is the free-function form, mirroring
// VerifyCensusProof's shape for callers that assemble the proof fields
// directly rather than building a DigestProof value first.
func VerifyDigestProof(
	api frontend.API,
	root frontend.Variable,
	leaf frontend.Variable,
	prefixSum frontend.Variable,
	suffixSum frontend.Variable,
	suffixLen frontend.Variable,
) (frontend.Variable, error) {
	proof := DigestProof{Leaf: leaf, PrefixSum: prefixSum, SuffixSum: suffixSum, SuffixLen: suffixLen}
	return proof.Verify(api, root)
}
