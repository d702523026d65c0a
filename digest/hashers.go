package digest

import (
	"crypto/sha256"
	"math/big"

	fr_bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	mimc_bls12_377 "github.com/consensys/gnark-crypto/ecc/bls12-377/fr/mimc"
	mimc_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	iden3mimc7 "github.com/iden3/go-iden3-crypto/mimc7"
	iden3poseidon "github.com/iden3/go-iden3-crypto/poseidon"
	multiposeidon "github.com/vocdoni/davinci-node/crypto/hash/poseidon"
	"golang.org/x/crypto/blake2b"
)

// LeafHash reduces a leaf element of type A to the single field element
// folded into a Digest's running sum. Unlike a Merkle tree's binary
// Hasher[N], a Digest only ever needs to hash one leaf at a time; pairing
// leaves together is Join's job, not the hash function's.
type LeafHash[A any] func(a A) *big.Int

// PoseidonLeafHash hashes a single *big.Int leaf with the iden3 Poseidon
// implementation. ZK-friendly, suitable when the sequence will later be
// verified inside a BN254 circuit.
func PoseidonLeafHash(a *big.Int) *big.Int {
	out, err := iden3poseidon.Hash([]*big.Int{a})
	if err != nil {
		panic(err)
	}
	return out
}

// MultiPoseidonLeafHash hashes a single *big.Int leaf with Vocdoni's
// variable-arity Poseidon, reusing the same gadget that chunks
// variable-length inputs for in-circuit use.
func MultiPoseidonLeafHash(a *big.Int) *big.Int {
	out, err := multiposeidon.MultiPoseidon(a)
	if err != nil {
		panic(err)
	}
	return out
}

// MiMC7LeafHash hashes a single *big.Int leaf with iden3's MiMC-7,
// compatible with circom's mimc7 circuit template.
func MiMC7LeafHash(a *big.Int) *big.Int {
	out, err := iden3mimc7.Hash([]*big.Int{a}, nil)
	if err != nil {
		panic(err)
	}
	return out
}

// MiMCBN254LeafHash hashes a single *big.Int leaf with gnark-crypto's MiMC
// over the BN254 scalar field, the same field Digest.Modulus uses.
func MiMCBN254LeafHash(a *big.Int) *big.Int {
	h := mimc_bn254.NewMiMC()
	aReduced := new(big.Int).Mod(a, Modulus)
	aBytes := make([]byte, 32)
	aReduced.FillBytes(aBytes)
	if _, err := h.Write(aBytes); err != nil {
		panic(err)
	}
	return new(big.Int).SetBytes(h.Sum(nil))
}

// MiMCBLS12377LeafHash hashes a single *big.Int leaf with gnark-crypto's
// MiMC over the BLS12-377 scalar field.
func MiMCBLS12377LeafHash(a *big.Int) *big.Int {
	h := mimc_bls12_377.NewMiMC()
	q := fr_bls12377.Modulus()
	aReduced := new(big.Int).Mod(a, q)
	aBytes := make([]byte, 32)
	aReduced.FillBytes(aBytes)
	if _, err := h.Write(aBytes); err != nil {
		panic(err)
	}
	return new(big.Int).SetBytes(h.Sum(nil))
}

// Blake2bLeafHash hashes a single *big.Int leaf with BLAKE2b-256.
func Blake2bLeafHash(a *big.Int) *big.Int {
	hasher, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	if _, err := hasher.Write(a.Bytes()); err != nil {
		panic(err)
	}
	return new(big.Int).SetBytes(hasher.Sum(nil))
}

// SHA256LeafHash hashes a single *big.Int leaf with SHA-256. Not
// circuit-friendly; kept as the fallback for when that does not matter.
func SHA256LeafHash(a *big.Int) *big.Int {
	sum := sha256.Sum256(a.Bytes())
	return new(big.Int).SetBytes(sum[:])
}

// BigIntLeafMeasure builds the Measurer fingertree.New expects, wrapping a
// LeafHash so each leaf measures to a one-element Digest run.
func BigIntLeafMeasure(hash LeafHash[*big.Int]) func(a *big.Int) Digest {
	return func(a *big.Int) Digest {
		return Digest{Sum: new(big.Int).Mod(hash(a), Modulus), Len: 1}
	}
}
