package digest

import (
	"math/big"
	"os"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func bigIntMeasure(a *big.Int) Digest {
	return BigIntLeafMeasure(PoseidonLeafHash)(a)
}

func TestHashSequencePushAndLen(t *testing.T) {
	s := New(bigIntMeasure)
	if s.Len() != 0 {
		t.Fatalf("fresh sequence len=%d, want 0", s.Len())
	}
	for i := int64(1); i <= 10; i++ {
		s.Push(big.NewInt(i))
	}
	if s.Len() != 10 {
		t.Fatalf("len=%d, want 10", s.Len())
	}
}

func TestHashSequenceRootChangesWithOrder(t *testing.T) {
	a := New(bigIntMeasure)
	a.Push(big.NewInt(1))
	a.Push(big.NewInt(2))

	b := New(bigIntMeasure)
	b.Push(big.NewInt(2))
	b.Push(big.NewInt(1))

	if Equal(a.Root(), b.Root()) {
		t.Fatalf("roots for different leaf orders should differ")
	}
}

func TestHashSequenceRootStableUnderDifferentBracketing(t *testing.T) {
	a := New(bigIntMeasure)
	for i := int64(1); i <= 37; i++ {
		if i%2 == 0 {
			a.Push(big.NewInt(i))
		} else {
			a.Unshift(big.NewInt(i))
		}
	}

	b := New(bigIntMeasure)
	// Rebuild the same final order using only Push, a different internal
	// tree shape but an identical leaf sequence.
	expected := make([]*big.Int, 0, 37)
	for i := int64(37); i >= 1; i -= 2 {
		expected = append(expected, big.NewInt(i))
	}
	for i := int64(2); i <= 37; i += 2 {
		expected = append(expected, big.NewInt(i))
	}
	for _, v := range expected {
		b.Push(v)
	}

	if !Equal(a.Root(), b.Root()) {
		t.Fatalf("roots differ despite identical leaf order")
	}
}

func TestProveAndVerify(t *testing.T) {
	s := New(bigIntMeasure)
	for i := int64(0); i < 50; i++ {
		s.Push(big.NewInt(i))
	}

	for _, idx := range []uint64{0, 1, 25, 49} {
		proof, err := s.Prove(idx)
		if err != nil {
			t.Fatalf("idx=%d: Prove failed: %v", idx, err)
		}
		if proof.Leaf.Cmp(big.NewInt(int64(idx))) != 0 {
			t.Fatalf("idx=%d: proof.Leaf=%v, want %d", idx, proof.Leaf, idx)
		}
		if !VerifyProof(bigIntMeasure, proof) {
			t.Fatalf("idx=%d: proof failed to verify", idx)
		}
	}
}

func TestVerifyProofRejectsTamperedLeaf(t *testing.T) {
	s := New(bigIntMeasure)
	for i := int64(0); i < 10; i++ {
		s.Push(big.NewInt(i))
	}
	proof, err := s.Prove(3)
	if err != nil {
		t.Fatal(err)
	}
	proof.Leaf = big.NewInt(999)
	if VerifyProof(bigIntMeasure, proof) {
		t.Fatalf("tampered leaf should not verify")
	}
}

func TestProveOutOfRange(t *testing.T) {
	s := New(bigIntMeasure)
	s.Push(big.NewInt(1))
	if _, err := s.Prove(1); err != ErrIndexOutOfRange {
		t.Fatalf("err=%v, want ErrIndexOutOfRange", err)
	}
}

// addressMeasure exercises HashSequence with common.Address leaves, the
// same leaf type census.CensusIMT indexes voters by.
func addressMeasure(a common.Address) Digest {
	return BigIntLeafMeasure(SHA256LeafHash)(new(big.Int).SetBytes(a.Bytes()))
}

func TestHashSequenceWithAddresses(t *testing.T) {
	s := New(addressMeasure)
	addrs := []common.Address{
		common.HexToAddress("0x1111111111111111111111111111111111111111"),
		common.HexToAddress("0x2222222222222222222222222222222222222222"),
		common.HexToAddress("0x3333333333333333333333333333333333333333"),
	}
	for _, a := range addrs {
		s.Push(a)
	}
	if s.Len() != 3 {
		t.Fatalf("len=%d, want 3", s.Len())
	}
	proof, err := s.Prove(1)
	if err != nil {
		t.Fatal(err)
	}
	if proof.Leaf != addrs[1] {
		t.Fatalf("proof leaf=%v, want %v", proof.Leaf, addrs[1])
	}
	if !VerifyProof(addressMeasure, proof) {
		t.Fatalf("address proof failed to verify")
	}
}

func createTempDir(t *testing.T) string {
	dir, err := os.MkdirTemp("", "digest-test-*")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return dir
}

func bigIntEncoder(n *big.Int) ([]byte, error) {
	if n == nil {
		return []byte{}, nil
	}
	b := n.Bytes()
	if len(b) == 0 {
		return []byte{0}, nil
	}
	return b, nil
}

func bigIntDecoder(data []byte) (*big.Int, error) {
	if len(data) == 0 {
		return big.NewInt(0), nil
	}
	if len(data) == 1 && data[0] == 0 {
		return big.NewInt(0), nil
	}
	return new(big.Int).SetBytes(data), nil
}

func TestPersistenceRoundTrip(t *testing.T) {
	dir := createTempDir(t)

	s1, err := NewWithPebble(bigIntMeasure, bigIntEncoder, bigIntDecoder, dir)
	if err != nil {
		t.Fatal(err)
	}
	for i := int64(1); i <= 20; i++ {
		s1.Push(big.NewInt(i))
	}
	if err := s1.Close(); err != nil {
		t.Fatal(err)
	}

	s2, err := NewWithPebble(bigIntMeasure, bigIntEncoder, bigIntDecoder, dir)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = s2.Close() }()

	if s2.Len() != 20 {
		t.Fatalf("reloaded len=%d, want 20", s2.Len())
	}
	if !Equal(s1.Root(), s2.Root()) {
		t.Fatalf("reloaded root differs from original")
	}
}
