package digest

import (
	"errors"

	fingertree "github.com/rntz/fingertree"
	"github.com/vocdoni/davinci-node/db"
	"github.com/vocdoni/davinci-node/db/metadb"
)

// Encoder and Decoder serialize a leaf for persistence, the same role
// BigIntEncoder/BigIntDecoder play for the binary tree.
type Encoder[A any] func(A) ([]byte, error)
type Decoder[A any] func([]byte) (A, error)

// HashSequence wraps a Tree[Digest, A] the way Deque[A] wraps a
// Tree[Size, A], adding the one capability a content fingerprint is for:
// persisting the current leaf sequence and proving membership of a leaf
// without walking the whole thing.
type HashSequence[A any] struct {
	tree    *fingertree.Tree[Digest, A]
	measure func(A) Digest
	db      db.Database // nil for in-memory only
	encoder Encoder[A]
	decoder Decoder[A]
	dirty   bool
}

// New returns an empty in-memory HashSequence using the given leaf measure
// (typically BigIntLeafMeasure(someLeafHash) composed with a projection to
// *big.Int, for non-*big.Int leaf types).
func New[A any](measure func(A) Digest) *HashSequence[A] {
	return &HashSequence[A]{
		tree:    fingertree.New[Digest, A](Monoid(), measure),
		measure: measure,
	}
}

// NewWithPebble creates a HashSequence backed by a persistent Pebble
// database at datadir, loading any existing sequence found there.
func NewWithPebble[A any](measure func(A) Digest, encoder Encoder[A], decoder Decoder[A], datadir string) (*HashSequence[A], error) {
	if encoder == nil || decoder == nil {
		return nil, errors.New("encoder and decoder functions are required for persistent storage")
	}
	database, err := metadb.New(db.TypePebble, datadir)
	if err != nil {
		return nil, err
	}
	s := &HashSequence[A]{
		tree:    fingertree.New[Digest, A](Monoid(), measure),
		measure: measure,
		db:      database,
		encoder: encoder,
		decoder: decoder,
	}
	if err := s.Load(); err != nil && err != db.ErrKeyNotFound {
		return nil, err
	}
	return s, nil
}

// Len returns the number of leaves held.
func (s *HashSequence[A]) Len() uint64 {
	return s.tree.Measure().Len
}

// Root returns the current overall digest.
func (s *HashSequence[A]) Root() Digest {
	return s.tree.Measure()
}

// Push appends a leaf.
func (s *HashSequence[A]) Push(a A) {
	s.tree = s.tree.PushBack(a)
	s.dirty = true
}

// Unshift prepends a leaf.
func (s *HashSequence[A]) Unshift(a A) {
	s.tree = s.tree.PushFront(a)
	s.dirty = true
}

// gtLen builds the monotone predicate "run length exceeds k", the Digest
// analogue of the Size deque's count predicate.
func gtLen(k uint64) func(Digest) bool {
	return func(d Digest) bool { return d.Len > k }
}

// Proof contains what's needed to verify a leaf's membership at Index
// without access to the rest of the sequence: the digests of everything
// before and after it, which recombine with the leaf's own digest to the
// claimed Root.
type Proof[A any] struct {
	Root         Digest
	Index        uint64
	Leaf         A
	PrefixDigest Digest
	SuffixDigest Digest
}

// ErrIndexOutOfRange is returned by Prove when index is not a valid leaf
// position.
var ErrIndexOutOfRange = errors.New("digest: index is out of range")

// Prove builds an inclusion proof for the leaf at index. Unlike
// GenerateProof's sibling-array walk over a fixed binary depth, this splits
// the sequence in two around the leaf with Split and caches the two
// halves' own digests, since a finger tree has no binary level structure to
// address by index.
func (s *HashSequence[A]) Prove(index uint64) (Proof[A], error) {
	if index >= s.Len() {
		return Proof[A]{}, ErrIndexOutOfRange
	}
	left, right := s.tree.Split(gtLen(index))
	leaf, rest, ok := right.PopFront()
	if !ok {
		panic("digest: split at a valid index produced an empty right half")
	}
	return Proof[A]{
		Root:         s.tree.Measure(),
		Index:        index,
		Leaf:         leaf,
		PrefixDigest: left.Measure(),
		SuffixDigest: rest.Measure(),
	}, nil
}

// VerifyProof checks that proof's leaf, combined with its recorded prefix
// and suffix digests via Join, reproduces its recorded root. measure must
// be the same leaf measure the sequence that produced proof uses.
func VerifyProof[A any](measure func(A) Digest, proof Proof[A]) bool {
	leafDigest := measure(proof.Leaf)
	combined := Join(Join(proof.PrefixDigest, leafDigest), proof.SuffixDigest)
	return Equal(combined, proof.Root)
}

// Load restores the sequence from persistent storage, rebuilding the tree
// leaf by leaf in order.
func (s *HashSequence[A]) Load() error {
	if s.db == nil {
		return errors.New("no database configured for loading")
	}
	if s.decoder == nil {
		return errors.New("no decoder function configured")
	}

	sizeBytes, err := s.db.Get([]byte("meta:size"))
	if err != nil {
		if err == db.ErrKeyNotFound {
			s.tree = fingertree.New[Digest, A](Monoid(), s.measure)
			return nil
		}
		return err
	}
	size := decodeSize(sizeBytes)

	tree := fingertree.New[Digest, A](Monoid(), s.measure)
	for i := uint64(0); i < size; i++ {
		key := leafKey(i)
		leafBytes, err := s.db.Get(key)
		if err != nil {
			return err
		}
		leaf, err := s.decoder(leafBytes)
		if err != nil {
			return err
		}
		tree = tree.PushBack(leaf)
	}
	s.tree = tree
	s.dirty = false
	return nil
}

// Sync persists the current leaf sequence atomically. Like leanimt.go's
// Sync, only the leaves are stored; Digest values are recomputed on load
// rather than serialized.
func (s *HashSequence[A]) Sync() error {
	if s.db == nil {
		return nil
	}
	if s.encoder == nil {
		return errors.New("no encoder function configured")
	}
	if !s.dirty {
		return nil
	}

	tx := s.db.WriteTx()
	defer tx.Discard()

	leaves := drain(s.tree)
	for i, leaf := range leaves {
		value, err := s.encoder(leaf)
		if err != nil {
			return err
		}
		if err := tx.Set(leafKey(uint64(i)), value); err != nil {
			return err
		}
	}

	if err := s.cleanupStaleLeaves(tx, uint64(len(leaves))); err != nil {
		return err
	}

	if err := tx.Set([]byte("meta:size"), encodeSize(uint64(len(leaves)))); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

// Close syncs any pending changes and closes the database connection.
func (s *HashSequence[A]) Close() error {
	if err := s.Sync(); err != nil {
		return err
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// cleanupStaleLeaves removes leaf entries beyond the current size, the
// same shrink handling leanimt.go's Sync performs.
func (s *HashSequence[A]) cleanupStaleLeaves(tx db.WriteTx, currentSize uint64) error {
	sizeBytes, err := s.db.Get([]byte("meta:size"))
	if err != nil {
		if err == db.ErrKeyNotFound {
			return nil
		}
		return err
	}
	previousSize := decodeSize(sizeBytes)
	for i := currentSize; i < previousSize; i++ {
		if err := tx.Delete(leafKey(i)); err != nil {
			return err
		}
	}
	return nil
}

// drain returns every leaf of t in order without mutating t.
func drain[V any, A any](t *fingertree.Tree[V, A]) []A {
	out := make([]A, 0, 16)
	cur := t
	for {
		a, rest, ok := cur.PopFront()
		if !ok {
			return out
		}
		out = append(out, a)
		cur = rest
	}
}

func leafKey(i uint64) []byte {
	return []byte("leaf:" + itoa(i))
}

func itoa(x uint64) string {
	if x == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for x > 0 {
		i--
		buf[i] = byte('0' + x%10)
		x /= 10
	}
	return string(buf[i:])
}

func encodeSize(n uint64) []byte {
	return []byte(itoa(n))
}

func decodeSize(b []byte) uint64 {
	var result uint64
	for _, digit := range b {
		if digit >= '0' && digit <= '9' {
			result = result*10 + uint64(digit-'0')
		}
	}
	return result
}
