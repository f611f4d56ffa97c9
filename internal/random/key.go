package random

import (
	"encoding/binary"
	"fmt"
)

// KeySize is the width of a key's byte representation.
const KeySize = 8

// Key is an opaque 64-bit generator state, held as the two 32-bit words
// of the Threefry key schedule. Keys are immutable values: deriving,
// splitting, folding, and sampling all leave their inputs untouched and
// return fresh values.
//
// Two keys are either identical or independent. Equal keys reproduce
// equal output from every sampler, so a key passed to two different
// sampling calls yields correlated draws. Split before reusing a key.
type Key struct {
	hi, lo uint32
}

// NewKey derives a key from an integer seed.
// The same seed always yields the same key; every uint64 is a valid seed.
func NewKey(seed uint64) Key {
	return Key{
		hi: uint32(seed >> 32),
		lo: uint32(seed),
	}
}

// KeyFromBytes reconstructs a key from its 8-byte big-endian form, the
// inverse of Key.Bytes. Byte material of any other width is rejected
// with ErrInvalidState.
func KeyFromBytes(b []byte) (Key, error) {
	if len(b) != KeySize {
		return Key{}, fmt.Errorf("%w: key must be %d bytes, got %d", ErrInvalidState, KeySize, len(b))
	}
	return Key{
		hi: binary.BigEndian.Uint32(b[:4]),
		lo: binary.BigEndian.Uint32(b[4:]),
	}, nil
}

// Bytes returns the key's 8-byte big-endian representation.
func (k Key) Bytes() []byte {
	b := make([]byte, KeySize)
	binary.BigEndian.PutUint32(b[:4], k.hi)
	binary.BigEndian.PutUint32(b[4:], k.lo)
	return b
}

// String returns the key's bit pattern in hex.
func (k Key) String() string {
	return fmt.Sprintf("Key(%08x%08x)", k.hi, k.lo)
}

// Stream domains. The top bits of the high counter word partition the
// blocks consumed by sampling, splitting, and folding, so a key's split
// children are independent of the key's own sampling stream.
const (
	domainSample uint32 = 0x00000000
	domainSplit  uint32 = 0x80000000
	domainFold   uint32 = 0x40000000
)

// block returns the two output words of counter block i in the given
// stream domain. The counter index is reduced to 62 bits so the domain
// tag can never be aliased by a large index.
func (k Key) block(domain uint32, i uint64) (uint32, uint32) {
	return threefry2x32(k.hi, k.lo, uint32(i), (uint32(i>>32)&0x3FFFFFFF)|domain)
}

// Split produces n new keys from one, deterministically. The input key
// remains valid for further splitting; reusing it for sampling after a
// split risks no correlation with the children, but reusing any key for
// two sampling calls does (see Key).
//
// n must be at least 2.
func Split(key Key, n int) ([]Key, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: split count must be >= 2, got %d", ErrInvalidArgument, n)
	}
	return splitKeys(key, n), nil
}

// splitKeys produces n child keys from the split stream, n >= 1.
// Split(key, m)[i] == splitKeys(key, n)[i] for every i < min(m, n).
func splitKeys(key Key, n int) []Key {
	keys := make([]Key, n)
	for i := range keys {
		hi, lo := key.block(domainSplit, uint64(i))
		keys[i] = Key{hi: hi, lo: lo}
	}
	return keys
}

// Split2 is the common two-way split.
func Split2(key Key) (Key, Key) {
	keys, err := Split(key, 2)
	if err != nil {
		panic(err) // unreachable: count is fixed
	}
	return keys[0], keys[1]
}

// FoldIn mixes data into a key, returning a new key that is independent
// of both the input key's sampling stream and its split children.
// Folding distinct data values into the same key yields distinct keys;
// data is reduced to its low 62 bits.
func FoldIn(key Key, data uint64) Key {
	hi, lo := key.block(domainFold, data)
	return Key{hi: hi, lo: lo}
}
