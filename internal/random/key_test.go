package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeyDeterministic(t *testing.T) {
	for _, seed := range []uint64{0, 1, 42, 1 << 40, ^uint64(0)} {
		assert.Equal(t, NewKey(seed), NewKey(seed), "seed %d", seed)
	}
}

func TestNewKeyDistinctSeeds(t *testing.T) {
	seen := make(map[Key]uint64)
	for _, seed := range []uint64{0, 1, 2, 42, 1<<32 - 1, 1 << 32, 1 << 63} {
		key := NewKey(seed)
		if prev, dup := seen[key]; dup {
			t.Fatalf("seeds %d and %d derive the same key %v", prev, seed, key)
		}
		seen[key] = seed
	}
}

func TestKeyBytesRoundTrip(t *testing.T) {
	key := NewKey(0xdeadbeefcafe1234)
	b := key.Bytes()
	require.Len(t, b, KeySize)

	back, err := KeyFromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, key, back)
}

func TestKeyFromBytesWrongWidth(t *testing.T) {
	for _, n := range []int{0, 4, 7, 9, 16} {
		_, err := KeyFromBytes(make([]byte, n))
		assert.ErrorIs(t, err, ErrInvalidState, "width %d", n)
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Key(0000000000000001)", NewKey(1).String())
	assert.Equal(t, "Key(000000012a000000)", NewKey(1<<32|0x2a000000).String())
}

func TestSplitDeterministic(t *testing.T) {
	key := NewKey(42)

	a, err := Split(key, 8)
	require.NoError(t, err)
	b, err := Split(key, 8)
	require.NoError(t, err)

	assert.Equal(t, a, b, "Split must reproduce identical sequences")
}

func TestSplitPairwiseDistinct(t *testing.T) {
	keys, err := Split(NewKey(7), 64)
	require.NoError(t, err)

	seen := make(map[Key]int)
	for i, k := range keys {
		if j, dup := seen[k]; dup {
			t.Fatalf("children %d and %d share key %v", j, i, k)
		}
		if k == NewKey(7) {
			t.Fatalf("child %d equals the parent key", i)
		}
		seen[k] = i
	}
}

func TestSplitPrefixStable(t *testing.T) {
	// Growing the fan-out must not change earlier children.
	key := NewKey(3)
	small, err := Split(key, 2)
	require.NoError(t, err)
	large, err := Split(key, 16)
	require.NoError(t, err)

	assert.Equal(t, small, large[:2])
}

func TestSplitCountTooSmall(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		_, err := Split(NewKey(1), n)
		assert.ErrorIs(t, err, ErrInvalidArgument, "n=%d", n)
	}
}

func TestSplit2MatchesSplit(t *testing.T) {
	key := NewKey(99)
	k1, k2 := Split2(key)

	keys, err := Split(key, 2)
	require.NoError(t, err)
	assert.Equal(t, keys[0], k1)
	assert.Equal(t, keys[1], k2)
}

func TestSplitIndependentOfSampleStream(t *testing.T) {
	// A child's key words must not coincide with the parent's sampling
	// bits at the same counter index: split and sample draw from
	// separate stream domains.
	key := NewKey(42)
	children, err := Split(key, 4)
	require.NoError(t, err)

	for i, child := range children {
		w0, w1 := key.block(domainSample, uint64(i))
		sampled := Key{hi: w0, lo: w1}
		assert.NotEqual(t, sampled, child, "child %d collides with sample block %d", i, i)
	}
}

func TestFoldInDeterministic(t *testing.T) {
	key := NewKey(5)
	assert.Equal(t, FoldIn(key, 17), FoldIn(key, 17))
}

func TestFoldInDistinctData(t *testing.T) {
	key := NewKey(5)
	seen := make(map[Key]uint64)
	for data := uint64(0); data < 100; data++ {
		folded := FoldIn(key, data)
		if prev, dup := seen[folded]; dup {
			t.Fatalf("data %d and %d fold to the same key", prev, data)
		}
		seen[folded] = data
	}
}

func TestFoldInDiffersFromSplit(t *testing.T) {
	key := NewKey(5)
	children, err := Split(key, 4)
	require.NoError(t, err)

	for i, child := range children {
		assert.NotEqual(t, child, FoldIn(key, uint64(i)))
	}
}
