package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() any {
	return map[string]any{
		"weights": []any{1.0, 2.0, 3.0},
		"bias":    4.0,
		"nested": map[string]any{
			"b": 5.0,
			"a": 6.0,
		},
	}
}

func TestFlattenDeterministicOrder(t *testing.T) {
	// Map entries flatten in sorted key order: bias, nested.a,
	// nested.b, then the weights slice.
	leaves, s := Flatten(sampleTree())

	assert.Equal(t, []any{4.0, 6.0, 5.0, 1.0, 2.0, 3.0}, leaves)
	assert.Equal(t, 6, s.NumLeaves())
}

func TestFlattenRepeatable(t *testing.T) {
	a, _ := Flatten(sampleTree())
	b, _ := Flatten(sampleTree())
	assert.Equal(t, a, b)
}

func TestUnflattenRoundTrip(t *testing.T) {
	original := sampleTree()
	leaves, s := Flatten(original)

	rebuilt, err := s.Unflatten(leaves)
	require.NoError(t, err)
	assert.Equal(t, original, rebuilt)
}

func TestUnflattenLeafCountMismatch(t *testing.T) {
	_, s := Flatten(sampleTree())

	_, err := s.Unflatten([]any{1.0})
	assert.Error(t, err)
}

func TestUnflattenReplacedLeaves(t *testing.T) {
	_, s := Flatten([]any{1.0, map[string]any{"x": 2.0}})

	rebuilt, err := s.Unflatten([]any{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", map[string]any{"x": "b"}}, rebuilt)
}

func TestFlattenSingleLeaf(t *testing.T) {
	leaves, s := Flatten(42)
	assert.Equal(t, []any{42}, leaves)

	rebuilt, err := s.Unflatten([]any{"swapped"})
	require.NoError(t, err)
	assert.Equal(t, "swapped", rebuilt)
}

func TestFlattenEmptyContainers(t *testing.T) {
	leaves, s := Flatten([]any{map[string]any{}, []any{}})
	assert.Empty(t, leaves)
	assert.Equal(t, 0, s.NumLeaves())

	rebuilt, err := s.Unflatten(nil)
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{}, []any{}}, rebuilt)
}

func TestMapPreservesStructure(t *testing.T) {
	doubled := Map(func(leaf any) any {
		return leaf.(float64) * 2
	}, sampleTree())

	want := map[string]any{
		"weights": []any{2.0, 4.0, 6.0},
		"bias":    8.0,
		"nested": map[string]any{
			"b": 10.0,
			"a": 12.0,
		},
	}
	assert.Equal(t, want, doubled)
}

func TestLeaves(t *testing.T) {
	assert.Equal(t, []any{4.0, 6.0, 5.0, 1.0, 2.0, 3.0}, Leaves(sampleTree()))
}
