package random

import "github.com/keyfork/keyfork/internal/tree"

// SplitTree replaces every leaf of t with an independent key derived
// from key, in deterministic leaf order. The i-th leaf receives the
// same key that Split(key, n)[i] would produce, so keying a whole
// nested structure costs one split fan-out.
//
// A tree with no leaves is rebuilt unchanged.
func SplitTree(key Key, t any) (any, error) {
	leaves, structure := tree.Flatten(t)
	keys := splitKeys(key, len(leaves))

	asAny := make([]any, len(keys))
	for i, k := range keys {
		asAny[i] = k
	}
	return structure.Unflatten(asAny)
}
