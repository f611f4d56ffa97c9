// Package tree provides deterministic operations over nested containers.
//
// A tree is any value built from map[string]any and []any internal
// nodes; every other value is a leaf. Traversal order is deterministic:
// slice elements in index order, map entries in sorted key order. That
// determinism is what makes per-leaf key assignment reproducible.
package tree

import (
	"fmt"
	"sort"
)

type kind int

const (
	leafKind kind = iota
	sliceKind
	mapKind
)

// node mirrors one internal node of a flattened tree.
type node struct {
	kind     kind
	keys     []string // mapKind only, sorted
	children []*node
}

// Structure describes the shape of a tree with its leaves removed.
// Unflatten rebuilds a tree of the same shape from a fresh leaf list.
type Structure struct {
	root      *node
	numLeaves int
}

// NumLeaves returns the number of leaves the structure expects.
func (s *Structure) NumLeaves() int {
	return s.numLeaves
}

// Flatten extracts the leaves of a tree in deterministic order,
// together with the structure needed to rebuild it.
func Flatten(v any) ([]any, *Structure) {
	var leaves []any
	root := flatten(v, &leaves)
	return leaves, &Structure{root: root, numLeaves: len(leaves)}
}

func flatten(v any, leaves *[]any) *node {
	switch t := v.(type) {
	case []any:
		n := &node{kind: sliceKind, children: make([]*node, len(t))}
		for i, c := range t {
			n.children[i] = flatten(c, leaves)
		}
		return n
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		n := &node{kind: mapKind, keys: keys, children: make([]*node, len(keys))}
		for i, k := range keys {
			n.children[i] = flatten(t[k], leaves)
		}
		return n
	default:
		*leaves = append(*leaves, v)
		return &node{kind: leafKind}
	}
}

// Unflatten rebuilds a tree of this structure's shape from a leaf list.
// The leaf count must match exactly.
func (s *Structure) Unflatten(leaves []any) (any, error) {
	if len(leaves) != s.numLeaves {
		return nil, fmt.Errorf("structure expects %d leaves, got %d", s.numLeaves, len(leaves))
	}
	v, _ := unflatten(s.root, leaves)
	return v, nil
}

func unflatten(n *node, leaves []any) (any, []any) {
	switch n.kind {
	case sliceKind:
		out := make([]any, len(n.children))
		for i, c := range n.children {
			out[i], leaves = unflatten(c, leaves)
		}
		return out, leaves
	case mapKind:
		out := make(map[string]any, len(n.children))
		for i, c := range n.children {
			out[n.keys[i]], leaves = unflatten(c, leaves)
		}
		return out, leaves
	default:
		return leaves[0], leaves[1:]
	}
}

// Leaves returns the leaves of a tree in deterministic order.
func Leaves(v any) []any {
	leaves, _ := Flatten(v)
	return leaves
}

// Map applies fn to every leaf, preserving the tree's structure.
func Map(fn func(leaf any) any, v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, c := range t {
			out[i] = Map(fn, c)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, c := range t {
			out[k] = Map(fn, c)
		}
		return out
	default:
		return fn(v)
	}
}
