// Copyright 2025 The Keyfork Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tree provides deterministic operations over nested containers.
//
// A tree is any value built from map[string]any and []any internal
// nodes; every other value is a leaf. Leaf order is deterministic
// (slice index order, sorted map keys), which makes per-leaf key
// assignment with random.SplitTree reproducible.
//
// Example:
//
//	leaves, structure := tree.Flatten(params)
//	rebuilt, err := structure.Unflatten(leaves)
package tree

import (
	"github.com/keyfork/keyfork/internal/tree"
)

// Structure describes the shape of a tree with its leaves removed.
type Structure = tree.Structure

// Flatten extracts the leaves of a tree in deterministic order,
// together with the structure needed to rebuild it.
func Flatten(v any) ([]any, *Structure) {
	return tree.Flatten(v)
}

// Leaves returns the leaves of a tree in deterministic order.
func Leaves(v any) []any {
	return tree.Leaves(v)
}

// Map applies fn to every leaf, preserving the tree's structure.
//
// Example:
//
//	doubled := tree.Map(func(leaf any) any { return leaf.(float64) * 2 }, t)
func Map(fn func(leaf any) any, v any) any {
	return tree.Map(fn, v)
}
