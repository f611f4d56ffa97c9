// Copyright 2025 The Keyfork Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package random provides the public API for explicit-key deterministic
// pseudorandom generation.
//
// Randomness is threaded through programs as immutable Key values
// instead of hidden generator state. Every operation is a pure function
// of its arguments, so results are reproducible and trivially safe to
// compute concurrently.
//
// Example:
//
//	key := random.NewKey(42)
//	k1, k2 := random.Split2(key)
//
//	noise, _ := random.Normal[float32](k1, random.Shape{64})
//	mask, _ := random.Bernoulli(k2, random.Shape{64}, 0.5)
package random

import (
	"github.com/keyfork/keyfork/internal/array"
	"github.com/keyfork/keyfork/internal/random"
)

// Key is an opaque 64-bit generator state. See the package
// documentation for the reuse hazard: equal keys reproduce equal draws,
// so split before sampling twice.
type Key = random.Key

// KeySize is the width of a key's byte representation.
const KeySize = random.KeySize

// Shape represents the dimensions of a sampled array.
type Shape = array.Shape

// Array is the shaped result container returned by samplers.
type Array = array.Array

// Float is a constraint for sampler output element types.
type Float = random.Float

// Distribution enumerates the distributions understood by Sample.
type Distribution = random.Distribution

// Supported distributions.
const (
	DistUniform     Distribution = random.DistUniform
	DistNormal      Distribution = random.DistNormal
	DistExponential Distribution = random.DistExponential
)

// Common errors.
var (
	ErrInvalidArgument = random.ErrInvalidArgument
	ErrInvalidState    = random.ErrInvalidState
)

// NewKey derives a key from an integer seed.
// The same seed always yields the same key.
//
// Example:
//
//	key := random.NewKey(42)
func NewKey(seed uint64) Key {
	return random.NewKey(seed)
}

// KeyFromBytes reconstructs a key from its 8-byte representation.
// Byte material of the wrong width is rejected with ErrInvalidState.
func KeyFromBytes(b []byte) (Key, error) {
	return random.KeyFromBytes(b)
}

// Split produces n new keys from one, deterministically. The children
// are pairwise distinct and independent of the parent's own sampling
// stream. n must be at least 2.
//
// Example:
//
//	keys, err := random.Split(key, 3)
func Split(key Key, n int) ([]Key, error) {
	return random.Split(key, n)
}

// Split2 is the common two-way split.
func Split2(key Key) (Key, Key) {
	return random.Split2(key)
}

// FoldIn mixes data into a key, deterministically producing a new
// independent key.
func FoldIn(key Key, data uint64) Key {
	return random.FoldIn(key, data)
}

// SplitTree replaces every leaf of a nested container (map[string]any
// and []any nodes) with an independent key, in deterministic leaf order.
func SplitTree(key Key, tree any) (any, error) {
	return random.SplitTree(key, tree)
}

// Sample draws an array of the requested shape from the given
// distribution. Unknown distributions are rejected with
// ErrInvalidArgument; a zero-element shape yields an empty array.
//
// Example:
//
//	out, err := random.Sample[float64](key, random.DistUniform, random.Shape{5})
func Sample[T Float](key Key, dist Distribution, shape Shape) (*Array, error) {
	return random.Sample[T](key, dist, shape)
}

// Uniform draws values uniformly from [0, 1).
func Uniform[T Float](key Key, shape Shape) (*Array, error) {
	return random.Uniform[T](key, shape)
}

// UniformRange draws values uniformly from [lo, hi).
func UniformRange[T Float](key Key, shape Shape, lo, hi T) (*Array, error) {
	return random.UniformRange[T](key, shape, lo, hi)
}

// Normal draws values from the standard normal distribution.
func Normal[T Float](key Key, shape Shape) (*Array, error) {
	return random.Normal[T](key, shape)
}

// Exponential draws values from the exponential distribution with the
// given rate.
func Exponential[T Float](key Key, shape Shape, rate float64) (*Array, error) {
	return random.Exponential[T](key, shape, rate)
}

// Bernoulli draws a bool array where each element is true with
// probability p.
func Bernoulli(key Key, shape Shape, p float64) (*Array, error) {
	return random.Bernoulli(key, shape, p)
}

// RandInt draws int64 values uniformly from [lo, hi).
func RandInt(key Key, shape Shape, lo, hi int64) (*Array, error) {
	return random.RandInt(key, shape, lo, hi)
}

// Permutation returns a uniformly shuffled int64 array of 0..n-1.
func Permutation(key Key, n int) (*Array, error) {
	return random.Permutation(key, n)
}
