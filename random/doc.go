// Copyright 2025 The Keyfork Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package random implements splittable, counter-based pseudorandom
// number generation with explicit keys.
//
// # Overview
//
// Conventional generators hide a mutable cursor: each draw advances
// shared state, so results depend on call order and are hostile to
// parallelism. This package replaces the cursor with an explicit,
// immutable Key. Deriving, splitting, and sampling are all pure
// functions, so any draw can be reproduced from its inputs alone and
// any two draws with distinct keys can run concurrently.
//
// The mixing function is Threefry-2x32 with 20 rounds, a counter-based
// block function with well-studied statistical quality. It is not
// cryptographically secure; do not use this package for secrets.
//
// # Keys
//
//	key := random.NewKey(42)      // derive from a seed
//	k1, k2 := random.Split2(key)  // two fresh independent keys
//	k3 := random.FoldIn(key, 7)   // mix data into a key
//
// Equal keys reproduce equal output from every sampler. Reusing one key
// for two sampling calls therefore yields identical draws — a
// documented hazard, not a bug. Split before reuse:
//
//	kNoise, kDropout := random.Split2(key)
//	noise, _ := random.Normal[float32](kNoise, random.Shape{64})
//	mask, _ := random.Bernoulli(kDropout, random.Shape{64}, 0.1)
//
// # Sampling
//
// Samplers take a key, distribution parameters, and an output shape,
// and return a shaped array:
//
//	u, _ := random.Uniform[float64](key, random.Shape{3, 4})
//	n, _ := random.Normal[float32](key, random.Shape{})      // scalar
//	i, _ := random.RandInt(key, random.Shape{10}, 0, 6)      // dice
//
// Zero-element shapes yield empty arrays; negative dimensions, unknown
// distributions, and out-of-range parameters fail with
// ErrInvalidArgument. Malformed key bytes fail with ErrInvalidState.
//
// # Keying nested structures
//
// SplitTree fans one key out across the leaves of a nested container in
// a single deterministic pass:
//
//	params := map[string]any{
//	    "encoder": []any{"w", "b"},
//	    "decoder": []any{"w", "b"},
//	}
//	keyed, _ := random.SplitTree(key, params)
//
// # Concurrency
//
// Every exported function is safe for unlimited concurrent use. Large
// fills are internally parallelized in fixed-size chunks; the produced
// bits are identical at any worker count.
package random
