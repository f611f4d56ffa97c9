// Copyright 2025 The Keyfork Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package control provides pure loop combinators for threading a carry
// value through iterative computations.
//
// The combinators pair naturally with explicit random keys: split a key
// inside the body and thread the remainder through the carry, and the
// whole loop stays deterministic.
//
// Example:
//
//	type walk struct {
//	    key random.Key
//	    pos float64
//	}
//	final := control.Fori(0, 100, func(i int, c walk) walk {
//	    stepKey, rest := random.Split2(c.key)
//	    step, _ := random.Normal[float64](stepKey, random.Shape{})
//	    return walk{key: rest, pos: c.pos + array.Item[float64](step)}
//	}, walk{key: random.NewKey(42)})
package control

import (
	"github.com/keyfork/keyfork/internal/control"
)

// ErrIterationCap reports a bounded loop that exhausted its cap before
// its condition turned false.
var ErrIterationCap = control.ErrIterationCap

// Fori runs body for i in [lo, hi), threading the carry through each
// iteration.
func Fori[C any](lo, hi int, body func(i int, carry C) C, init C) C {
	return control.Fori(lo, hi, body, init)
}

// While repeatedly applies body while cond holds of the carry.
// The caller is responsible for termination; use WhileN to bound the
// iteration count.
func While[C any](cond func(C) bool, body func(C) C, init C) C {
	return control.While(cond, body, init)
}

// WhileN is While with an iteration cap; it returns ErrIterationCap if
// cond still holds after maxIters iterations.
func WhileN[C any](cond func(C) bool, body func(C) C, init C, maxIters int) (C, error) {
	return control.WhileN(cond, body, init, maxIters)
}

// Scan applies f to the carry and each element of xs in order,
// returning the final carry and the collected per-element outputs.
func Scan[C, X, Y any](f func(carry C, x X) (C, Y), init C, xs []X) (C, []Y) {
	return control.Scan(f, init, xs)
}
