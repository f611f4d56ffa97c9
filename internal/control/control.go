// Package control provides pure loop combinators for threading a carry
// value through iterative computations. All combinators are
// deterministic: the result depends only on the arguments.
package control

import (
	"errors"
	"fmt"
)

// ErrIterationCap reports a bounded loop that exhausted its cap before
// its condition turned false.
var ErrIterationCap = errors.New("iteration cap exceeded")

// Fori runs body for i in [lo, hi), threading the carry through each
// iteration. An empty range returns init unchanged.
func Fori[C any](lo, hi int, body func(i int, carry C) C, init C) C {
	carry := init
	for i := lo; i < hi; i++ {
		carry = body(i, carry)
	}
	return carry
}

// While repeatedly applies body while cond holds of the carry.
// The caller is responsible for termination; use WhileN to bound the
// iteration count.
func While[C any](cond func(C) bool, body func(C) C, init C) C {
	carry := init
	for cond(carry) {
		carry = body(carry)
	}
	return carry
}

// WhileN is While with an iteration cap. If cond still holds after
// maxIters iterations, the current carry is returned alongside
// ErrIterationCap.
func WhileN[C any](cond func(C) bool, body func(C) C, init C, maxIters int) (C, error) {
	carry := init
	for i := 0; i < maxIters; i++ {
		if !cond(carry) {
			return carry, nil
		}
		carry = body(carry)
	}
	if cond(carry) {
		return carry, fmt.Errorf("%w: %d iterations", ErrIterationCap, maxIters)
	}
	return carry, nil
}

// Scan applies f to the carry and each element of xs in order,
// returning the final carry and the collected per-element outputs.
func Scan[C, X, Y any](f func(carry C, x X) (C, Y), init C, xs []X) (C, []Y) {
	carry := init
	ys := make([]Y, len(xs))
	for i, x := range xs {
		carry, ys[i] = f(carry, x)
	}
	return carry, ys
}
