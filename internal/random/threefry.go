// Package random implements a splittable, counter-based deterministic
// pseudorandom generator with explicit keys.
//
// The mixing function is Threefry-2x32 with 20 rounds (Salmon et al.,
// "Parallel Random Numbers: As Easy as 1, 2, 3"), a statistically
// validated counter-based block function. Every operation in this
// package is a pure function of its arguments: keys are never mutated,
// and there is no package-level state.
package random

import "math/bits"

// threefryParity is the key-schedule parity constant for Threefry-2x32
// (the low word of the Skein parity constant).
const threefryParity uint32 = 0x1BD11BDA

// Rotation distances for Threefry-2x32. Rounds cycle through all eight.
var threefryRotations = [8]int{13, 15, 26, 6, 17, 29, 16, 24}

// threefry2x32 applies the 20-round Threefry-2x32 block function to
// counter words (c0, c1) under key words (k0, k1).
func threefry2x32(k0, k1, c0, c1 uint32) (uint32, uint32) {
	ks := [3]uint32{k0, k1, threefryParity ^ k0 ^ k1}

	x0 := c0 + ks[0]
	x1 := c1 + ks[1]

	// Five groups of four rounds, with a key injection after each group.
	for group := 0; group < 5; group++ {
		base := (group % 2) * 4
		for r := 0; r < 4; r++ {
			x0 += x1
			x1 = bits.RotateLeft32(x1, threefryRotations[base+r])
			x1 ^= x0
		}
		inject := uint32(group + 1)
		x0 += ks[(group+1)%3]
		x1 += ks[(group+2)%3] + inject
	}

	return x0, x1
}
