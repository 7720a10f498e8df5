package sha256

import (
	"math/bits"
)

func s0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ x>>3
}

func s1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ x>>10
}

// expand derives the 64-word message schedule for one block: the first 16
// words are the block itself, the rest follow the sigma recurrence with
// wrapping 32-bit addition.
func expand(block *[16]uint32, w *[64]uint32) {
	copy(w[:16], block[:])

	for t := 16; t < 64; t++ {
		w[t] = s1(w[t-2]) + w[t-7] + s0(w[t-15]) + w[t-16]
	}
}
