package sha256

import (
	"math/bits"

	"github.com/hashkit/sha256/internal/consts"
)

// compress folds one message schedule into the hash state: 64 rounds over
// eight working registers seeded from state, then the additive fold back.
// Blocks must be compressed strictly in order.
func compress(state *[8]uint32, w *[64]uint32) {
	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for t := 0; t < 64; t++ {
		t1 := h +
			(bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)) +
			(e&f ^ ^e&g) +
			consts.K[t] + w[t]
		t2 := (bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)) +
			(a&b ^ a&c ^ b&c)

		h, g, f, e = g, f, e, d+t1
		d, c, b, a = c, b, a, t1+t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}
