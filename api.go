// Package sha256 implements the SHA-256 hash algorithm defined in FIPS
// 180-4 in pure Go. It hashes complete in-memory messages; there is no
// incremental API.
//
// The computation has no shared mutable state between calls, so independent
// digests may be computed concurrently without coordination.
package sha256

import (
	"errors"

	"github.com/hashkit/sha256/internal/consts"
)

// Size is the number of bytes in a SHA-256 digest.
const Size = 32

// BlockSize is the number of message bytes consumed by one compression.
const BlockSize = consts.BlockLen

// ErrInputTooLarge is returned for messages whose bit length does not fit
// in the 64-bit length field of the padding trailer.
var ErrInputTooLarge = errors.New("sha256: message exceeds 2^61-1 bytes")

// Sum256 returns the SHA-256 digest of data. It panics if data exceeds the
// supported length ceiling, which no slice addressable on current platforms
// can reach; use Digest to handle the error explicitly.
func Sum256(data []byte) [Size]byte {
	sum, err := digest(data, nil)
	if err != nil {
		panic(err)
	}
	return sum
}

// Digest returns the SHA-256 digest of data, rejecting messages beyond the
// supported length ceiling with ErrInputTooLarge.
func Digest(data []byte) ([Size]byte, error) {
	return digest(data, nil)
}

// Observe computes the digest of data while feeding intermediate state to
// obs. A nil obs is valid and makes Observe equivalent to Digest.
func Observe(data []byte, obs Observer) ([Size]byte, error) {
	return digest(data, obs)
}
