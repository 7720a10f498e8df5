package sha256

import (
	"encoding/binary"

	"github.com/hashkit/sha256/internal/consts"
)

// maxLen is the longest message in bytes whose bit length fits the 64-bit
// length field without wrapping.
const maxLen = 1<<61 - 1

func checkLen(n uint64) error {
	if n > maxLen {
		return ErrInputTooLarge
	}
	return nil
}

// pad extends the message to a multiple of BlockSize: a mandatory 0x80
// byte, the minimum run of zeros, and the message bit length as an 8-byte
// big-endian trailer.
func pad(m []byte) ([]byte, error) {
	if err := checkLen(uint64(len(m))); err != nil {
		return nil, err
	}

	blocks := (len(m)+8)/consts.BlockLen + 1
	buf := make([]byte, blocks*consts.BlockLen)
	n := copy(buf, m)
	buf[n] = 0x80
	binary.BigEndian.PutUint64(buf[len(buf)-8:], uint64(len(m))*8)

	return buf, nil
}
