package sha256

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"testing"

	"gotest.tools/assert"
)

func TestPadInvariants(t *testing.T) {
	for n := 0; n <= 256; n++ {
		msg := pattern(n)
		buf, err := pad(msg)
		assert.NilError(t, err)

		assert.Equal(t, len(buf)%BlockSize, 0)
		assert.Equal(t, len(buf)/BlockSize, (n+9+BlockSize-1)/BlockSize)
		assert.Assert(t, len(buf) >= n+9)

		assert.Assert(t, bytes.Equal(buf[:n], msg))
		assert.Equal(t, buf[n], byte(0x80))
		for i := n + 1; i < len(buf)-8; i++ {
			assert.Equal(t, buf[i], byte(0))
		}
		assert.Equal(t, binary.BigEndian.Uint64(buf[len(buf)-8:]), uint64(n)*8)
	}
}

func TestPadABC(t *testing.T) {
	buf, err := pad([]byte("abc"))
	assert.NilError(t, err)

	assert.Equal(t, hex.EncodeToString(buf), ""+
		"6162638000000000000000000000000000000000000000000000000000000000"+
		"0000000000000000000000000000000000000000000000000000000000000018")
}

func TestPadEmpty(t *testing.T) {
	buf, err := pad(nil)
	assert.NilError(t, err)

	assert.Equal(t, len(buf), BlockSize)
	assert.Equal(t, buf[0], byte(0x80))
	assert.Equal(t, binary.BigEndian.Uint64(buf[len(buf)-8:]), uint64(0))
}
