package sha256

import (
	"unsafe"

	"github.com/hashkit/sha256/internal/consts"
	"github.com/hashkit/sha256/internal/utils"
)

// digest runs the pipeline: pad, then per block expand the schedule and
// compress it into the running state, then serialize the state big-endian.
func digest(data []byte, obs Observer) ([Size]byte, error) {
	var sum [Size]byte

	buf, err := pad(data)
	if err != nil {
		return sum, err
	}
	if obs != nil {
		obs.PaddedMessage(buf)
	}

	var words [16]uint32
	var w [64]uint32
	state := consts.IV

	for i := 0; len(buf) > 0; i++ {
		var block *[16]uint32
		if consts.IsBigEndian {
			block = (*[16]uint32)(unsafe.Pointer(&buf[0]))
		} else {
			utils.BytesToWords((*[64]uint8)(unsafe.Pointer(&buf[0])), &words)
			block = &words
		}

		expand(block, &w)
		compress(&state, &w)

		if obs != nil {
			obs.BlockSchedule(i, &w)
			obs.BlockState(i, &state)
		}

		buf = buf[consts.BlockLen:]
	}

	utils.WordsToBytes(&state, sum[:])
	return sum, nil
}
