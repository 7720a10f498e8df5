package sha256_test

import (
	"fmt"

	"github.com/hashkit/sha256"
)

func ExampleSum256() {
	digest := sha256.Sum256([]byte("some data"))

	fmt.Printf("%x\n", digest[:])
	//output:
	// 1307990e6ba5ca145eb35e99182a9bec46531bc54ddf656a602c780fa0240dee
}

func ExampleDigest() {
	digest, err := sha256.Digest([]byte("abc"))
	if err != nil {
		panic(err)
	}

	fmt.Printf("%x\n", digest[:])
	//output:
	// ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
}

// blockCounter tracks how many blocks a digest computation consumed.
type blockCounter struct {
	blocks int
}

func (c *blockCounter) PaddedMessage(buf []byte) {}

func (c *blockCounter) BlockSchedule(block int, w *[64]uint32) {}

func (c *blockCounter) BlockState(block int, h *[8]uint32) { c.blocks = block + 1 }

func ExampleObserve() {
	var c blockCounter

	digest, err := sha256.Observe([]byte("abc"), &c)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%d block\n", c.blocks)
	fmt.Printf("%x\n", digest[:])
	//output:
	// 1 block
	// ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
}
