package sha256

// Observer receives read-only snapshots of the intermediate state of one
// digest computation: the padded message once, then the message schedule
// and the folded hash state after each block. The arguments are views into
// working storage that is reused or discarded as the computation proceeds;
// implementations must not retain or modify them.
//
// Observers exist for debugging and visualization. The core never requires
// one to be present.
type Observer interface {
	// PaddedMessage is called once with the padded message, whose length
	// is a multiple of BlockSize.
	PaddedMessage(buf []byte)

	// BlockSchedule is called with the 64-word message schedule expanded
	// from block (counting from zero).
	BlockSchedule(block int, w *[64]uint32)

	// BlockState is called with the hash state after block has been
	// folded in. The last call holds the words of the final digest.
	BlockState(block int, h *[8]uint32)
}
