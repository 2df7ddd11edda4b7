package verushash

import (
	"git.gammaspectra.live/P2Pool/verushash/verushash/internal/haraka"
)

// compress absorbs every whole block of blocks into h, in order.
//
//	h = P(h ^ m) ^ Q(m) ^ h
func compress(c *config, h *haraka.Words, blocks []byte) {
	var m, x haraka.Words
	for len(blocks) >= BlockSize {
		m.Load(blocks)

		x = *h
		x.Xor(&m)
		haraka.PermuteWords(&x, c.p, c.schedule)
		haraka.PermuteWords(&m, c.q, c.schedule)

		h.Xor(&x)
		h.Xor(&m)

		blocks = blocks[BlockSize:]
	}
}
