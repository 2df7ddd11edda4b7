package verushash

import (
	"git.gammaspectra.live/P2Pool/verushash/types"
	"git.gammaspectra.live/P2Pool/verushash/verushash/internal/haraka"
)

// truncateWords 64-bit words of the 512-bit state kept in the digest, same selection as Haraka-512
var truncateWords = [Size / 8]int{1, 3, 4, 6}

func truncate(state *[BlockSize]byte) (digest types.Hash) {
	for i, w := range truncateWords {
		copy(digest[i*8:(i+1)*8], state[w*8:(w+1)*8])
	}
	return digest
}

// finalize derives the digest from the final chaining value h, which is left untouched.
// Variants with an output table apply x = P(h) ^ h before truncation.
func finalize(c *config, h *haraka.Words) types.Hash {
	x := *h
	if c.out != nil {
		haraka.PermuteWords(&x, c.out, c.schedule)
		x.Xor(h)
	}

	var buf [BlockSize]byte
	x.Store(buf[:])
	return truncate(&buf)
}
