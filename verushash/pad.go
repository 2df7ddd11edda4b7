package verushash

import (
	"fmt"

	"git.gammaspectra.live/P2Pool/verushash/types"
	"git.gammaspectra.live/P2Pool/verushash/verushash/internal/haraka"
	"lukechampine.com/uint128"
)

const (
	// Size of a digest in bytes
	Size = types.HashSize

	// BlockSize of the absorption in bytes
	BlockSize = haraka.Width

	// lengthSize trailing big endian message length, in bits, as a 128-bit integer
	lengthSize = 16

	padMarker = 0x80
)

// paddedLength total framed length for a message of n bytes
func paddedLength(n uint64) uint64 {
	return (n + 1 + lengthSize + BlockSize - 1) / BlockSize * BlockSize
}

// padTail frames the trailing partial block of a message of n total bytes.
// It returns how many bytes of dst were written, either one or two blocks.
func padTail(dst *[2 * BlockSize]byte, tail []byte, n uint64) (int, error) {
	if len(tail) >= BlockSize || uint64(len(tail)) != n%BlockSize {
		return 0, fmt.Errorf("tail of %d bytes for message of %d bytes: %w", len(tail), n, ErrInternalInvariant)
	}

	clear(dst[:])
	copy(dst[:], tail)
	dst[len(tail)] = padMarker

	size := BlockSize
	if len(tail)+1+lengthSize > BlockSize {
		size = 2 * BlockSize
	}

	uint128.From64(n).Lsh(3).PutBytesBE(dst[size-lengthSize : size])

	if n-uint64(len(tail))+uint64(size) != paddedLength(n) {
		return 0, fmt.Errorf("padded %d bytes into %d, expected %d: %w", n, n-uint64(len(tail))+uint64(size), paddedLength(n), ErrInternalInvariant)
	}
	return size, nil
}

// pad returns the complete framed block sequence of message
func pad(message []byte) []byte {
	full := len(message) &^ (BlockSize - 1)

	var tail [2 * BlockSize]byte
	size, err := padTail(&tail, message[full:], uint64(len(message)))
	if err != nil {
		panic(err)
	}

	result := make([]byte, 0, full+size)
	result = append(result, message[:full]...)
	return append(result, tail[:size]...)
}
