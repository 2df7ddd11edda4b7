package verushash

import (
	"git.gammaspectra.live/P2Pool/verushash/types"
	"git.gammaspectra.live/P2Pool/verushash/verushash/internal/haraka"
)

// Sum computes the digest of data under variant.
// An unknown variant yields ErrInvalidArgument before any hashing happens.
func Sum(variant Variant, data []byte) (types.Hash, error) {
	var s State
	if err := s.init(variant); err != nil {
		return types.ZeroHash, err
	}
	_, _ = s.Write(data)
	return s.Sum256()
}

func mustSum(variant Variant, data []byte) types.Hash {
	digest, err := Sum(variant, data)
	if err != nil {
		panic(err)
	}
	return digest
}

// Hash VerusHash v1
func Hash(data []byte) types.Hash {
	return mustSum(V1, data)
}

// Hash2 VerusHash v2
func Hash2(data []byte) types.Hash {
	return mustSum(V2, data)
}

// Hash2b VerusHash v2b
func Hash2b(data []byte) types.Hash {
	return mustSum(V2b, data)
}

// Hash2b1 VerusHash v2b1
func Hash2b1(data []byte) types.Hash {
	return mustSum(V2b1, data)
}

// HardwareAES reports whether the permutation runs its AES rounds on AES-NI instead of lookup tables
func HardwareAES() bool {
	return haraka.HardwareAES()
}
