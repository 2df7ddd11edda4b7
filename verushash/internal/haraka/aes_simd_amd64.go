//go:build amd64 && !purego && goexperiment.simd

package haraka

import (
	"simd/archsimd"
	"unsafe"
)

var hasAES = archsimd.X86.AVX() && archsimd.X86.AES()

// HardwareAES reports whether AES rounds run on AES-NI
func HardwareAES() bool {
	return hasAES
}

func aesenc(state *[4]uint32, key *[4]uint32) {
	if !hasAES {
		aesencGeneric(state, key)
		return
	}

	// little endian words share the byte layout of the xmm register
	// #nosec G103
	state8 := (*[16]byte)(unsafe.Pointer(state))

	X0 := archsimd.LoadUint8x16(state8)
	X0 = X0.AESEncryptOneRound(archsimd.LoadUint32x4(key))
	X0.Store(state8)
}
