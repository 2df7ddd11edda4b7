//go:build !amd64 || purego || !goexperiment.simd

package haraka

// HardwareAES reports whether AES rounds run on AES-NI
func HardwareAES() bool {
	return false
}

//go:nosplit
func aesenc(state *[4]uint32, key *[4]uint32) {
	aesencGeneric(state, key)
}
