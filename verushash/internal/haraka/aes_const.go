package haraka

import (
	"math/bits"
)

// Tables for a table-driven AES encryption round, generated at package init.

// https://csrc.nist.gov/publications/fips/fips197/fips-197.pdf

// AES works over GF(2⁸) modulo the irreducible polynomial x⁸ + x⁴ + x³ + x + 1.
const poly = 1<<8 | 1<<4 | 1<<3 | 1<<1 | 1<<0

// gfMul multiplies b and c as GF(2) polynomials modulo poly
func gfMul(b, c uint32) uint32 {
	i := b
	j := c
	s := uint32(0)
	for k := uint32(1); k < 0x100 && j != 0; k <<= 1 {
		// Invariant: k == 1<<n, i == b * xⁿ
		if j&k != 0 {
			s ^= i
			j ^= k
		}

		i <<= 1
		if i&0x100 != 0 {
			i ^= poly
		}
	}
	return s
}

// sbox FIPS-197 Figure 7, generated by walking the multiplicative group with generator 3
var sbox = func() (sbox [256]byte) {
	var p, q uint8 = 1, 1
	for {
		// p *= 3
		if p&0x80 != 0 {
			p ^= (p << 1) ^ 0x1b
		} else {
			p ^= p << 1
		}

		// q /= 3, that is q *= 0xf6
		q ^= q << 1
		q ^= q << 2
		q ^= q << 4
		if q&0x80 != 0 {
			q ^= 0x09
		}

		// affine transformation of the inverse
		sbox[p] = q ^ bits.RotateLeft8(q, 1) ^ bits.RotateLeft8(q, 2) ^ bits.RotateLeft8(q, 3) ^ bits.RotateLeft8(q, 4) ^ 0x63

		if p == 1 {
			break
		}
	}

	// 0 has no inverse
	sbox[0] = 0x63
	return sbox
}()

// encLut combined SubBytes + MixColumns lookup, one table per input row, for little endian column words
var encLut = func() (te [4][256]uint32) {
	for i := range 256 {
		s := uint32(sbox[i])
		w := gfMul(s, 2)<<24 | s<<16 | s<<8 | gfMul(s, 3)

		for j := range 4 {
			te[j][i] = bits.ReverseBytes32(w)
			w = w<<24 | w>>8
		}
	}
	return te
}()
