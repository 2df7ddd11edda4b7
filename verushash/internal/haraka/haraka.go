// Package haraka implements a Haraka-512 style permutation over a 512-bit state with caller supplied round constants.
//
// The state is four 128-bit lanes. Every round runs two AES encryption rounds on each lane, each keyed by that
// round's constants, and then interleaves 32-bit words across lanes with the Haraka MIX512 shuffle. The number of
// rounds is the length of the constant table.
//
// See https://eprint.iacr.org/2016/098.pdf for the original Haraka v2 design.
package haraka

import (
	"encoding/binary"
)

const (
	// Width is the permutation's width in bytes.
	Width = 64

	Lanes     = 4
	laneWords = 4

	// AESRoundsPerRound number of AES rounds applied to each lane per permutation round
	AESRoundsPerRound = 2

	// RoundConstantsSize bytes of constants consumed per permutation round
	RoundConstantsSize = AESRoundsPerRound * Lanes * laneWords * 4
)

// Words the permutation state as sixteen little endian 32-bit words, lane by lane.
type Words [Lanes * laneWords]uint32

// RoundConstants AES round keys for one permutation round, indexed by AES step, then lane.
type RoundConstants [AESRoundsPerRound][Lanes][laneWords]uint32

// Schedule selects where the cross-lane mix sits within a round.
type Schedule uint8

const (
	// ScheduleAESMix runs the AES rounds, then the lane mix. This is the Haraka order.
	ScheduleAESMix = Schedule(iota)
	// ScheduleMixAES runs the lane mix, then the AES rounds.
	ScheduleMixAES
)

// Load reads 64 bytes into w
func (w *Words) Load(b []byte) {
	_ = b[Width-1] // bounds check hint to compiler; see golang.org/issue/14808
	for i := range w {
		w[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
}

// Store writes w into 64 bytes of b
func (w *Words) Store(b []byte) {
	_ = b[Width-1] // bounds check hint to compiler; see golang.org/issue/14808
	for i := range w {
		binary.LittleEndian.PutUint32(b[i*4:], w[i])
	}
}

// Xor sets w = w ^ other
func (w *Words) Xor(other *Words) {
	for i := range w {
		w[i] ^= other[i]
	}
}

// RoundConstantsFromBytes reads one round worth of constants, RoundConstantsSize bytes, from b
func RoundConstantsFromBytes(b []byte) (rc RoundConstants) {
	_ = b[RoundConstantsSize-1]
	for step := range rc {
		for lane := range rc[step] {
			for word := range rc[step][lane] {
				rc[step][lane][word] = binary.LittleEndian.Uint32(b[((step*Lanes+lane)*laneWords+word)*4:])
			}
		}
	}
	return rc
}

// Xor returns rc ^ other
func (rc RoundConstants) Xor(other RoundConstants) RoundConstants {
	for step := range rc {
		for lane := range rc[step] {
			for word := range rc[step][lane] {
				rc[step][lane][word] ^= other[step][lane][word]
			}
		}
	}
	return rc
}

// mix512 word sources for the MIX512 shuffle of Haraka-512 (unpacklo/unpackhi_epi32 network), out[i] = in[mix512[i]]
// Every output lane takes exactly one word from each input lane.
var mix512 = [Lanes * laneWords]uint8{
	3, 11, 7, 15,
	8, 0, 12, 4,
	9, 1, 13, 5,
	2, 10, 6, 14,
}

func mix(w *Words) {
	in := *w
	for i, src := range mix512 {
		w[i] = in[src]
	}
}

func aesLanes(w *Words, rc *RoundConstants) {
	for lane := range Lanes {
		x := (*[laneWords]uint32)(w[lane*laneWords:])
		for step := range AESRoundsPerRound {
			aesenc(x, &rc[step][lane])
		}
	}
}

// PermuteWords applies len(table) rounds of the permutation to w in place
func PermuteWords(w *Words, table []RoundConstants, schedule Schedule) {
	for r := range table {
		if schedule == ScheduleMixAES {
			mix(w)
			aesLanes(w, &table[r])
		} else {
			aesLanes(w, &table[r])
			mix(w)
		}
	}
}

// Permute applies len(table) rounds of the permutation to a 512-bit state.
func Permute(state *[Width]byte, table []RoundConstants, schedule Schedule) {
	var w Words
	w.Load(state[:])
	PermuteWords(&w, table, schedule)
	w.Store(state[:])
}
