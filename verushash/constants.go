package verushash

import (
	"slices"
	"sync"

	"git.gammaspectra.live/P2Pool/verushash/verushash/internal/haraka"
	"golang.org/x/crypto/sha3"
)

const (
	// Rounds permutation rounds used for compression and for the output transform
	Rounds = 5

	labelV1   = "VerusHash v1"
	labelV2   = "VerusHash v2"
	labelV2b  = "VerusHash v2b"
	labelV2b1 = "VerusHash v2b1"
)

// derive expands a public label into n bytes using cSHAKE256 with function name N and customization S
func derive(label, name string, n int) []byte {
	h := sha3.NewCShake256([]byte(name), []byte(label))
	buf := make([]byte, n)
	_, _ = h.Read(buf)
	return buf
}

func deriveTable(label, name string, rounds int) []haraka.RoundConstants {
	buf := derive(label, name, rounds*haraka.RoundConstantsSize)
	table := make([]haraka.RoundConstants, rounds)
	for i := range table {
		table[i] = haraka.RoundConstantsFromBytes(buf[i*haraka.RoundConstantsSize:])
	}
	return table
}

func deriveIV(label string) (iv [BlockSize]byte) {
	copy(iv[:], derive(label, "IV", BlockSize))
	return iv
}

// tweakTable returns table in reverse round order with every round XOR the matching tweak row
func tweakTable(table, tweak []haraka.RoundConstants) []haraka.RoundConstants {
	result := slices.Clone(table)
	slices.Reverse(result)
	for i := range result {
		result[i] = result[i].Xor(tweak[i])
	}
	return result
}

var configV1 = sync.OnceValue(func() *config {
	return &config{
		variant:  V1,
		schedule: haraka.ScheduleAESMix,
		iv:       deriveIV(labelV1),
		p:        deriveTable(labelV1, "P", Rounds),
		q:        deriveTable(labelV1, "Q", Rounds),
	}
})

var configV2 = sync.OnceValue(func() *config {
	p := deriveTable(labelV2, "P", Rounds)
	return &config{
		variant:  V2,
		schedule: haraka.ScheduleAESMix,
		iv:       deriveIV(labelV2),
		p:        p,
		q:        deriveTable(labelV2, "Q", Rounds),
		out:      p,
	}
})

var configV2b = sync.OnceValue(func() *config {
	v2 := configV2()
	tweak := deriveTable(labelV2b, "tweak", Rounds)

	p := tweakTable(v2.p, tweak)
	return &config{
		variant:  V2b,
		schedule: haraka.ScheduleMixAES,
		iv:       deriveIV(labelV2b),
		p:        p,
		q:        tweakTable(v2.q, tweak),
		out:      p,
	}
})

var configV2b1 = sync.OnceValue(func() *config {
	v2b := configV2b()

	extra := deriveTable(labelV2b1, "extra", 1)[0]
	tweak := deriveTable(labelV2b1, "tweak", 1)[0]

	// one more round than v2b in the output transform only
	out := append(slices.Clone(v2b.out), extra.Xor(tweak))
	return &config{
		variant:  V2b1,
		schedule: v2b.schedule,
		iv:       deriveIV(labelV2b1),
		p:        v2b.p,
		q:        v2b.q,
		out:      out,
	}
})
