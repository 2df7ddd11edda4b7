package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashString = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestHashFromString(t *testing.T) {
	h, err := HashFromString(testHashString)
	require.NoError(t, err)

	for i := range h {
		assert.Equal(t, byte(i), h[i])
	}
	assert.Equal(t, testHashString, h.String())

	_, err = HashFromString("0011")
	assert.Error(t, err)

	_, err = HashFromString("zz")
	assert.Error(t, err)
}

func TestHash_DisplayString(t *testing.T) {
	h := MustHashFromString(testHashString)

	assert.Equal(t, "1f1e1d1c1b1a191817161514131211100f0e0d0c0b0a09080706050403020100", h.DisplayString())
	assert.Equal(t, h, h.Reverse().Reverse())
	assert.Equal(t, h, MustHashFromDisplayString(h.DisplayString()))

	// display order must not leak into the stored value
	assert.Equal(t, testHashString, h.String())
}

func TestHash_DistanceBits(t *testing.T) {
	h := MustHashFromString(testHashString)
	assert.Zero(t, h.DistanceBits(h))

	other := h
	other[0] ^= 0x81
	other[31] ^= 0x01
	assert.Equal(t, 3, h.DistanceBits(other))

	var ones Hash
	for i := range ones {
		ones[i] = 0xff
	}
	assert.Equal(t, HashSize*8, ZeroHash.DistanceBits(ones))
}

func TestHash_JSON(t *testing.T) {
	h := MustHashFromString(testHashString)

	buf, err := h.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"`+testHashString+`"`, string(buf))

	var decoded Hash
	require.NoError(t, decoded.UnmarshalJSON(buf))
	assert.Equal(t, h, decoded)

	assert.Error(t, decoded.UnmarshalJSON([]byte(`"0011"`)))
}

func TestHashFromBytes(t *testing.T) {
	h := MustHashFromString(testHashString)
	assert.Equal(t, h, HashFromBytes(h.Slice()))
	assert.Equal(t, ZeroHash, HashFromBytes(h[:5]))
}
