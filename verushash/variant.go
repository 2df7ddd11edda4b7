package verushash

import (
	"fmt"
	"strings"

	"git.gammaspectra.live/P2Pool/verushash/verushash/internal/haraka"
)

// Variant selects one of the pinned VerusHash parameterizations
type Variant uint8

const (
	V1 = Variant(iota + 1)
	V2
	V2b
	V2b1
)

var variants = [...]Variant{V1, V2, V2b, V2b1}

// Variants lists every supported variant, oldest first
func Variants() []Variant {
	return variants[:]
}

func (v Variant) Valid() bool {
	return v >= V1 && v <= V2b1
}

func (v Variant) String() string {
	switch v {
	case V1:
		return "v1"
	case V2:
		return "v2"
	case V2b:
		return "v2b"
	case V2b1:
		return "v2b1"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

// DisplayName the name used by node software logs, like VerusHash2b1
func (v Variant) DisplayName() string {
	if !v.Valid() {
		return v.String()
	}
	return "VerusHash" + strings.TrimPrefix(v.String(), "v")
}

// ParseVariant accepts either the short form (v2b) or the entry point name (hash2b), case-insensitive
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "v1", "hash", "verushash1":
		return V1, nil
	case "v2", "hash2", "verushash2":
		return V2, nil
	case "v2b", "hash2b", "verushash2b":
		return V2b, nil
	case "v2b1", "hash2b1", "verushash2b1":
		return V2b1, nil
	default:
		return 0, fmt.Errorf("unknown variant %q: %w", s, ErrInvalidArgument)
	}
}

// config everything a variant pins down. Selected by entry point only.
type config struct {
	variant  Variant
	schedule haraka.Schedule

	iv [BlockSize]byte

	// p and q drive block compression
	p, q []haraka.RoundConstants

	// out drives the output transform, nil when the state is truncated directly
	out []haraka.RoundConstants
}

func (c *config) check() error {
	if len(c.p) == 0 || len(c.q) == 0 {
		return fmt.Errorf("%s: empty compression table: %w", c.variant, ErrInternalInvariant)
	}
	if c.variant != V1 && len(c.out) == 0 {
		return fmt.Errorf("%s: empty output table: %w", c.variant, ErrInternalInvariant)
	}
	return nil
}

func (v Variant) config() (*config, error) {
	var c *config
	switch v {
	case V1:
		c = configV1()
	case V2:
		c = configV2()
	case V2b:
		c = configV2b()
	case V2b1:
		c = configV2b1()
	default:
		return nil, fmt.Errorf("%s: %w", v, ErrInvalidArgument)
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return c, nil
}
