package verushash

import (
	"fmt"
	"hash"

	"git.gammaspectra.live/P2Pool/verushash/types"
	"git.gammaspectra.live/P2Pool/verushash/verushash/internal/haraka"
)

// State incremental hasher for a single variant. Implements hash.Hash.
// Create it with New; a zero State has no variant and rejects input with ErrInvalidArgument.
// Not safe for concurrent use; create one State per goroutine.
type State struct {
	c *config

	h haraka.Words

	buf    [BlockSize]byte
	n      int
	length uint64
}

var _ hash.Hash = (*State)(nil)

var errUninitialized = fmt.Errorf("uninitialized state: %w", ErrInvalidArgument)

// New returns a State for variant, ready for writing
func New(variant Variant) (*State, error) {
	s := &State{}
	if err := s.init(variant); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *State) init(variant Variant) error {
	c, err := variant.config()
	if err != nil {
		return err
	}
	s.c = c
	s.Reset()
	return nil
}

func (s *State) Variant() Variant {
	if s.c == nil {
		return 0
	}
	return s.c.variant
}

// Reset restores the variant's initial value and drops any buffered input
func (s *State) Reset() {
	if s.c == nil {
		return
	}
	s.h.Load(s.c.iv[:])
	s.n = 0
	s.length = 0
}

func (s *State) Size() int {
	return Size
}

func (s *State) BlockSize() int {
	return BlockSize
}

// Write only fails on a State not created by New
func (s *State) Write(p []byte) (int, error) {
	if s.c == nil {
		return 0, errUninitialized
	}

	n := len(p)
	s.length += uint64(n)

	if s.n > 0 {
		k := copy(s.buf[s.n:], p)
		s.n += k
		p = p[k:]
		if s.n < BlockSize {
			return n, nil
		}
		compress(s.c, &s.h, s.buf[:])
		s.n = 0
	}

	if full := len(p) &^ (BlockSize - 1); full > 0 {
		compress(s.c, &s.h, p[:full])
		p = p[full:]
	}

	s.n = copy(s.buf[:], p)
	return n, nil
}

// Sum appends the digest of everything written so far to b. The State can keep being written to afterwards.
// Panics on a State not created by New.
func (s *State) Sum(b []byte) []byte {
	digest, err := s.Sum256()
	if err != nil {
		panic(err)
	}
	return append(b, digest[:]...)
}

// Sum256 returns the digest of everything written so far without changing the State
func (s *State) Sum256() (types.Hash, error) {
	if s.c == nil {
		return types.ZeroHash, errUninitialized
	}

	h := s.h

	var tail [2 * BlockSize]byte
	size, err := padTail(&tail, s.buf[:s.n], s.length)
	if err != nil {
		return types.ZeroHash, err
	}
	compress(s.c, &h, tail[:size])

	return finalize(s.c, &h), nil
}
