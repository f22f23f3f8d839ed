package sponge

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// StateBits is the width of the Keccak-f[1600] permutation.
const StateBits = 1600

// keccakPadding is the first padding byte of the original Keccak pad10*1
// rule. SHA-3 and SHAKE use 0x06 and 0x1f instead.
const keccakPadding = 0x01

var (
	// ErrInvalidParameters is returned by [New] when rate and capacity do not
	// describe a valid Keccak-f[1600] sponge.
	ErrInvalidParameters = errors.New("sponge: invalid rate/capacity")

	// ErrAbsorbAfterSqueeze is returned by [Sponge.Absorb] once output has
	// been squeezed.
	ErrAbsorbAfterSqueeze = errors.New("sponge: absorb after squeeze")
)

// Sponge is a Keccak-f[1600] sponge.
type Sponge struct {
	a         [25]uint64
	buf       [StateBits / 8]byte
	rate      int // bytes
	pos       int // bytes absorbed into, or squeezed out of, buf[:rate]
	squeezing bool
	dsbyte    byte
}

// New returns a Sponge with the given rate and capacity in bits.
// rateBits must be a positive multiple of 64 and rateBits+capacityBits must
// equal [StateBits].
func New(rateBits, capacityBits int) (*Sponge, error) {
	if rateBits <= 0 || rateBits%64 != 0 || capacityBits < 0 || rateBits+capacityBits != StateBits {
		return nil, fmt.Errorf("%w: rate=%d capacity=%d", ErrInvalidParameters, rateBits, capacityBits)
	}
	return &Sponge{rate: rateBits / 8, dsbyte: keccakPadding}, nil
}

// Rate returns the rate in bytes.
func (s *Sponge) Rate() int { return s.rate }

// Absorb feeds p into the sponge.
func (s *Sponge) Absorb(p []byte) error {
	if s.squeezing {
		return ErrAbsorbAfterSqueeze
	}
	for len(p) > 0 {
		n := copy(s.buf[s.pos:s.rate], p)
		s.pos += n
		p = p[n:]
		if s.pos == s.rate {
			s.permute()
			s.pos = 0
		}
	}
	return nil
}

// Squeeze fills out with the next len(out) bytes of the output stream. The
// first call pads and finalizes the absorbed input.
func (s *Sponge) Squeeze(out []byte) error {
	if !s.squeezing {
		s.pad()
	}
	for len(out) > 0 {
		if s.pos == s.rate {
			s.permute()
			s.pos = 0
		}
		n := copy(out, s.buf[s.pos:s.rate])
		s.pos += n
		out = out[n:]
	}
	return nil
}

// Reset wipes the sponge back to its empty, absorbing state.
func (s *Sponge) Reset() {
	s.a = [25]uint64{}
	s.buf = [StateBits / 8]byte{}
	s.pos = 0
	s.squeezing = false
}

// pad applies pad10*1 to the pending block and switches to squeezing. The
// output of the following permutation is exposed through buf.
func (s *Sponge) pad() {
	for i := s.pos; i < s.rate; i++ {
		s.buf[i] = 0
	}
	s.buf[s.pos] ^= s.dsbyte
	s.buf[s.rate-1] ^= 0x80
	s.permute()
	s.pos = 0
	s.squeezing = true
}

// permute XORs the rate portion of buf into the state while absorbing,
// applies Keccak-f[1600] and copies the new rate portion back into buf.
func (s *Sponge) permute() {
	lanes := s.rate / 8
	if !s.squeezing {
		for i := 0; i < lanes; i++ {
			s.a[i] ^= binary.LittleEndian.Uint64(s.buf[i*8:])
		}
	}
	keccakF1600(&s.a)
	for i := 0; i < lanes; i++ {
		binary.LittleEndian.PutUint64(s.buf[i*8:], s.a[i])
	}
}
