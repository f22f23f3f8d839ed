package generator

import (
	"fmt"
	"hash"
	"slices"

	"github.com/aead/skein"

	"github.com/hasbyte1/go-passacre/prng"
	"github.com/hasbyte1/go-passacre/sponge"
)

// Protocol constants shared by every Generator.
const (
	// keccakRate and keccakCapacity are the sponge parameters, in bits.
	keccakRate     = 64
	keccakCapacity = 1536

	// skeinPrefixSize is the number of zero bytes absorbed into the Skein
	// hash at Init, before any caller input.
	skeinPrefixSize = 64

	// nullRoundSize is the number of zero bytes absorbed per null round.
	nullRoundSize = 1024

	// delimiter separates username, password and site.
	delimiter = ':'
)

var (
	delimiterBytes = []byte{delimiter}
	skeinPrefix    [skeinPrefixSize]byte
	nullRound      [nullRoundSize]byte
)

// primitive is the capability set shared by both algorithms. The Generator
// enforces ordering; a primitive only has to absorb until the first squeeze
// and then keep squeezing.
type primitive interface {
	absorb(p []byte) error
	squeeze(out []byte) error
	wipe()
}

// primitives maps each algorithm to the constructor of its primitive.
var primitives = map[Algorithm]func() (primitive, error){
	Keccak: newKeccakPrimitive,
	Skein:  newSkeinPrimitive,
}

// ──────────────────────────────────────────────────────────────────────────────
// Keccak
// ──────────────────────────────────────────────────────────────────────────────

type keccakPrimitive struct {
	s *sponge.Sponge
}

func newKeccakPrimitive() (primitive, error) {
	s, err := sponge.New(keccakRate, keccakCapacity)
	if err != nil {
		return nil, fmt.Errorf("%w: keccak init: %w", ErrPrimitiveFailure, err)
	}
	return &keccakPrimitive{s: s}, nil
}

func (k *keccakPrimitive) absorb(p []byte) error {
	if err := k.s.Absorb(p); err != nil {
		return fmt.Errorf("%w: keccak absorb: %w", ErrPrimitiveFailure, err)
	}
	return nil
}

func (k *keccakPrimitive) squeeze(out []byte) error {
	if err := k.s.Squeeze(out); err != nil {
		return fmt.Errorf("%w: keccak squeeze: %w", ErrPrimitiveFailure, err)
	}
	return nil
}

func (k *keccakPrimitive) wipe() { k.s.Reset() }

// ──────────────────────────────────────────────────────────────────────────────
// Skein
// ──────────────────────────────────────────────────────────────────────────────

// skeinPrimitive hashes input with Skein-512 until the first squeeze, then
// serves output from a Threefish PRNG keyed with the digest. Exactly one of
// h and rng is live.
type skeinPrimitive struct {
	h   hash.Hash
	rng *prng.PRNG
}

func newSkeinPrimitive() (primitive, error) {
	h := skein.New512(nil)
	if _, err := h.Write(skeinPrefix[:]); err != nil {
		return nil, fmt.Errorf("%w: skein init: %w", ErrPrimitiveFailure, err)
	}
	return &skeinPrimitive{h: h}, nil
}

func (s *skeinPrimitive) absorb(p []byte) error {
	if s.h == nil {
		return fmt.Errorf("%w: skein absorb after squeeze", ErrPrimitiveFailure)
	}
	if _, err := s.h.Write(p); err != nil {
		return fmt.Errorf("%w: skein absorb: %w", ErrPrimitiveFailure, err)
	}
	return nil
}

func (s *skeinPrimitive) squeeze(out []byte) error {
	if s.rng == nil {
		digest := s.h.Sum(nil)
		rng, err := prng.New(digest)
		clear(digest)
		if err != nil {
			return fmt.Errorf("%w: skein seed: %w", ErrPrimitiveFailure, err)
		}
		s.h.Reset()
		s.h = nil
		s.rng = rng
	}
	if _, err := s.rng.Read(out); err != nil {
		return fmt.Errorf("%w: skein squeeze: %w", ErrPrimitiveFailure, err)
	}
	slices.Reverse(out)
	return nil
}

func (s *skeinPrimitive) wipe() {
	if s.h != nil {
		s.h.Reset()
		s.h = nil
	}
	if s.rng != nil {
		s.rng.Reset()
		s.rng = nil
	}
}
