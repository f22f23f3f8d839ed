package kdf

import (
	"fmt"
	"math"

	"golang.org/x/crypto/scrypt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Options
// ──────────────────────────────────────────────────────────────────────────────

const (
	// DefaultScryptN is the default CPU/memory cost (2^15).
	DefaultScryptN uint64 = 1 << 15

	// DefaultScryptR is the default block size.
	DefaultScryptR uint32 = 8

	// DefaultScryptP is the default parallelism.
	DefaultScryptP uint32 = 1

	// maxScryptRP is the scrypt limit on r*p.
	maxScryptRP = 1 << 30
)

// ScryptOptions configures a [Scrypt] stretcher.
//
// The values are not checked at construction time. They are checked by
// [ScryptOptions.Validate] when Stretch runs, which is when the generator
// protocol reports cost-parameter failures. The working memory, roughly
// 128*R*(N+P) bytes, must not exceed [MaxMemory].
type ScryptOptions struct {
	// N is the CPU/memory cost. It must be a power of two greater than 1.
	N uint64

	// R is the block size. Minimum: 1.
	R uint32

	// P is the parallelism. Minimum: 1. R*P must stay below 2^30.
	P uint32
}

// DefaultScryptOptions returns ScryptOptions with N=2^15, r=8, p=1.
func DefaultScryptOptions() ScryptOptions {
	return ScryptOptions{
		N: DefaultScryptN,
		R: DefaultScryptR,
		P: DefaultScryptP,
	}
}

// Validate returns an error wrapping [ErrInvalidOption] if scrypt would reject
// the parameters.
func (o ScryptOptions) Validate() error {
	if o.N <= 1 || o.N&(o.N-1) != 0 {
		return fmt.Errorf("%w: scrypt N must be a power of two > 1, got %d", ErrInvalidOption, o.N)
	}
	if o.N > math.MaxInt {
		return fmt.Errorf("%w: scrypt N %d overflows int", ErrInvalidOption, o.N)
	}
	if o.R < 1 {
		return fmt.Errorf("%w: scrypt r must be ≥ 1, got %d", ErrInvalidOption, o.R)
	}
	if o.P < 1 {
		return fmt.Errorf("%w: scrypt p must be ≥ 1, got %d", ErrInvalidOption, o.P)
	}
	if uint64(o.R)*uint64(o.P) >= maxScryptRP {
		return fmt.Errorf("%w: scrypt r*p must be < 2^30, got %d", ErrInvalidOption, uint64(o.R)*uint64(o.P))
	}
	if mem, ok := o.memory(); !ok {
		return fmt.Errorf("%w: scrypt N=%d r=%d p=%d needs %d bytes, limit is %d",
			ErrInvalidOption, o.N, o.R, o.P, mem, MaxMemory)
	}
	return nil
}

// memory returns the approximate working memory of scrypt, 128*r*(N+p)
// bytes, and whether it fits within [MaxMemory]. The returned size is
// capped at MaxMemory+1 when it would overflow.
func (o ScryptOptions) memory() (uint64, bool) {
	block := 128 * uint64(o.R)
	if o.N > MaxMemory/block {
		return MaxMemory + 1, false
	}
	mem := block * (o.N + uint64(o.P))
	return mem, mem <= MaxMemory
}

// ──────────────────────────────────────────────────────────────────────────────
// Scrypt
// ──────────────────────────────────────────────────────────────────────────────

// Scrypt stretches passwords with scrypt (RFC 7914).
//
// Scrypt is immutable after construction and safe for concurrent use.
type Scrypt struct {
	opts ScryptOptions
}

// NewScrypt constructs a Scrypt stretcher. Use [DefaultScryptOptions] for
// recommended defaults.
func NewScrypt(opts ScryptOptions) *Scrypt {
	return &Scrypt{opts: opts}
}

// Name returns [NameScrypt].
func (s *Scrypt) Name() Name { return NameScrypt }

// Options returns the configured parameters.
func (s *Scrypt) Options() ScryptOptions { return s.opts }

// Stretch derives [Size] bytes with scrypt(password, salt, N, r, p).
func (s *Scrypt) Stretch(password, salt []byte) (key []byte, err error) {
	if err := s.opts.Validate(); err != nil {
		return nil, err
	}
	defer recoverDerivation(NameScrypt, &key, &err)
	key, err = scrypt.Key(password, salt, int(s.opts.N), int(s.opts.R), int(s.opts.P), Size)
	if err != nil {
		return nil, fmt.Errorf("%w: scrypt: %w", ErrDerivation, err)
	}
	return key, nil
}
