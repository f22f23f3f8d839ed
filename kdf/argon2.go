package kdf

import (
	"fmt"

	"golang.org/x/crypto/argon2"
)

// ──────────────────────────────────────────────────────────────────────────────
// Options
// ──────────────────────────────────────────────────────────────────────────────

const (
	// DefaultArgon2Memory is the default memory cost in KiB (64 MiB).
	DefaultArgon2Memory uint32 = 64 * 1024

	// DefaultArgon2Time is the default number of passes.
	DefaultArgon2Time uint32 = 3

	// DefaultArgon2Threads is the default degree of parallelism.
	DefaultArgon2Threads uint8 = 2
)

// Argon2Options configures an [Argon2id] stretcher. The output length is
// always [Size] and the salt is whatever the caller passes to Stretch, so
// neither is configurable here.
type Argon2Options struct {
	// Memory is the memory cost in KiB.
	// Minimum: 8 * Threads.  Maximum: [MaxMemory] / 1024.
	// Default: [DefaultArgon2Memory] (64 MiB).
	Memory uint32

	// Time is the number of passes over memory.
	// Minimum: 1.  Default: [DefaultArgon2Time] (3).
	Time uint32

	// Threads is the degree of parallelism.
	// Minimum: 1.  Default: [DefaultArgon2Threads] (2).
	Threads uint8
}

// DefaultArgon2Options returns Argon2Options with the recommended defaults.
func DefaultArgon2Options() Argon2Options {
	return Argon2Options{
		Memory:  DefaultArgon2Memory,
		Time:    DefaultArgon2Time,
		Threads: DefaultArgon2Threads,
	}
}

// Validate returns an error wrapping [ErrInvalidOption] if argon2 would panic
// on or reject the parameters.
func (o Argon2Options) Validate() error {
	if o.Time < 1 {
		return fmt.Errorf("%w: argon2 time must be ≥ 1, got %d", ErrInvalidOption, o.Time)
	}
	if o.Threads < 1 {
		return fmt.Errorf("%w: argon2 threads must be ≥ 1, got %d", ErrInvalidOption, o.Threads)
	}
	if o.Memory < 8*uint32(o.Threads) {
		return fmt.Errorf("%w: argon2 memory (%d KiB) must be ≥ 8×threads (%d KiB)",
			ErrInvalidOption, o.Memory, 8*uint32(o.Threads))
	}
	if uint64(o.Memory)*1024 > MaxMemory {
		return fmt.Errorf("%w: argon2 memory (%d KiB) exceeds the %d KiB limit",
			ErrInvalidOption, o.Memory, MaxMemory/1024)
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Argon2id
// ──────────────────────────────────────────────────────────────────────────────

// Argon2id stretches passwords with Argon2id (RFC 9106).
//
// Argon2id is immutable after construction and safe for concurrent use.
type Argon2id struct {
	opts Argon2Options
}

// NewArgon2id constructs an Argon2id stretcher. Use [DefaultArgon2Options]
// for recommended defaults.
func NewArgon2id(opts Argon2Options) *Argon2id {
	return &Argon2id{opts: opts}
}

// Name returns [NameArgon2id].
func (a *Argon2id) Name() Name { return NameArgon2id }

// Options returns the configured parameters.
func (a *Argon2id) Options() Argon2Options { return a.opts }

// Stretch derives [Size] bytes with Argon2id(password, salt).
func (a *Argon2id) Stretch(password, salt []byte) (key []byte, err error) {
	if err := a.opts.Validate(); err != nil {
		return nil, err
	}
	defer recoverDerivation(NameArgon2id, &key, &err)
	return argon2.IDKey(password, salt, a.opts.Time, a.opts.Memory, a.opts.Threads, Size), nil
}
