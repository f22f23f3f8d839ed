package generator

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-passacre/kdf"
)

// ──────────────────────────────────────────────────────────────────────────────
// Config
// ──────────────────────────────────────────────────────────────────────────────

const (
	// DefaultAlgorithm is the algorithm used by [DefaultConfig].
	DefaultAlgorithm = Keccak

	// DefaultNullRounds is the number of null rounds used by [DefaultConfig].
	DefaultNullRounds uint = 1000
)

// ErrInvalidConfig is returned by [Config.Validate] and [Generate] when a
// Config cannot drive a generator.
var ErrInvalidConfig = errors.New("generator: invalid config")

// Config describes one complete derivation: which algorithm to use, whether
// to stretch the password, and how many null rounds to absorb.
type Config struct {
	// Algorithm selects the output-generation algorithm.
	Algorithm Algorithm

	// Scrypt enables scrypt key stretching when non-nil.
	Scrypt *kdf.ScryptOptions

	// Stretcher enables key stretching with an arbitrary driver. It is
	// mutually exclusive with Scrypt.
	Stretcher kdf.Stretcher

	// Persistence, when non-nil, receives the stretched key. It requires
	// Scrypt or Stretcher to be set.
	Persistence []byte

	// NullRounds is the number of 1024-byte zero blocks absorbed after the
	// credentials.
	NullRounds uint
}

// DefaultConfig returns a Config using [DefaultAlgorithm],
// [DefaultNullRounds] and no key stretching.
func DefaultConfig() Config {
	return Config{
		Algorithm:  DefaultAlgorithm,
		NullRounds: DefaultNullRounds,
	}
}

// Validate returns an error wrapping [ErrInvalidConfig] if c cannot be used.
// Cost parameters are not checked here; they surface as [ErrKDFFailure]
// when the derivation runs.
func (c Config) Validate() error {
	if !Supported(c.Algorithm) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidConfig, ErrUnsupportedAlgorithm, c.Algorithm)
	}
	if c.Scrypt != nil && c.Stretcher != nil {
		return fmt.Errorf("%w: Scrypt and Stretcher are mutually exclusive", ErrInvalidConfig)
	}
	if c.Persistence != nil && c.Scrypt == nil && c.Stretcher == nil {
		return fmt.Errorf("%w: Persistence requires Scrypt or Stretcher", ErrInvalidConfig)
	}
	if c.Persistence != nil && len(c.Persistence) < kdf.Size {
		return fmt.Errorf("%w: %w: got %d bytes, need %d",
			ErrInvalidConfig, ErrInvalidBuffer, len(c.Persistence), kdf.Size)
	}
	return nil
}

// stretcher returns the configured stretcher, or nil.
func (c Config) stretcher() kdf.Stretcher {
	if c.Scrypt != nil {
		return kdf.NewScrypt(*c.Scrypt)
	}
	return c.Stretcher
}

// ──────────────────────────────────────────────────────────────────────────────
// One-shot derivation
// ──────────────────────────────────────────────────────────────────────────────

// Credentials is the secret input of one derivation. A nil Username means no
// username.
type Credentials struct {
	Username []byte
	Password []byte
	Site     []byte
}

// Generate runs a fresh Generator through the whole lifecycle described by
// cfg and returns the first n bytes of its output stream.
func Generate(cfg Config, creds Credentials, n int) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative output length %d", ErrInvalidConfig, n)
	}

	g, err := New(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	defer g.Reset()

	if s := cfg.stretcher(); s != nil {
		if err := g.UseKDF(s, cfg.Persistence); err != nil {
			return nil, err
		}
	}
	if err := g.AbsorbUsernamePasswordSite(creds.Username, creds.Password, creds.Site); err != nil {
		return nil, err
	}
	if err := g.AbsorbNullRounds(cfg.NullRounds); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	if err := g.Squeeze(out); err != nil {
		return nil, err
	}
	return out, nil
}
