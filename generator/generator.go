package generator

import (
	"fmt"
	"unsafe"

	"github.com/hasbyte1/go-passacre/kdf"
)

// Mode is the position of a [Generator] in its lifecycle. Modes only move
// forward; Squeezing is the only mode that can be re-entered.
type Mode int

const (
	// Uninitialized is the zero Mode. Only Init is legal.
	Uninitialized Mode = iota
	// Initialized follows a successful Init.
	Initialized
	// KDFSelected follows UseScrypt or UseKDF.
	KDFSelected
	// AbsorbedCredentials follows AbsorbUsernamePasswordSite.
	AbsorbedCredentials
	// AbsorbedPadding follows AbsorbNullRounds.
	AbsorbedPadding
	// Squeezing follows the first Squeeze.
	Squeezing
)

var modeNames = [...]string{
	Uninitialized:       "uninitialized",
	Initialized:         "initialized",
	KDFSelected:         "kdf-selected",
	AbsorbedCredentials: "absorbed-credentials",
	AbsorbedPadding:     "absorbed-padding",
	Squeezing:           "squeezing",
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// StateSize returns the in-memory size in bytes of a Generator value, for
// callers that manage generator storage themselves.
func StateSize() int {
	return int(unsafe.Sizeof(Generator{}))
}

// KDFBufferSize returns the size in bytes of a stretched key, which is also
// the minimum length of a persistence buffer.
func KDFBufferSize() int {
	return kdf.Size
}

// Generator is the generation state machine. The zero value is an
// Uninitialized generator; call [Generator.Init] or use [New].
type Generator struct {
	mode        Mode
	algorithm   Algorithm
	stretcher   kdf.Stretcher
	persistence []byte
	prim        primitive
}

// New returns a Generator initialized for algorithm a.
func New(a Algorithm) (*Generator, error) {
	g := &Generator{}
	if err := g.Init(a); err != nil {
		return nil, err
	}
	return g, nil
}

// Init discards all existing state and prepares the generator for algorithm
// a. It fails with [ErrUnsupportedAlgorithm] for unknown tags, leaving the
// generator Uninitialized.
func (g *Generator) Init(a Algorithm) error {
	g.Reset()
	newPrimitive, ok := primitives[a]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, a)
	}
	prim, err := newPrimitive()
	if err != nil {
		return err
	}
	g.algorithm = a
	g.prim = prim
	g.mode = Initialized
	return nil
}

// UseScrypt selects scrypt key stretching with cost N, block size r and
// parallelism p. It is only legal directly after Init. Stretching happens
// later, in AbsorbUsernamePasswordSite, which is also where invalid cost
// parameters are reported.
//
// persistence may be nil. Otherwise it must hold at least [KDFBufferSize]
// bytes; its first [KDFBufferSize] bytes are filled with [kdf.Sentinel] now
// and overwritten with the stretched key once credentials are absorbed.
func (g *Generator) UseScrypt(n uint64, r, p uint32, persistence []byte) error {
	return g.UseKDF(kdf.NewScrypt(kdf.ScryptOptions{N: n, R: r, P: p}), persistence)
}

// UseKDF is UseScrypt for an arbitrary [kdf.Stretcher].
func (g *Generator) UseKDF(s kdf.Stretcher, persistence []byte) error {
	if g.mode != Initialized {
		return g.stateError("UseKDF")
	}
	if s == nil {
		return fmt.Errorf("%w: nil stretcher", ErrInvalidArgument)
	}
	if persistence != nil && len(persistence) < kdf.Size {
		return fmt.Errorf("%w: got %d bytes, need %d", ErrInvalidBuffer, len(persistence), kdf.Size)
	}
	g.stretcher = s
	g.persistence = persistence
	kdf.FillSentinel(persistence)
	g.mode = KDFSelected
	return nil
}

// AbsorbUsernamePasswordSite absorbs the credentials. A nil username means
// no username; an empty non-nil username is absorbed as an empty field.
//
// Without key stretching the absorbed sequence is
//
//	[username ':'] password ':' site
//
// With key stretching it is
//
//	stretch(password, salt=username) ':' site
//
// and the stretched key is copied into the persistence buffer, if any.
func (g *Generator) AbsorbUsernamePasswordSite(username, password, site []byte) error {
	if g.mode != Initialized && g.mode != KDFSelected {
		return g.stateError("AbsorbUsernamePasswordSite")
	}

	if g.stretcher != nil {
		key, err := g.stretch(password, username)
		if err != nil {
			return err
		}
		defer clear(key)
		if len(key) != kdf.Size {
			return fmt.Errorf("%w: %s returned %d bytes, want %d",
				ErrKDFFailure, g.stretcher.Name(), len(key), kdf.Size)
		}
		if err := g.prim.absorb(key); err != nil {
			return err
		}
		if g.persistence != nil {
			copy(g.persistence, key)
		}
	} else {
		if username != nil {
			if err := g.prim.absorb(username); err != nil {
				return err
			}
			if err := g.prim.absorb(delimiterBytes); err != nil {
				return err
			}
		}
		if err := g.prim.absorb(password); err != nil {
			return err
		}
	}

	if err := g.prim.absorb(delimiterBytes); err != nil {
		return err
	}
	if err := g.prim.absorb(site); err != nil {
		return err
	}
	g.mode = AbsorbedCredentials
	return nil
}

// AbsorbNullRounds absorbs rounds blocks of 1024 zero bytes. It may be called
// repeatedly; rounds may be zero.
func (g *Generator) AbsorbNullRounds(rounds uint) error {
	if g.mode != AbsorbedCredentials && g.mode != AbsorbedPadding {
		return g.stateError("AbsorbNullRounds")
	}
	for i := uint(0); i < rounds; i++ {
		if err := g.prim.absorb(nullRound[:]); err != nil {
			return err
		}
	}
	g.mode = AbsorbedPadding
	return nil
}

// Squeeze fills out with the next len(out) bytes of the output stream. The
// stream never restarts: successive calls continue where the previous one
// stopped.
func (g *Generator) Squeeze(out []byte) error {
	switch g.mode {
	case AbsorbedCredentials, AbsorbedPadding, Squeezing:
	default:
		return g.stateError("Squeeze")
	}
	if err := g.prim.squeeze(out); err != nil {
		return err
	}
	g.mode = Squeezing
	return nil
}

// Read implements io.Reader on top of Squeeze.
func (g *Generator) Read(p []byte) (int, error) {
	if err := g.Squeeze(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Reset wipes all secret state and returns the generator to Uninitialized.
// A persistence buffer is owned by the caller and is left untouched.
func (g *Generator) Reset() {
	if g.prim != nil {
		g.prim.wipe()
	}
	*g = Generator{}
}

// Mode returns the current lifecycle mode.
func (g *Generator) Mode() Mode { return g.mode }

// Algorithm returns the algorithm chosen at Init, or "" when Uninitialized.
func (g *Generator) Algorithm() Algorithm { return g.algorithm }

// Stretcher returns the selected key stretcher, or nil.
func (g *Generator) Stretcher() kdf.Stretcher { return g.stretcher }

// stretch runs the selected stretcher. A panic inside a third-party
// stretcher is reported as ErrKDFFailure rather than escaping to the caller.
func (g *Generator) stretch(password, salt []byte) (key []byte, err error) {
	name := g.stretcher.Name()
	defer func() {
		if r := recover(); r != nil {
			key = nil
			err = fmt.Errorf("%w: %s: %v", ErrKDFFailure, name, r)
		}
	}()
	key, err = g.stretcher.Stretch(password, salt)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrKDFFailure, name, err)
	}
	return key, nil
}

func (g *Generator) stateError(op string) error {
	return fmt.Errorf("%w: %s not allowed in mode %s", ErrInvalidState, op, g.mode)
}
