// Package prng implements a pseudorandom generator built on the Threefish-512
// tweakable block cipher.
//
// The generator is keyed with a 64-byte seed. Each time its buffer runs dry it
// encrypts two fixed plaintext blocks under the current key: the output of
// block "0" becomes the next key and the output of block "1" becomes the next
// 64 bytes of the stream. Bytes left over from a block are kept for the next
// call, so the stream is the same however the caller slices its reads.
package prng

import (
	"crypto/cipher"
	"errors"
	"fmt"

	"github.com/aead/skein/threefish"
)

const (
	// KeySize is the seed and key size in bytes.
	KeySize = threefish.BlockSize512

	// BlockSize is the number of stream bytes produced per re-key.
	BlockSize = threefish.BlockSize512
)

// tweak is the fixed 24-byte tweak constant of the generator. Threefish
// consumes the first 16 bytes and derives its third tweak word from them, so
// the trailing 8 bytes never influence the output.
var tweak = [24]byte{15: 0x3f}

// Tweak returns a copy of the generator's fixed tweak constant.
func Tweak() [24]byte { return tweak }

var (
	// ErrInvalidSeedSize is returned by [New] when the seed is not
	// [KeySize] bytes.
	ErrInvalidSeedSize = errors.New("prng: invalid seed size")

	// ErrCipher is returned when the block cipher cannot be keyed.
	ErrCipher = errors.New("prng: block cipher failure")
)

// stateBlock and outputBlock are the two tagged plaintext blocks.
var (
	stateBlock  = [BlockSize]byte{0: 0}
	outputBlock = [BlockSize]byte{0: 1}
)

// PRNG is a Threefish-512 based pseudorandom stream. It is not safe for
// concurrent use.
type PRNG struct {
	block     cipher.Block
	buf       [BlockSize]byte
	remaining int
}

// New returns a PRNG keyed with seed, which must be [KeySize] bytes.
func New(seed []byte) (*PRNG, error) {
	if len(seed) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSeedSize, len(seed), KeySize)
	}
	p := &PRNG{}
	if err := p.rekey(seed); err != nil {
		return nil, err
	}
	return p, nil
}

// Read fills out with the next len(out) bytes of the stream. It always
// returns len(out), nil unless the cipher cannot be re-keyed.
func (p *PRNG) Read(out []byte) (int, error) {
	n := 0
	for n < len(out) {
		if p.remaining == 0 {
			if err := p.refill(); err != nil {
				return n, err
			}
		}
		c := copy(out[n:], p.buf[BlockSize-p.remaining:])
		p.remaining -= c
		n += c
	}
	return n, nil
}

// Reset wipes the buffered output and drops the cipher. The PRNG must not be
// used afterwards.
func (p *PRNG) Reset() {
	p.buf = [BlockSize]byte{}
	p.remaining = 0
	p.block = nil
}

func (p *PRNG) refill() error {
	var next [KeySize]byte
	p.block.Encrypt(next[:], stateBlock[:])
	p.block.Encrypt(p.buf[:], outputBlock[:])
	err := p.rekey(next[:])
	clear(next[:])
	if err != nil {
		return err
	}
	p.remaining = BlockSize
	return nil
}

func (p *PRNG) rekey(key []byte) error {
	var t [threefish.TweakSize]byte
	copy(t[:], tweak[:])
	block, err := threefish.NewCipher(&t, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCipher, err)
	}
	p.block = block
	return nil
}
