package kdf

import "fmt"

// Size is the length in bytes of every stretched key, and therefore the
// minimum length of a persistence buffer.
const Size = 64

// Sentinel is the byte a persistence buffer is filled with when a stretcher
// is selected and before any key has been derived into it.
const Sentinel byte = 'x'

// MaxMemory is the largest working memory, in bytes, a driver may be
// configured to use (4 GiB). Options above it fail validation with
// [ErrInvalidOption] instead of exhausting the process.
const MaxMemory uint64 = 1 << 32

// Name identifies a key-stretching driver.
type Name string

const (
	// NameScrypt selects the scrypt driver.
	NameScrypt Name = "scrypt"
	// NameArgon2id selects the Argon2id driver.
	NameArgon2id Name = "argon2id"
)

// Stretcher is satisfied by every key-stretching driver.
//
// Implementations are immutable after construction and safe for concurrent
// use. Stretch is deliberately expensive; its cost is controlled entirely by
// the driver's options.
type Stretcher interface {
	// Stretch derives exactly [Size] bytes from password and salt. It fails
	// with an error wrapping [ErrInvalidOption] when the configured costs are
	// rejected, or [ErrDerivation] when the function itself fails.
	Stretch(password, salt []byte) ([]byte, error)

	// Name returns the driver identifier.
	Name() Name
}

// FillSentinel overwrites the first [Size] bytes of buf with [Sentinel].
// Shorter buffers are filled entirely.
func FillSentinel(buf []byte) {
	if len(buf) > Size {
		buf = buf[:Size]
	}
	for i := range buf {
		buf[i] = Sentinel
	}
}

// IsSentinel reports whether buf is at least [Size] bytes long and its first
// [Size] bytes all equal [Sentinel], meaning no key was ever derived into it.
func IsSentinel(buf []byte) bool {
	if len(buf) < Size {
		return false
	}
	for _, b := range buf[:Size] {
		if b != Sentinel {
			return false
		}
	}
	return true
}

// recoverDerivation turns a panic raised by the underlying function (for
// example an allocation that is out of range) into an [ErrDerivation] error.
// It must be deferred directly by Stretch.
func recoverDerivation(name Name, key *[]byte, err *error) {
	if r := recover(); r != nil {
		*key = nil
		*err = fmt.Errorf("%w: %s: %v", ErrDerivation, name, r)
	}
}
