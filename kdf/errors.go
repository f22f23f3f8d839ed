package kdf

import "errors"

// Sentinel errors returned by key-stretching operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := s.Stretch(password, salt)
//	if errors.Is(err, kdf.ErrInvalidOption) {
//	    // cost parameters were rejected
//	}
var (
	// ErrInvalidOption is returned when a driver is asked to stretch with a
	// cost parameter outside the range the underlying function accepts (for
	// example an scrypt N that is not a power of two).
	ErrInvalidOption = errors.New("kdf: invalid option value")

	// ErrDerivation is returned when the underlying memory-hard function
	// reports a failure of its own. The original cause is wrapped as well.
	ErrDerivation = errors.New("kdf: derivation failed")
)
