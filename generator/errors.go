package generator

import "errors"

// Sentinel errors returned by generator operations.
//
// Use [errors.Is] for comparisons:
//
//	err := g.Squeeze(out)
//	if errors.Is(err, generator.ErrInvalidState) {
//	    // credentials were never absorbed
//	}
var (
	// ErrUnsupportedAlgorithm is returned by [New] and [Generator.Init] for an
	// unknown algorithm tag.
	ErrUnsupportedAlgorithm = errors.New("generator: unsupported algorithm")

	// ErrInvalidState is returned when an operation is called from a mode
	// that does not permit it, for example squeezing before absorbing
	// credentials or selecting a KDF twice.
	ErrInvalidState = errors.New("generator: invalid state")

	// ErrPrimitiveFailure is returned when the underlying sponge, hash or
	// block cipher reports a failure. It is not recoverable; discard the
	// Generator.
	ErrPrimitiveFailure = errors.New("generator: primitive failure")

	// ErrKDFFailure is returned when key stretching fails. The stretcher's own
	// error (see package kdf) is wrapped as well.
	ErrKDFFailure = errors.New("generator: key stretching failed")

	// ErrInvalidArgument is returned when a caller passes an argument that
	// can never be valid, such as a nil stretcher.
	ErrInvalidArgument = errors.New("generator: invalid argument")

	// ErrInvalidBuffer is returned when a persistence buffer is shorter than
	// [KDFBufferSize].
	ErrInvalidBuffer = errors.New("generator: persistence buffer too small")
)
