package generator

import "fmt"

// Algorithm names an output-generation algorithm.
type Algorithm string

const (
	// Keccak squeezes output from a Keccak sponge.
	Keccak Algorithm = "keccak"
	// Skein hashes input with Skein-512 and squeezes output from a
	// Threefish-512 generator seeded with the digest.
	Skein Algorithm = "skein"
)

// Algorithms returns every supported algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{Keccak, Skein}
}

// Supported reports whether a is a known algorithm.
func Supported(a Algorithm) bool {
	_, ok := primitives[a]
	return ok
}

// ParseAlgorithm converts s into an Algorithm, returning an error wrapping
// [ErrUnsupportedAlgorithm] for unknown names.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(s)
	if !Supported(a) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
	return a, nil
}

// String implements fmt.Stringer.
func (a Algorithm) String() string { return string(a) }
