// Package generator implements a deterministic password-generator core.
//
// A [Generator] absorbs a secret (optional username, password and a site
// identifier) and then squeezes an arbitrary-length byte stream from it. The
// same inputs always yield the same stream. Mapping the stream onto a
// password alphabet, and deciding how many bytes to request, is left to the
// caller.
//
// # Algorithms
//
// Two algorithms sit behind the same state machine:
//
//   - [Keccak]: a Keccak sponge (rate 64 bits, capacity 1536 bits). Squeezing
//     reads straight from the sponge.
//   - [Skein]: a Skein-512 hash absorbs the input. The first squeeze
//     finalizes it and seeds a Threefish-512 generator (see package prng).
//     The bytes produced by each Squeeze call are returned in reverse order;
//     this is part of the output format and must not be changed.
//
// # Lifecycle
//
//	Uninitialized --Init--> Initialized --UseScrypt--> KDFSelected
//	{Initialized, KDFSelected} --AbsorbUsernamePasswordSite--> AbsorbedCredentials
//	{AbsorbedCredentials, AbsorbedPadding} --AbsorbNullRounds--> AbsorbedPadding
//	{AbsorbedCredentials, AbsorbedPadding, Squeezing} --Squeeze--> Squeezing
//
// A call made from any other mode fails with [ErrInvalidState] and changes
// nothing. A Generator holds secret material; create one per derivation, and
// call [Generator.Reset] when done.
//
// # Quick start
//
//	g, err := generator.New(generator.Keccak)
//	if err != nil { log.Fatal(err) }
//	_ = g.AbsorbUsernamePasswordSite(nil, []byte("hunter2"), []byte("example.com"))
//	_ = g.AbsorbNullRounds(10)
//	out := make([]byte, 32)
//	_ = g.Squeeze(out)
//
// Or, in one call:
//
//	out, err := generator.Generate(generator.DefaultConfig(), generator.Credentials{
//	    Password: []byte("hunter2"),
//	    Site:     []byte("example.com"),
//	}, 32)
//
// # Thread safety
//
// A Generator is designed for single-owner sequential use and is not safe for
// concurrent use. No package-level mutable state exists.
package generator
