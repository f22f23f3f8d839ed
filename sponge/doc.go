// Package sponge implements the Keccak sponge construction with a
// caller-chosen rate and capacity.
//
// Unlike golang.org/x/crypto/sha3, which only exposes the fixed SHA-3 and
// SHAKE parameter sets, a [Sponge] accepts any lane-aligned rate and uses the
// original Keccak multi-rate padding (pad10*1). Input is absorbed
// incrementally and output can be squeezed in as many calls as needed; the
// output stream continues where the previous call stopped.
//
//	s, err := sponge.New(64, 1536)
//	if err != nil { log.Fatal(err) }
//	_ = s.Absorb([]byte("input"))
//	out := make([]byte, 32)
//	_ = s.Squeeze(out)
//
// A Sponge is not safe for concurrent use.
package sponge
