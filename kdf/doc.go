// Package kdf provides the key-stretching adapters used by the generator.
//
// # Architecture
//
// The central abstraction is the [Stretcher] interface. Two drivers ship with
// this package:
//
//   - [Scrypt]: scrypt with cost factor N, block size r and parallelism p.
//     This is the driver the generator protocol selects with UseScrypt.
//   - [Argon2id]: Argon2id with time, memory and thread costs, for callers
//     that want a different memory-hard function behind the same contract.
//
// Every driver produces exactly [Size] bytes from (password, salt). The
// generator passes the username as the salt, so an empty username is a valid
// (empty) salt.
//
// # Persistence buffers
//
// A caller that caches stretched keys hands the generator a buffer of at
// least [Size] bytes. The buffer is filled with [Sentinel] when a stretcher is
// selected and overwritten with the derived key once stretching succeeds.
// [IsSentinel] reports whether a buffer still holds the sentinel pattern,
// which is how a caller tells "never computed" apart from "cached". Skipping
// the stretch on a cache hit is the caller's decision; nothing in this module
// does it implicitly.
//
// # Quick start
//
//	s := kdf.NewScrypt(kdf.DefaultScryptOptions())
//	key, err := s.Stretch([]byte("password"), []byte("username"))
//	if err != nil { log.Fatal(err) }
package kdf
