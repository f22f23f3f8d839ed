package kdf_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-passacre/kdf"
)

func TestFillSentinel(t *testing.T) {
	buf := make([]byte, kdf.Size+8)
	kdf.FillSentinel(buf)
	assert.Equal(t, bytes.Repeat([]byte{'x'}, kdf.Size), buf[:kdf.Size])
	assert.Equal(t, make([]byte, 8), buf[kdf.Size:], "bytes past Size are untouched")
	assert.True(t, kdf.IsSentinel(buf))
}

func TestIsSentinel(t *testing.T) {
	short := bytes.Repeat([]byte{kdf.Sentinel}, kdf.Size-1)
	assert.False(t, kdf.IsSentinel(short))

	buf := bytes.Repeat([]byte{kdf.Sentinel}, kdf.Size)
	assert.True(t, kdf.IsSentinel(buf))
	buf[kdf.Size-1] = 0
	assert.False(t, kdf.IsSentinel(buf))
}

// Compile-time interface checks.
var (
	_ kdf.Stretcher = (*kdf.Scrypt)(nil)
	_ kdf.Stretcher = (*kdf.Argon2id)(nil)
)
