package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-passacre/generator"
	"github.com/hasbyte1/go-passacre/kdf"
)

func TestDefaultConfig(t *testing.T) {
	cfg := generator.DefaultConfig()
	assert.Equal(t, generator.DefaultAlgorithm, cfg.Algorithm)
	assert.Equal(t, generator.DefaultNullRounds, cfg.NullRounds)
	assert.Nil(t, cfg.Scrypt)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  generator.Config
		want error
	}{
		{"unknown algorithm", generator.Config{Algorithm: "rot13"}, generator.ErrUnsupportedAlgorithm},
		{"both stretchers", generator.Config{
			Algorithm: generator.Keccak,
			Scrypt:    &kdf.ScryptOptions{N: testN, R: testR, P: testP},
			Stretcher: kdf.NewScrypt(kdf.DefaultScryptOptions()),
		}, generator.ErrInvalidConfig},
		{"short buffer", generator.Config{
			Algorithm:   generator.Skein,
			Scrypt:      &kdf.ScryptOptions{N: testN, R: testR, P: testP},
			Persistence: make([]byte, 10),
		}, generator.ErrInvalidBuffer},
		{"buffer without stretcher", generator.Config{
			Algorithm:   generator.Keccak,
			Persistence: make([]byte, kdf.Size),
		}, generator.ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			assert.ErrorIs(t, err, generator.ErrInvalidConfig)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGenerate_MatchesManualDerivation(t *testing.T) {
	for _, alg := range generator.Algorithms() {
		for _, useKDF := range []bool{false, true} {
			cfg := generator.Config{Algorithm: alg, NullRounds: 4}
			if useKDF {
				cfg.Scrypt = &kdf.ScryptOptions{N: testN, R: testR, P: testP}
			}
			in := defaultInput()
			got, err := generator.Generate(cfg, generator.Credentials{
				Username: in.username,
				Password: in.password,
				Site:     in.site,
			}, 70)
			require.NoError(t, err)
			assert.Equal(t, derive(t, alg, useKDF, in, 4, 70), got, "alg=%s kdf=%v", alg, useKDF)
		}
	}
}

func TestGenerate_Persistence(t *testing.T) {
	buf := make([]byte, kdf.Size)
	cfg := generator.Config{
		Algorithm:   generator.Keccak,
		Scrypt:      &kdf.ScryptOptions{N: testN, R: testR, P: testP},
		Persistence: buf,
	}
	_, err := generator.Generate(cfg, generator.Credentials{Password: []byte("pw"), Site: []byte("s")}, 16)
	require.NoError(t, err)
	assert.False(t, kdf.IsSentinel(buf))
}

func TestGenerate_Errors(t *testing.T) {
	creds := generator.Credentials{Password: []byte("pw"), Site: []byte("s")}

	buf := make([]byte, kdf.Size)
	_, err := generator.Generate(generator.Config{Algorithm: generator.Keccak, Persistence: buf}, creds, 8)
	assert.ErrorIs(t, err, generator.ErrInvalidConfig)
	assert.Equal(t, make([]byte, kdf.Size), buf, "rejected config leaves the buffer untouched")

	_, err = generator.Generate(generator.Config{Algorithm: "nope"}, creds, 8)
	assert.ErrorIs(t, err, generator.ErrUnsupportedAlgorithm)

	_, err = generator.Generate(generator.DefaultConfig(), creds, -1)
	assert.ErrorIs(t, err, generator.ErrInvalidConfig)

	cfg := generator.Config{Algorithm: generator.Keccak, Scrypt: &kdf.ScryptOptions{N: 3, R: 1, P: 1}}
	_, err = generator.Generate(cfg, creds, 8)
	assert.ErrorIs(t, err, generator.ErrKDFFailure)
}

func TestParseAlgorithm(t *testing.T) {
	a, err := generator.ParseAlgorithm("skein")
	require.NoError(t, err)
	assert.Equal(t, generator.Skein, a)
	assert.Equal(t, "skein", a.String())

	_, err = generator.ParseAlgorithm("blake3")
	assert.ErrorIs(t, err, generator.ErrUnsupportedAlgorithm)
	assert.True(t, generator.Supported(generator.Keccak))
}
