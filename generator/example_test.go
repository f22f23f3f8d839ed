package generator_test

import (
	"fmt"
	"log"

	"github.com/hasbyte1/go-passacre/generator"
	"github.com/hasbyte1/go-passacre/kdf"
)

// Example demonstrates driving a Generator step by step.
func Example() {
	g, err := generator.New(generator.Keccak)
	if err != nil {
		log.Fatal(err)
	}
	defer g.Reset()

	if err := g.AbsorbUsernamePasswordSite([]byte("alice"), []byte("hunter2"), []byte("example.com")); err != nil {
		log.Fatal(err)
	}
	if err := g.AbsorbNullRounds(10); err != nil {
		log.Fatal(err)
	}

	out := make([]byte, 32)
	if err := g.Squeeze(out); err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(out), g.Mode())
	// Output: 32 squeezing
}

// ExampleGenerate demonstrates a one-shot derivation with scrypt stretching
// and a persistence buffer.
func ExampleGenerate() {
	cache := make([]byte, generator.KDFBufferSize())
	cfg := generator.Config{
		Algorithm:   generator.Skein,
		Scrypt:      &kdf.ScryptOptions{N: 1 << 10, R: 8, P: 1},
		Persistence: cache,
		NullRounds:  100,
	}

	out, err := generator.Generate(cfg, generator.Credentials{
		Username: []byte("alice"),
		Password: []byte("hunter2"),
		Site:     []byte("example.com"),
	}, 24)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(out), kdf.IsSentinel(cache))
	// Output: 24 false
}
