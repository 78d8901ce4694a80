package testutil

import (
	"encoding/binary"
	"io"
	"math/rand/v2"
)

// NewDeterministicReader returns a reproducible byte stream for seed.
// It stands in for crypto/rand.Reader wherever a test needs the same keys or
// primes on every run.
func NewDeterministicReader(seed uint64) io.Reader {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return rand.NewChaCha8(key)
}
