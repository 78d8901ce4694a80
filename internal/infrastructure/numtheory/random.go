package numtheory

import (
	"errors"
	"fmt"
	"io"
	"math/big"
)

// randBelow returns a uniform value in [0, max) drawn from random by
// rejection sampling on the bit length of max-1. max must be positive.
func randBelow(random io.Reader, max *big.Int) (*big.Int, error) {
	if max.Sign() <= 0 {
		return nil, errors.New("upper bound must be positive")
	}

	n := new(big.Int).Sub(max, one)
	bitLen := n.BitLen()
	if bitLen == 0 {
		return n, nil
	}

	buf := make([]byte, (bitLen+7)/8)
	topBits := uint(bitLen % 8)
	if topBits == 0 {
		topBits = 8
	}

	for {
		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, fmt.Errorf("failed to read randomness: %w", err)
		}
		buf[0] &= byte(int(1<<topBits) - 1)

		n.SetBytes(buf)
		if n.Cmp(max) < 0 {
			return n, nil
		}
	}
}

// RandomInRange returns a uniform value in the closed interval [low, high].
func RandomInRange(random io.Reader, low, high *big.Int) (*big.Int, error) {
	if low.Cmp(high) > 0 {
		return nil, fmt.Errorf("empty range [%s, %s]", low, high)
	}

	width := new(big.Int).Sub(high, low)
	width.Add(width, one)

	r, err := randBelow(random, width)
	if err != nil {
		return nil, err
	}
	return r.Add(r, low), nil
}

// RandomOddCandidate returns a random odd integer with exactly bits bits,
// i.e. the top and the bottom bit are always set.
func RandomOddCandidate(random io.Reader, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("candidate must have at least 2 bits, got %d", bits)
	}

	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(random, buf); err != nil {
		return nil, fmt.Errorf("failed to read randomness: %w", err)
	}

	excess := uint(len(buf)*8 - bits)
	buf[0] &= byte(0xff >> excess)

	candidate := new(big.Int).SetBytes(buf)
	candidate.SetBit(candidate, bits-1, 1)
	candidate.SetBit(candidate, 0, 1)
	return candidate, nil
}
