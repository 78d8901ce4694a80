package numtheory

import (
	"io"
	"math/big"
)

var three = big.NewInt(3)

// MillerRabinRound runs one Miller-Rabin round of candidate against base.
// candidate must be odd and greater than 3, base must lie in [2, candidate-2].
// It returns false only when base witnesses that candidate is composite.
func MillerRabinRound(candidate, base *big.Int) bool {
	candidateMinusOne := Sub1(candidate)

	// candidate - 1 = 2^s * d with d odd
	s := candidateMinusOne.TrailingZeroBits()
	d := new(big.Int).Rsh(candidateMinusOne, s)

	x := PowMod(base, d, candidate)
	if IsOne(x) || Equal(x, candidateMinusOne) {
		return true
	}

	for i := uint(1); i < s; i++ {
		x.Mul(x, x)
		x.Mod(x, candidate)
		if Equal(x, candidateMinusOne) {
			return true
		}
		// 1 can only square to 1, so candidate-1 is out of reach.
		if IsOne(x) {
			return false
		}
	}
	return false
}

// MillerRabin is a probabilistic primality tester drawing its bases from an
// explicit randomness source.
type MillerRabin struct {
	random io.Reader
}

// NewMillerRabin creates a tester that samples bases from random.
func NewMillerRabin(random io.Reader) *MillerRabin {
	return &MillerRabin{random: random}
}

// IsProbablyPrime reports whether candidate passes rounds independent
// Miller-Rabin rounds. A composite is accepted with probability at most
// 4^-rounds, a prime is never rejected. rounds below 1 run a single round.
// The error is non-nil only when the randomness source fails.
func (m *MillerRabin) IsProbablyPrime(candidate *big.Int, rounds int) (bool, error) {
	switch {
	case candidate.Cmp(two) < 0:
		return false, nil
	case candidate.Cmp(three) <= 0:
		return true, nil
	case IsEven(candidate):
		return false, nil
	}

	if rounds < 1 {
		rounds = 1
	}

	// Bases come from [2, candidate-2], so 1 and candidate-1 are never drawn.
	high := new(big.Int).Sub(candidate, two)
	for i := 0; i < rounds; i++ {
		base, err := RandomInRange(m.random, two, high)
		if err != nil {
			return false, err
		}
		if !MillerRabinRound(candidate, base) {
			return false, nil
		}
	}
	return true, nil
}
