package numtheory

import (
	"fmt"
	"io"
	"math"
	"math/big"
)

// MinMillerRabinRounds is the floor applied by RoundsForBits.
const MinMillerRabinRounds = 20

// smallPrimes are the odd primes below 256, used to discard most composite
// candidates before any modular exponentiation happens.
var smallPrimes = []int64{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73,
	79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139, 149, 151, 157,
	163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223, 227, 229, 233, 239,
	241, 251,
}

// RoundsForBits returns the Miller-Rabin round count for primes of the given
// size: bits / ln(bits) / 2, but never fewer than MinMillerRabinRounds.
// 1024-bit primes get 73 rounds.
func RoundsForBits(bits int) int {
	if bits < 2 {
		return MinMillerRabinRounds
	}
	b := float64(bits)
	rounds := int(b / math.Log(b) / 2)
	if rounds < MinMillerRabinRounds {
		return MinMillerRabinRounds
	}
	return rounds
}

// PrimeGenerator draws random probable primes.
//
// Search strategy: every rejected candidate is thrown away and a fresh random
// odd candidate of the requested size is sampled. The generator never walks
// forward from a rejected candidate, so it does not favour primes that follow
// large prime gaps.
type PrimeGenerator struct {
	random io.Reader
	tester *MillerRabin
	rounds int
}

// NewPrimeGenerator creates a generator reading from random. rounds <= 0
// selects RoundsForBits for every requested size.
func NewPrimeGenerator(random io.Reader, rounds int) *PrimeGenerator {
	return &PrimeGenerator{
		random: random,
		tester: NewMillerRabin(random),
		rounds: rounds,
	}
}

// Rounds returns the Miller-Rabin round count used for primes of bits bits.
func (g *PrimeGenerator) Rounds(bits int) int {
	if g.rounds > 0 {
		return g.rounds
	}
	return RoundsForBits(bits)
}

// GeneratePrime returns a probable prime with exactly bits bits.
func (g *PrimeGenerator) GeneratePrime(bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("prime size must be at least 2 bits, got %d", bits)
	}

	rounds := g.Rounds(bits)
	for {
		candidate, err := RandomOddCandidate(g.random, bits)
		if err != nil {
			return nil, fmt.Errorf("failed to sample prime candidate: %w", err)
		}

		if hasSmallFactor(candidate) {
			continue
		}

		ok, err := g.tester.IsProbablyPrime(candidate, rounds)
		if err != nil {
			return nil, fmt.Errorf("failed to test prime candidate: %w", err)
		}
		if ok {
			return candidate, nil
		}
	}
}

// hasSmallFactor reports whether an odd candidate is divisible by one of
// smallPrimes other than itself.
func hasSmallFactor(candidate *big.Int) bool {
	p := new(big.Int)
	r := new(big.Int)
	for _, sp := range smallPrimes {
		p.SetInt64(sp)
		if candidate.Cmp(p) <= 0 {
			return false
		}
		if r.Mod(candidate, p).Sign() == 0 {
			return true
		}
	}
	return false
}
