// Package numtheory implements the number theory behind textbook RSA on top of
// math/big: square-and-multiply modular exponentiation, the iterative extended
// Euclidean algorithm, the Miller-Rabin probable prime test and random prime
// generation.
//
// Every routine that samples randomness takes an explicit io.Reader so that
// callers can swap crypto/rand for a seeded stream in tests.
package numtheory
