// Package cryptoalg defines the textbook RSA key material and the processor
// contract used to generate key pairs and to encrypt and decrypt text with them.
//
// The scheme is unpadded: a whole message is treated as one
// big-endian integer and must stay below the modulus to survive a round trip.
package cryptoalg
