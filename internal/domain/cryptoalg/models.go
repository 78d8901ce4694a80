package cryptoalg

import "math/big"

// PublicKey is the (n, e) half of a key pair.
type PublicKey struct {
	N *big.Int
	E *big.Int
}

// PrivateKey is the (n, d) half of a key pair. N is shared with the matching
// PublicKey and D is the inverse of e modulo φ(n).
type PrivateKey struct {
	N *big.Int
	D *big.Int
}

// ModulusBits returns the bit length of n.
func (k *PublicKey) ModulusBits() int {
	return k.N.BitLen()
}

// ModulusBits returns the bit length of n.
func (k *PrivateKey) ModulusBits() int {
	return k.N.BitLen()
}
