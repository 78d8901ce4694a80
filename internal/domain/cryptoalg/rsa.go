package cryptoalg

import "math/big"

// RSAProcessor handles textbook RSA operations over math/big integers.
// There is no padding and no chunking: a message is a single integer that
// must stay below the modulus, larger messages silently wrap modulo n.
type RSAProcessor interface {
	// GenerateKeys generates a key pair from two fresh primes of bitSize bits each.
	// The modulus therefore has about 2*bitSize bits.
	GenerateKeys(bitSize int) (*PublicKey, *PrivateKey, error)

	// Encrypt encrypts plaintext with the public key and returns the
	// ciphertext in the processor's configured text encoding.
	Encrypt(plainText string, publicKey *PublicKey) (string, error)

	// Decrypt decrypts ciphertext with the private key. Malformed ciphertext
	// and plaintext that is not valid UTF-8 return a *DecodingError.
	Decrypt(cipherText string, privateKey *PrivateKey) (string, error)

	// EncryptInt returns message^e mod n.
	EncryptInt(message *big.Int, publicKey *PublicKey) (*big.Int, error)

	// DecryptInt returns cipher^d mod n.
	DecryptInt(cipher *big.Int, privateKey *PrivateKey) (*big.Int, error)

	// SavePrivateKeyToFile writes the private key as "<base64 n>-<base64 d>".
	SavePrivateKeyToFile(privateKey *PrivateKey, filename string) error

	// SavePublicKeyToFile writes the public key as "<base64 n>-<base64 e>".
	SavePublicKeyToFile(publicKey *PublicKey, filename string) error

	// ReadPrivateKey reads a private key written by SavePrivateKeyToFile.
	ReadPrivateKey(privateKeyPath string) (*PrivateKey, error)

	// ReadPublicKey reads a public key written by SavePublicKeyToFile.
	ReadPublicKey(publicKeyPath string) (*PublicKey, error)
}
