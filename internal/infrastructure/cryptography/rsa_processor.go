package cryptography

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/codec"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/numtheory"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	primes   *numtheory.PrimeGenerator
	encoding codec.Encoding
	logger   logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor.
// A nil settings uses config.NewRSASettings and a nil random uses crypto/rand.
func NewRSAProcessor(settings *config.RSASettings, random io.Reader, logger logger.Logger) (cryptoalg.RSAProcessor, error) {
	if settings == nil {
		settings = config.NewRSASettings()
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if random == nil {
		random = rand.Reader
	}

	encoding, err := codec.ParseEncoding(settings.CiphertextEncoding)
	if err != nil {
		return nil, err
	}

	return &rsaProcessor{
		primes:   numtheory.NewPrimeGenerator(random, settings.MillerRabinRounds),
		encoding: encoding,
		logger:   logger,
	}, nil
}

// GenerateKeys draws two distinct primes of bitSize bits and derives the key
// pair for the fixed public exponent. Prime pairs whose totient shares a
// factor with the exponent are discarded and the search starts over.
// p == q is rejected as well: n - p - q + 1 is not the totient of p*p.
func (r *rsaProcessor) GenerateKeys(bitSize int) (*cryptoalg.PublicKey, *cryptoalg.PrivateKey, error) {
	if bitSize < cryptoalg.MinPrimeBits {
		return nil, nil, fmt.Errorf("bit size must be at least %d, got %d", cryptoalg.MinPrimeBits, bitSize)
	}

	e := big.NewInt(cryptoalg.PublicExponent)

	for attempt := 1; ; attempt++ {
		p, err := r.primes.GeneratePrime(bitSize)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate prime p: %w", err)
		}
		q, err := r.primes.GeneratePrime(bitSize)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate prime q: %w", err)
		}
		if numtheory.Equal(p, q) {
			r.logger.Debug("attempt %d: p equals q, retrying", attempt)
			continue
		}

		n := new(big.Int).Mul(p, q)
		phi := new(big.Int).Sub(n, p)
		phi.Sub(phi, q)
		phi.Add(phi, big.NewInt(1))

		d, ok := numtheory.ModInverse(e, phi)
		if !ok {
			r.logger.Debug("attempt %d: public exponent not invertible modulo phi, retrying", attempt)
			continue
		}

		r.checkInverse(e, d, phi)

		r.logger.Info("Generated RSA key pair with %d-bit modulus", n.BitLen())
		return &cryptoalg.PublicKey{N: n, E: e},
			&cryptoalg.PrivateKey{N: new(big.Int).Set(n), D: d},
			nil
	}
}

// checkInverse terminates the process through logger.Fatal unless
// e*d ≡ 1 (mod phi), also when called from an HTTP handler.
func (r *rsaProcessor) checkInverse(e, d, phi *big.Int) {
	product := new(big.Int).Mul(e, d)
	if !numtheory.IsOne(product.Mod(product, phi)) {
		r.logger.Fatal("key pair self-check failed: e*d mod phi = %s", product)
	}
}

// Encrypt converts plainText to an integer, raises it to e modulo n and
// renders the result in the configured ciphertext encoding.
func (r *rsaProcessor) Encrypt(plainText string, publicKey *cryptoalg.PublicKey) (string, error) {
	c, err := r.EncryptInt(codec.BytesToInt([]byte(plainText)), publicKey)
	if err != nil {
		return "", err
	}

	r.logger.Debug("RSA encryption succeeded")
	return codec.EncodeCiphertext(r.encoding, c), nil
}

// Decrypt reverses Encrypt. The recovered plaintext must be valid UTF-8.
func (r *rsaProcessor) Decrypt(cipherText string, privateKey *cryptoalg.PrivateKey) (string, error) {
	c, err := codec.DecodeCiphertext(r.encoding, cipherText)
	if err != nil {
		return "", err
	}

	m, err := r.DecryptInt(c, privateKey)
	if err != nil {
		return "", err
	}

	plainText, err := codec.IntToText(m)
	if err != nil {
		return "", err
	}

	r.logger.Debug("RSA decryption succeeded")
	return plainText, nil
}

// EncryptInt returns message^e mod n. Messages not below n wrap modulo n.
func (r *rsaProcessor) EncryptInt(message *big.Int, publicKey *cryptoalg.PublicKey) (*big.Int, error) {
	if publicKey == nil || publicKey.N == nil || publicKey.E == nil {
		return nil, errors.New("public key cannot be nil")
	}
	if message.Sign() < 0 {
		return nil, errors.New("message must not be negative")
	}
	return numtheory.PowMod(message, publicKey.E, publicKey.N), nil
}

// DecryptInt returns cipher^d mod n.
func (r *rsaProcessor) DecryptInt(cipher *big.Int, privateKey *cryptoalg.PrivateKey) (*big.Int, error) {
	if privateKey == nil || privateKey.N == nil || privateKey.D == nil {
		return nil, errors.New("private key cannot be nil")
	}
	if cipher.Sign() < 0 {
		return nil, errors.New("ciphertext must not be negative")
	}
	return numtheory.PowMod(cipher, privateKey.D, privateKey.N), nil
}

// SavePrivateKeyToFile writes the private key text readable only by its owner.
func (r *rsaProcessor) SavePrivateKeyToFile(privateKey *cryptoalg.PrivateKey, filename string) error {
	if privateKey == nil {
		return errors.New("private key cannot be nil")
	}
	if err := writeKeyFile(filename, codec.EncodePrivateKey(privateKey), 0600); err != nil {
		return fmt.Errorf("failed to write private key file: %w", err)
	}

	r.logger.Info("Saved RSA private key ", filename)
	return nil
}

// SavePublicKeyToFile writes the public key text.
func (r *rsaProcessor) SavePublicKeyToFile(publicKey *cryptoalg.PublicKey, filename string) error {
	if publicKey == nil {
		return errors.New("public key cannot be nil")
	}
	if err := writeKeyFile(filename, codec.EncodePublicKey(publicKey), 0644); err != nil {
		return fmt.Errorf("failed to write public key file: %w", err)
	}

	r.logger.Info("Saved RSA public key ", filename)
	return nil
}

// ReadPrivateKey reads a private key written by SavePrivateKeyToFile.
func (r *rsaProcessor) ReadPrivateKey(privateKeyPath string) (*cryptoalg.PrivateKey, error) {
	content, err := os.ReadFile(filepath.Clean(privateKeyPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read private key file: %w", err)
	}

	privateKey, err := codec.DecodePrivateKey(string(content))
	if err != nil {
		return nil, fmt.Errorf("unable to parse private key: %w", err)
	}
	return privateKey, nil
}

// ReadPublicKey reads a public key written by SavePublicKeyToFile.
func (r *rsaProcessor) ReadPublicKey(publicKeyPath string) (*cryptoalg.PublicKey, error) {
	content, err := os.ReadFile(filepath.Clean(publicKeyPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read public key file: %w", err)
	}

	publicKey, err := codec.DecodePublicKey(string(content))
	if err != nil {
		return nil, fmt.Errorf("unable to parse public key: %w", err)
	}
	return publicKey, nil
}

func writeKeyFile(filename, text string, perm os.FileMode) error {
	return os.WriteFile(filepath.Clean(filename), []byte(text+"\n"), perm)
}
