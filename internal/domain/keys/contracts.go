package keys

import (
	"context"
	"errors"
)

// ErrKeyPairNotFound is returned by repositories and services for unknown IDs.
var ErrKeyPairNotFound = errors.New("key pair not found")

// KeyPairService defines methods for generating and managing stored key pairs.
type KeyPairService interface {
	// Generate creates a key pair from two primes of bitSize bits and stores it.
	// It returns the stored KeyPairMeta and any error encountered.
	Generate(ctx context.Context, bitSize uint32) (*KeyPairMeta, error)

	// List retrieves stored key pairs considering a query filter when set.
	List(ctx context.Context, query *KeyPairQuery) ([]*KeyPairMeta, error)

	// GetByID retrieves a stored key pair by its unique ID.
	GetByID(ctx context.Context, keyPairID string) (*KeyPairMeta, error)

	// DeleteByID deletes a stored key pair by its unique ID.
	DeleteByID(ctx context.Context, keyPairID string) error
}

// CipherService defines encryption and decryption with stored key pairs.
type CipherService interface {
	// Encrypt encrypts plaintext with the public half of the key pair.
	Encrypt(ctx context.Context, keyPairID, plainText string) (string, error)

	// Decrypt decrypts ciphertext with the private half of the key pair.
	Decrypt(ctx context.Context, keyPairID, cipherText string) (string, error)
}

// KeyPairRepository defines the interface for KeyPair-related persistence
type KeyPairRepository interface {
	Create(ctx context.Context, keyPair *KeyPairMeta) error
	List(ctx context.Context, query *KeyPairQuery) ([]*KeyPairMeta, error)
	GetByID(ctx context.Context, keyPairID string) (*KeyPairMeta, error)
	DeleteByID(ctx context.Context, keyPairID string) error
}
