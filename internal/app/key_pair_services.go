package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/codec"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"

	"github.com/google/uuid"
)

// keyPairService implements the KeyPairService interface
type keyPairService struct {
	keyPairRepo  keys.KeyPairRepository
	rsaProcessor cryptoalg.RSAProcessor
	logger       logger.Logger

	// The processor draws from a single randomness source.
	generateMu sync.Mutex
}

// NewKeyPairService creates a new keyPairService instance
func NewKeyPairService(keyPairRepo keys.KeyPairRepository, rsaProcessor cryptoalg.RSAProcessor, logger logger.Logger) (keys.KeyPairService, error) {
	if keyPairRepo == nil {
		return nil, errors.New("key pair repository cannot be nil")
	}
	if rsaProcessor == nil {
		return nil, errors.New("RSA processor cannot be nil")
	}
	return &keyPairService{
		keyPairRepo:  keyPairRepo,
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

// Generate creates a key pair from two primes of bitSize bits and stores it.
func (s *keyPairService) Generate(ctx context.Context, bitSize uint32) (*keys.KeyPairMeta, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.generateMu.Lock()
	start := time.Now()
	publicKey, privateKey, err := s.rsaProcessor.GenerateKeys(int(bitSize))
	s.generateMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to generate key pair: %w", err)
	}

	keyPair := &keys.KeyPairMeta{
		ID:              uuid.New().String(),
		BitSize:         bitSize,
		ModulusBits:     publicKey.ModulusBits(),
		PublicKey:       codec.EncodePublicKey(publicKey),
		PrivateKey:      codec.EncodePrivateKey(privateKey),
		DateTimeCreated: time.Now().UTC(),
	}

	if err := s.keyPairRepo.Create(ctx, keyPair); err != nil {
		return nil, fmt.Errorf("failed to store key pair: %w", err)
	}

	s.logger.Info("Generated key pair %s with %d-bit modulus in %s", keyPair.ID, keyPair.ModulusBits, time.Since(start))
	return keyPair, nil
}

// List retrieves stored key pairs matching the query.
func (s *keyPairService) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairMeta, error) {
	keyPairs, err := s.keyPairRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list key pairs: %w", err)
	}
	return keyPairs, nil
}

// GetByID retrieves a stored key pair by its ID.
func (s *keyPairService) GetByID(ctx context.Context, keyPairID string) (*keys.KeyPairMeta, error) {
	keyPair, err := s.keyPairRepo.GetByID(ctx, keyPairID)
	if err != nil {
		return nil, fmt.Errorf("failed to get key pair: %w", err)
	}
	return keyPair, nil
}

// DeleteByID deletes a stored key pair by its ID.
func (s *keyPairService) DeleteByID(ctx context.Context, keyPairID string) error {
	if err := s.keyPairRepo.DeleteByID(ctx, keyPairID); err != nil {
		return fmt.Errorf("failed to delete key pair: %w", err)
	}
	return nil
}
