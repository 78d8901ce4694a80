package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/codec"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
)

// cipherService implements the CipherService interface
type cipherService struct {
	keyPairRepo  keys.KeyPairRepository
	rsaProcessor cryptoalg.RSAProcessor
	logger       logger.Logger
}

// NewCipherService creates a new cipherService instance
func NewCipherService(keyPairRepo keys.KeyPairRepository, rsaProcessor cryptoalg.RSAProcessor, logger logger.Logger) (keys.CipherService, error) {
	if keyPairRepo == nil {
		return nil, errors.New("key pair repository cannot be nil")
	}
	if rsaProcessor == nil {
		return nil, errors.New("RSA processor cannot be nil")
	}
	return &cipherService{
		keyPairRepo:  keyPairRepo,
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

// Encrypt encrypts plainText with the public key of the stored key pair.
func (s *cipherService) Encrypt(ctx context.Context, keyPairID, plainText string) (string, error) {
	keyPair, err := s.keyPairRepo.GetByID(ctx, keyPairID)
	if err != nil {
		return "", fmt.Errorf("failed to get key pair: %w", err)
	}

	publicKey, err := codec.DecodePublicKey(keyPair.PublicKey)
	if err != nil {
		return "", fmt.Errorf("failed to load public key: %w", err)
	}

	cipherText, err := s.rsaProcessor.Encrypt(plainText, publicKey)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt: %w", err)
	}

	s.logger.Debug("Encrypted message with key pair ", keyPairID)
	return cipherText, nil
}

// Decrypt decrypts cipherText with the private key of the stored key pair.
func (s *cipherService) Decrypt(ctx context.Context, keyPairID, cipherText string) (string, error) {
	keyPair, err := s.keyPairRepo.GetByID(ctx, keyPairID)
	if err != nil {
		return "", fmt.Errorf("failed to get key pair: %w", err)
	}

	privateKey, err := codec.DecodePrivateKey(keyPair.PrivateKey)
	if err != nil {
		return "", fmt.Errorf("failed to load private key: %w", err)
	}

	plainText, err := s.rsaProcessor.Decrypt(cipherText, privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}

	s.logger.Debug("Decrypted message with key pair ", keyPairID)
	return plainText, nil
}
