package config

import (
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// Ciphertext encoding constants
const (
	CiphertextEncodingBase64 = "base64"
	CiphertextEncodingRaw    = "raw"
)

// DefaultKeySize is the default size in bits of each generated prime.
const DefaultKeySize = 1024

// RSASettings configures key generation and the ciphertext text format.
// KeySize is the size of each prime, so moduli have about twice as many bits.
// MillerRabinRounds of zero derives the round count from the prime size.
type RSASettings struct {
	KeySize            int    `mapstructure:"key_size" validate:"required,keysize"`
	MillerRabinRounds  int    `mapstructure:"miller_rabin_rounds" validate:"gte=0,lte=256"`
	CiphertextEncoding string `mapstructure:"ciphertext_encoding" validate:"required,oneof=base64 raw"`
}

// NewRSASettings returns the default RSASettings.
func NewRSASettings() *RSASettings {
	return &RSASettings{
		KeySize:            DefaultKeySize,
		CiphertextEncoding: CiphertextEncodingBase64,
	}
}

// Validate checks that all fields in RSASettings are valid
func (s *RSASettings) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("keysize", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RSASettings: %w", err)
	}

	return nil
}
