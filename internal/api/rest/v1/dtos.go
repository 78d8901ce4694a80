package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// GenerateKeyRequest is the body of POST /keys. BitSize is the size of each prime.
type GenerateKeyRequest struct {
	BitSize uint32 `json:"bit_size" validate:"required,keysize"`
}

// Validate for validating GenerateKeyRequest struct
func (r *GenerateKeyRequest) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("keysize", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}
	return formatValidationError(validate.Struct(r))
}

// EncryptRequest is the body of POST /keys/:id/encrypt.
type EncryptRequest struct {
	PlainText string `json:"plaintext" validate:"required"`
}

// Validate for validating EncryptRequest struct
func (r *EncryptRequest) Validate() error {
	return formatValidationError(validator.New().Struct(r))
}

// DecryptRequest is the body of POST /keys/:id/decrypt. CipherText is base64.
type DecryptRequest struct {
	CipherText string `json:"ciphertext" validate:"required"`
}

// Validate for validating DecryptRequest struct
func (r *DecryptRequest) Validate() error {
	return formatValidationError(validator.New().Struct(r))
}

// EncryptResponse carries a base64 ciphertext.
type EncryptResponse struct {
	CipherText string `json:"ciphertext"`
}

// DecryptResponse carries the recovered plaintext.
type DecryptResponse struct {
	PlainText string `json:"plaintext"`
}

// KeyPairResponse describes a stored key pair. The private exponent is never returned.
type KeyPairResponse struct {
	ID              string    `json:"id"`
	BitSize         uint32    `json:"bit_size"`
	ModulusBits     int       `json:"modulus_bits"`
	PublicKey       string    `json:"public_key"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational response
type InfoResponse struct {
	Message string `json:"message"`
}

func newKeyPairResponse(keyPair *keys.KeyPairMeta) KeyPairResponse {
	return KeyPairResponse{
		ID:              keyPair.ID,
		BitSize:         keyPair.BitSize,
		ModulusBits:     keyPair.ModulusBits,
		PublicKey:       keyPair.PublicKey,
		DateTimeCreated: keyPair.DateTimeCreated,
	}
}

func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %v", messages)
	}
	return fmt.Errorf("validation error: %w", err)
}
