package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// KeyPairMeta is a stored key pair. PublicKey and PrivateKey hold the
// serialized "<base64 n>-<base64 exponent>" text.
type KeyPairMeta struct {
	ID              string    `validate:"required,uuid4"`
	BitSize         uint32    `validate:"required,min=8"`
	ModulusBits     int       `validate:"required,min=1"`
	PublicKey       string    `validate:"required"`
	PrivateKey      string    `validate:"required"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating KeyPairMeta struct
func (k *KeyPairMeta) Validate() error {
	return validateStruct(k)
}

// KeyPairQuery holds the filter, paging and sorting options for listing key pairs.
type KeyPairQuery struct {
	BitSize         uint32    `validate:"omitempty,min=8"`
	DateTimeCreated time.Time `validate:"omitempty"`

	Limit     int    `validate:"omitempty,gt=0"`
	Offset    int    `validate:"omitempty,gte=0"`
	SortBy    string `validate:"omitempty,oneof=id bit_size modulus_bits date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewKeyPairQuery creates a KeyPairQuery with no filters set.
func NewKeyPairQuery() *KeyPairQuery {
	return &KeyPairQuery{}
}

// Validate for validating KeyPairQuery struct
func (q *KeyPairQuery) Validate() error {
	return validateStruct(q)
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
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

	return nil
}
