package cryptoalg

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBase64 marks input that is not standard padded base64.
	ErrInvalidBase64 = errors.New("invalid base64")
	// ErrInvalidUTF8 marks a decrypted byte sequence that is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
	// ErrMalformedKey marks serialized key text that is not two '-'-joined integers.
	ErrMalformedKey = errors.New("malformed key")
)

// DecodingError is returned when text, key material or ciphertext cannot be
// turned back into the value it claims to encode.
type DecodingError struct {
	Op  string
	Err error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Op, e.Err)
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}
