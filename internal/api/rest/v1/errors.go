package v1

import (
	"errors"
	"net/http"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
)

// statusForError maps service errors to HTTP status codes.
func statusForError(err error) int {
	var decodingErr *cryptoalg.DecodingError
	switch {
	case errors.Is(err, keys.ErrKeyPairNotFound):
		return http.StatusNotFound
	case errors.As(err, &decodingErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
