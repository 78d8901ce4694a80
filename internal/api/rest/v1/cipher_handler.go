package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// CipherHandler defines the interface for encrypting and decrypting with stored key pairs
type CipherHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

type cipherHandler struct {
	cipherService keys.CipherService
}

// NewCipherHandler creates a new CipherHandler
func NewCipherHandler(cipherService keys.CipherService) CipherHandler {
	return &cipherHandler{
		cipherService: cipherService,
	}
}

// Encrypt handles the POST request to encrypt a message
// @Summary Encrypt a message with a stored public key
// @Description The message is encrypted as a single integer, messages not below the modulus wrap.
// @Tags Cipher
// @Accept json
// @Produce json
// @Param id path string true "Key pair ID"
// @Param requestBody body EncryptRequest true "Plaintext"
// @Success 200 {object} EncryptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/encrypt [post]
func (handler *cipherHandler) Encrypt(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	var request EncryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err.Error())})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	cipherText, err := handler.cipherService.Encrypt(ctx, keyPairID, request.PlainText)
	if err != nil {
		ctx.JSON(statusForError(err), ErrorResponse{Message: fmt.Sprintf("encryption failed: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, EncryptResponse{CipherText: cipherText})
}

// Decrypt handles the POST request to decrypt a base64 ciphertext
// @Summary Decrypt a ciphertext with a stored private key
// @Tags Cipher
// @Accept json
// @Produce json
// @Param id path string true "Key pair ID"
// @Param requestBody body DecryptRequest true "Base64 ciphertext"
// @Success 200 {object} DecryptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /keys/{id}/decrypt [post]
func (handler *cipherHandler) Decrypt(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	var request DecryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err.Error())})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	plainText, err := handler.cipherService.Decrypt(ctx, keyPairID, request.CipherText)
	if err != nil {
		ctx.JSON(statusForError(err), ErrorResponse{Message: fmt.Sprintf("decryption failed: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{PlainText: plainText})
}
