package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// KeyHandler defines the interface for handling key-pair operations
type KeyHandler interface {
	Generate(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// keyHandler struct holds the services
type keyHandler struct {
	keyPairService keys.KeyPairService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(keyPairService keys.KeyPairService) KeyHandler {
	return &keyHandler{
		keyPairService: keyPairService,
	}
}

// Generate handles the POST request to generate and store a key pair
// @Summary Generate a textbook RSA key pair
// @Description Generate a key pair from two fresh primes of bit_size bits each and store it.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyRequest true "Prime size"
// @Success 201 {object} KeyPairResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) Generate(ctx *gin.Context) {
	var request GenerateKeyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid key data: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	keyPair, err := handler.keyPairService.Generate(ctx, request.BitSize)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("error generating key pair: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, newKeyPairResponse(keyPair))
}

// List handles the GET request to list stored key pairs with optional query parameters
// @Summary List key pairs based on query parameters
// @Description Fetch stored key pairs filtered by prime size and creation date, with pagination and sorting options.
// @Tags Key
// @Accept json
// @Produce json
// @Param bitSize query int false "Prime size in bits"
// @Param dateTimeCreated query string false "Earliest creation date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} KeyPairResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [get]
func (handler *keyHandler) List(ctx *gin.Context) {
	query := keys.NewKeyPairQuery()

	if bitSize := ctx.Query("bitSize"); len(bitSize) > 0 {
		parsed, err := strconv.ParseUint(bitSize, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid bitSize: %s", bitSize)})
			return
		}
		query.BitSize = uint32(parsed)
	}

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid dateTimeCreated: %s", dateTimeCreated)})
			return
		}
		query.DateTimeCreated = parsedTime
	}

	for name, target := range map[string]*int{"limit": &query.Limit, "offset": &query.Offset} {
		if value := ctx.Query(name); len(value) > 0 {
			parsed, err := strconv.Atoi(value)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid %s: %s", name, value)})
				return
			}
			*target = parsed
		}
	}

	query.SortBy = ctx.Query("sortBy")
	query.SortOrder = ctx.Query("sortOrder")

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	keyPairs, err := handler.keyPairService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err.Error())})
		return
	}

	listResponse := []KeyPairResponse{}
	for _, keyPair := range keyPairs {
		listResponse = append(listResponse, newKeyPairResponse(keyPair))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a key pair by ID
// @Summary Retrieve a key pair by ID
// @Description Fetch the public half and metadata of a stored key pair.
// @Tags Key
// @Produce json
// @Param id path string true "Key pair ID"
// @Success 200 {object} KeyPairResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [get]
func (handler *keyHandler) GetByID(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	keyPair, err := handler.keyPairService.GetByID(ctx, keyPairID)
	if err != nil {
		ctx.JSON(statusForError(err), ErrorResponse{Message: fmt.Sprintf("key pair with id %s: %v", keyPairID, err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, newKeyPairResponse(keyPair))
}

// DeleteByID handles the DELETE request to delete a key pair by ID
// @Summary Delete a key pair by ID
// @Tags Key
// @Produce json
// @Param id path string true "Key pair ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [delete]
func (handler *keyHandler) DeleteByID(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	if err := handler.keyPairService.DeleteByID(ctx, keyPairID); err != nil {
		ctx.JSON(statusForError(err), ErrorResponse{Message: fmt.Sprintf("error deleting key pair with id %s", keyPairID)})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted key pair with id %s", keyPairID)})
}
