//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/persistence"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	KeyPairService keys.KeyPairService
	CipherService  keys.CipherService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	rsaProcessor, err := cryptography.NewRSAProcessor(config.NewRSASettings(), nil, logger)
	require.NoError(t, err, "Failed to create RSA processor")

	keyPairService, err := NewKeyPairService(dbContext.KeyPairRepo, rsaProcessor, logger)
	require.NoError(t, err, "Failed to create key pair service")

	cipherService, err := NewCipherService(dbContext.KeyPairRepo, rsaProcessor, logger)
	require.NoError(t, err, "Failed to create cipher service")

	return &TestServices{
		KeyPairService: keyPairService,
		CipherService:  cipherService,
		DBContext:      dbContext,
	}
}
