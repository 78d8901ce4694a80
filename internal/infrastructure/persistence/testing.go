//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Test constants
const (
	TestBitSize8    = 8
	TestBitSize512  = 512
	TestBitSize1024 = 1024

	// n = 3233, e = 65537, d = 2753
	TestPublicKey  = "DKE=-AQAB"
	TestPrivateKey = "DKE=-CsE="

	postgresDSN      = "user=postgres password=postgres host=localhost port=5432 sslmode=disable"
	postgresAdminDSN = "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	KeyPairRepo keys.KeyPairRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  postgresDSN,
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			_ = DropDatabase(postgresAdminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	logger := testutil.SetupTestLogger(t)

	keyPairRepo, err := NewGormKeyPairRepository(db, logger)
	require.NoError(t, err, "Failed to create key pair repository")

	return &TestContext{
		DB:          db,
		KeyPairRepo: keyPairRepo,
	}
}

// CreateTestKeyPair creates a test key pair with the textbook key material
func CreateTestKeyPair(t *testing.T, bitSize uint32) *keys.KeyPairMeta {
	t.Helper()

	return &keys.KeyPairMeta{
		ID:              uuid.NewString(),
		BitSize:         bitSize,
		ModulusBits:     12,
		PublicKey:       TestPublicKey,
		PrivateKey:      TestPrivateKey,
		DateTimeCreated: time.Now(),
	}
}
