//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/persistence/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runKeyPairRepositoryTests exercises the repository against the given database type.
func runKeyPairRepositoryTests(t *testing.T, dbType string) {
	t.Run("Create", func(t *testing.T) {
		ctx := SetupTestDB(t, dbType)
		keyPair := CreateTestKeyPair(t, TestBitSize512)

		require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), keyPair))

		var created models.KeyPairModel
		require.NoError(t, ctx.DB.First(&created, "id = ?", keyPair.ID).Error)
		assert.Equal(t, keyPair.PublicKey, created.PublicKey)
		assert.Equal(t, keyPair.BitSize, created.BitSize)
	})

	t.Run("Create_ValidationError", func(t *testing.T) {
		ctx := SetupTestDB(t, dbType)

		err := ctx.KeyPairRepo.Create(context.Background(), &keys.KeyPairMeta{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "validation")
	})

	t.Run("GetByID", func(t *testing.T) {
		ctx := SetupTestDB(t, dbType)
		keyPair := CreateTestKeyPair(t, TestBitSize1024)
		require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), keyPair))

		fetched, err := ctx.KeyPairRepo.GetByID(context.Background(), keyPair.ID)
		require.NoError(t, err)
		assert.Equal(t, keyPair.ID, fetched.ID)
		assert.Equal(t, keyPair.PrivateKey, fetched.PrivateKey)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx := SetupTestDB(t, dbType)

		keyPair, err := ctx.KeyPairRepo.GetByID(context.Background(), uuid.NewString())
		assert.Nil(t, keyPair)
		assert.ErrorIs(t, err, keys.ErrKeyPairNotFound)
	})

	t.Run("List_WithFiltersAndSorting", func(t *testing.T) {
		ctx := SetupTestDB(t, dbType)

		older := CreateTestKeyPair(t, TestBitSize8)
		older.DateTimeCreated = time.Now().Add(-time.Hour)
		newer := CreateTestKeyPair(t, TestBitSize8)
		other := CreateTestKeyPair(t, TestBitSize1024)

		for _, keyPair := range []*keys.KeyPairMeta{older, newer, other} {
			require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), keyPair))
		}

		all, err := ctx.KeyPairRepo.List(context.Background(), nil)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		query := keys.NewKeyPairQuery()
		query.BitSize = TestBitSize8
		query.SortBy = "date_time_created"
		query.SortOrder = "desc"

		filtered, err := ctx.KeyPairRepo.List(context.Background(), query)
		require.NoError(t, err)
		require.Len(t, filtered, 2)
		assert.Equal(t, newer.ID, filtered[0].ID)
		assert.Equal(t, older.ID, filtered[1].ID)

		query.Limit = 1
		query.Offset = 1
		paged, err := ctx.KeyPairRepo.List(context.Background(), query)
		require.NoError(t, err)
		require.Len(t, paged, 1)
		assert.Equal(t, older.ID, paged[0].ID)
	})

	t.Run("List_InvalidQuery", func(t *testing.T) {
		ctx := SetupTestDB(t, dbType)

		_, err := ctx.KeyPairRepo.List(context.Background(), &keys.KeyPairQuery{SortBy: "private_key"})
		assert.Error(t, err)
	})

	t.Run("DeleteByID", func(t *testing.T) {
		ctx := SetupTestDB(t, dbType)
		keyPair := CreateTestKeyPair(t, TestBitSize512)
		require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), keyPair))

		require.NoError(t, ctx.KeyPairRepo.DeleteByID(context.Background(), keyPair.ID))

		_, err := ctx.KeyPairRepo.GetByID(context.Background(), keyPair.ID)
		assert.ErrorIs(t, err, keys.ErrKeyPairNotFound)

		err = ctx.KeyPairRepo.DeleteByID(context.Background(), keyPair.ID)
		assert.ErrorIs(t, err, keys.ErrKeyPairNotFound)
	})
}
