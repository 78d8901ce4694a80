//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/stretchr/testify/assert"
)

func TestKeyPairModel_ToDomain(t *testing.T) {
	keyPairModel := &KeyPairModel{
		ID:              "test-id",
		BitSize:         1024,
		ModulusBits:     2048,
		PublicKey:       "DKE=-AQAB",
		PrivateKey:      "DKE=-CsE=",
		DateTimeCreated: time.Now(),
	}

	keyPairMeta := keyPairModel.ToDomain()

	assert.Equal(t, keyPairModel.ID, keyPairMeta.ID)
	assert.Equal(t, keyPairModel.BitSize, keyPairMeta.BitSize)
	assert.Equal(t, keyPairModel.ModulusBits, keyPairMeta.ModulusBits)
	assert.Equal(t, keyPairModel.PublicKey, keyPairMeta.PublicKey)
	assert.Equal(t, keyPairModel.PrivateKey, keyPairMeta.PrivateKey)
	assert.Equal(t, keyPairModel.DateTimeCreated, keyPairMeta.DateTimeCreated)
}

func TestKeyPairModel_FromDomain(t *testing.T) {
	keyPairMeta := &keys.KeyPairMeta{
		ID:              "test-id",
		BitSize:         8,
		ModulusBits:     16,
		PublicKey:       "DKE=-AQAB",
		PrivateKey:      "DKE=-CsE=",
		DateTimeCreated: time.Now(),
	}

	keyPairModel := &KeyPairModel{}
	keyPairModel.FromDomain(keyPairMeta)

	assert.Equal(t, keyPairMeta.ID, keyPairModel.ID)
	assert.Equal(t, keyPairMeta.BitSize, keyPairModel.BitSize)
	assert.Equal(t, keyPairMeta.ModulusBits, keyPairModel.ModulusBits)
	assert.Equal(t, keyPairMeta.PublicKey, keyPairModel.PublicKey)
	assert.Equal(t, keyPairMeta.PrivateKey, keyPairModel.PrivateKey)
	assert.Equal(t, keyPairMeta.DateTimeCreated, keyPairModel.DateTimeCreated)
	assert.Equal(t, "key_pairs", keyPairModel.TableName())
}
