package models

import (
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
)

// KeyPairModel is the GORM database model for stored key pairs
type KeyPairModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	BitSize         uint32    `gorm:"type:integer;index"`
	ModulusBits     int       `gorm:"type:integer"`
	PublicKey       string    `gorm:"type:text;not null"`
	PrivateKey      string    `gorm:"type:text;not null"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (KeyPairModel) TableName() string {
	return "key_pairs"
}

// ToDomain converts GORM model to domain entity
func (m *KeyPairModel) ToDomain() *keys.KeyPairMeta {
	return &keys.KeyPairMeta{
		ID:              m.ID,
		BitSize:         m.BitSize,
		ModulusBits:     m.ModulusBits,
		PublicKey:       m.PublicKey,
		PrivateKey:      m.PrivateKey,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *KeyPairModel) FromDomain(k *keys.KeyPairMeta) {
	m.ID = k.ID
	m.BitSize = k.BitSize
	m.ModulusBits = k.ModulusBits
	m.PublicKey = k.PublicKey
	m.PrivateKey = k.PrivateKey
	m.DateTimeCreated = k.DateTimeCreated
}
