//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"

	"github.com/stretchr/testify/mock"
)

// MockKeyPairRepository is a mock implementation of KeyPairRepository
type MockKeyPairRepository struct {
	mock.Mock
}

func (m *MockKeyPairRepository) Create(ctx context.Context, keyPair *keys.KeyPairMeta) error {
	args := m.Called(ctx, keyPair)
	return args.Error(0)
}

func (m *MockKeyPairRepository) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairRepository) GetByID(ctx context.Context, keyPairID string) (*keys.KeyPairMeta, error) {
	args := m.Called(ctx, keyPairID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairRepository) DeleteByID(ctx context.Context, keyPairID string) error {
	args := m.Called(ctx, keyPairID)
	return args.Error(0)
}
