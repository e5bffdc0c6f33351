package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mlopes/wordflash/internal/models"
)

// MockStore is a mock implementation of store.Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Load(ctx context.Context) (models.Collection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Collection), args.Error(1)
}

func (m *MockStore) Save(ctx context.Context, collection models.Collection) error {
	args := m.Called(ctx, collection)
	return args.Error(0)
}
