package store

import (
	"context"
	"sync"

	"github.com/mlopes/wordflash/internal/models"
)

// MemoryStore is an in-memory Store for tests and ephemeral setups.
type MemoryStore struct {
	mu         sync.RWMutex
	collection models.Collection
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collection: models.Collection{}}
}

// Load returns a deep copy of the current collection.
func (s *MemoryStore) Load(ctx context.Context) (models.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCollection(s.collection), nil
}

// Save replaces the stored collection with a deep copy of the argument.
func (s *MemoryStore) Save(ctx context.Context, collection models.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collection = copyCollection(collection)
	return nil
}

func copyCollection(in models.Collection) models.Collection {
	out := make(models.Collection, len(in))
	for cat, words := range in {
		cp := make([]models.WordRecord, len(words))
		copy(cp, words)
		out[cat] = cp
	}
	return out
}
