package store

import (
	"context"

	"github.com/mlopes/wordflash/internal/models"
)

// Store is the persistence collaborator for the scheduling engine. The full
// collection is the unit of transfer: Load returns everything, Save replaces
// everything.
//
// The store is a shared mutable resource with read-modify-write races: two
// concurrent review submissions for the same word may lose one update (last
// write wins). The scheduling math is self-correcting on the next review, so
// this is tolerated rather than locked against.
type Store interface {
	Load(ctx context.Context) (models.Collection, error)
	Save(ctx context.Context, collection models.Collection) error
}
