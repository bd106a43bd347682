// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence
// operations. The core treats the store as a synchronous snapshot provider:
// filtering, sorting and aggregation happen in memory over the snapshot, so
// the pipeline stays pure and testable.
type TransactionRepository interface {
	// Create creates a new transaction in the store.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindAll retrieves a snapshot of the entire collection in stable
	// insertion order (oldest created first).
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// Update updates an existing transaction in the store.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the store.
	Delete(ctx context.Context, id uuid.UUID) error

	// BulkDelete removes multiple transactions by their IDs and returns the
	// count of deleted transactions.
	BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// CategoryRepository defines persistence operations for category reference data.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]*entity.Category, error)
	FindByName(ctx context.Context, name string) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
}

// PersonRepository defines persistence operations for person reference data.
type PersonRepository interface {
	FindAll(ctx context.Context) ([]*entity.Person, error)
}
