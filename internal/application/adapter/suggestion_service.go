package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CategorySuggestion proposes a category for a single transaction.
type CategorySuggestion struct {
	TransactionID uuid.UUID
	CategoryName  string
	Confidence    float64
	Reasoning     string
}

// CategorySuggestionService analyzes uncategorized transactions and suggests
// categories, preferring existing category names when they fit.
type CategorySuggestionService interface {
	// IsAvailable reports whether the service is configured.
	IsAvailable() bool

	// Suggest returns at most one suggestion per input transaction.
	Suggest(
		ctx context.Context,
		transactions []*entity.Transaction,
		categories []*entity.Category,
	) ([]*CategorySuggestion, error)
}
