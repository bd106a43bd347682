// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// ListTransactionsInput represents the input for listing transactions.
// SelectedIDs, when non-empty, overrides the filtered view as the scope for
// the display totals; the listed transactions themselves always reflect the
// filter.
type ListTransactionsInput struct {
	Filter      valueobject.FilterSpec
	SelectedIDs []uuid.UUID
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
	Totals       entity.DisplayTotals
}

// ListTransactionsUseCase handles the filter/sort/totals view composition.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute fetches a snapshot, applies the filter, sorts newest-first and
// computes display totals over the working set in scope.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	snapshot, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := input.Filter.Apply(snapshot)
	sorted := entity.SortForDisplay(filtered)

	workingSet := filtered
	if len(input.SelectedIDs) > 0 {
		selected := valueobject.NewSelection(input.SelectedIDs...)
		workingSet = make([]*entity.Transaction, 0, len(input.SelectedIDs))
		for _, txn := range snapshot {
			if selected.Contains(txn.ID) {
				workingSet = append(workingSet, txn)
			}
		}
	}

	return &ListTransactionsOutput{
		Transactions: sorted,
		Totals:       entity.ComputeDisplayTotals(workingSet),
	}, nil
}
