package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields are left untouched.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	Date          *time.Time
	Type          *entity.TransactionType
	Amount        *decimal.Decimal
	Category      *string
	Payee         *string
	Notes         *string
	Account       *string
	Person        *string
	Tags          *entity.TagList
	Status        *entity.TransactionStatus
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	summaryCache    adapter.SummaryCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	summaryCache adapter.SummaryCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		summaryCache:    summaryCache,
	}
}

// Execute applies the partial update and refreshes the update timestamp.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	txn, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		txn.Date = *input.Date
	}
	if input.Type != nil {
		txn.Type = *input.Type
	}
	if input.Amount != nil {
		txn.Amount = *input.Amount
	}
	if input.Category != nil {
		txn.Category = *input.Category
	}
	if input.Payee != nil {
		txn.Payee = *input.Payee
	}
	if input.Notes != nil {
		txn.Notes = *input.Notes
	}
	if input.Account != nil {
		txn.Account = *input.Account
	}
	if input.Person != nil {
		txn.Person = *input.Person
	}
	if input.Tags != nil {
		txn.Tags = input.Tags.Normalize()
	}
	if input.Status != nil {
		txn.Status = *input.Status
	}

	if err := validateTransactionFields(txn.Date, txn.Type, txn.Amount, txn.Status); err != nil {
		return nil, err
	}

	txn.Touch()

	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, err
	}

	_ = uc.summaryCache.Invalidate(ctx)

	return &UpdateTransactionOutput{Transaction: txn}, nil
}
