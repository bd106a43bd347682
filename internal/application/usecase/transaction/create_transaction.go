package transaction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Date     time.Time
	Type     entity.TransactionType
	Amount   decimal.Decimal
	Category string
	Payee    string
	Notes    string
	Account  string
	Person   string
	Tags     entity.TagList
	Status   entity.TransactionStatus
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	summaryCache    adapter.SummaryCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	summaryCache adapter.SummaryCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		summaryCache:    summaryCache,
	}
}

// Execute validates and persists a new transaction.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionFields(input.Date, input.Type, input.Amount, input.Status); err != nil {
		return nil, err
	}

	txn := entity.NewTransaction(
		input.Date,
		input.Type,
		input.Amount,
		input.Category,
		input.Payee,
		input.Notes,
		input.Account,
		input.Person,
		input.Tags,
		input.Status,
	)

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, err
	}

	// Cached summaries are stale after any mutation; a failed invalidation
	// only shortens cache usefulness, so the error is dropped.
	_ = uc.summaryCache.Invalidate(ctx)

	return &CreateTransactionOutput{Transaction: txn}, nil
}

// validateTransactionFields enforces the domain invariants shared by create
// and update: a known type, a non-negative amount (sign lives in the type,
// never in the amount), a known status and a usable date.
func validateTransactionFields(
	date time.Time,
	transactionType entity.TransactionType,
	amount decimal.Decimal,
	status entity.TransactionStatus,
) error {
	if date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"transaction date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}
	if !transactionType.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be income or expense",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if amount.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount cannot be negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if status != "" && !status.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionStatus,
			"transaction status must be posted or pending",
			domainerror.ErrInvalidTransactionStatus,
		)
	}
	return nil
}
