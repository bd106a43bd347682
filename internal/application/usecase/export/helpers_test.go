package export

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

// scenarioTransactions is the canonical two-transaction fixture used across
// the serializer and resolution tests: one expense, one income.
func scenarioTransactions() (expense, income *entity.Transaction) {
	expense = &entity.Transaction{
		ID:       uuid.New(),
		Date:     mustDate("2024-01-05"),
		Type:     entity.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(50),
		Category: "Food",
		Payee:    "Corner Market",
		Tags:     entity.TagList{"groceries", "weekly"},
		Status:   entity.TransactionStatusPosted,
	}
	income = &entity.Transaction{
		ID:       uuid.New(),
		Date:     mustDate("2024-01-10"),
		Type:     entity.TransactionTypeIncome,
		Amount:   decimal.NewFromInt(200),
		Category: "Salary",
		Payee:    "Employer",
		Status:   entity.TransactionStatusPosted,
	}
	return expense, income
}

// stubRepository serves a fixed snapshot; only FindAll is exercised by the
// export orchestrator.
type stubRepository struct {
	snapshot []*entity.Transaction
	err      error
}

func (s *stubRepository) Create(ctx context.Context, txn *entity.Transaction) error { return nil }

func (s *stubRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}

func (s *stubRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	return s.snapshot, s.err
}

func (s *stubRepository) Update(ctx context.Context, txn *entity.Transaction) error { return nil }

func (s *stubRepository) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (s *stubRepository) BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return 0, nil
}

// fixedClock always reports the same instant.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// spyDelivery records the delivered payload and returns a canned outcome.
type spyDelivery struct {
	result *adapter.DeliveryResult
	err    error

	payload  []byte
	filename string
	mimeType string
	calls    int
}

func (d *spyDelivery) Deliver(ctx context.Context, payload []byte, filename, mimeType string) (*adapter.DeliveryResult, error) {
	d.calls++
	d.payload = payload
	d.filename = filename
	d.mimeType = mimeType
	return d.result, d.err
}
