package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedTransaction(date string, txnType entity.TransactionType, amount int64, category string) *entity.Transaction {
	return entity.NewTransaction(
		mustDate(date),
		txnType,
		decimal.NewFromInt(amount),
		category,
		"", "", "", "",
		nil,
		entity.TransactionStatusPosted,
	)
}

// memoryRepository is an in-memory store preserving insertion order, matching
// the snapshot contract of the persistence layer.
type memoryRepository struct {
	transactions []*entity.Transaction
}

func newMemoryRepository(seed ...*entity.Transaction) *memoryRepository {
	return &memoryRepository{transactions: seed}
}

func (r *memoryRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	r.transactions = append(r.transactions, txn)
	return nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, txn := range r.transactions {
		if txn.ID == id {
			return txn, nil
		}
	}
	return nil, domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found: "+id.String(),
		domainerror.ErrTransactionNotFound,
	)
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	snapshot := make([]*entity.Transaction, len(r.transactions))
	copy(snapshot, r.transactions)
	return snapshot, nil
}

func (r *memoryRepository) Update(ctx context.Context, txn *entity.Transaction) error {
	for i, existing := range r.transactions {
		if existing.ID == txn.ID {
			r.transactions[i] = txn
			return nil
		}
	}
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found: "+txn.ID.String(),
		domainerror.ErrTransactionNotFound,
	)
}

func (r *memoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	for i, txn := range r.transactions {
		if txn.ID == id {
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memoryRepository) BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var deleted int64
	for _, id := range ids {
		before := len(r.transactions)
		if err := r.Delete(ctx, id); err != nil {
			return deleted, err
		}
		if len(r.transactions) < before {
			deleted++
		}
	}
	return deleted, nil
}

// fakeSummaryCache counts invalidations; reads always miss.
type fakeSummaryCache struct {
	invalidations int
}

func (c *fakeSummaryCache) Get(ctx context.Context, key string) (*entity.AggregateSummary, error) {
	return nil, nil
}

func (c *fakeSummaryCache) Set(ctx context.Context, key string, summary *entity.AggregateSummary, ttl time.Duration) error {
	return nil
}

func (c *fakeSummaryCache) Invalidate(ctx context.Context) error {
	c.invalidations++
	return nil
}
