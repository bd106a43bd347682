package transaction

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

func TestDeleteTransactionUseCase(t *testing.T) {
	t.Run("removes an existing transaction", func(t *testing.T) {
		existing := seedTransaction("2024-01-05", entity.TransactionTypeExpense, 50, "Food")
		repo := newMemoryRepository(existing)
		cache := &fakeSummaryCache{}
		uc := NewDeleteTransactionUseCase(repo, cache)

		err := uc.Execute(context.Background(), DeleteTransactionInput{TransactionID: existing.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(repo.transactions) != 0 {
			t.Errorf("expected empty store, got %d transactions", len(repo.transactions))
		}
		if cache.invalidations != 1 {
			t.Errorf("expected one cache invalidation, got %d", cache.invalidations)
		}
	})

	t.Run("unknown transaction fails with not found", func(t *testing.T) {
		cache := &fakeSummaryCache{}
		uc := NewDeleteTransactionUseCase(newMemoryRepository(), cache)

		err := uc.Execute(context.Background(), DeleteTransactionInput{TransactionID: uuid.New()})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
		if cache.invalidations != 0 {
			t.Error("failed deletion must not invalidate the cache")
		}
	})
}

func TestBulkDeleteTransactionsUseCase(t *testing.T) {
	t.Run("removes every listed transaction and reports the count", func(t *testing.T) {
		first := seedTransaction("2024-01-05", entity.TransactionTypeExpense, 50, "Food")
		second := seedTransaction("2024-01-10", entity.TransactionTypeIncome, 200, "Salary")
		third := seedTransaction("2024-01-12", entity.TransactionTypeExpense, 30, "Transport")
		repo := newMemoryRepository(first, second, third)
		cache := &fakeSummaryCache{}
		uc := NewBulkDeleteTransactionsUseCase(repo, cache)

		output, err := uc.Execute(context.Background(), BulkDeleteTransactionsInput{
			TransactionIDs: []uuid.UUID{first.ID, third.ID},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.DeletedCount != 2 {
			t.Errorf("expected 2 deleted, got %d", output.DeletedCount)
		}
		if len(repo.transactions) != 1 || repo.transactions[0] != second {
			t.Error("expected only the unlisted transaction to survive")
		}
		if cache.invalidations != 1 {
			t.Errorf("expected one cache invalidation, got %d", cache.invalidations)
		}
	})

	t.Run("empty id list is rejected", func(t *testing.T) {
		uc := NewBulkDeleteTransactionsUseCase(newMemoryRepository(), &fakeSummaryCache{})

		_, err := uc.Execute(context.Background(), BulkDeleteTransactionsInput{})
		if !errors.Is(err, domainerror.ErrEmptyTransactionIDs) {
			t.Errorf("expected ErrEmptyTransactionIDs, got %v", err)
		}
	})

	t.Run("unknown ids are skipped without error", func(t *testing.T) {
		existing := seedTransaction("2024-01-05", entity.TransactionTypeExpense, 50, "Food")
		uc := NewBulkDeleteTransactionsUseCase(newMemoryRepository(existing), &fakeSummaryCache{})

		output, err := uc.Execute(context.Background(), BulkDeleteTransactionsInput{
			TransactionIDs: []uuid.UUID{existing.ID, uuid.New()},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.DeletedCount != 1 {
			t.Errorf("expected 1 deleted, got %d", output.DeletedCount)
		}
	})
}
