package summary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedTransaction(date string, txnType entity.TransactionType, amount int64, category string) *entity.Transaction {
	return &entity.Transaction{
		ID:       uuid.New(),
		Date:     mustDate(date),
		Type:     txnType,
		Amount:   decimal.NewFromInt(amount),
		Category: category,
		Status:   entity.TransactionStatusPosted,
	}
}

type stubRepository struct {
	snapshot []*entity.Transaction
	calls    int
}

func (s *stubRepository) Create(ctx context.Context, txn *entity.Transaction) error { return nil }

func (s *stubRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}

func (s *stubRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	s.calls++
	return s.snapshot, nil
}

func (s *stubRepository) Update(ctx context.Context, txn *entity.Transaction) error { return nil }

func (s *stubRepository) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (s *stubRepository) BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return 0, nil
}

// mapCache is an in-memory SummaryCache recording the keys it was asked for.
type mapCache struct {
	entries map[string]*entity.AggregateSummary
	getKeys []string
	setKeys []string
	getErr  error
	setErr  error
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]*entity.AggregateSummary)}
}

func (c *mapCache) Get(ctx context.Context, key string) (*entity.AggregateSummary, error) {
	c.getKeys = append(c.getKeys, key)
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[key], nil
}

func (c *mapCache) Set(ctx context.Context, key string, summary *entity.AggregateSummary, ttl time.Duration) error {
	c.setKeys = append(c.setKeys, key)
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[key] = summary
	return nil
}

func (c *mapCache) Invalidate(ctx context.Context) error {
	c.entries = make(map[string]*entity.AggregateSummary)
	return nil
}

func TestGetSummaryUseCase(t *testing.T) {
	expense := seedTransaction("2024-01-05", entity.TransactionTypeExpense, 50, "Food")
	income := seedTransaction("2024-01-10", entity.TransactionTypeIncome, 200, "Salary")

	t.Run("computes the summary over the filtered set", func(t *testing.T) {
		repo := &stubRepository{snapshot: []*entity.Transaction{expense, income}}
		uc := NewGetSummaryUseCase(repo, newMapCache())
		expenseType := entity.TransactionTypeExpense

		output, err := uc.Execute(context.Background(), GetSummaryInput{
			Filter: valueobject.FilterSpec{Type: &expenseType},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		summary := output.Summary
		if !summary.TotalIncome.IsZero() {
			t.Errorf("expected zero income, got %s", summary.TotalIncome)
		}
		if !summary.TotalExpenses.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected expenses 50, got %s", summary.TotalExpenses)
		}
		if !summary.Net.Equal(decimal.NewFromInt(-50)) {
			t.Errorf("expected net -50, got %s", summary.Net)
		}
		if summary.ExpenseCount != 1 || summary.IncomeCount != 0 {
			t.Errorf("unexpected counts: %d income / %d expense", summary.IncomeCount, summary.ExpenseCount)
		}
	})

	t.Run("second identical request is served from cache", func(t *testing.T) {
		repo := &stubRepository{snapshot: []*entity.Transaction{expense, income}}
		cache := newMapCache()
		uc := NewGetSummaryUseCase(repo, cache)

		if _, err := uc.Execute(context.Background(), GetSummaryInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Execute(context.Background(), GetSummaryInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.calls != 1 {
			t.Errorf("expected one snapshot fetch, got %d", repo.calls)
		}
		if len(cache.setKeys) != 1 {
			t.Errorf("expected one cache write, got %d", len(cache.setKeys))
		}
	})

	t.Run("distinct filters use distinct cache keys", func(t *testing.T) {
		repo := &stubRepository{snapshot: []*entity.Transaction{expense, income}}
		cache := newMapCache()
		uc := NewGetSummaryUseCase(repo, cache)
		expenseType := entity.TransactionTypeExpense

		if _, err := uc.Execute(context.Background(), GetSummaryInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Execute(context.Background(), GetSummaryInput{
			Filter: valueobject.FilterSpec{Type: &expenseType},
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(cache.setKeys) != 2 || cache.setKeys[0] == cache.setKeys[1] {
			t.Errorf("expected two distinct cache keys, got %v", cache.setKeys)
		}
	})

	t.Run("cache failure falls back to recomputation", func(t *testing.T) {
		repo := &stubRepository{snapshot: []*entity.Transaction{expense}}
		cache := newMapCache()
		cache.getErr = errors.New("connection refused")
		uc := NewGetSummaryUseCase(repo, cache)

		output, err := uc.Execute(context.Background(), GetSummaryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Summary.TotalExpenses.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected recomputed expenses 50, got %s", output.Summary.TotalExpenses)
		}
	})

	t.Run("cache write failure does not fail the request", func(t *testing.T) {
		repo := &stubRepository{snapshot: []*entity.Transaction{expense}}
		cache := newMapCache()
		cache.setErr = errors.New("connection refused")
		uc := NewGetSummaryUseCase(repo, cache)

		output, err := uc.Execute(context.Background(), GetSummaryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Summary.TotalExpenses.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected computed expenses 50, got %s", output.Summary.TotalExpenses)
		}
	})

	t.Run("empty store yields a zero summary", func(t *testing.T) {
		uc := NewGetSummaryUseCase(&stubRepository{}, newMapCache())

		output, err := uc.Execute(context.Background(), GetSummaryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Summary.Net.IsZero() || !output.Summary.Average.IsZero() {
			t.Error("expected all-zero summary for an empty store")
		}
		if output.Summary.EarliestDate != nil {
			t.Error("expected nil date boundaries")
		}
	})
}

func TestFingerprint(t *testing.T) {
	t.Run("zero filter maps to the shared key", func(t *testing.T) {
		if got := fingerprint(valueobject.FilterSpec{}); got != "summary:all" {
			t.Errorf("expected summary:all, got %s", got)
		}
	})

	t.Run("search terms are lowercased for key stability", func(t *testing.T) {
		a := fingerprint(valueobject.FilterSpec{Search: "Coffee"})
		b := fingerprint(valueobject.FilterSpec{Search: "coffee"})
		if a != b {
			t.Errorf("expected identical keys, got %s and %s", a, b)
		}
	})
}
