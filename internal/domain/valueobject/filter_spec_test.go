package valueobject

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func datePtr(s string) *time.Time {
	d := date(s)
	return &d
}

func typePtr(t entity.TransactionType) *entity.TransactionType {
	return &t
}

func sampleTransaction() *entity.Transaction {
	return &entity.Transaction{
		ID:       uuid.New(),
		Date:     date("2024-01-05"),
		Type:     entity.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(50),
		Category: "Food",
		Payee:    "Corner Market",
		Notes:    "weekly shop",
		Person:   "Alex",
		Tags:     entity.TagList{"groceries", "weekly"},
		Status:   entity.TransactionStatusPosted,
	}
}

func TestFilterSpecIsZero(t *testing.T) {
	t.Run("zero spec has no active constraints", func(t *testing.T) {
		if !(FilterSpec{}).IsZero() {
			t.Error("expected zero FilterSpec to report IsZero")
		}
	})

	t.Run("any constraint makes it non-zero", func(t *testing.T) {
		if (FilterSpec{Category: "Food"}).IsZero() {
			t.Error("expected non-zero with category constraint")
		}
		if (FilterSpec{StartDate: datePtr("2024-01-01")}).IsZero() {
			t.Error("expected non-zero with start date constraint")
		}
	})
}

func TestFilterSpecMatches(t *testing.T) {
	txn := sampleTransaction()

	t.Run("zero spec matches everything", func(t *testing.T) {
		if !(FilterSpec{}).Matches(txn) {
			t.Error("zero FilterSpec must match every transaction")
		}
	})

	t.Run("date bounds are inclusive", func(t *testing.T) {
		spec := FilterSpec{
			StartDate: datePtr("2024-01-05"),
			EndDate:   datePtr("2024-01-05"),
		}
		if !spec.Matches(txn) {
			t.Error("transaction on the boundary date must match")
		}
	})

	t.Run("date before range fails", func(t *testing.T) {
		spec := FilterSpec{StartDate: datePtr("2024-01-06")}
		if spec.Matches(txn) {
			t.Error("transaction before the start date must not match")
		}
	})

	t.Run("date after range fails", func(t *testing.T) {
		spec := FilterSpec{EndDate: datePtr("2024-01-04")}
		if spec.Matches(txn) {
			t.Error("transaction after the end date must not match")
		}
	})

	t.Run("category mismatch fails in isolation", func(t *testing.T) {
		if (FilterSpec{Category: "Transport"}).Matches(txn) {
			t.Error("category mismatch must exclude the transaction")
		}
		if !(FilterSpec{Category: "Food"}).Matches(txn) {
			t.Error("exact category must match")
		}
	})

	t.Run("person mismatch fails in isolation", func(t *testing.T) {
		if (FilterSpec{Person: "Sam"}).Matches(txn) {
			t.Error("person mismatch must exclude the transaction")
		}
		if !(FilterSpec{Person: "Alex"}).Matches(txn) {
			t.Error("exact person must match")
		}
	})

	t.Run("type mismatch fails in isolation", func(t *testing.T) {
		if (FilterSpec{Type: typePtr(entity.TransactionTypeIncome)}).Matches(txn) {
			t.Error("type mismatch must exclude the transaction")
		}
		if !(FilterSpec{Type: typePtr(entity.TransactionTypeExpense)}).Matches(txn) {
			t.Error("matching type must match")
		}
	})

	t.Run("search is case-insensitive over payee notes category and tags", func(t *testing.T) {
		for _, needle := range []string{"CORNER", "Weekly Shop", "food", "GROCERIES"} {
			if !(FilterSpec{Search: needle}).Matches(txn) {
				t.Errorf("search %q should match", needle)
			}
		}
		if (FilterSpec{Search: "restaurant"}).Matches(txn) {
			t.Error("unrelated search term must not match")
		}
	})

	t.Run("all constraints must pass together", func(t *testing.T) {
		spec := FilterSpec{
			Category: "Food",
			Person:   "Alex",
			Search:   "restaurant",
		}
		if spec.Matches(txn) {
			t.Error("a single failing constraint must exclude the transaction")
		}
	})
}

func TestFilterSpecApply(t *testing.T) {
	expense := sampleTransaction()
	income := &entity.Transaction{
		ID:       uuid.New(),
		Date:     date("2024-01-10"),
		Type:     entity.TransactionTypeIncome,
		Amount:   decimal.NewFromInt(200),
		Category: "Salary",
		Payee:    "Employer",
		Status:   entity.TransactionStatusPosted,
	}
	txns := []*entity.Transaction{expense, income}

	t.Run("keeps only matching transactions in order", func(t *testing.T) {
		filtered := FilterSpec{Type: typePtr(entity.TransactionTypeExpense)}.Apply(txns)

		if len(filtered) != 1 || filtered[0] != expense {
			t.Errorf("expected [expense], got %d transactions", len(filtered))
		}
	})

	t.Run("identity filter keeps everything", func(t *testing.T) {
		filtered := FilterSpec{}.Apply(txns)

		if len(filtered) != 2 || filtered[0] != expense || filtered[1] != income {
			t.Error("zero FilterSpec must keep the full collection in order")
		}
	})

	t.Run("does not mutate the source slice", func(t *testing.T) {
		_ = FilterSpec{Category: "Salary"}.Apply(txns)

		if txns[0] != expense || txns[1] != income {
			t.Error("source slice changed")
		}
	})
}
