package export

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

func TestResolveExportSet(t *testing.T) {
	expense, income := scenarioTransactions()
	all := []*entity.Transaction{expense, income}

	t.Run("all scope exports everything regardless of filter", func(t *testing.T) {
		spec := valueobject.FilterSpec{Category: "Food"}

		resolved, err := ResolveExportSet(all, valueobject.ExportScopeAll, spec, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resolved) != 2 {
			t.Errorf("expected 2 transactions, got %d", len(resolved))
		}
	})

	t.Run("filtered scope applies the filter", func(t *testing.T) {
		expenseType := entity.TransactionTypeExpense
		spec := valueobject.FilterSpec{Type: &expenseType}

		resolved, err := ResolveExportSet(all, valueobject.ExportScopeFiltered, spec, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resolved) != 1 || resolved[0] != expense {
			t.Errorf("expected only the expense, got %d transactions", len(resolved))
		}
	})

	t.Run("selection overrides the filter entirely", func(t *testing.T) {
		// The filter excludes income transactions, but the selection names
		// the income transaction and wins.
		expenseType := entity.TransactionTypeExpense
		spec := valueobject.FilterSpec{Type: &expenseType}

		resolved, err := ResolveExportSet(all, valueobject.ExportScopeSelected, spec, []uuid.UUID{income.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resolved) != 1 || resolved[0] != income {
			t.Errorf("expected only the selected income, got %d transactions", len(resolved))
		}
	})

	t.Run("selected subset keeps the original relative order", func(t *testing.T) {
		// Ids are listed in reverse; the output follows the source order.
		resolved, err := ResolveExportSet(all, valueobject.ExportScopeSelected, valueobject.FilterSpec{}, []uuid.UUID{income.ID, expense.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resolved) != 2 || resolved[0] != expense || resolved[1] != income {
			t.Error("selected transactions must keep the source collection order")
		}
	})

	t.Run("selected scope with empty selection falls back to the filter", func(t *testing.T) {
		resolved, err := ResolveExportSet(all, valueobject.ExportScopeSelected, valueobject.FilterSpec{}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resolved) != 2 {
			t.Errorf("expected the full filtered set, got %d", len(resolved))
		}
	})

	t.Run("empty resolved set fails with nothing to export", func(t *testing.T) {
		spec := valueobject.FilterSpec{Category: "Travel"}

		_, err := ResolveExportSet(all, valueobject.ExportScopeFiltered, spec, nil)
		if !errors.Is(err, domainerror.ErrNothingToExport) {
			t.Errorf("expected ErrNothingToExport, got %v", err)
		}
	})

	t.Run("selection of unknown ids fails with nothing to export", func(t *testing.T) {
		_, err := ResolveExportSet(all, valueobject.ExportScopeSelected, valueobject.FilterSpec{}, []uuid.UUID{uuid.New()})
		if !errors.Is(err, domainerror.ErrNothingToExport) {
			t.Errorf("expected ErrNothingToExport, got %v", err)
		}
	})
}
