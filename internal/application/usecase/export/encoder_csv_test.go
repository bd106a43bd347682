package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

func TestEncodeCSV(t *testing.T) {
	t.Run("empty collection fails with empty input error", func(t *testing.T) {
		_, err := EncodeCSV(nil)
		if !errors.Is(err, domainerror.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("two transactions produce header plus two rows", func(t *testing.T) {
		expense, income := scenarioTransactions()

		payload, err := EncodeCSV([]*entity.Transaction{expense, income})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := strings.Split(string(payload), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected 3 lines, got %d", len(lines))
		}
		if !strings.HasPrefix(lines[0], `"Date","Type","Amount"`) {
			t.Errorf("unexpected header: %s", lines[0])
		}
		if !strings.Contains(lines[1], `"50"`) || !strings.Contains(lines[1], `"expense"`) {
			t.Errorf("expense row missing amount or type literal: %s", lines[1])
		}
		if !strings.Contains(lines[2], `"200"`) || !strings.Contains(lines[2], `"income"`) {
			t.Errorf("income row missing amount or type literal: %s", lines[2])
		}
	})

	t.Run("every field is quoted", func(t *testing.T) {
		expense, _ := scenarioTransactions()

		payload, err := EncodeCSV([]*entity.Transaction{expense})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, line := range strings.Split(string(payload), "\n") {
			if !strings.HasPrefix(line, `"`) || !strings.HasSuffix(line, `"`) {
				t.Errorf("line not fully quoted: %s", line)
			}
			if got := strings.Count(line, `","`); got != len(csvHeader)-1 {
				t.Errorf("expected %d field separators, got %d: %s", len(csvHeader)-1, got, line)
			}
		}
	})

	t.Run("internal quotes are doubled", func(t *testing.T) {
		expense, _ := scenarioTransactions()
		expense.Payee = `Joe's "Famous" Deli`

		payload, err := EncodeCSV([]*entity.Transaction{expense})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(string(payload), `"Joe's ""Famous"" Deli"`) {
			t.Errorf("quotes not doubled: %s", payload)
		}
	})

	t.Run("tags joined with semicolon separator", func(t *testing.T) {
		expense, _ := scenarioTransactions()

		payload, err := EncodeCSV([]*entity.Transaction{expense})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(string(payload), `"groceries; weekly"`) {
			t.Errorf("expected semicolon-joined tags, got: %s", payload)
		}
	})

	t.Run("decode and re-encode is byte identical", func(t *testing.T) {
		expense, income := scenarioTransactions()
		expense.Notes = `has "quotes", commas, and text`

		payload, err := EncodeCSV([]*entity.Transaction{expense, income})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		records, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
		if err != nil {
			t.Fatalf("payload is not parseable CSV: %v", err)
		}

		rows := make([]string, 0, len(records))
		for _, record := range records {
			rows = append(rows, encodeCSVRow(record))
		}
		reencoded := []byte(strings.Join(rows, "\n"))

		if !bytes.Equal(payload, reencoded) {
			t.Error("decode/re-encode changed the payload bytes")
		}
	})

	t.Run("amounts keep their decimal precision", func(t *testing.T) {
		amount, _ := decimal.NewFromString("19.99")
		txn := &entity.Transaction{
			ID:     uuid.New(),
			Date:   mustDate("2024-03-01"),
			Type:   entity.TransactionTypeExpense,
			Amount: amount,
			Status: entity.TransactionStatusPosted,
		}

		payload, err := EncodeCSV([]*entity.Transaction{txn})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(string(payload), `"19.99"`) {
			t.Errorf("expected amount 19.99 verbatim, got: %s", payload)
		}
	})
}
