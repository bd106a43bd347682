package export

import (
	"encoding/json"
	"time"

	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// SchemaVersion is the structured export document version.
const SchemaVersion = "2.0.0"

// jsonDocument is the top-level shape of the structured export.
type jsonDocument struct {
	ExportDate        string            `json:"exportDate"`
	Version           string            `json:"version"`
	Currency          string            `json:"currency"`
	TotalTransactions int               `json:"totalTransactions"`
	Summary           jsonSummary       `json:"summary"`
	Transactions      []jsonTransaction `json:"transactions"`
}

type jsonSummary struct {
	TotalIncome   string   `json:"totalIncome"`
	TotalExpenses string   `json:"totalExpenses"`
	Net           string   `json:"net"`
	IncomeCount   int      `json:"incomeCount"`
	ExpenseCount  int      `json:"expenseCount"`
	Categories    []string `json:"categories"`
	EarliestDate  *string  `json:"earliestDate"`
	LatestDate    *string  `json:"latestDate"`
	Average       string   `json:"average"`
}

type jsonTransaction struct {
	ID        string         `json:"id"`
	Date      string         `json:"date"`
	Type      string         `json:"type"`
	Amount    string         `json:"amount"`
	Category  string         `json:"category"`
	Payee     string         `json:"payee"`
	Notes     string         `json:"notes"`
	Tags      entity.TagList `json:"tags"`
	Account   string         `json:"account"`
	Person    string         `json:"person"`
	Status    string         `json:"status"`
	CreatedAt *string        `json:"createdAt"`
	UpdatedAt *string        `json:"updatedAt"`
}

// EncodeJSON serializes a transaction collection plus its aggregate summary
// into the structured export document. The export timestamp comes from the
// caller's clock, not from the input. Output is pretty-printed for
// diffability. An empty collection fails with ErrEmptyInput.
func EncodeJSON(
	transactions []*entity.Transaction,
	summary entity.AggregateSummary,
	currency string,
	now time.Time,
) ([]byte, error) {
	if len(transactions) == 0 {
		return nil, domainerror.NewExportError(
			domainerror.ErrCodeEmptyInput,
			"cannot encode an empty transaction collection",
			domainerror.ErrEmptyInput,
		)
	}

	doc := jsonDocument{
		ExportDate:        now.UTC().Format(time.RFC3339),
		Version:           SchemaVersion,
		Currency:          currency,
		TotalTransactions: len(transactions),
		Summary: jsonSummary{
			TotalIncome:   summary.TotalIncome.String(),
			TotalExpenses: summary.TotalExpenses.String(),
			Net:           summary.Net.String(),
			IncomeCount:   summary.IncomeCount,
			ExpenseCount:  summary.ExpenseCount,
			Categories:    summary.Categories,
			EarliestDate:  formatJSONDate(summary.EarliestDate),
			LatestDate:    formatJSONDate(summary.LatestDate),
			Average:       summary.Average.String(),
		},
		Transactions: make([]jsonTransaction, 0, len(transactions)),
	}
	if doc.Summary.Categories == nil {
		doc.Summary.Categories = []string{}
	}

	for _, txn := range transactions {
		doc.Transactions = append(doc.Transactions, jsonTransaction{
			ID:        txn.ID.String(),
			Date:      txn.Date.Format(csvDateLayout),
			Type:      string(txn.Type),
			Amount:    txn.Amount.String(),
			Category:  txn.Category,
			Payee:     txn.Payee,
			Notes:     txn.Notes,
			Tags:      txn.Tags,
			Account:   txn.Account,
			Person:    txn.Person,
			Status:    string(txn.Status),
			CreatedAt: formatJSONTimestamp(txn.CreatedAt),
			UpdatedAt: formatJSONTimestamp(txn.UpdatedAt),
		})
	}

	return json.MarshalIndent(doc, "", "  ")
}

func formatJSONDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(csvDateLayout)
	return &s
}

func formatJSONTimestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
