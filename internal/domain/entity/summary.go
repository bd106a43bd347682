package entity

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// AggregateSummary represents derived totals and statistics over a
// transaction collection. It is computed on demand and never persisted.
type AggregateSummary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Net           decimal.Decimal // income - expenses
	IncomeCount   int
	ExpenseCount  int
	Categories    []string // distinct, order not significant
	EarliestDate  *time.Time
	LatestDate    *time.Time
	// Average is the blended unsigned magnitude (income+expenses)/count,
	// not a signed net average.
	Average decimal.Decimal
}

// DisplayTotals represents the totals shown alongside the current working
// set in the UI.
type DisplayTotals struct {
	Count    int
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
	Average  decimal.Decimal
}

// Aggregate computes the full summary over a transaction collection.
// An empty collection yields all-zero totals, nil dates and an average of
// zero; it never divides by zero.
func Aggregate(transactions []*Transaction) AggregateSummary {
	summary := AggregateSummary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		Net:           decimal.Zero,
		Average:       decimal.Zero,
	}

	seen := make(map[string]struct{})
	for _, txn := range transactions {
		switch txn.Type {
		case TransactionTypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(txn.Amount)
			summary.IncomeCount++
		case TransactionTypeExpense:
			summary.TotalExpenses = summary.TotalExpenses.Add(txn.Amount)
			summary.ExpenseCount++
		}

		if txn.Category != "" {
			if _, ok := seen[txn.Category]; !ok {
				seen[txn.Category] = struct{}{}
				summary.Categories = append(summary.Categories, txn.Category)
			}
		}

		date := DateOnly(txn.Date)
		if summary.EarliestDate == nil || date.Before(*summary.EarliestDate) {
			d := date
			summary.EarliestDate = &d
		}
		if summary.LatestDate == nil || date.After(*summary.LatestDate) {
			d := date
			summary.LatestDate = &d
		}
	}

	summary.Net = summary.TotalIncome.Sub(summary.TotalExpenses)

	count := summary.IncomeCount + summary.ExpenseCount
	if count > 0 {
		summary.Average = summary.TotalIncome.Add(summary.TotalExpenses).
			Div(decimal.NewFromInt(int64(count)))
	}

	return summary
}

// ComputeDisplayTotals computes the UI totals over the current working set.
func ComputeDisplayTotals(transactions []*Transaction) DisplayTotals {
	summary := Aggregate(transactions)
	return DisplayTotals{
		Count:    summary.IncomeCount + summary.ExpenseCount,
		Income:   summary.TotalIncome,
		Expenses: summary.TotalExpenses,
		Net:      summary.Net,
		Average:  summary.Average,
	}
}

// SortForDisplay returns a new slice sorted by date descending (newest
// first). The sort is stable: transactions sharing a calendar date keep
// their original relative order. The input slice is never mutated.
func SortForDisplay(transactions []*Transaction) []*Transaction {
	sorted := make([]*Transaction, len(transactions))
	copy(sorted, transactions)

	sort.SliceStable(sorted, func(i, j int) bool {
		return DateOnly(sorted[i].Date).After(DateOnly(sorted[j].Date))
	})

	return sorted
}
