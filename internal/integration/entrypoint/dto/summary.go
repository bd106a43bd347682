package dto

import (
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// SummaryResponse represents the aggregate summary in API responses.
type SummaryResponse struct {
	TotalIncome   string   `json:"total_income"`
	TotalExpenses string   `json:"total_expenses"`
	Net           string   `json:"net"`
	IncomeCount   int      `json:"income_count"`
	ExpenseCount  int      `json:"expense_count"`
	Categories    []string `json:"categories"`
	EarliestDate  *string  `json:"earliest_date"`
	LatestDate    *string  `json:"latest_date"`
	Average       string   `json:"average"`
}

// ToSummaryResponse converts a domain AggregateSummary to a SummaryResponse DTO.
func ToSummaryResponse(summary *entity.AggregateSummary) SummaryResponse {
	response := SummaryResponse{
		TotalIncome:   summary.TotalIncome.String(),
		TotalExpenses: summary.TotalExpenses.String(),
		Net:           summary.Net.String(),
		IncomeCount:   summary.IncomeCount,
		ExpenseCount:  summary.ExpenseCount,
		Categories:    summary.Categories,
		Average:       summary.Average.String(),
	}

	if response.Categories == nil {
		response.Categories = []string{}
	}
	if summary.EarliestDate != nil {
		earliest := summary.EarliestDate.Format("2006-01-02")
		response.EarliestDate = &earliest
	}
	if summary.LatestDate != nil {
		latest := summary.LatestDate.Format("2006-01-02")
		response.LatestDate = &latest
	}

	return response
}
