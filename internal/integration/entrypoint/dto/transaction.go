// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pocket-ledger/backend/internal/application/usecase/transaction"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date     string         `json:"date" binding:"required"`
	Type     string         `json:"type" binding:"required,oneof=expense income"`
	Amount   string         `json:"amount" binding:"required"`
	Category string         `json:"category,omitempty" binding:"omitempty,max=100"`
	Payee    string         `json:"payee,omitempty" binding:"omitempty,max=255"`
	Notes    string         `json:"notes,omitempty" binding:"omitempty,max=1000"`
	Account  string         `json:"account,omitempty" binding:"omitempty,max=100"`
	Person   string         `json:"person,omitempty" binding:"omitempty,max=100"`
	Tags     entity.TagList `json:"tags,omitempty"`
	Status   string         `json:"status,omitempty" binding:"omitempty,oneof=posted pending"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Date     *string         `json:"date,omitempty"`
	Type     *string         `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Amount   *string         `json:"amount,omitempty"`
	Category *string         `json:"category,omitempty" binding:"omitempty,max=100"`
	Payee    *string         `json:"payee,omitempty" binding:"omitempty,max=255"`
	Notes    *string         `json:"notes,omitempty" binding:"omitempty,max=1000"`
	Account  *string         `json:"account,omitempty" binding:"omitempty,max=100"`
	Person   *string         `json:"person,omitempty" binding:"omitempty,max=100"`
	Tags     *entity.TagList `json:"tags,omitempty"`
	Status   *string         `json:"status,omitempty" binding:"omitempty,oneof=posted pending"`
}

// BulkDeleteTransactionsRequest represents the request body for bulk transaction deletion.
type BulkDeleteTransactionsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// BulkDeleteTransactionsResponse represents the response for bulk transaction deletion.
type BulkDeleteTransactionsResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Type      string    `json:"type"`
	Amount    string    `json:"amount"`
	Category  string    `json:"category"`
	Payee     string    `json:"payee"`
	Notes     string    `json:"notes"`
	Account   string    `json:"account"`
	Person    string    `json:"person"`
	Tags      []string  `json:"tags"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TransactionTotalsResponse represents display totals in API responses.
type TransactionTotalsResponse struct {
	IncomeTotal  string `json:"income_total"`
	ExpenseTotal string `json:"expense_total"`
	NetTotal     string `json:"net_total"`
	Count        int    `json:"count"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse     `json:"transactions"`
	Totals       TransactionTotalsResponse `json:"totals"`
}

// ToTransactionResponse converts a domain Transaction to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	tags := txn.Tags
	if tags == nil {
		tags = entity.TagList{}
	}

	return TransactionResponse{
		ID:        txn.ID.String(),
		Date:      txn.Date.Format("2006-01-02"),
		Type:      string(txn.Type),
		Amount:    txn.Amount.String(),
		Category:  txn.Category,
		Payee:     txn.Payee,
		Notes:     txn.Notes,
		Account:   txn.Account,
		Person:    txn.Person,
		Tags:      tags,
		Status:    string(txn.Status),
		CreatedAt: txn.CreatedAt,
		UpdatedAt: txn.UpdatedAt,
	}
}

// ToTransactionListResponse converts a ListTransactionsOutput to TransactionListResponse.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}

	return TransactionListResponse{
		Transactions: transactions,
		Totals: TransactionTotalsResponse{
			IncomeTotal:  output.Totals.Income.String(),
			ExpenseTotal: output.Totals.Expenses.String(),
			NetTotal:     output.Totals.Net.String(),
			Count:        output.Totals.Count,
		},
	}
}
