// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether the type is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// TransactionStatus represents the posting state of a transaction.
type TransactionStatus string

const (
	TransactionStatusPosted  TransactionStatus = "posted"
	TransactionStatusPending TransactionStatus = "pending"
)

// IsValid reports whether the status is one of the known statuses.
func (s TransactionStatus) IsValid() bool {
	return s == TransactionStatusPosted || s == TransactionStatusPending
}

// Transaction represents a single recorded income or expense event.
// Amount is always a non-negative magnitude; the sign applied during
// aggregation is fully determined by Type.
type Transaction struct {
	ID        uuid.UUID
	Date      time.Time // only the calendar date is meaningful
	Type      TransactionType
	Amount    decimal.Decimal
	Category  string
	Payee     string
	Notes     string
	Account   string
	Person    string
	Tags      TagList
	Status    TransactionStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTransaction creates a new Transaction entity with generated ID and
// creation timestamps. An empty status defaults to posted.
func NewTransaction(
	date time.Time,
	transactionType TransactionType,
	amount decimal.Decimal,
	category, payee, notes, account, person string,
	tags TagList,
	status TransactionStatus,
) *Transaction {
	if status == "" {
		status = TransactionStatusPosted
	}
	now := time.Now().UTC()

	return &Transaction{
		ID:        uuid.New(),
		Date:      date,
		Type:      transactionType,
		Amount:    amount,
		Category:  category,
		Payee:     payee,
		Notes:     notes,
		Account:   account,
		Person:    person,
		Tags:      tags.Normalize(),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch refreshes the UpdatedAt timestamp. Called on every mutation.
func (t *Transaction) Touch() {
	t.UpdatedAt = time.Now().UTC()
}

// SearchText returns the space-joined concatenation of payee, notes, category
// and tags used by free-text filtering. Tags are joined with single spaces
// regardless of their stored representation.
func (t *Transaction) SearchText() string {
	return t.Payee + " " + t.Notes + " " + t.Category + " " + t.Tags.SearchJoin()
}

// SignedAmount returns the amount with the sign implied by the transaction
// type: negative for expenses, positive for income.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// DateOnly strips the time-of-day component, keeping the calendar date.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
