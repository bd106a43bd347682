// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Date      time.Time       `gorm:"type:date;not null;index"`
	Type      string          `gorm:"type:varchar(10);not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category  string          `gorm:"type:varchar(100);index"`
	Payee     string          `gorm:"type:varchar(255)"`
	Notes     string          `gorm:"type:text"`
	Tags      pq.StringArray  `gorm:"type:text[]"`
	Account   string          `gorm:"type:varchar(100)"`
	Person    string          `gorm:"type:varchar(100);index"`
	Status    string          `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time       `gorm:"not null;index"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:        m.ID,
		Date:      m.Date,
		Type:      entity.TransactionType(m.Type),
		Amount:    m.Amount,
		Category:  m.Category,
		Payee:     m.Payee,
		Notes:     m.Notes,
		Tags:      entity.TagList(m.Tags),
		Account:   m.Account,
		Person:    m.Person,
		Status:    entity.TransactionStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:        transaction.ID,
		Date:      transaction.Date,
		Type:      string(transaction.Type),
		Amount:    transaction.Amount,
		Category:  transaction.Category,
		Payee:     transaction.Payee,
		Notes:     transaction.Notes,
		Tags:      pq.StringArray(transaction.Tags),
		Account:   transaction.Account,
		Person:    transaction.Person,
		Status:    string(transaction.Status),
		CreatedAt: transaction.CreatedAt,
		UpdatedAt: transaction.UpdatedAt,
	}
}
