package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType mirrors the transaction type a category applies to.
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// Category is a reference label for transactions. Transactions carry the
// category name as a free-form string; an orphaned label still filters and
// exports, it just has no icon or color to display.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      CategoryType
	Icon      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name string, categoryType CategoryType, icon, color string) *Category {
	now := time.Now().UTC()
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Type:      categoryType,
		Icon:      icon,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Person is a reference entry for the person a transaction is shared with.
type Person struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}
