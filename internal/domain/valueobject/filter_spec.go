// Package valueobject defines immutable value types used across use cases.
package valueobject

import (
	"strings"
	"time"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// FilterSpec is the set of active constraints narrowing a transaction
// collection. It is transient UI state, passed explicitly into each core
// operation and never persisted. A zero FilterSpec matches everything.
type FilterSpec struct {
	StartDate *time.Time // closed interval start, inclusive
	EndDate   *time.Time // closed interval end, inclusive
	Category  string
	Person    string
	Type      *entity.TransactionType
	Search    string
}

// IsZero reports whether no constraint is active.
func (f FilterSpec) IsZero() bool {
	return f.StartDate == nil && f.EndDate == nil &&
		f.Category == "" && f.Person == "" && f.Type == nil && f.Search == ""
}

// Matches decides inclusion of a single transaction. It is a pure total
// function: every constraint must pass, absent constraints impose nothing.
// Cheap field comparisons run before the substring search.
func (f FilterSpec) Matches(txn *entity.Transaction) bool {
	if f.StartDate != nil || f.EndDate != nil {
		date := entity.DateOnly(txn.Date)
		if f.StartDate != nil && date.Before(entity.DateOnly(*f.StartDate)) {
			return false
		}
		if f.EndDate != nil && date.After(entity.DateOnly(*f.EndDate)) {
			return false
		}
	}

	if f.Category != "" && txn.Category != f.Category {
		return false
	}
	if f.Person != "" && txn.Person != f.Person {
		return false
	}
	if f.Type != nil && txn.Type != *f.Type {
		return false
	}

	if f.Search != "" {
		haystack := strings.ToLower(txn.SearchText())
		if !strings.Contains(haystack, strings.ToLower(f.Search)) {
			return false
		}
	}

	return true
}

// Apply returns the subset of transactions matching the filter, preserving
// relative order. The source slice is never mutated.
func (f FilterSpec) Apply(transactions []*entity.Transaction) []*entity.Transaction {
	filtered := make([]*entity.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if f.Matches(txn) {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}
