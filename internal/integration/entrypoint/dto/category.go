package dto

import (
	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Type  string `json:"type" binding:"required,oneof=expense income"`
	Icon  string `json:"icon,omitempty" binding:"omitempty,max=50"`
	Color string `json:"color,omitempty" binding:"omitempty,max=20"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// PersonResponse represents a person in API responses.
type PersonResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategorySuggestionResponse represents a category suggestion in API responses.
type CategorySuggestionResponse struct {
	TransactionID string  `json:"transaction_id"`
	CategoryName  string  `json:"category_name"`
	Confidence    float64 `json:"confidence"`
	Reasoning     string  `json:"reasoning"`
}

// ToCategoryResponse converts a domain Category to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:    category.ID.String(),
		Name:  category.Name,
		Type:  string(category.Type),
		Icon:  category.Icon,
		Color: category.Color,
	}
}

// ToPersonResponse converts a domain Person to a PersonResponse DTO.
func ToPersonResponse(person *entity.Person) PersonResponse {
	return PersonResponse{
		ID:   person.ID.String(),
		Name: person.Name,
	}
}

// ToCategorySuggestionResponse converts a suggestion to its response DTO.
func ToCategorySuggestionResponse(suggestion *adapter.CategorySuggestion) CategorySuggestionResponse {
	return CategorySuggestionResponse{
		TransactionID: suggestion.TransactionID.String(),
		CategoryName:  suggestion.CategoryName,
		Confidence:    suggestion.Confidence,
		Reasoning:     suggestion.Reasoning,
	}
}
