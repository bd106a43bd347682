package error

import "errors"

// Category errors.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryAlreadyExists is returned when a category name is taken.
	ErrCategoryAlreadyExists = errors.New("category already exists")

	// ErrInvalidCategoryType is returned when the category type is unknown.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrSuggestionUnavailable is returned when the suggestion service is not configured.
	ErrSuggestionUnavailable = errors.New("category suggestion service unavailable")
)

// CategoryErrorCode defines error codes for category errors.
type CategoryErrorCode string

const (
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryAlreadyExists CategoryErrorCode = "CAT-010002"
	ErrCodeInvalidCategoryType   CategoryErrorCode = "CAT-010003"
	ErrCodeSuggestionUnavailable CategoryErrorCode = "CAT-020001"
)

// CategoryError represents a structured category error.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

func (e *CategoryError) Error() string {
	if e.Err != nil {
		return string(e.Code) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Code) + ": " + e.Message
}

func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
