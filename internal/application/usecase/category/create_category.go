package category

import (
	"context"
	"errors"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name  string
	Type  entity.CategoryType
	Icon  string
	Color string
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute validates and persists a new category. Names are unique.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if input.Type != entity.CategoryTypeExpense && input.Type != entity.CategoryTypeIncome {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be income or expense",
			domainerror.ErrInvalidCategoryType,
		)
	}

	existing, err := uc.categoryRepo.FindByName(ctx, input.Name)
	if err != nil && !errors.Is(err, domainerror.ErrCategoryNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryAlreadyExists,
			"category already exists: "+input.Name,
			domainerror.ErrCategoryAlreadyExists,
		)
	}

	cat := entity.NewCategory(input.Name, input.Type, input.Icon, input.Color)
	if err := uc.categoryRepo.Create(ctx, cat); err != nil {
		return nil, err
	}

	return &CreateCategoryOutput{Category: cat}, nil
}
