// Package category contains category and person reference-data use cases.
package category

import (
	"context"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles category listing.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute returns every category.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &ListCategoriesOutput{Categories: categories}, nil
}

// ListPeopleOutput represents the output of listing people.
type ListPeopleOutput struct {
	People []*entity.Person
}

// ListPeopleUseCase handles person listing.
type ListPeopleUseCase struct {
	personRepo adapter.PersonRepository
}

// NewListPeopleUseCase creates a new ListPeopleUseCase instance.
func NewListPeopleUseCase(personRepo adapter.PersonRepository) *ListPeopleUseCase {
	return &ListPeopleUseCase{
		personRepo: personRepo,
	}
}

// Execute returns every person.
func (uc *ListPeopleUseCase) Execute(ctx context.Context) (*ListPeopleOutput, error) {
	people, err := uc.personRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &ListPeopleOutput{People: people}, nil
}
