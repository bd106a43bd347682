package category

import (
	"context"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// maxSuggestionBatch caps how many transactions are sent per analysis call.
const maxSuggestionBatch = 25

// SuggestCategoriesOutput represents the output of category suggestion.
type SuggestCategoriesOutput struct {
	Suggestions []*adapter.CategorySuggestion
}

// SuggestCategoriesUseCase proposes categories for uncategorized transactions
// using the configured suggestion service.
type SuggestCategoriesUseCase struct {
	transactionRepo   adapter.TransactionRepository
	categoryRepo      adapter.CategoryRepository
	suggestionService adapter.CategorySuggestionService
}

// NewSuggestCategoriesUseCase creates a new SuggestCategoriesUseCase instance.
func NewSuggestCategoriesUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	suggestionService adapter.CategorySuggestionService,
) *SuggestCategoriesUseCase {
	return &SuggestCategoriesUseCase{
		transactionRepo:   transactionRepo,
		categoryRepo:      categoryRepo,
		suggestionService: suggestionService,
	}
}

// Execute collects transactions without a category and asks the suggestion
// service for a category per transaction.
func (uc *SuggestCategoriesUseCase) Execute(ctx context.Context) (*SuggestCategoriesOutput, error) {
	if uc.suggestionService == nil || !uc.suggestionService.IsAvailable() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeSuggestionUnavailable,
			"category suggestion service is not configured",
			domainerror.ErrSuggestionUnavailable,
		)
	}

	snapshot, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	uncategorized := make([]*entity.Transaction, 0)
	for _, txn := range snapshot {
		if txn.Category == "" {
			uncategorized = append(uncategorized, txn)
			if len(uncategorized) == maxSuggestionBatch {
				break
			}
		}
	}
	if len(uncategorized) == 0 {
		return &SuggestCategoriesOutput{Suggestions: []*adapter.CategorySuggestion{}}, nil
	}

	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	suggestions, err := uc.suggestionService.Suggest(ctx, uncategorized, categories)
	if err != nil {
		return nil, err
	}

	return &SuggestCategoriesOutput{Suggestions: suggestions}, nil
}
