// Package summary contains the aggregate summary use case.
package summary

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// cacheTTL bounds staleness when an invalidation is lost.
const cacheTTL = 15 * time.Minute

// GetSummaryInput represents the input for summary computation.
type GetSummaryInput struct {
	Filter valueobject.FilterSpec
}

// GetSummaryOutput represents the output of summary computation.
type GetSummaryOutput struct {
	Summary *entity.AggregateSummary
}

// GetSummaryUseCase computes the aggregate summary for the filtered working
// set, with a cache in front keyed by the filter fingerprint.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	summaryCache    adapter.SummaryCache
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	summaryCache adapter.SummaryCache,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		summaryCache:    summaryCache,
	}
}

// Execute returns the cached summary when present, otherwise recomputes it
// from a fresh snapshot. Cache errors are treated as misses.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	key := fingerprint(input.Filter)

	if cached, err := uc.summaryCache.Get(ctx, key); err == nil && cached != nil {
		return &GetSummaryOutput{Summary: cached}, nil
	}

	snapshot, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	computed := entity.Aggregate(input.Filter.Apply(snapshot))

	if err := uc.summaryCache.Set(ctx, key, &computed, cacheTTL); err != nil {
		slog.Warn("Failed to cache summary", "key", key, "error", err)
	}

	return &GetSummaryOutput{Summary: &computed}, nil
}

// fingerprint derives a stable cache key from the filter constraints.
func fingerprint(spec valueobject.FilterSpec) string {
	parts := make([]string, 0, 5)

	if spec.StartDate != nil {
		parts = append(parts, "start="+spec.StartDate.Format("2006-01-02"))
	}
	if spec.EndDate != nil {
		parts = append(parts, "end="+spec.EndDate.Format("2006-01-02"))
	}
	if spec.Category != "" {
		parts = append(parts, "category="+spec.Category)
	}
	if spec.Person != "" {
		parts = append(parts, "person="+spec.Person)
	}
	if spec.Type != nil {
		parts = append(parts, "type="+string(*spec.Type))
	}
	if spec.Search != "" {
		parts = append(parts, "search="+strings.ToLower(spec.Search))
	}

	if len(parts) == 0 {
		return "summary:all"
	}
	return "summary:" + strings.Join(parts, "&")
}
