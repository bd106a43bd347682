package adapter

import (
	"context"
	"time"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// SummaryCache caches computed aggregate summaries keyed by a filter
// fingerprint. A cache miss returns (nil, nil); cache failures are treated
// as misses by callers, never surfaced to the user.
type SummaryCache interface {
	Get(ctx context.Context, key string) (*entity.AggregateSummary, error)
	Set(ctx context.Context, key string, summary *entity.AggregateSummary, ttl time.Duration) error
	// Invalidate drops every cached summary. Called after any mutation.
	Invalidate(ctx context.Context) error
}
