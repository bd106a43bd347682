package export

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// Format tokens accepted by the orchestrator, matched case-insensitively.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// DefaultDeliveryMethod is used when the caller does not name one.
const DefaultDeliveryMethod = "download"

// ExportTransactionsInput carries the export request.
type ExportTransactionsInput struct {
	Scope          valueobject.ExportScope
	Format         string
	Filter         valueobject.FilterSpec
	SelectedIDs    []uuid.UUID
	DeliveryMethod string
}

// ExportTransactionsOutput reports the finished export.
type ExportTransactionsOutput struct {
	Filename string
	MimeType string
	Payload  []byte
	Outcome  adapter.DeliveryResult
}

// ExportTransactionsUseCase orchestrates the export pipeline: it re-derives
// the export set from a fresh snapshot, dispatches to the matching
// serializer, generates the filename and hands the payload to the delivery
// collaborator. It surfaces exactly three outcomes (delivered, cancelled or
// failed) and never retries.
type ExportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	deliveries      map[string]adapter.Delivery
	clock           adapter.Clock
	currency        string
	filenamePrefix  string
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
// The deliveries map is keyed by method name; the runtime environment decides
// which implementations are available.
func NewExportTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	deliveries map[string]adapter.Delivery,
	clock adapter.Clock,
	currency string,
	filenamePrefix string,
) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{
		transactionRepo: transactionRepo,
		deliveries:      deliveries,
		clock:           clock,
		currency:        currency,
		filenamePrefix:  filenamePrefix,
	}
}

// Execute performs one export invocation.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	format := strings.ToLower(strings.TrimSpace(input.Format))
	if format != FormatCSV && format != FormatJSON {
		return nil, domainerror.NewExportError(
			domainerror.ErrCodeUnsupportedFormat,
			"unsupported export format: "+input.Format,
			domainerror.ErrUnsupportedFormat,
		)
	}

	method := input.DeliveryMethod
	if method == "" {
		method = DefaultDeliveryMethod
	}
	delivery, ok := uc.deliveries[method]
	if !ok {
		return nil, domainerror.NewExportError(
			domainerror.ErrCodeDeliveryFailed,
			"unknown delivery method: "+method,
			domainerror.ErrDeliveryFailed,
		)
	}

	snapshot, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resolved, err := ResolveExportSet(snapshot, input.Scope, input.Filter, input.SelectedIDs)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	var payload []byte
	var mimeType, ext string
	switch format {
	case FormatCSV:
		payload, err = EncodeCSV(resolved)
		mimeType, ext = "text/csv", "csv"
	case FormatJSON:
		payload, err = EncodeJSON(resolved, entity.Aggregate(resolved), uc.currency, now)
		mimeType, ext = "application/json", "json"
	}
	if err != nil {
		return nil, err
	}

	// Minute resolution is part of the published filename contract; two
	// exports within the same minute collide and overwrite.
	filename := uc.filenamePrefix + "-" + now.Format("2006-01-02-1504") + "." + ext

	result, err := delivery.Deliver(ctx, payload, filename, mimeType)
	if err != nil {
		if errors.Is(err, domainerror.ErrDeliveryFailed) {
			return nil, err
		}
		return nil, domainerror.NewExportError(
			domainerror.ErrCodeDeliveryFailed,
			"export delivery failed",
			errors.Join(domainerror.ErrDeliveryFailed, err),
		)
	}

	return &ExportTransactionsOutput{
		Filename: filename,
		MimeType: mimeType,
		Payload:  payload,
		Outcome:  *result,
	}, nil
}
