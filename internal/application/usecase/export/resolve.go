package export

import (
	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// ResolveExportSet derives the set of transactions an export targets.
// A non-empty selection under the selected scope is used verbatim, ignoring
// the filter entirely; the subset keeps the original relative order of the
// source collection. An empty resolved set fails with ErrNothingToExport;
// an export never silently produces an empty file.
func ResolveExportSet(
	all []*entity.Transaction,
	scope valueobject.ExportScope,
	spec valueobject.FilterSpec,
	selectedIDs []uuid.UUID,
) ([]*entity.Transaction, error) {
	var resolved []*entity.Transaction

	switch {
	case scope == valueobject.ExportScopeSelected && len(selectedIDs) > 0:
		selected := valueobject.NewSelection(selectedIDs...)
		resolved = make([]*entity.Transaction, 0, len(selectedIDs))
		for _, txn := range all {
			if selected.Contains(txn.ID) {
				resolved = append(resolved, txn)
			}
		}
	case scope == valueobject.ExportScopeAll:
		resolved = all
	default:
		resolved = spec.Apply(all)
	}

	if len(resolved) == 0 {
		return nil, domainerror.NewExportError(
			domainerror.ErrCodeNothingToExport,
			"no transactions in the requested export scope",
			domainerror.ErrNothingToExport,
		)
	}

	return resolved, nil
}
