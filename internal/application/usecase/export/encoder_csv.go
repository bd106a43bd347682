// Package export contains the export pipeline: serializers, scope
// resolution and the export orchestrator use case.
package export

import (
	"strings"
	"time"

	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

const (
	csvDateLayout      = "2006-01-02"
	csvTimestampLayout = "2006-01-02 15:04:05"
)

// csvHeader is the fixed 12-column header of the tabular export.
var csvHeader = []string{
	"Date", "Type", "Amount", "Category", "Payee", "Notes",
	"Tags", "Account", "Person", "Status", "Created At", "Updated At",
}

// EncodeCSV serializes a transaction collection into the tabular export
// payload. Every field is double-quoted with internal quotes doubled, fields
// are comma-separated and rows newline-joined, which makes the encoding
// idempotent under decode/re-encode. An empty collection fails with
// ErrEmptyInput; callers check non-emptiness upstream to give better
// diagnostics.
func EncodeCSV(transactions []*entity.Transaction) ([]byte, error) {
	if len(transactions) == 0 {
		return nil, domainerror.NewExportError(
			domainerror.ErrCodeEmptyInput,
			"cannot encode an empty transaction collection",
			domainerror.ErrEmptyInput,
		)
	}

	rows := make([]string, 0, len(transactions)+1)
	rows = append(rows, encodeCSVRow(csvHeader))

	for _, txn := range transactions {
		rows = append(rows, encodeCSVRow([]string{
			txn.Date.Format(csvDateLayout),
			string(txn.Type),
			txn.Amount.String(),
			txn.Category,
			txn.Payee,
			txn.Notes,
			txn.Tags.ExportJoin(),
			txn.Account,
			txn.Person,
			string(txn.Status),
			formatCSVTimestamp(txn.CreatedAt),
			formatCSVTimestamp(txn.UpdatedAt),
		}))
	}

	return []byte(strings.Join(rows, "\n")), nil
}

func encodeCSVRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

func formatCSVTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(csvTimestampLayout)
}
