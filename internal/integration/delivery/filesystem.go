package delivery

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// MethodFilesystem tags exports written to the local export directory.
const MethodFilesystem = "filesystem"

// filesystemDelivery writes the payload into a configured directory.
type filesystemDelivery struct {
	directory string
}

// NewFilesystemDelivery creates a new filesystem delivery instance.
func NewFilesystemDelivery(directory string) adapter.Delivery {
	return &filesystemDelivery{
		directory: directory,
	}
}

// Deliver writes the payload to <directory>/<filename>. A cancelled context
// before the write reports a cancelled outcome instead of an error.
func (d *filesystemDelivery) Deliver(ctx context.Context, payload []byte, filename, mimeType string) (*adapter.DeliveryResult, error) {
	if err := ctx.Err(); err != nil {
		return &adapter.DeliveryResult{Status: adapter.DeliveryStatusCancelled, Method: MethodFilesystem}, nil
	}

	if err := os.MkdirAll(d.directory, 0o755); err != nil {
		return nil, domainerror.NewExportError(
			domainerror.ErrCodeDeliveryFailed,
			"failed to create export directory",
			errors.Join(domainerror.ErrDeliveryFailed, err),
		)
	}

	path := filepath.Join(d.directory, filename)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return nil, domainerror.NewExportError(
			domainerror.ErrCodeDeliveryFailed,
			"failed to write export file",
			errors.Join(domainerror.ErrDeliveryFailed, err),
		)
	}

	return &adapter.DeliveryResult{Status: adapter.DeliveryStatusDelivered, Method: MethodFilesystem}, nil
}
