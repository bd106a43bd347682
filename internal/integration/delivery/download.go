// Package delivery implements the export delivery strategies.
package delivery

import (
	"context"

	"github.com/pocket-ledger/backend/internal/application/adapter"
)

// MethodDownload tags exports handed back to the HTTP response.
const MethodDownload = "download"

// downloadDelivery hands the payload back to the caller. The controller
// streams it as an attachment, so there is nothing to do here beyond
// confirming the outcome.
type downloadDelivery struct{}

// NewDownloadDelivery creates a new download delivery instance.
func NewDownloadDelivery() adapter.Delivery {
	return &downloadDelivery{}
}

// Deliver confirms the download outcome.
func (d *downloadDelivery) Deliver(ctx context.Context, payload []byte, filename, mimeType string) (*adapter.DeliveryResult, error) {
	if err := ctx.Err(); err != nil {
		return &adapter.DeliveryResult{Status: adapter.DeliveryStatusCancelled, Method: MethodDownload}, nil
	}
	return &adapter.DeliveryResult{Status: adapter.DeliveryStatusDelivered, Method: MethodDownload}, nil
}
