//go:build integration

package mock

import (
	"context"
	"sync"

	"github.com/pocket-ledger/backend/internal/application/adapter"
)

// DeliveryRecorder implements adapter.Delivery, recording what it was handed
// and reporting a configurable outcome.
type DeliveryRecorder struct {
	mu     sync.Mutex
	method string
	status adapter.DeliveryStatus
	err    error

	payload  []byte
	filename string
	mimeType string
	calls    int
}

// NewDeliveryRecorder creates a recorder reporting a delivered outcome for
// the given method.
func NewDeliveryRecorder(method string) *DeliveryRecorder {
	return &DeliveryRecorder{
		method: method,
		status: adapter.DeliveryStatusDelivered,
	}
}

// Deliver records the payload and returns the configured outcome.
func (d *DeliveryRecorder) Deliver(ctx context.Context, payload []byte, filename, mimeType string) (*adapter.DeliveryResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.calls++
	d.payload = payload
	d.filename = filename
	d.mimeType = mimeType

	if d.err != nil {
		return nil, d.err
	}
	return &adapter.DeliveryResult{Status: d.status, Method: d.method}, nil
}

// Fail makes subsequent deliveries return the given error.
func (d *DeliveryRecorder) Fail(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.err = err
}

// Reset clears recorded state and restores the delivered outcome.
func (d *DeliveryRecorder) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.payload = nil
	d.filename = ""
	d.mimeType = ""
	d.calls = 0
	d.err = nil
	d.status = adapter.DeliveryStatusDelivered
}

// Filename returns the filename of the last delivery.
func (d *DeliveryRecorder) Filename() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.filename
}

// Payload returns the payload of the last delivery.
func (d *DeliveryRecorder) Payload() []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.payload
}

// Calls returns how many deliveries were attempted.
func (d *DeliveryRecorder) Calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}
