package adapter

import "context"

// DeliveryStatus is the three-way outcome of handing a payload to the user.
type DeliveryStatus string

const (
	// DeliveryStatusDelivered means the payload reached its destination.
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	// DeliveryStatusCancelled means the user backed out. This is a
	// success-adjacent outcome, deliberately distinguishable from failure so
	// the UI can avoid alarming the user.
	DeliveryStatusCancelled DeliveryStatus = "cancelled"
)

// DeliveryResult reports a completed delivery attempt.
type DeliveryResult struct {
	Status DeliveryStatus
	Method string // e.g. "download", "filesystem", "email"
}

// Delivery hands a finished export payload to the user's device. A failed
// delivery returns an error wrapping domainerror.ErrDeliveryFailed; user
// cancellation is reported through the result, never as an error. The
// orchestrator issues at most one delivery per export invocation and never
// retries.
type Delivery interface {
	Deliver(ctx context.Context, payload []byte, filename, mimeType string) (*DeliveryResult, error)
}
