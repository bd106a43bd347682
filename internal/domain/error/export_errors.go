package error

import "errors"

// Export pipeline errors. All four are surfaced to the caller as user-visible
// messages and none are retried automatically. User cancellation of a
// delivery is an outcome, not an error, and never appears here.
var (
	// ErrEmptyInput is returned by a serializer given zero transactions.
	// Callers are expected to check non-emptiness upstream for better
	// diagnostics; this is a deliberate contract.
	ErrEmptyInput = errors.New("cannot encode an empty transaction collection")

	// ErrNothingToExport is returned when the resolved export scope is empty,
	// e.g. the active filters eliminate every transaction. An export never
	// silently produces an empty file.
	ErrNothingToExport = errors.New("nothing to export")

	// ErrUnsupportedFormat is returned for an unrecognized format token.
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// ErrDeliveryFailed is returned when the delivery mechanism errored for a
	// reason other than user cancellation.
	ErrDeliveryFailed = errors.New("export delivery failed")
)

// ExportErrorCode defines error codes for export errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyInput        ExportErrorCode = "EXP-010001"
	ErrCodeNothingToExport   ExportErrorCode = "EXP-010002"
	ErrCodeUnsupportedFormat ExportErrorCode = "EXP-010003"

	// Delivery errors (02XXXX)
	ErrCodeDeliveryFailed ExportErrorCode = "EXP-020001"
)

// ExportError represents an export error with code and message.
type ExportError struct {
	Code    ExportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError with the given code and message.
func NewExportError(code ExportErrorCode, message string, err error) *ExportError {
	return &ExportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
