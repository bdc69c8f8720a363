package errs

import "errors"

// Sentinel errors shared by the form use cases and the HTTP layer
var (
	// Form errors
	ErrFormInvalid        = errors.New("form invalid")
	ErrSubmissionInFlight = errors.New("submission already in flight")

	// Session errors
	ErrSessionNotFound = errors.New("form session not found")

	// Outbound errors
	ErrServerResponse = errors.New("server responded with an error status")
	ErrNetwork        = errors.New("network error")
)
