package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Validation Errors.

	// ErrEmptyQuery indicates the query text is empty after trimming.
	ErrEmptyQuery = fmt.Errorf("%w: empty search query", ErrInvalidInput)

	// ErrNoMediaType indicates no media type was selected.
	ErrNoMediaType = fmt.Errorf("%w: no media type selected", ErrInvalidInput)

	// ErrUnknownMediaType indicates a media type outside the configured set.
	ErrUnknownMediaType = fmt.Errorf("%w: unknown media type", ErrInvalidInput)

	// ErrEmptyItemID indicates a recommendation request without an item id.
	ErrEmptyItemID = fmt.Errorf("%w: empty item id", ErrInvalidInput)

	// ErrUnknownProfile indicates an endpoint profile that does not exist.
	ErrUnknownProfile = fmt.Errorf("%w: unknown endpoint profile", ErrInvalidInput)

	// Network Errors.

	// ErrRequestFailed indicates a catalog request failed in transport or
	// returned a non-2xx status.
	ErrRequestFailed = errors.New("catalog request failed")

	// ErrCatalogUnavailable indicates no catalog client is configured.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

// HTTPStatusError is returned when the catalog answers with a non-2xx status.
type HTTPStatusError struct {
	// StatusCode is the HTTP status returned.
	StatusCode int

	// Endpoint is the path that was called.
	Endpoint string
}

// Error implements error.
func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP error! Status: %d (%s)", e.StatusCode, e.Endpoint)
}

// Unwrap lets errors.Is match ErrRequestFailed.
func (e *HTTPStatusError) Unwrap() error {
	return ErrRequestFailed
}
