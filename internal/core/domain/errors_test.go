package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrEmptyQuery", ErrEmptyQuery},
		{"ErrNoMediaType", ErrNoMediaType},
		{"ErrUnknownMediaType", ErrUnknownMediaType},
		{"ErrEmptyItemID", ErrEmptyItemID},
		{"ErrUnknownProfile", ErrUnknownProfile},
		{"ErrRequestFailed", ErrRequestFailed},
		{"ErrCatalogUnavailable", ErrCatalogUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestValidationErrors_WrapInvalidInput(t *testing.T) {
	for _, err := range []error{ErrEmptyQuery, ErrNoMediaType, ErrUnknownMediaType, ErrEmptyItemID, ErrUnknownProfile} {
		assert.True(t, errors.Is(err, ErrInvalidInput), err.Error())
		assert.False(t, errors.Is(err, ErrRequestFailed), err.Error())
	}
}

func TestHTTPStatusError(t *testing.T) {
	err := &HTTPStatusError{StatusCode: 500, Endpoint: "/search"}

	assert.Equal(t, "HTTP error! Status: 500 (/search)", err.Error())
	assert.True(t, errors.Is(err, ErrRequestFailed))

	wrapped := fmt.Errorf("search: %w", err)
	var statusErr *HTTPStatusError
	assert.True(t, errors.As(wrapped, &statusErr))
	assert.Equal(t, 500, statusErr.StatusCode)
}
