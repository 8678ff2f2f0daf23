package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSearchQuery_Trims(t *testing.T) {
	q := NewSearchQuery("  Inception \n", " movie ")

	assert.Equal(t, "Inception", q.Text)
	assert.Equal(t, MediaMovie, q.Type)
}

func TestSearchQuery_Validate(t *testing.T) {
	allowed := DefaultMediaTypes()

	tests := []struct {
		name    string
		query   SearchQuery
		wantErr error
	}{
		{"valid", NewSearchQuery("Inception", MediaMovie), nil},
		{"empty text", NewSearchQuery("", MediaMovie), ErrEmptyQuery},
		{"whitespace text", NewSearchQuery(" \t\n ", MediaMovie), ErrEmptyQuery},
		{"untrimmed whitespace text", SearchQuery{Text: "   ", Type: MediaMovie}, ErrEmptyQuery},
		{"no media type", NewSearchQuery("Dune", ""), ErrNoMediaType},
		{"unknown media type", NewSearchQuery("Dune", "podcast"), ErrUnknownMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate(allowed)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestSearchQuery_Validate_EmptyQueryCheckedFirst(t *testing.T) {
	err := NewSearchQuery("", "").Validate(nil)

	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestSearchQuery_Validate_NoAllowedList(t *testing.T) {
	err := NewSearchQuery("Dune", "podcast").Validate(nil)

	assert.NoError(t, err)
}
