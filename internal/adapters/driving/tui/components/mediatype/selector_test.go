package mediatype

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/medley/internal/core/domain"
)

func TestNewSelector_StartsUnselected(t *testing.T) {
	m := NewSelector(nil, domain.DefaultMediaTypes())

	assert.Equal(t, domain.MediaType(""), m.Selected())
	assert.Len(t, m.Types(), 4)
}

func TestSelector_NextWraps(t *testing.T) {
	m := NewSelector(nil, []domain.MediaType{domain.MediaMovie, domain.MediaBook})

	m.Next()
	assert.Equal(t, domain.MediaMovie, m.Selected())
	m.Next()
	assert.Equal(t, domain.MediaBook, m.Selected())
	m.Next()
	assert.Equal(t, domain.MediaMovie, m.Selected())
}

func TestSelector_PrevWraps(t *testing.T) {
	m := NewSelector(nil, []domain.MediaType{domain.MediaMovie, domain.MediaBook, domain.MediaTV})

	m.Prev()
	assert.Equal(t, domain.MediaTV, m.Selected())
	m.Prev()
	assert.Equal(t, domain.MediaBook, m.Selected())
	m.Prev()
	m.Prev()
	assert.Equal(t, domain.MediaTV, m.Selected())
}

func TestSelector_Select(t *testing.T) {
	m := NewSelector(nil, domain.DefaultMediaTypes())

	assert.True(t, m.Select(domain.MediaBook))
	assert.Equal(t, domain.MediaBook, m.Selected())

	assert.False(t, m.Select("podcast"))
	assert.Equal(t, domain.MediaBook, m.Selected())

	m.Clear()
	assert.Equal(t, domain.MediaType(""), m.Selected())
}

func TestSelector_Empty(t *testing.T) {
	m := NewSelector(nil, nil)

	m.Next()
	m.Prev()

	assert.Equal(t, domain.MediaType(""), m.Selected())
}

func TestSelector_View(t *testing.T) {
	m := NewSelector(nil, []domain.MediaType{domain.MediaMovie, domain.MediaTV})
	m.Select(domain.MediaTV)

	view := m.View()

	assert.Contains(t, view, "( ) movie")
	assert.Contains(t, view, "(•) tv")
}
