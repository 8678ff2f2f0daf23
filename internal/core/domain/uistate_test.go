package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUIState_String(t *testing.T) {
	tests := []struct {
		state UIState
		want  string
	}{
		{StateIdle, "idle"},
		{StateSearching, "searching"},
		{StateShowingResults, "showing_results"},
		{StateShowingResultsEmpty, "showing_results_empty"},
		{StateFetchingRecommendations, "fetching_recommendations"},
		{StateShowingRecommendations, "showing_recommendations"},
		{StateError, "error"},
		{UIState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}

func TestUIState_Loading(t *testing.T) {
	assert.True(t, StateSearching.Loading())
	assert.True(t, StateFetchingRecommendations.Loading())
	assert.False(t, StateIdle.Loading())
	assert.False(t, StateShowingResults.Loading())
	assert.False(t, StateError.Loading())
}

func TestUIState_CanSelect(t *testing.T) {
	assert.True(t, StateShowingResults.CanSelect())
	assert.True(t, StateShowingRecommendations.CanSelect())
	assert.False(t, StateShowingResultsEmpty.CanSelect())
	assert.False(t, StateSearching.CanSelect())
}
