package domain

// UIState is the state of the search-and-recommend interaction.
type UIState int

// Interaction states.
const (
	// StateIdle shows the search form and an empty region.
	StateIdle UIState = iota
	// StateSearching shows skeleton result cards while a search is in flight.
	StateSearching
	// StateShowingResults shows a grid of result cards.
	StateShowingResults
	// StateShowingResultsEmpty shows the no-results view.
	StateShowingResultsEmpty
	// StateFetchingRecommendations shows recommendation skeletons.
	StateFetchingRecommendations
	// StateShowingRecommendations shows the selected item and its recommendations.
	StateShowingRecommendations
	// StateError shows a validation or failure message.
	StateError
)

// String returns the string representation of the state.
func (s UIState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSearching:
		return "searching"
	case StateShowingResults:
		return "showing_results"
	case StateShowingResultsEmpty:
		return "showing_results_empty"
	case StateFetchingRecommendations:
		return "fetching_recommendations"
	case StateShowingRecommendations:
		return "showing_recommendations"
	case StateError:
		return "error"
	default:
		return unknownDescription
	}
}

// Loading reports whether a request is outstanding in this state.
func (s UIState) Loading() bool {
	return s == StateSearching || s == StateFetchingRecommendations
}

// CanSelect reports whether items rendered in this state offer a
// "get recommendations" action.
func (s UIState) CanSelect() bool {
	return s == StateShowingResults || s == StateShowingRecommendations
}
