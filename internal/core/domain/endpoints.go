package domain

import (
	"fmt"
	"strings"
)

// Profile selects a deployment's set of endpoint paths.
type Profile string

// Known profiles.
const (
	// ProfileProduction is the default deployment.
	ProfileProduction Profile = "production"

	// ProfileExperimental serves the same contract under /experimental.
	ProfileExperimental Profile = "experimental"
)

// IsValid returns true if the profile is recognised.
func (p Profile) IsValid() bool {
	switch p {
	case ProfileProduction, ProfileExperimental:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p Profile) String() string {
	return string(p)
}

// Endpoints holds the catalog's endpoint paths, relative to the base URL.
type Endpoints struct {
	// Search is the search endpoint path.
	Search string

	// Recommendations is the recommendation endpoint path.
	Recommendations string
}

// EndpointsFor returns the endpoint paths for a profile.
func EndpointsFor(p Profile) (Endpoints, error) {
	switch p {
	case ProfileProduction, "":
		return Endpoints{Search: "/search", Recommendations: "/get_recommendations"}, nil
	case ProfileExperimental:
		return Endpoints{
			Search:          "/experimental/search",
			Recommendations: "/experimental/get_recommendations",
		}, nil
	default:
		return Endpoints{}, fmt.Errorf("%w: %q", ErrUnknownProfile, p)
	}
}

// Override replaces any path that is set in paths.
func (e Endpoints) Override(paths Endpoints) Endpoints {
	if paths.Search != "" {
		e.Search = normalisePath(paths.Search)
	}
	if paths.Recommendations != "" {
		e.Recommendations = normalisePath(paths.Recommendations)
	}
	return e
}

func normalisePath(p string) string {
	p = strings.TrimSpace(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
