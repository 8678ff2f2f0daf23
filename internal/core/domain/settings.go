package domain

import (
	"fmt"
	"strings"
	"time"
)

const unknownDescription = "Unknown"

// Defaults for catalog access.
const (
	DefaultBaseURL           = "http://localhost:5000"
	DefaultTimeout           = 30 * time.Second
	DefaultRequestsPerSecond = 5.0
	DefaultBurst             = 5
)

// Settings holds catalog endpoint and display configuration.
type Settings struct {
	// BaseURL is the scheme and host of the catalog service.
	BaseURL string

	// Profile picks the endpoint paths.
	Profile Profile

	// Paths overrides individual endpoint paths of the profile.
	Paths Endpoints

	// Timeout bounds a single request. Zero disables it.
	Timeout time.Duration

	// RequestsPerSecond paces outgoing requests.
	RequestsPerSecond float64

	// Burst is the maximum number of requests sent back to back.
	Burst int

	// MediaTypes is the fixed set of media types offered to the user.
	MediaTypes []MediaType

	// PlaceholderImage replaces missing image URLs.
	PlaceholderImage string
}

// DefaultSettings returns settings for a local production deployment.
func DefaultSettings() Settings {
	return Settings{
		BaseURL:           DefaultBaseURL,
		Profile:           ProfileProduction,
		Timeout:           DefaultTimeout,
		RequestsPerSecond: DefaultRequestsPerSecond,
		Burst:             DefaultBurst,
		MediaTypes:        DefaultMediaTypes(),
		PlaceholderImage:  DefaultPlaceholderImage,
	}
}

// Endpoints resolves the profile paths with any overrides applied.
func (s Settings) Endpoints() (Endpoints, error) {
	base, err := EndpointsFor(s.Profile)
	if err != nil {
		return Endpoints{}, err
	}
	return base.Override(s.Paths), nil
}

// Validate checks that the settings can be used to reach a catalog.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.BaseURL) == "" {
		return fmt.Errorf("%w: base URL is required", ErrInvalidInput)
	}
	if !s.Profile.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownProfile, s.Profile)
	}
	if s.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", ErrInvalidInput)
	}
	if s.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: requests per second must be positive", ErrInvalidInput)
	}
	if s.Burst < 1 {
		return fmt.Errorf("%w: burst must be at least 1", ErrInvalidInput)
	}
	if len(s.MediaTypes) == 0 {
		return fmt.Errorf("%w: at least one media type is required", ErrInvalidInput)
	}
	return nil
}
