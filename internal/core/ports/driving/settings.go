package driving

import "github.com/custodia-labs/medley/internal/core/domain"

// Settings keys understood by SettingsService.Set.
const (
	KeyBaseURL             = "catalog.base_url"
	KeyProfile             = "catalog.profile"
	KeySearchPath          = "catalog.search_path"
	KeyRecommendationsPath = "catalog.recommendations_path"
	KeyTimeoutSeconds      = "catalog.timeout_seconds"
	KeyRequestsPerSecond   = "catalog.requests_per_second"
	KeyBurst               = "catalog.burst"
	KeyMediaTypes          = "ui.media_types"
	KeyPlaceholderImage    = "ui.placeholder_image"
)

// SettingsKeys lists every key in display order.
func SettingsKeys() []string {
	return []string{
		KeyBaseURL,
		KeyProfile,
		KeySearchPath,
		KeyRecommendationsPath,
		KeyTimeoutSeconds,
		KeyRequestsPerSecond,
		KeyBurst,
		KeyMediaTypes,
		KeyPlaceholderImage,
	}
}

// SettingsService manages application settings.
type SettingsService interface {
	// Get resolves the stored settings over the defaults.
	Get() (domain.Settings, error)

	// Set parses and stores a single value. Unknown keys and values that
	// do not parse are rejected with domain.ErrInvalidInput.
	Set(key, value string) error

	// Path returns the location settings are stored at.
	Path() string
}
