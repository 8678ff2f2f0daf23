package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/medley/internal/core/domain"
	"github.com/custodia-labs/medley/internal/core/ports/driven"
	"github.com/custodia-labs/medley/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService resolves settings from a config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get resolves stored values over domain.DefaultSettings.
func (s *SettingsService) Get() (domain.Settings, error) {
	settings := domain.DefaultSettings()
	if s.configStore == nil {
		return settings, nil
	}

	settings.BaseURL = s.getString(driving.KeyBaseURL, settings.BaseURL)
	settings.Profile = domain.Profile(s.getString(driving.KeyProfile, settings.Profile.String()))
	settings.Paths = domain.Endpoints{
		Search:          s.configStore.GetString(driving.KeySearchPath),
		Recommendations: s.configStore.GetString(driving.KeyRecommendationsPath),
	}
	if _, ok := s.configStore.Get(driving.KeyTimeoutSeconds); ok {
		settings.Timeout = time.Duration(s.configStore.GetInt(driving.KeyTimeoutSeconds)) * time.Second
	}
	if _, ok := s.configStore.Get(driving.KeyRequestsPerSecond); ok {
		settings.RequestsPerSecond = s.configStore.GetFloat(driving.KeyRequestsPerSecond)
	}
	if _, ok := s.configStore.Get(driving.KeyBurst); ok {
		settings.Burst = s.configStore.GetInt(driving.KeyBurst)
	}
	if types := s.configStore.GetStringSlice(driving.KeyMediaTypes); len(types) > 0 {
		settings.MediaTypes = toMediaTypes(types)
	}
	settings.PlaceholderImage = s.getString(driving.KeyPlaceholderImage, settings.PlaceholderImage)

	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("settings in %s: %w", s.Path(), err)
	}
	return settings, nil
}

// Set parses value for key and persists it.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return fmt.Errorf("%w: no config store", domain.ErrInvalidInput)
	}
	value = strings.TrimSpace(value)

	var stored any
	switch key {
	case driving.KeyBaseURL, driving.KeySearchPath, driving.KeyRecommendationsPath, driving.KeyPlaceholderImage:
		stored = value
	case driving.KeyProfile:
		if !domain.Profile(value).IsValid() {
			return fmt.Errorf("%w: %q", domain.ErrUnknownProfile, value)
		}
		stored = value
	case driving.KeyTimeoutSeconds, driving.KeyBurst:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrInvalidInput, key)
		}
		stored = int64(n)
	case driving.KeyRequestsPerSecond:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("%w: %s must be a positive number", domain.ErrInvalidInput, key)
		}
		stored = f
	case driving.KeyMediaTypes:
		types := splitList(value)
		if len(types) == 0 {
			return fmt.Errorf("%w: %s needs at least one media type", domain.ErrInvalidInput, key)
		}
		stored = types
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Path returns the config file path.
func (s *SettingsService) Path() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

// getString returns the stored string or def when unset.
func (s *SettingsService) getString(key, def string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return def
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func toMediaTypes(values []string) []domain.MediaType {
	out := make([]domain.MediaType, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, domain.MediaType(v))
		}
	}
	return out
}
