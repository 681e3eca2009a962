package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/sercha-bridge/internal/core/domain"
	"github.com/custodia-labs/sercha-bridge/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-bridge/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyBridgeFetcher   = "bridge.fetcher"
	KeyBridgeUserAgent = "bridge.user_agent"
	KeyGitHubBaseURL   = "github.base_url"
	KeySearchEndpoint  = "search.endpoint"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	fetcher := domain.FetcherKind(s.getString(KeyBridgeFetcher, defaults.Bridge.Fetcher.String()))
	if !fetcher.IsValid() {
		return nil, fmt.Errorf("%s %q: %w", KeyBridgeFetcher, fetcher, domain.ErrUnsupportedFetcher)
	}

	return &domain.AppSettings{
		Bridge: domain.BridgeSettings{
			Fetcher:   fetcher,
			UserAgent: s.getString(KeyBridgeUserAgent, defaults.Bridge.UserAgent),
		},
		GitHub: domain.GitHubSettings{
			BaseURL: s.getString(KeyGitHubBaseURL, defaults.GitHub.BaseURL),
		},
		Search: domain.SearchSettings{
			Endpoint: s.getString(KeySearchEndpoint, defaults.Search.Endpoint),
		},
	}, nil
}

// Save persists application settings.
// All values are validated before any is written.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("save settings: %w", domain.ErrInvalidInput)
	}

	values := map[string]string{
		KeyBridgeFetcher:   settings.Bridge.Fetcher.String(),
		KeyBridgeUserAgent: settings.Bridge.UserAgent,
		KeyGitHubBaseURL:   settings.GitHub.BaseURL,
		KeySearchEndpoint:  settings.Search.Endpoint,
	}
	keys := s.Keys()
	for _, key := range keys {
		value, err := validate(key, values[key])
		if err != nil {
			return err
		}
		values[key] = value
	}
	for _, key := range keys {
		if err := s.store(key, values[key]); err != nil {
			return err
		}
	}
	return nil
}

// Set validates and stores a single key.
func (s *SettingsService) Set(key, value string) error {
	value, err := validate(key, value)
	if err != nil {
		return err
	}
	return s.store(key, value)
}

// validate checks value for key and returns it trimmed.
func validate(key, value string) (string, error) {
	value = strings.TrimSpace(value)

	switch key {
	case KeyBridgeFetcher:
		if !domain.FetcherKind(value).IsValid() {
			return "", fmt.Errorf("%s %q: %w", key, value, domain.ErrUnsupportedFetcher)
		}
	case KeyGitHubBaseURL, KeySearchEndpoint:
		if !domain.IsURL(value) {
			return "", fmt.Errorf("%s must be an http(s) URL: %w", key, domain.ErrInvalidInput)
		}
	case KeyBridgeUserAgent:
	default:
		return "", fmt.Errorf("unknown key %q: %w", key, domain.ErrInvalidInput)
	}
	return value, nil
}

func (s *SettingsService) store(key, value string) error {
	if err := s.configStore.Set(key, value); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// Keys lists the recognised configuration keys.
func (s *SettingsService) Keys() []string {
	return []string{KeyBridgeFetcher, KeyBridgeUserAgent, KeyGitHubBaseURL, KeySearchEndpoint}
}

func (s *SettingsService) getString(key, def string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return def
}
