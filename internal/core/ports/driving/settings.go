package driving

import "github.com/custodia-labs/sercha-bridge/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, filling defaults for unset keys.
	Get() (*domain.AppSettings, error)

	// Save persists all settings.
	Save(settings *domain.AppSettings) error

	// Set validates and stores a single dot-notation key.
	Set(key, value string) error

	// Keys lists the recognised configuration keys.
	Keys() []string
}
