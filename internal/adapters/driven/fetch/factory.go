// Package fetch selects the Fetcher adapter described by the settings.
package fetch

import (
	"fmt"

	"github.com/custodia-labs/sercha-bridge/internal/adapters/driven/fetch/github"
	"github.com/custodia-labs/sercha-bridge/internal/adapters/driven/fetch/httpfetch"
	"github.com/custodia-labs/sercha-bridge/internal/core/domain"
	"github.com/custodia-labs/sercha-bridge/internal/core/ports/driven"
)

// New creates the fetcher selected by settings.Bridge.Fetcher.
func New(settings *domain.AppSettings) (driven.Fetcher, error) {
	if settings == nil {
		defaults := domain.DefaultAppSettings()
		settings = &defaults
	}

	switch settings.Bridge.Fetcher {
	case domain.FetcherHTTP:
		return httpfetch.New(settings.Bridge.UserAgent), nil
	case domain.FetcherGitHub:
		f, err := github.New(settings.GitHub.BaseURL, settings.Bridge.UserAgent)
		if err != nil {
			return nil, fmt.Errorf("creating github fetcher: %w", err)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFetcher, settings.Bridge.Fetcher)
	}
}
