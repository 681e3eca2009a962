package domain

import (
	"net/url"
	"strings"
)

const unknownDescription = "Unknown"

// Default setting values.
const (
	// DefaultSearchEndpoint is the query prefix used when a search term is not
	// already a URL. It targets GitHub's repository search.
	DefaultSearchEndpoint = "https://api.github.com/search/repositories?q="

	// DefaultGitHubBaseURL is the API root used by the GitHub fetcher.
	DefaultGitHubBaseURL = "https://api.github.com/"

	// DefaultUserAgent is sent by fetchers unless overridden.
	DefaultUserAgent = "sercha-bridge"
)

// FetcherKind selects the HTTP adapter the bridge uses for GET requests.
type FetcherKind string

// Available fetcher kinds.
const (
	// FetcherHTTP is a plain HTTP client. The status code is ignored and any
	// body is handed to the JSON decoder.
	FetcherHTTP FetcherKind = "http"

	// FetcherGitHub uses the GitHub API client. Non-2xx responses are errors.
	FetcherGitHub FetcherKind = "github"
)

// IsValid returns true if the fetcher kind is recognised.
func (k FetcherKind) IsValid() bool {
	switch k {
	case FetcherHTTP, FetcherGitHub:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k FetcherKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the fetcher.
func (k FetcherKind) Description() string {
	switch k {
	case FetcherHTTP:
		return "HTTP (any endpoint, status ignored)"
	case FetcherGitHub:
		return "GitHub API client"
	default:
		return unknownDescription
	}
}

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Bridge BridgeSettings
	GitHub GitHubSettings
	Search SearchSettings
}

// BridgeSettings configures the search bridge.
type BridgeSettings struct {
	// Fetcher selects the HTTP adapter.
	Fetcher FetcherKind

	// UserAgent is sent with every request. Empty uses the adapter default.
	UserAgent string
}

// GitHubSettings configures the GitHub fetcher.
type GitHubSettings struct {
	// BaseURL is the API root. Relative queries resolve against it.
	BaseURL string
}

// SearchSettings configures how search terms become request strings.
type SearchSettings struct {
	// Endpoint is prefixed to escaped search terms.
	Endpoint string
}

// QueryURL turns a search term into the request string sent to the bridge.
// Terms that already are http(s) URLs pass through verbatim.
func (s SearchSettings) QueryURL(term string) string {
	term = strings.TrimSpace(term)
	if IsURL(term) {
		return term
	}
	endpoint := s.Endpoint
	if endpoint == "" {
		endpoint = DefaultSearchEndpoint
	}
	return endpoint + url.QueryEscape(term)
}

// IsURL reports whether s starts with an http or https scheme.
func IsURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Bridge: BridgeSettings{
			Fetcher:   FetcherHTTP,
			UserAgent: DefaultUserAgent,
		},
		GitHub: GitHubSettings{
			BaseURL: DefaultGitHubBaseURL,
		},
		Search: SearchSettings{
			Endpoint: DefaultSearchEndpoint,
		},
	}
}
