package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetcherKind_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		kind     FetcherKind
		expected bool
	}{
		{name: "http is valid", kind: FetcherHTTP, expected: true},
		{name: "github is valid", kind: FetcherGitHub, expected: true},
		{name: "empty is invalid", kind: FetcherKind(""), expected: false},
		{name: "unknown is invalid", kind: FetcherKind("curl"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.IsValid())
		})
	}
}

func TestFetcherKind_Description(t *testing.T) {
	assert.Contains(t, FetcherHTTP.Description(), "HTTP")
	assert.Contains(t, FetcherGitHub.Description(), "GitHub")
	assert.Equal(t, unknownDescription, FetcherKind("nope").Description())
	assert.Equal(t, "github", FetcherGitHub.String())
}

func TestSearchSettings_QueryURL(t *testing.T) {
	tests := []struct {
		name     string
		settings SearchSettings
		term     string
		expected string
	}{
		{
			name:     "plain term uses default endpoint",
			term:     "elm",
			expected: "https://api.github.com/search/repositories?q=elm",
		},
		{
			name:     "term is escaped",
			settings: SearchSettings{Endpoint: "https://example.com/s?q="},
			term:     "go lang&x",
			expected: "https://example.com/s?q=go+lang%26x",
		},
		{
			name:     "https url passes verbatim",
			term:     "https://api.example.com/search?q=foo",
			expected: "https://api.example.com/search?q=foo",
		},
		{
			name:     "http url passes verbatim after trim",
			term:     "  HTTP://localhost:8080/x  ",
			expected: "HTTP://localhost:8080/x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.settings.QueryURL(tt.term))
		})
	}
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, FetcherHTTP, s.Bridge.Fetcher)
	assert.Equal(t, DefaultUserAgent, s.Bridge.UserAgent)
	assert.Equal(t, DefaultGitHubBaseURL, s.GitHub.BaseURL)
	assert.Equal(t, DefaultSearchEndpoint, s.Search.Endpoint)
}
