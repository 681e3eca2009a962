// Package github provides a Fetcher backed by the go-github API client.
//
// Requests carry GitHub's Accept and User-Agent headers and relative URLs
// are resolved against the configured API root. Unlike the plain HTTP
// fetcher, non-2xx responses are returned as errors.
package github

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/sercha-bridge/internal/core/domain"
	"github.com/custodia-labs/sercha-bridge/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-bridge/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.Fetcher = (*Fetcher)(nil)

// Fetcher performs GET requests through go-github.
type Fetcher struct {
	gh *gh.Client
}

// New creates a fetcher for the API rooted at baseURL.
// An empty baseURL keeps go-github's default (api.github.com).
func New(baseURL, userAgent string) (*Fetcher, error) {
	return NewWithHTTPClient(nil, baseURL, userAgent)
}

// NewWithHTTPClient creates a fetcher using a custom http.Client.
func NewWithHTTPClient(httpClient *http.Client, baseURL, userAgent string) (*Fetcher, error) {
	client := gh.NewClient(httpClient)

	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("github base url: %w: %w", domain.ErrInvalidInput, err)
		}
		client.BaseURL = u
	}
	if userAgent != "" {
		client.UserAgent = userAgent
	}

	return &Fetcher{gh: client}, nil
}

// Fetch issues a GET to rawURL and returns the body.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := f.gh.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", domain.ErrFetchFailed, rawURL, err)
	}

	// go-github refuses requests locally after a rate-limited response; every
	// request must still reach the server.
	ctx = context.WithValue(ctx, gh.BypassRateLimitCheck, true)

	var body bytes.Buffer
	resp, err := f.gh.Do(ctx, req, &body)
	if err != nil {
		wrapped := wrapError(err, rawURL)
		logger.Debug("github fetch failed",
			"url", rawURL,
			"not_found", IsNotFound(wrapped),
			"rate_limited", IsRateLimited(wrapped))
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchFailed, wrapped)
	}

	if resp != nil {
		logger.Debug("github fetch completed",
			"url", req.URL.String(),
			"status", resp.StatusCode,
			"rate_remaining", resp.Rate.Remaining,
			"bytes", body.Len())
	}

	return body.Bytes(), nil
}

// BaseURL returns the API root requests resolve against.
func (f *Fetcher) BaseURL() string {
	return f.gh.BaseURL.String()
}

// wrapError converts go-github errors to our error types.
func wrapError(err error, rawURL string) error {
	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt: rateLimitErr.Rate.Reset.Time,
			Limit:   rateLimitErr.Rate.Limit,
		}
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
			URL:        rawURL,
		}
	}

	return fmt.Errorf("GET %s: %w", rawURL, err)
}
