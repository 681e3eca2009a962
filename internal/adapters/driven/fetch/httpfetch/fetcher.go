// Package httpfetch provides a Fetcher for arbitrary HTTP endpoints.
//
// It mirrors a browser fetch: one GET, no retries, no timeout beyond the
// caller's context, and the body is returned whatever the status code.
package httpfetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/custodia-labs/sercha-bridge/internal/core/domain"
	"github.com/custodia-labs/sercha-bridge/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-bridge/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.Fetcher = (*Fetcher)(nil)

// Fetcher performs GET requests with a resty client.
type Fetcher struct {
	client *resty.Client
}

// New creates a fetcher. An empty userAgent leaves resty's default.
func New(userAgent string) *Fetcher {
	return NewWithClient(&http.Client{}, userAgent)
}

// NewWithClient creates a fetcher on top of an existing http.Client.
func NewWithClient(hc *http.Client, userAgent string) *Fetcher {
	client := resty.NewWithClient(hc).
		SetRetryCount(0)
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	return &Fetcher{client: client}
}

// Fetch issues a GET to rawURL and returns the body.
// Transport errors wrap domain.ErrFetchFailed; HTTP error statuses do not.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", domain.ErrFetchFailed, rawURL, err)
	}

	if logger.Enabled(slog.LevelDebug) {
		logger.Debug("http fetch completed",
			"url", rawURL,
			"status", resp.StatusCode(),
			"bytes", len(resp.Body()),
			"duration", resp.Time())
	}

	return resp.Body(), nil
}
