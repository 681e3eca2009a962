package driven

import "context"

// Fetcher performs a single HTTP GET.
// Implementations must not retry and must return the raw body bytes.
// Errors should wrap domain.ErrFetchFailed.
type Fetcher interface {
	// Fetch issues a GET to rawURL and returns the response body.
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}
