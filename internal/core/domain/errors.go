package domain

import "errors"

// Domain errors represent bridge and configuration failures.
// These are distinct from transport errors raised by fetch adapters.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFetcher indicates an unknown fetcher kind in settings.
	ErrUnsupportedFetcher = errors.New("unsupported fetcher")

	// Bridge Errors.

	// ErrBridgeAttached indicates the bridge is already subscribed to a runtime.
	ErrBridgeAttached = errors.New("bridge already attached")

	// ErrFetchFailed indicates the HTTP request could not be completed.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrDecodeFailed indicates the response body is not a single JSON value.
	ErrDecodeFailed = errors.New("decode failed")
)
