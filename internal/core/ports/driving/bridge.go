package driving

import (
	"context"

	"github.com/custodia-labs/sercha-bridge/internal/core/domain"
	"github.com/custodia-labs/sercha-bridge/internal/core/ports/driven"
)

// SearchBridge connects an application's request port to the network and
// publishes decoded responses on its response port.
type SearchBridge interface {
	// Attach subscribes the bridge to requests and binds responses.
	// ctx bounds in-flight fetches.
	Attach(ctx context.Context, requests driven.RequestPort, responses driven.ResponsePort) error

	// Detach removes the request subscription. In-flight requests still publish.
	Detach()

	// OnSearchRequested fetches query and publishes the decoded body.
	// It returns immediately; failures are never reported to the caller.
	OnSearchRequested(query string)

	// Wait blocks until no request is in flight or ctx is done.
	Wait(ctx context.Context) error

	// Stats returns activity counters.
	Stats() domain.BridgeStats
}

// Exchanger performs one request/response round trip through a bridge.
type Exchanger interface {
	// Exchange sends query and waits for the response.
	// ok is false when the request ended without a published value.
	Exchange(ctx context.Context, query string) (value any, ok bool, err error)
}
