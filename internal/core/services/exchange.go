package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sercha-bridge/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-bridge/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-bridge/internal/runtime"
)

// Ensure ExchangeService implements the interface.
var _ driving.Exchanger = (*ExchangeService)(nil)

// ExchangeService runs one request/response round trip per call.
// Each call gets a private runtime and bridge, so concurrent exchanges never
// receive each other's responses.
type ExchangeService struct {
	fetcher driven.Fetcher
}

// NewExchangeService creates an exchange service that fetches with fetcher.
func NewExchangeService(fetcher driven.Fetcher) *ExchangeService {
	return &ExchangeService{fetcher: fetcher}
}

// Exchange sends query through a fresh bridge and waits for its response.
// ok is false when the bridge went idle without publishing.
func (s *ExchangeService) Exchange(ctx context.Context, query string) (any, bool, error) {
	rt := runtime.New()
	bridge := NewSearchBridge(s.fetcher)
	if err := bridge.Attach(ctx, rt.SearchRequests(), rt.SearchResponses()); err != nil {
		return nil, false, fmt.Errorf("exchange: %w", err)
	}
	defer bridge.Detach()

	received := make(chan any, 1)
	unsubscribe := rt.SearchResponses().Subscribe(func(v any) {
		select {
		case received <- v:
		default:
		}
	})
	defer unsubscribe()

	rt.SearchRequests().Send(query)

	idle := make(chan error, 1)
	go func() { idle <- bridge.Wait(ctx) }()

	select {
	case v := <-received:
		return v, true, nil
	case err := <-idle:
		if err != nil {
			return nil, false, err
		}
		// The publish happens before the request is marked done.
		select {
		case v := <-received:
			return v, true, nil
		default:
			return nil, false, nil
		}
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}
}
