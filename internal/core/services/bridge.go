package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/custodia-labs/sercha-bridge/internal/core/domain"
	"github.com/custodia-labs/sercha-bridge/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-bridge/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-bridge/internal/logger"
)

// Ensure SearchBridge implements the interface.
var _ driving.SearchBridge = (*SearchBridge)(nil)

// SearchBridge forwards search requests from an application's request port
// to the network and publishes decoded JSON bodies on its response port.
//
// Every request runs in its own goroutine. Publishes happen in completion
// order, not issue order. A request that fails to fetch or decode publishes
// nothing and is only visible in debug logs and Stats.
type SearchBridge struct {
	fetcher driven.Fetcher

	mu          sync.Mutex
	ctx         context.Context
	responses   driven.ResponsePort
	unsubscribe func()
	inFlight    int
	idle        []chan struct{}

	requested atomic.Int64
	published atomic.Int64
	dropped   atomic.Int64
}

// NewSearchBridge creates a bridge that fetches with fetcher.
func NewSearchBridge(fetcher driven.Fetcher) *SearchBridge {
	return &SearchBridge{
		fetcher: fetcher,
		ctx:     context.Background(),
	}
}

// Attach subscribes the bridge to requests and binds responses.
func (b *SearchBridge) Attach(
	ctx context.Context, requests driven.RequestPort, responses driven.ResponsePort,
) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.unsubscribe != nil {
		return domain.ErrBridgeAttached
	}
	if requests == nil || responses == nil {
		return fmt.Errorf("attach bridge: %w: nil port", domain.ErrInvalidInput)
	}

	b.ctx = ctx
	b.responses = responses
	b.unsubscribe = requests.Subscribe(b.OnSearchRequested)

	logger.Debug("bridge attached")
	return nil
}

// Detach removes the request subscription.
// Requests already in flight still publish to the bound response port.
func (b *SearchBridge) Detach() {
	b.mu.Lock()
	unsubscribe := b.unsubscribe
	b.unsubscribe = nil
	b.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
		logger.Debug("bridge detached")
	}
}

// OnSearchRequested issues one GET to query and publishes the decoded body.
// It never blocks on the network and never reports failure.
func (b *SearchBridge) OnSearchRequested(query string) {
	b.requested.Add(1)

	b.mu.Lock()
	ctx, responses := b.ctx, b.responses
	b.inFlight++
	b.mu.Unlock()

	id := uuid.New().String()
	if responses == nil {
		logger.Warn("search request without response port", "request_id", id, "query", query)
		b.dropped.Add(1)
		b.finish()
		return
	}

	logger.Debug("search requested", "request_id", id, "query", query)
	go b.dispatch(ctx, id, query, responses)
}

// dispatch performs one request. Panics from the fetcher or a subscriber are
// contained here so nothing crosses the port boundary.
func (b *SearchBridge) dispatch(ctx context.Context, id, query string, responses driven.ResponsePort) {
	defer b.finish()
	defer func() {
		if r := recover(); r != nil {
			b.dropped.Add(1)
			logger.Debug("search request panicked", "request_id", id, "panic", r)
		}
	}()

	body, err := b.fetcher.Fetch(ctx, query)
	if err != nil {
		b.dropped.Add(1)
		logger.Debug("search request dropped", "request_id", id, "stage", "fetch", "err", err)
		return
	}

	value, err := DecodeJSON(body)
	if err != nil {
		b.dropped.Add(1)
		logger.Debug("search request dropped", "request_id", id, "stage", "decode", "err", err)
		return
	}

	responses.Send(value)
	b.published.Add(1)
	logger.Debug("search response published", "request_id", id, "bytes", len(body))
}

// finish marks one request as done and wakes idle waiters.
func (b *SearchBridge) finish() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.inFlight--
	if b.inFlight > 0 {
		return
	}
	for _, ch := range b.idle {
		close(ch)
	}
	b.idle = nil
}

// Wait blocks until no request is in flight or ctx is done.
func (b *SearchBridge) Wait(ctx context.Context) error {
	b.mu.Lock()
	if b.inFlight == 0 {
		b.mu.Unlock()
		return nil
	}
	ch := make(chan struct{})
	b.idle = append(b.idle, ch)
	b.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stats returns activity counters.
func (b *SearchBridge) Stats() domain.BridgeStats {
	b.mu.Lock()
	inFlight := b.inFlight
	b.mu.Unlock()

	return domain.BridgeStats{
		Requested: b.requested.Load(),
		Published: b.published.Load(),
		Dropped:   b.dropped.Load(),
		InFlight:  int64(inFlight),
	}
}
