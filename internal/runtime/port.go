// Package runtime provides the application handle and its message ports.
//
// A Port is a named, typed channel crossing the boundary between an
// application and the components it talks to. Sending on a port delivers the
// value synchronously to every subscriber in subscription order.
package runtime

import "sync"

// Port is a named publish/subscribe channel of T values.
// It is safe for concurrent use.
type Port[T any] struct {
	name string

	mu     sync.RWMutex
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// NewPort creates an empty port.
func NewPort[T any](name string) *Port[T] {
	return &Port[T]{name: name}
}

// Name returns the port name.
func (p *Port[T]) Name() string {
	return p.name
}

// Subscribe registers fn for every value sent on the port.
// The returned function removes the subscription and may be called more than once.
func (p *Port[T]) Subscribe(fn func(T)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextID++
	id := p.nextID
	p.subs = append(p.subs, subscriber[T]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { p.remove(id) })
	}
}

func (p *Port[T]) remove(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, s := range p.subs {
		if s.id == id {
			p.subs = append(p.subs[:i:i], p.subs[i+1:]...)
			return
		}
	}
}

// Send delivers v to all current subscribers.
// Values sent with no subscribers are discarded.
func (p *Port[T]) Send(v T) {
	p.mu.RLock()
	subs := make([]subscriber[T], len(p.subs))
	copy(subs, p.subs)
	p.mu.RUnlock()

	for _, s := range subs {
		s.fn(v)
	}
}

// Subscribers returns the number of active subscriptions.
func (p *Port[T]) Subscribers() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.subs)
}
