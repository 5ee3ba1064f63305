package event

import (
	"sync"
	"sync/atomic"
)

// ListenerFunc handles a triggered event. The topic is the concrete
// topic the event was triggered under, not the subscription pattern.
type ListenerFunc func(topic Topic, args ...any)

// Subscription is a handle to an active listener registration.
type Subscription struct {
	id      uint64
	pattern Topic
	fn      ListenerFunc
}

// Pattern returns the topic pattern this subscription listens on.
func (s *Subscription) Pattern() Topic {
	return s.pattern
}

// Stats reports bus counters.
type Stats struct {
	// Triggered is the number of Trigger calls.
	Triggered uint64

	// Delivered is the number of listener invocations that completed.
	Delivered uint64

	// Panics is the number of listener invocations that panicked.
	Panics uint64
}

// Bus is a synchronous publish mechanism.
type Bus struct {
	mu     sync.RWMutex
	subs   []*Subscription
	nextID uint64

	triggered atomic.Uint64
	delivered atomic.Uint64
	panics    atomic.Uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// On registers a listener for every topic matching the pattern.
// Listeners fire in registration order.
func (b *Bus) On(pattern Topic, fn ListenerFunc) (*Subscription, error) {
	if fn == nil {
		return nil, ErrNilListener
	}
	if pattern == "" {
		return nil, ErrInvalidTopic
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &Subscription{id: b.nextID, pattern: pattern, fn: fn}
	b.subs = append(b.subs, sub)
	return sub, nil
}

// Off removes a subscription. Returns false if it was not registered.
func (b *Bus) Off(sub *Subscription) bool {
	if sub == nil {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.id == sub.id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Trigger fires all listeners whose pattern matches the topic,
// synchronously and in registration order. Fire-and-forget: listener
// panics are contained and counted, not propagated.
func (b *Bus) Trigger(topic Topic, args ...any) {
	if topic == "" {
		return
	}

	b.mu.RLock()
	matched := make([]*Subscription, 0, len(b.subs))
	for _, s := range b.subs {
		if Match(s.pattern, topic) {
			matched = append(matched, s)
		}
	}
	b.mu.RUnlock()

	b.triggered.Add(1)
	for _, s := range matched {
		b.deliver(s, topic, args)
	}
}

func (b *Bus) deliver(s *Subscription, topic Topic, args []any) {
	defer func() {
		if r := recover(); r != nil {
			b.panics.Add(1)
		}
	}()

	s.fn(topic, args...)
	b.delivered.Add(1)
}

// Count returns the number of active subscriptions.
func (b *Bus) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Stats returns current bus counters.
func (b *Bus) Stats() Stats {
	return Stats{
		Triggered: b.triggered.Load(),
		Delivered: b.delivered.Load(),
		Panics:    b.panics.Load(),
	}
}
