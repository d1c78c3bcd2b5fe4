package events

import (
	"context"
	"sync"
)

// Collector is an in-process event publisher that buffers published events.
// Useful for composition in tests and for callers that drain events into an
// outbox after a successful transaction.
type Collector struct {
	mu     sync.Mutex
	events []DomainEvent
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Publish appends events to the buffer.
func (c *Collector) Publish(_ context.Context, evts ...DomainEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, evts...)
	return nil
}

// Drain returns the buffered events and resets the buffer.
func (c *Collector) Drain() []DomainEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.events
	c.events = nil
	return out
}
