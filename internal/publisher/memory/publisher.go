// Package memory contains an in-memory scrape event publisher.
package memory

import (
	"context"
	"sync"

	"github.com/JakeFAU/ufc-athletes/internal/service"
)

// Publisher stores published events for inspection.
type Publisher struct {
	mu     sync.RWMutex
	events []service.ScrapeEvent
}

// New returns a memory Publisher.
func New() *Publisher {
	return &Publisher{}
}

// Publish records the event.
func (p *Publisher) Publish(_ context.Context, event service.ScrapeEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// Events returns the recorded events.
func (p *Publisher) Events() []service.ScrapeEvent {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]service.ScrapeEvent, len(p.events))
	copy(out, p.events)
	return out
}

// Close is a no-op.
func (p *Publisher) Close() error { return nil }
