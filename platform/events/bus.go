package events

import (
	"context"
	"errors"
	"sync"

	"idscope_backend/platform/logger"
)

// InMemoryBus dispatches events to handlers registered in the same process.
type InMemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	wg       sync.WaitGroup
	log      *logger.Logger
}

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return &InMemoryBus{
		handlers: make(map[string][]Handler),
		log:      log,
	}
}

// Subscribe registers a handler for a specific event type.
func (b *InMemoryBus) Subscribe(eventName string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventName] = append(b.handlers[eventName], handler)
}

// Publish runs every handler for the event on its own goroutine. Handler
// errors are logged, not returned.
func (b *InMemoryBus) Publish(ctx context.Context, event Event) {
	// Handlers outlive the request that published the event.
	ctx = context.WithoutCancel(ctx)

	for _, h := range b.snapshot(event.EventName()) {
		b.wg.Add(1)
		go func(h Handler) {
			defer b.wg.Done()
			if err := h.Handle(ctx, event); err != nil {
				b.log.Error("event handler failed", "event", event.EventName(), "error", err)
			}
		}(h)
	}
}

// PublishSync runs every handler in registration order and joins their errors.
func (b *InMemoryBus) PublishSync(ctx context.Context, event Event) error {
	var errs []error
	for _, h := range b.snapshot(event.EventName()) {
		if err := h.Handle(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Wait blocks until all asynchronously published handlers have returned.
func (b *InMemoryBus) Wait() {
	b.wg.Wait()
}

func (b *InMemoryBus) snapshot(eventName string) []Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	hs := b.handlers[eventName]
	out := make([]Handler, len(hs))
	copy(out, hs)
	return out
}

var _ Bus = (*InMemoryBus)(nil)
