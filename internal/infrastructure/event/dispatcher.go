package event

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/shopsync/backend/internal/domain/shared"
)

// Handler processes domain events. EventTypes lists the types the
// handler wants to receive.
type Handler interface {
	Handle(ctx context.Context, event shared.DomainEvent) error
	EventTypes() []string
}

// InMemoryDispatcher delivers domain events synchronously to registered
// handlers. Handler failures and panics are logged and never abort the
// delivery to the remaining handlers, so an observer can not break the
// use case that emitted the event.
type InMemoryDispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   *zap.Logger
}

// NewInMemoryDispatcher creates a new dispatcher
func NewInMemoryDispatcher(logger *zap.Logger) *InMemoryDispatcher {
	return &InMemoryDispatcher{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

// Subscribe registers a handler for the event types it declares
func (d *InMemoryDispatcher) Subscribe(handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, eventType := range handler.EventTypes() {
		d.handlers[eventType] = append(d.handlers[eventType], handler)
	}
	d.logger.Debug("event handler subscribed",
		zap.Strings("event_types", handler.EventTypes()),
	)
}

// Dispatch delivers one event to all handlers registered for its type
func (d *InMemoryDispatcher) Dispatch(ctx context.Context, event shared.DomainEvent) error {
	d.mu.RLock()
	handlers := d.handlers[event.EventType()]
	d.mu.RUnlock()

	for _, handler := range handlers {
		if err := d.dispatchToHandler(ctx, handler, event); err != nil {
			d.logger.Error("handler failed to process event",
				zap.String("event_type", event.EventType()),
				zap.String("event_id", event.EventID().String()),
				zap.Error(err),
			)
		}
	}
	return nil
}

// DispatchMany delivers a batch of events in order
func (d *InMemoryDispatcher) DispatchMany(ctx context.Context, events []shared.DomainEvent) error {
	for _, event := range events {
		if err := d.Dispatch(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// dispatchToHandler safely dispatches an event to a handler
func (d *InMemoryDispatcher) dispatchToHandler(ctx context.Context, handler Handler, event shared.DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("handler panicked",
				zap.String("event_type", event.EventType()),
				zap.Any("panic", r),
			)
		}
	}()

	return handler.Handle(ctx, event)
}
