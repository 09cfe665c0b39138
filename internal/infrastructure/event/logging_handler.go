package event

import (
	"context"

	"go.uber.org/zap"

	"github.com/shopsync/backend/internal/domain/shared"
)

// LoggingHandler writes every catalog event to the structured log. It is
// the default subscriber wired in at startup so dispatched events are
// always observable.
type LoggingHandler struct {
	logger *zap.Logger
	types  []string
}

// NewLoggingHandler creates a handler for the given event types
func NewLoggingHandler(logger *zap.Logger, eventTypes ...string) *LoggingHandler {
	return &LoggingHandler{
		logger: logger.Named("events"),
		types:  eventTypes,
	}
}

// EventTypes implements Handler
func (h *LoggingHandler) EventTypes() []string {
	return h.types
}

// Handle implements Handler
func (h *LoggingHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	fields := []zap.Field{
		zap.String("event_id", event.EventID().String()),
		zap.String("event_type", event.EventType()),
		zap.Time("occurred_at", event.OccurredAt()),
	}
	if mappable, ok := event.(shared.MappableEvent); ok {
		fields = append(fields, zap.Any("payload", mappable.ToMap()))
	}
	h.logger.Info("Domain event dispatched", fields...)
	return nil
}
