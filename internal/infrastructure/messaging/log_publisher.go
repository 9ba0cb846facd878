package messaging

import (
	"context"
	"log/slog"

	"github.com/propstead/financing-service/internal/domain/event"
)

// LogEventPublisher implements port.EventPublisher by logging events. Used
// when no broker is configured.
type LogEventPublisher struct {
	logger *slog.Logger
}

// NewLogEventPublisher creates a logging publisher.
func NewLogEventPublisher(logger *slog.Logger) *LogEventPublisher {
	return &LogEventPublisher{logger: logger}
}

// Publish logs each event at info level.
func (p *LogEventPublisher) Publish(_ context.Context, events ...event.DomainEvent) error {
	for _, evt := range events {
		p.logger.Info("domain event",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
			"aggregate_type", evt.AggregateType(),
			"occurred_at", evt.OccurredAt(),
		)
	}
	return nil
}
