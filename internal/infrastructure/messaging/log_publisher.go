package messaging

import (
	"context"
	"log/slog"

	"github.com/prototypevg/VeriGuard-AI-app/pkg/events"
)

// LogPublisher implements port.EventPublisher by writing each event to the
// structured log. There is no broker; downstream consumers tail the log.
type LogPublisher struct {
	logger *slog.Logger
	topic  string
}

// NewLogPublisher creates a new log-backed event publisher.
func NewLogPublisher(topic string, logger *slog.Logger) *LogPublisher {
	return &LogPublisher{
		logger: logger,
		topic:  topic,
	}
}

// Publish logs every event at info level, with the payload at debug level.
func (p *LogPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	for _, evt := range evts {
		if err := ctx.Err(); err != nil {
			return err
		}

		p.logger.InfoContext(ctx, "publishing event",
			slog.String("event_id", evt.EventID().String()),
			slog.String("event_type", evt.EventType()),
			slog.String("aggregate_type", evt.AggregateType()),
			slog.String("aggregate_id", evt.AggregateID().String()),
			slog.String("topic", p.topic),
			slog.Int("payload_size", len(evt.Payload())),
		)

		p.logger.DebugContext(ctx, "event payload",
			slog.String("event_type", evt.EventType()),
			slog.String("payload", string(evt.Payload())),
		)
	}

	return nil
}
