package port

import (
	"context"

	"github.com/prototypevg/VeriGuard-AI-app/pkg/events"
)

// EventPublisher defines the port for publishing domain events.
type EventPublisher interface {
	// Publish hands one or more domain events to the messaging infrastructure.
	Publish(ctx context.Context, events ...events.DomainEvent) error
}

// MetricsRecorder records the outcome of every assessment.
type MetricsRecorder interface {
	RecordAssessment(ctx context.Context, kind, classification string, score int)
}
