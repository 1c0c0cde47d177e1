package usecase_test

import (
	"context"
	"sync"

	"github.com/prototypevg/VeriGuard-AI-app/pkg/events"
)

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, evts ...events.DomainEvent) error
	publishedEvents []events.DomainEvent
	mu              sync.Mutex
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

func (m *mockEventPublisher) eventTypes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, 0, len(m.publishedEvents))
	for _, e := range m.publishedEvents {
		types = append(types, e.EventType())
	}
	return types
}

type recordedAssessment struct {
	kind           string
	classification string
	score          int
}

type mockMetricsRecorder struct {
	recorded []recordedAssessment
	mu       sync.Mutex
}

func (m *mockMetricsRecorder) RecordAssessment(_ context.Context, kind, classification string, score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recorded = append(m.recorded, recordedAssessment{kind: kind, classification: classification, score: score})
}
