package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/prototypevg/VeriGuard-AI-app/internal/application/validation"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/model"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/port"
)

const tracerName = "github.com/prototypevg/VeriGuard-AI-app/internal/application/usecase"

// Option configures a scoring use case.
type Option func(*settings)

type settings struct {
	now    func() time.Time
	newID  func() uuid.UUID
	tracer trace.Tracer
	parser validation.Parser
}

// WithStrictValidation rejects malformed numbers and times instead of
// coercing them to zero.
func WithStrictValidation() Option {
	return func(s *settings) { s.parser = validation.NewParser(true) }
}

// WithClock overrides the clock used to timestamp assessments.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

// WithIDGenerator overrides how assessment IDs are generated.
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(s *settings) { s.newID = gen }
}

// WithTracer overrides the tracer; the global provider is used otherwise.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *settings) { s.tracer = tracer }
}

// pipeline holds what every scoring use case shares: building the
// assessment aggregate, publishing its events and recording metrics.
type pipeline struct {
	publisher port.EventPublisher
	metrics   port.MetricsRecorder
	settings
}

func newPipeline(publisher port.EventPublisher, metrics port.MetricsRecorder, opts []Option) pipeline {
	s := settings{
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.New,
		parser: validation.NewParser(false),
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	return pipeline{publisher: publisher, metrics: metrics, settings: s}
}

func (p pipeline) start(ctx context.Context, name string) (context.Context, trace.Span) {
	return p.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.Bool("validation.strict", p.parser.Strict()),
	))
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// finish wraps a scorer outcome in an assessment, then publishes and records it.
func (p pipeline) finish(
	ctx context.Context,
	span trace.Span,
	kind model.Kind,
	score int,
	classification string,
	explanations []string,
	highRisk bool,
) (*model.Assessment, error) {
	assessment, err := model.NewAssessment(p.newID(), kind)
	if err != nil {
		return nil, fmt.Errorf("failed to create assessment: %w", err)
	}
	if err := assessment.Complete(score, classification, explanations, highRisk, p.now()); err != nil {
		return nil, fmt.Errorf("failed to complete assessment: %w", err)
	}

	span.SetAttributes(
		attribute.String("assessment.id", assessment.ID().String()),
		attribute.String("assessment.kind", string(kind)),
		attribute.String("assessment.classification", classification),
		attribute.Int("assessment.score", score),
		attribute.Bool("assessment.high_risk", highRisk),
	)

	if evts := assessment.ClearEvents(); len(evts) > 0 {
		if err := p.publisher.Publish(ctx, evts...); err != nil {
			return nil, fmt.Errorf("failed to publish events: %w", err)
		}
	}

	p.metrics.RecordAssessment(ctx, string(kind), classification, score)

	return assessment, nil
}
