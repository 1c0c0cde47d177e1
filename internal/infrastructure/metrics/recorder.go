package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/prototypevg/VeriGuard-AI-app/internal/infrastructure/metrics"

// Recorder implements port.MetricsRecorder with OpenTelemetry instruments.
type Recorder struct {
	assessments metric.Int64Counter
	scores      metric.Int64Histogram
}

// NewRecorder creates the assessment instruments on the given provider.
func NewRecorder(provider metric.MeterProvider) (*Recorder, error) {
	meter := provider.Meter(meterName)

	assessments, err := meter.Int64Counter("veriguard.assessments",
		metric.WithDescription("Completed risk assessments by kind and classification."),
		metric.WithUnit("{assessment}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create assessment counter: %w", err)
	}

	scores, err := meter.Int64Histogram("veriguard.assessment.score",
		metric.WithDescription("Distribution of assessment scores."),
		metric.WithExplicitBucketBoundaries(10, 20, 30, 40, 50, 60, 70, 80, 85, 90, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create score histogram: %w", err)
	}

	return &Recorder{assessments: assessments, scores: scores}, nil
}

// RecordAssessment counts the assessment and records its score.
func (r *Recorder) RecordAssessment(ctx context.Context, kind, classification string, score int) {
	attrs := metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("classification", classification),
	)
	r.assessments.Add(ctx, 1, attrs)
	r.scores.Record(ctx, int64(score), metric.WithAttributes(attribute.String("kind", kind)))
}
