package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/prototypevg/VeriGuard-AI-app/internal/application/dto"
	"github.com/prototypevg/VeriGuard-AI-app/internal/application/usecase"
	"github.com/prototypevg/VeriGuard-AI-app/internal/application/validation"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/event"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/policy"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/service"
	"github.com/prototypevg/VeriGuard-AI-app/pkg/events"
	"github.com/prototypevg/VeriGuard-AI-app/pkg/testutil"
)

func fixedOptions(extra ...usecase.Option) []usecase.Option {
	opts := []usecase.Option{
		usecase.WithClock(testutil.FixedClock()),
		usecase.WithIDGenerator(func() uuid.UUID { return testutil.FixedAssessmentID }),
	}
	return append(opts, extra...)
}

func criticalTransaction() dto.ScoreTransactionRequest {
	return dto.ScoreTransactionRequest{
		Amount:           "R$ 60000",
		TransactionType:  "crypto transfer",
		OriginDescriptor: "Tor exit node",
		TimeOfDay:        "02:30",
	}
}

func TestScoreTransaction_Execute(t *testing.T) {
	t.Run("critical transaction raises an alert", func(t *testing.T) {
		publisher := &mockEventPublisher{}
		metrics := &mockMetricsRecorder{}
		uc := usecase.NewScoreTransaction(service.NewTransactionScorer(policy.DefaultCatalog()), publisher, metrics, fixedOptions()...)

		resp, err := uc.Execute(context.Background(), criticalTransaction())

		require.NoError(t, err)
		assert.Equal(t, testutil.FixedAssessmentID, resp.AssessmentID)
		assert.Equal(t, "transaction", resp.Kind)
		assert.Equal(t, testutil.FixedTime, resp.AssessedAt)
		assert.Equal(t, 99, resp.Score)
		assert.Equal(t, "CRITICAL", resp.RiskLevel)
		assert.Equal(t, "immediate block and asset freeze", resp.Recommendation)
		assert.Len(t, resp.RiskFactors, 4)
		assert.Len(t, resp.Rules, 8)

		assert.Equal(t, []string{event.EventTypeAssessmentCompleted, event.EventTypeHighRiskDetected}, publisher.eventTypes())
		require.Len(t, metrics.recorded, 1)
		assert.Equal(t, recordedAssessment{kind: "transaction", classification: "CRITICAL", score: 99}, metrics.recorded[0])
	})

	t.Run("low risk transaction only completes", func(t *testing.T) {
		publisher := &mockEventPublisher{}
		uc := usecase.NewScoreTransaction(service.NewTransactionScorer(policy.DefaultCatalog()), publisher, &mockMetricsRecorder{}, fixedOptions()...)

		resp, err := uc.Execute(context.Background(), dto.ScoreTransactionRequest{
			Amount:           "200",
			TransactionType:  "debit purchase",
			OriginDescriptor: "home wifi",
			TimeOfDay:        "14:00",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Score)
		assert.Equal(t, "LOW", resp.RiskLevel)
		assert.Equal(t, []string{"standard behavior verified"}, resp.RiskFactors)
		assert.Equal(t, []string{event.EventTypeAssessmentCompleted}, publisher.eventTypes())
	})

	t.Run("lenient mode coerces malformed input", func(t *testing.T) {
		uc := usecase.NewScoreTransaction(service.NewTransactionScorer(policy.DefaultCatalog()), &mockEventPublisher{}, &mockMetricsRecorder{}, fixedOptions()...)

		resp, err := uc.Execute(context.Background(), dto.ScoreTransactionRequest{
			Amount:    "lots",
			TimeOfDay: "whenever",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Score)
	})

	t.Run("strict mode rejects a bad amount", func(t *testing.T) {
		publisher := &mockEventPublisher{}
		metrics := &mockMetricsRecorder{}
		uc := usecase.NewScoreTransaction(service.NewTransactionScorer(policy.DefaultCatalog()), publisher, metrics,
			fixedOptions(usecase.WithStrictValidation())...)

		req := criticalTransaction()
		req.Amount = "lots"
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.ErrorIs(t, err, validation.ErrInvalidInput)
		assert.Contains(t, err.Error(), "invalid transaction request")
		assert.Empty(t, publisher.eventTypes())
		assert.Empty(t, metrics.recorded)
	})

	t.Run("strict mode rejects a bad time", func(t *testing.T) {
		uc := usecase.NewScoreTransaction(service.NewTransactionScorer(policy.DefaultCatalog()), &mockEventPublisher{}, &mockMetricsRecorder{},
			fixedOptions(usecase.WithStrictValidation())...)

		req := criticalTransaction()
		req.TimeOfDay = "2am"
		_, err := uc.Execute(context.Background(), req)

		var timeErr *validation.InvalidTimeFormatError
		require.ErrorAs(t, err, &timeErr)
		assert.Equal(t, "2am", timeErr.Value)
	})

	t.Run("strict mode accepts Brazilian formatting", func(t *testing.T) {
		uc := usecase.NewScoreTransaction(service.NewTransactionScorer(policy.DefaultCatalog()), &mockEventPublisher{}, &mockMetricsRecorder{},
			fixedOptions(usecase.WithStrictValidation())...)

		req := criticalTransaction()
		req.Amount = "R$ 60.000,00"
		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, 99, resp.Score)
	})

	t.Run("publisher failure is returned", func(t *testing.T) {
		publisher := &mockEventPublisher{
			publishFunc: func(context.Context, ...events.DomainEvent) error { return errors.New("sink closed") },
		}
		metrics := &mockMetricsRecorder{}
		uc := usecase.NewScoreTransaction(service.NewTransactionScorer(policy.DefaultCatalog()), publisher, metrics, fixedOptions()...)

		_, err := uc.Execute(context.Background(), criticalTransaction())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to publish events")
		assert.Empty(t, metrics.recorded)
	})
}

func TestScoreTransaction_Span(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	uc := usecase.NewScoreTransaction(service.NewTransactionScorer(policy.DefaultCatalog()), &mockEventPublisher{}, &mockMetricsRecorder{},
		fixedOptions(usecase.WithTracer(tp.Tracer("test")), usecase.WithStrictValidation())...)

	_, err := uc.Execute(context.Background(), criticalTransaction())
	require.NoError(t, err)

	req := criticalTransaction()
	req.Amount = "-5"
	_, err = uc.Execute(context.Background(), req)
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "ScoreTransaction", spans[0].Name())
	attrs := make(map[string]string)
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "CRITICAL", attrs["assessment.classification"])
	assert.Equal(t, "99", attrs["assessment.score"])
	assert.Equal(t, "true", attrs["assessment.high_risk"])

	assert.Equal(t, codes.Error, spans[1].Status().Code)
}

func TestScoreProduct_Execute(t *testing.T) {
	t.Run("counterfeit listing is rejected", func(t *testing.T) {
		publisher := &mockEventPublisher{}
		metrics := &mockMetricsRecorder{}
		uc := usecase.NewScoreProduct(service.NewProductScorer(policy.DefaultCatalog()), publisher, metrics, fixedOptions()...)

		resp, err := uc.Execute(context.Background(), dto.ScoreProductRequest{
			Name:        "Rolex Submariner",
			Price:       "R$ 300",
			Description: "réplica primeira linha",
			Category:    "Moda & Acessórios",
		})

		require.NoError(t, err)
		assert.Equal(t, "product", resp.Kind)
		assert.Equal(t, 0, resp.Score)
		assert.Equal(t, "REJECTED", resp.Status)
		assert.Equal(t, "R$ 1500.00 - R$ 2400.00", resp.PriceRecommendation)
		assert.Equal(t, []string{event.EventTypeAssessmentCompleted, event.EventTypeHighRiskDetected}, publisher.eventTypes())
		assert.Equal(t, "REJECTED", metrics.recorded[0].classification)
	})

	t.Run("strict mode rejects a negative price", func(t *testing.T) {
		uc := usecase.NewScoreProduct(service.NewProductScorer(policy.DefaultCatalog()), &mockEventPublisher{}, &mockMetricsRecorder{},
			fixedOptions(usecase.WithStrictValidation())...)

		_, err := uc.Execute(context.Background(), dto.ScoreProductRequest{Name: "Mesa", Price: "-10"})

		var inputErr *validation.InvalidInputError
		require.ErrorAs(t, err, &inputErr)
		assert.Equal(t, "price", inputErr.Field)
	})
}

func TestScoreSeller_Execute(t *testing.T) {
	t.Run("premium seller", func(t *testing.T) {
		publisher := &mockEventPublisher{}
		uc := usecase.NewScoreSeller(service.NewSellerScorer(policy.DefaultCatalog()), publisher, &mockMetricsRecorder{}, fixedOptions()...)

		resp, err := uc.Execute(context.Background(), dto.ScoreSellerRequest{
			TaxID:           "12.345.678/0001-00",
			ActivityMonths:  "36",
			ComplaintsCount: "0",
			MonthlyRevenue:  "R$ 20000",
		})

		require.NoError(t, err)
		assert.Equal(t, 95, resp.Score)
		assert.Equal(t, "PREMIUM", resp.Classification)
		assert.Equal(t, []string{"clean history"}, resp.Flags)
		assert.Equal(t, []string{event.EventTypeAssessmentCompleted}, publisher.eventTypes())
	})

	t.Run("blocked seller raises an alert", func(t *testing.T) {
		publisher := &mockEventPublisher{}
		uc := usecase.NewScoreSeller(service.NewSellerScorer(policy.DefaultCatalog()), publisher, &mockMetricsRecorder{}, fixedOptions()...)

		resp, err := uc.Execute(context.Background(), dto.ScoreSellerRequest{
			TaxID:           "11.111.111/0001-11",
			ActivityMonths:  "1",
			ComplaintsCount: "2",
			MonthlyRevenue:  "150000",
		})

		require.NoError(t, err)
		assert.Equal(t, "BLOCKED", resp.Classification)
		assert.Contains(t, publisher.eventTypes(), event.EventTypeHighRiskDetected)
	})

	t.Run("strict mode names the bad field", func(t *testing.T) {
		uc := usecase.NewScoreSeller(service.NewSellerScorer(policy.DefaultCatalog()), &mockEventPublisher{}, &mockMetricsRecorder{},
			fixedOptions(usecase.WithStrictValidation())...)

		_, err := uc.Execute(context.Background(), dto.ScoreSellerRequest{
			ActivityMonths:  "12",
			ComplaintsCount: "a few",
			MonthlyRevenue:  "1000",
		})

		var inputErr *validation.InvalidInputError
		require.ErrorAs(t, err, &inputErr)
		assert.Equal(t, "complaints_count", inputErr.Field)
	})
}

func TestScanAccountSecurity_Execute(t *testing.T) {
	publisher := &mockEventPublisher{}
	metrics := &mockMetricsRecorder{}
	uc := usecase.NewScanAccountSecurity(service.NewSecurityScanner(), publisher, metrics, fixedOptions()...)

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "security", resp.Kind)
	assert.Equal(t, 88, resp.SecurityScore)
	assert.Equal(t, "PROTECTED", resp.Status)
	assert.Len(t, resp.Devices, 3)
	assert.Equal(t, []string{event.EventTypeAssessmentCompleted}, publisher.eventTypes())
	assert.Equal(t, recordedAssessment{kind: "security", classification: "PROTECTED", score: 88}, metrics.recorded[0])
}
