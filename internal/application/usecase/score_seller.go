package usecase

import (
	"context"
	"fmt"

	"github.com/prototypevg/VeriGuard-AI-app/internal/application/dto"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/model"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/port"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/service"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/valueobject"
)

// ScoreSeller is the use case for auditing a seller's reputation.
type ScoreSeller struct {
	scorer service.SellerReputationScorer
	pipeline
}

// NewScoreSeller creates a new ScoreSeller use case.
func NewScoreSeller(
	scorer service.SellerReputationScorer,
	publisher port.EventPublisher,
	metrics port.MetricsRecorder,
	opts ...Option,
) *ScoreSeller {
	return &ScoreSeller{
		scorer:   scorer,
		pipeline: newPipeline(publisher, metrics, opts),
	}
}

// Execute parses the request, scores it and publishes the assessment events.
func (uc *ScoreSeller) Execute(ctx context.Context, req dto.ScoreSellerRequest) (dto.SellerReputationResponse, error) {
	ctx, span := uc.start(ctx, "ScoreSeller")
	defer span.End()

	input, err := uc.parse(req)
	if err != nil {
		return dto.SellerReputationResponse{}, fail(span, fmt.Errorf("invalid seller request: %w", err))
	}

	result := uc.scorer.Score(input)

	assessment, err := uc.finish(ctx, span, model.KindSeller,
		result.Score, result.Classification.String(), result.Flags,
		result.Classification.Equal(valueobject.SellerBlocked),
	)
	if err != nil {
		return dto.SellerReputationResponse{}, fail(span, err)
	}

	return dto.FromSellerResult(assessment, result), nil
}

func (uc *ScoreSeller) parse(req dto.ScoreSellerRequest) (model.SellerInput, error) {
	months, err := uc.parser.Count("activity_months", req.ActivityMonths)
	if err != nil {
		return model.SellerInput{}, err
	}
	complaints, err := uc.parser.Count("complaints_count", req.ComplaintsCount)
	if err != nil {
		return model.SellerInput{}, err
	}
	revenue, err := uc.parser.Amount("monthly_revenue", req.MonthlyRevenue)
	if err != nil {
		return model.SellerInput{}, err
	}
	return model.SellerInput{
		TaxID:           req.TaxID,
		ActivityMonths:  months,
		ComplaintsCount: complaints,
		MonthlyRevenue:  revenue,
	}, nil
}
