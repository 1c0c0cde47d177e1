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

// ScoreProduct is the use case for validating a marketplace listing.
type ScoreProduct struct {
	scorer service.ProductLegitimacyScorer
	pipeline
}

// NewScoreProduct creates a new ScoreProduct use case.
func NewScoreProduct(
	scorer service.ProductLegitimacyScorer,
	publisher port.EventPublisher,
	metrics port.MetricsRecorder,
	opts ...Option,
) *ScoreProduct {
	return &ScoreProduct{
		scorer:   scorer,
		pipeline: newPipeline(publisher, metrics, opts),
	}
}

// Execute parses the request, scores it and publishes the assessment events.
func (uc *ScoreProduct) Execute(ctx context.Context, req dto.ScoreProductRequest) (dto.ProductLegitimacyResponse, error) {
	ctx, span := uc.start(ctx, "ScoreProduct")
	defer span.End()

	price, err := uc.parser.Amount("price", req.Price)
	if err != nil {
		return dto.ProductLegitimacyResponse{}, fail(span, fmt.Errorf("invalid product request: %w", err))
	}

	result := uc.scorer.Score(model.ProductInput{
		Name:        req.Name,
		Price:       price,
		Description: req.Description,
		Category:    req.Category,
	})

	assessment, err := uc.finish(ctx, span, model.KindProduct,
		result.Score, result.Status.String(), result.Issues,
		result.Status.Equal(valueobject.ProductStatusRejected),
	)
	if err != nil {
		return dto.ProductLegitimacyResponse{}, fail(span, err)
	}

	return dto.FromProductResult(assessment, result), nil
}
