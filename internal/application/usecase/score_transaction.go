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

// ScoreTransaction is the use case for scoring a financial transaction.
type ScoreTransaction struct {
	scorer service.TransactionRiskScorer
	pipeline
}

// NewScoreTransaction creates a new ScoreTransaction use case.
func NewScoreTransaction(
	scorer service.TransactionRiskScorer,
	publisher port.EventPublisher,
	metrics port.MetricsRecorder,
	opts ...Option,
) *ScoreTransaction {
	return &ScoreTransaction{
		scorer:   scorer,
		pipeline: newPipeline(publisher, metrics, opts),
	}
}

// Execute parses the request, scores it and publishes the assessment events.
func (uc *ScoreTransaction) Execute(ctx context.Context, req dto.ScoreTransactionRequest) (dto.TransactionRiskResponse, error) {
	ctx, span := uc.start(ctx, "ScoreTransaction")
	defer span.End()

	input, err := uc.parse(req)
	if err != nil {
		return dto.TransactionRiskResponse{}, fail(span, fmt.Errorf("invalid transaction request: %w", err))
	}

	result := uc.scorer.Score(input)

	assessment, err := uc.finish(ctx, span, model.KindTransaction,
		result.Score, result.RiskLevel.String(), result.RiskFactors,
		result.RiskLevel.Equal(valueobject.RiskLevelCritical),
	)
	if err != nil {
		return dto.TransactionRiskResponse{}, fail(span, err)
	}

	return dto.FromTransactionResult(assessment, result), nil
}

func (uc *ScoreTransaction) parse(req dto.ScoreTransactionRequest) (model.TransactionInput, error) {
	amount, err := uc.parser.Amount("amount", req.Amount)
	if err != nil {
		return model.TransactionInput{}, err
	}
	timeOfDay, err := uc.parser.TimeOfDay(req.TimeOfDay)
	if err != nil {
		return model.TransactionInput{}, err
	}
	return model.TransactionInput{
		Amount:           amount,
		TransactionType:  req.TransactionType,
		OriginDescriptor: req.OriginDescriptor,
		TimeOfDay:        timeOfDay,
	}, nil
}
