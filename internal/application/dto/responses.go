package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/model"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/rule"
)

// AssessmentEnvelope carries the identity and timestamp attached to every response.
type AssessmentEnvelope struct {
	AssessedAt   time.Time `json:"assessed_at"`
	Kind         string    `json:"kind"`
	AssessmentID uuid.UUID `json:"assessment_id"`
}

func envelopeFrom(a *model.Assessment) AssessmentEnvelope {
	return AssessmentEnvelope{
		AssessmentID: a.ID(),
		Kind:         string(a.Kind()),
		AssessedAt:   a.AssessedAt(),
	}
}

// TransactionRiskResponse is the output DTO of ScoreTransaction.
type TransactionRiskResponse struct {
	AssessmentEnvelope
	RiskLevel      string        `json:"risk_level"`
	Recommendation string        `json:"recommendation"`
	RiskFactors    []string      `json:"risk_factors"`
	Rules          []rule.Result `json:"rules"`
	Score          int           `json:"score"`
}

// FromTransactionResult maps a scorer result to the response DTO.
func FromTransactionResult(a *model.Assessment, r model.TransactionRiskResult) TransactionRiskResponse {
	return TransactionRiskResponse{
		AssessmentEnvelope: envelopeFrom(a),
		Score:              r.Score,
		RiskLevel:          r.RiskLevel.String(),
		RiskFactors:        r.RiskFactors,
		Recommendation:     r.Recommendation,
		Rules:              r.Rules,
	}
}

// ProductLegitimacyResponse is the output DTO of ScoreProduct.
type ProductLegitimacyResponse struct {
	AssessmentEnvelope
	Status              string        `json:"status"`
	PriceRecommendation string        `json:"price_recommendation"`
	Issues              []string      `json:"issues"`
	Rules               []rule.Result `json:"rules"`
	Score               int           `json:"score"`
}

// FromProductResult maps a scorer result to the response DTO.
func FromProductResult(a *model.Assessment, r model.ProductLegitimacyResult) ProductLegitimacyResponse {
	return ProductLegitimacyResponse{
		AssessmentEnvelope:  envelopeFrom(a),
		Score:               r.Score,
		Status:              r.Status.String(),
		Issues:              r.Issues,
		PriceRecommendation: r.PriceRecommendation,
		Rules:               r.Rules,
	}
}

// SellerReputationResponse is the output DTO of ScoreSeller.
type SellerReputationResponse struct {
	AssessmentEnvelope
	Classification     string        `json:"classification"`
	BehavioralAnalysis string        `json:"behavioral_analysis"`
	Flags              []string      `json:"flags"`
	Rules              []rule.Result `json:"rules"`
	Score              int           `json:"score"`
}

// FromSellerResult maps a scorer result to the response DTO.
func FromSellerResult(a *model.Assessment, r model.SellerReputationResult) SellerReputationResponse {
	return SellerReputationResponse{
		AssessmentEnvelope: envelopeFrom(a),
		Score:              r.Score,
		Classification:     r.Classification.String(),
		Flags:              r.Flags,
		BehavioralAnalysis: r.BehavioralAnalysis,
		Rules:              r.Rules,
	}
}

// SecuritySnapshotResponse is the output DTO of ScanAccountSecurity.
type SecuritySnapshotResponse struct {
	AssessmentEnvelope
	model.SecuritySnapshot
}

// FromSecuritySnapshot maps a snapshot to the response DTO.
func FromSecuritySnapshot(a *model.Assessment, s model.SecuritySnapshot) SecuritySnapshotResponse {
	return SecuritySnapshotResponse{
		AssessmentEnvelope: envelopeFrom(a),
		SecuritySnapshot:   s,
	}
}
