package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/model"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/policy"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/rule"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/valueobject"
)

const (
	baseSellerScore    = 50
	newAccountMonths   = 3
	maxTenureBonus     = 30
	complaintThreshold = 10

	// FlagCleanHistory is reported when no seller rule raises a flag.
	FlagCleanHistory = "clean history"
)

var launderingRevenue = decimal.NewFromInt(100000)

// SellerScorer is a domain service that audits seller reputation from
// tenure, complaint volume, revenue and tax registration.
type SellerScorer struct {
	rules rule.Set[model.SellerInput]
}

// NewSellerScorer builds the seller rule table from the catalog.
func NewSellerScorer(catalog policy.Catalog) *SellerScorer {
	suffix := catalog.HeadquartersTaxIDSuffix

	return &SellerScorer{rules: rule.Set[model.SellerInput]{
		{
			Name:  "disproportionate_revenue",
			Group: "tenure",
			Match: func(in model.SellerInput) bool {
				return in.ActivityMonths < newAccountMonths && in.MonthlyRevenue.GreaterThan(launderingRevenue)
			},
			Delta:   rule.Points[model.SellerInput](-40),
			Explain: rule.Text[model.SellerInput]("recent account with disproportionate revenue (possible money laundering)"),
		},
		{
			Name:  "tenure_bonus",
			Group: "tenure",
			Match: rule.Always[model.SellerInput],
			Delta: func(in model.SellerInput) int { return min(in.ActivityMonths, maxTenureBonus) },
		},
		{
			Name:  "complaint_volume",
			Group: "complaints",
			Match: func(in model.SellerInput) bool { return in.ComplaintsCount > complaintThreshold },
			Delta: func(in model.SellerInput) int { return -2 * in.ComplaintsCount },
			Explain: func(in model.SellerInput) string {
				return fmt.Sprintf("high complaint volume (%d)", in.ComplaintsCount)
			},
		},
		{
			Name:  "low_complaints_bonus",
			Group: "complaints",
			Match: rule.Always[model.SellerInput],
			Delta: rule.Points[model.SellerInput](10),
		},
		{
			Name: "headquarters_tax_id",
			Match: func(in model.SellerInput) bool {
				return suffix != "" && strings.HasSuffix(in.TaxID, suffix)
			},
			Delta: rule.Points[model.SellerInput](5),
		},
	}}
}

// Score evaluates the seller. The score is clamped to [0, 100].
func (s *SellerScorer) Score(input model.SellerInput) model.SellerReputationResult {
	out := s.rules.Evaluate(input)

	score := rule.Clamp(baseSellerScore+out.Delta, 0, 100)
	class := valueobject.SellerClassificationFromScore(score)

	flags := out.Explanations
	if len(flags) == 0 {
		flags = []string{FlagCleanHistory}
	}

	return model.SellerReputationResult{
		Score:              score,
		Classification:     class,
		Flags:              flags,
		BehavioralAnalysis: class.Analysis(),
		Rules:              out.Results,
	}
}
