package service

import (
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/model"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/policy"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/rule"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/valueobject"
	"github.com/prototypevg/VeriGuard-AI-app/pkg/money"
)

const (
	baseProductScore     = 100
	minDescriptionLength = 20

	// IssueNoneDetected is reported when no product rule fires.
	IssueNoneDetected = "no inconsistency detected"

	// PriceWithinMarket is the price recommendation for non-branded listings.
	PriceWithinMarket = "price within market average"
)

var (
	luxuryPriceFloor      = decimal.NewFromInt(500)
	electronicsPriceFloor = decimal.NewFromInt(50)
	fairPriceLowFactor    = decimal.NewFromInt(5)
	fairPriceHighFactor   = decimal.NewFromInt(8)
)

// ProductScorer is a domain service that rates how legitimate a listing
// looks. It starts from full legitimacy and deducts points per finding.
type ProductScorer struct {
	catalog policy.Catalog
	rules   rule.Set[model.ProductInput]
}

// NewProductScorer builds the product rule table from the catalog.
func NewProductScorer(catalog policy.Catalog) *ProductScorer {
	c := catalog.Normalized()
	s := &ProductScorer{catalog: c}

	s.rules = rule.Set[model.ProductInput]{
		{
			Name: "luxury_brand_underpriced",
			Match: func(in model.ProductInput) bool {
				return s.luxuryBrand(in) && in.Price.LessThan(luxuryPriceFloor)
			},
			Delta:   rule.Points[model.ProductInput](-60),
			Explain: rule.Text[model.ProductInput]("price inconsistent with luxury brand (possible counterfeit)"),
		},
		{
			Name: "counterfeit_terms",
			Match: func(in model.ProductInput) bool {
				return policy.ContainsAny(in.Description, c.CounterfeitTerms)
			},
			Delta:   rule.Points[model.ProductInput](-40),
			Explain: rule.Text[model.ProductInput]("counterfeit-indicative terms detected in description"),
		},
		{
			Name: "short_description",
			Match: func(in model.ProductInput) bool {
				return utf8.RuneCountInString(in.Description) < minDescriptionLength
			},
			Delta:   rule.Points[model.ProductInput](-15),
			Explain: rule.Text[model.ProductInput]("description insufficient for compliance validation"),
		},
		{
			Name: "electronics_below_cost",
			Match: func(in model.ProductInput) bool {
				return in.Category == c.ElectronicsCategory && in.Price.LessThan(electronicsPriceFloor)
			},
			Delta:   rule.Points[model.ProductInput](-20),
			Explain: rule.Text[model.ProductInput]("electronics priced below production cost"),
		},
	}

	return s
}

// Score evaluates the listing. The score never drops below zero.
func (s *ProductScorer) Score(input model.ProductInput) model.ProductLegitimacyResult {
	out := s.rules.Evaluate(input)

	score := baseProductScore + out.Delta
	if score < 0 {
		score = 0
	}

	issues := out.Explanations
	if len(issues) == 0 {
		issues = []string{IssueNoneDetected}
	}

	return model.ProductLegitimacyResult{
		Score:               score,
		Status:              valueobject.ProductStatusFromScore(score),
		Issues:              issues,
		PriceRecommendation: s.priceRecommendation(input),
		Rules:               out.Results,
	}
}

func (s *ProductScorer) luxuryBrand(in model.ProductInput) bool {
	return policy.ContainsAny(in.Name, s.catalog.LuxuryBrands)
}

// priceRecommendation suggests a plausible range for branded goods whatever
// the submitted price, so sellers see where genuine items usually sit.
func (s *ProductScorer) priceRecommendation(in model.ProductInput) string {
	if !s.luxuryBrand(in) {
		return PriceWithinMarket
	}
	price := money.New(in.Price, money.BRL)
	return price.Multiply(fairPriceLowFactor).Display() + " - " + price.Multiply(fairPriceHighFactor).Display()
}
