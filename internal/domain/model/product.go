package model

import (
	"github.com/shopspring/decimal"

	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/rule"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/valueobject"
)

// ProductInput is a marketplace listing submitted for validation.
type ProductInput struct {
	Price       decimal.Decimal
	Name        string
	Description string
	Category    string
}

// ProductLegitimacyResult is the legitimacy verdict for a listing.
// Score runs from 0 (certainly fraudulent) to 100 (fully legitimate).
type ProductLegitimacyResult struct {
	Status              valueobject.ProductStatus
	PriceRecommendation string
	Issues              []string
	Rules               []rule.Result
	Score               int
}
