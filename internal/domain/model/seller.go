package model

import (
	"github.com/shopspring/decimal"

	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/rule"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/valueobject"
)

// SellerInput describes a merchant undergoing a reputation audit.
type SellerInput struct {
	MonthlyRevenue  decimal.Decimal
	TaxID           string
	ActivityMonths  int
	ComplaintsCount int
}

// SellerReputationResult is the KYC-style verdict for a seller.
type SellerReputationResult struct {
	Classification     valueobject.SellerClassification
	BehavioralAnalysis string
	Flags              []string
	Rules              []rule.Result
	Score              int
}
