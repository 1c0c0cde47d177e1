package model

import (
	"github.com/shopspring/decimal"

	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/rule"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/valueobject"
)

// TransactionInput is a single financial transaction submitted for scoring.
type TransactionInput struct {
	Amount           decimal.Decimal
	TransactionType  string
	OriginDescriptor string
	TimeOfDay        string // HH:MM, 24-hour
}

// TransactionRiskResult is the fraud-risk verdict for a transaction.
type TransactionRiskResult struct {
	RiskLevel      valueobject.RiskLevel
	Recommendation string
	RiskFactors    []string
	Rules          []rule.Result
	Score          int
}
