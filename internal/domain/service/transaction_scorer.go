package service

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/model"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/policy"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/rule"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/valueobject"
)

const (
	minTransactionScore = 1
	maxTransactionScore = 99

	// FactorStandardBehavior is reported when no transaction rule fires.
	FactorStandardBehavior = "standard behavior verified"
)

var (
	amount1k  = decimal.NewFromInt(1000)
	amount10k = decimal.NewFromInt(10000)
	amount50k = decimal.NewFromInt(50000)
	hundred   = decimal.NewFromInt(100)
)

// TransactionScorer is a domain service that scores transactions with
// additive heuristics over amount, destination type, origin and hour.
type TransactionScorer struct {
	rules rule.Set[model.TransactionInput]
}

// NewTransactionScorer builds the transaction rule table from the catalog.
func NewTransactionScorer(catalog policy.Catalog) *TransactionScorer {
	c := catalog.Normalized()

	return &TransactionScorer{rules: rule.Set[model.TransactionInput]{
		{
			Name:    "amount_above_50k",
			Group:   "amount_magnitude",
			Match:   func(in model.TransactionInput) bool { return in.Amount.GreaterThan(amount50k) },
			Delta:   rule.Points[model.TransactionInput](40),
			Explain: rule.Text[model.TransactionInput]("atypical amount (>50k)"),
		},
		{
			Name:  "amount_above_10k",
			Group: "amount_magnitude",
			Match: func(in model.TransactionInput) bool { return in.Amount.GreaterThan(amount10k) },
			Delta: rule.Points[model.TransactionInput](20),
		},
		{
			Name: "fractional_amount",
			Match: func(in model.TransactionInput) bool {
				return in.Amount.GreaterThan(amount1k) && !in.Amount.Mod(hundred).IsZero()
			},
			Delta:   rule.Points[model.TransactionInput](10),
			Explain: rule.Text[model.TransactionInput]("suspicious fractional-amount pattern"),
		},
		{
			Name:  "crypto_destination",
			Group: "transaction_type",
			Match: func(in model.TransactionInput) bool {
				return policy.ContainsAny(in.TransactionType, c.CryptoKeywords)
			},
			Delta:   rule.Points[model.TransactionInput](35),
			Explain: rule.Text[model.TransactionInput]("high-volatility destination (crypto assets)"),
		},
		{
			Name:  "cross_border_remittance",
			Group: "transaction_type",
			Match: func(in model.TransactionInput) bool {
				return policy.ContainsAny(in.TransactionType, c.CrossBorderKeywords)
			},
			Delta:   rule.Points[model.TransactionInput](25),
			Explain: rule.Text[model.TransactionInput]("cross-border remittance with no history"),
		},
		{
			Name:  "anonymized_connection",
			Group: "origin",
			Match: func(in model.TransactionInput) bool {
				return policy.ContainsAny(in.OriginDescriptor, c.AnonymizerKeywords)
			},
			Delta:   rule.Points[model.TransactionInput](50),
			Explain: rule.Text[model.TransactionInput]("anonymized connection detected (VPN/Tor)"),
		},
		{
			Name:  "unrecognized_device",
			Group: "origin",
			Match: func(in model.TransactionInput) bool {
				return policy.ContainsAny(in.OriginDescriptor, c.UnknownDeviceKeywords)
			},
			Delta:   rule.Points[model.TransactionInput](20),
			Explain: rule.Text[model.TransactionInput]("unrecognized device on network"),
		},
		{
			Name: "late_night_window",
			Match: func(in model.TransactionInput) bool {
				hour, ok := LeadingHour(in.TimeOfDay)
				return ok && (hour >= 23 || hour <= 5)
			},
			Delta:   rule.Points[model.TransactionInput](30),
			Explain: rule.Text[model.TransactionInput]("atypical time window (late night)"),
		},
	}}
}

// Score evaluates the transaction. The raw score is clamped to [1, 99] so a
// result never claims absolute certainty either way.
func (s *TransactionScorer) Score(input model.TransactionInput) model.TransactionRiskResult {
	out := s.rules.Evaluate(input)

	score := rule.Clamp(out.Delta, minTransactionScore, maxTransactionScore)
	level := valueobject.RiskLevelFromScore(score)

	factors := out.Explanations
	if len(factors) == 0 {
		factors = []string{FactorStandardBehavior}
	}

	return model.TransactionRiskResult{
		Score:          score,
		RiskLevel:      level,
		RiskFactors:    factors,
		Recommendation: level.Recommendation(),
		Rules:          out.Results,
	}
}

// LeadingHour reads the hour component of an HH:MM string leniently: the
// text before the first colon is parsed as a leading integer, ignoring any
// trailing garbage. ok is false when no digits are found.
func LeadingHour(timeOfDay string) (hour int, ok bool) {
	head, _, _ := strings.Cut(timeOfDay, ":")
	head = strings.TrimLeft(head, " \t\n\r")

	end := 0
	if end < len(head) && (head[end] == '-' || head[end] == '+') {
		end++
	}
	digits := end
	for end < len(head) && head[end] >= '0' && head[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	n, err := strconv.Atoi(head[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
