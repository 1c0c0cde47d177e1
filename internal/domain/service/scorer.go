package service

import "github.com/prototypevg/VeriGuard-AI-app/internal/domain/model"

// TransactionRiskScorer scores a financial transaction for fraud risk.
type TransactionRiskScorer interface {
	Score(input model.TransactionInput) model.TransactionRiskResult
}

// ProductLegitimacyScorer scores a marketplace listing for counterfeit risk.
type ProductLegitimacyScorer interface {
	Score(input model.ProductInput) model.ProductLegitimacyResult
}

// SellerReputationScorer scores a seller for fraud and money-laundering risk.
type SellerReputationScorer interface {
	Score(input model.SellerInput) model.SellerReputationResult
}

// AccountSecurityScanner reports the security posture of the account.
type AccountSecurityScanner interface {
	Scan() model.SecuritySnapshot
}

var (
	_ TransactionRiskScorer   = (*TransactionScorer)(nil)
	_ ProductLegitimacyScorer = (*ProductScorer)(nil)
	_ SellerReputationScorer  = (*SellerScorer)(nil)
	_ AccountSecurityScanner  = (*SecurityScanner)(nil)
)
