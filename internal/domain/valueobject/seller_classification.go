package valueobject

import "fmt"

// SellerClassification is the KYC-style reputation bucket of a seller.
type SellerClassification struct {
	value string
}

var (
	SellerPremium = SellerClassification{value: "PREMIUM"}
	SellerRegular = SellerClassification{value: "REGULAR"}
	SellerRisk    = SellerClassification{value: "RISK"}
	SellerBlocked = SellerClassification{value: "BLOCKED"}
)

// SellerClassificationFromString reconstructs a classification from its string representation.
func SellerClassificationFromString(s string) (SellerClassification, error) {
	switch s {
	case "PREMIUM":
		return SellerPremium, nil
	case "REGULAR":
		return SellerRegular, nil
	case "RISK":
		return SellerRisk, nil
	case "BLOCKED":
		return SellerBlocked, nil
	default:
		return SellerClassification{}, fmt.Errorf("invalid seller classification: %s", s)
	}
}

// SellerClassificationFromScore maps a reputation score (0-100) to a bucket.
//
//	score >= 80 -> PREMIUM
//	score <  30 -> BLOCKED
//	score <  50 -> RISK
//	otherwise   -> REGULAR
func SellerClassificationFromScore(score int) SellerClassification {
	switch {
	case score >= 80:
		return SellerPremium
	case score < 30:
		return SellerBlocked
	case score < 50:
		return SellerRisk
	default:
		return SellerRegular
	}
}

// Analysis returns the behavioral narrative attached to the bucket.
func (c SellerClassification) Analysis() string {
	switch c.value {
	case "PREMIUM":
		return "exemplary seller, recommended for highlight programs"
	case "REGULAR":
		return "typical seller behavior"
	case "RISK":
		return "constant monitoring recommended, high friction index"
	case "BLOCKED":
		return "fraud pattern detected, preventive block suggested"
	default:
		return ""
	}
}

// Severity orders buckets from PREMIUM (1) to BLOCKED (4); zero when unset.
func (c SellerClassification) Severity() int {
	switch c.value {
	case "PREMIUM":
		return 1
	case "REGULAR":
		return 2
	case "RISK":
		return 3
	case "BLOCKED":
		return 4
	default:
		return 0
	}
}

func (c SellerClassification) String() string                    { return c.value }
func (c SellerClassification) IsZero() bool                      { return c.value == "" }
func (c SellerClassification) Equal(o SellerClassification) bool { return c.value == o.value }
