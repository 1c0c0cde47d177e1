package valueobject

import "fmt"

// RiskLevel is an immutable value object representing the fraud-risk
// classification of a transaction.
type RiskLevel struct {
	value string
}

var (
	RiskLevelLow      = RiskLevel{value: "LOW"}
	RiskLevelMedium   = RiskLevel{value: "MEDIUM"}
	RiskLevelHigh     = RiskLevel{value: "HIGH"}
	RiskLevelCritical = RiskLevel{value: "CRITICAL"}
)

// RiskLevelFromString reconstructs a RiskLevel from its string representation.
func RiskLevelFromString(s string) (RiskLevel, error) {
	switch s {
	case "LOW":
		return RiskLevelLow, nil
	case "MEDIUM":
		return RiskLevelMedium, nil
	case "HIGH":
		return RiskLevelHigh, nil
	case "CRITICAL":
		return RiskLevelCritical, nil
	default:
		return RiskLevel{}, fmt.Errorf("invalid risk level: %s", s)
	}
}

// RiskLevelFromScore derives the RiskLevel for a transaction risk score.
func RiskLevelFromScore(score int) RiskLevel {
	switch {
	case score >= 85:
		return RiskLevelCritical
	case score >= 60:
		return RiskLevelHigh
	case score >= 30:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// Recommendation returns the action recommended for this level.
func (r RiskLevel) Recommendation() string {
	switch r.value {
	case "CRITICAL":
		return "immediate block and asset freeze"
	case "HIGH":
		return "require biometric authentication"
	case "MEDIUM":
		return "route to manual review queue"
	case "LOW":
		return "automatic approval"
	default:
		return ""
	}
}

// Severity orders levels from LOW (1) to CRITICAL (4); zero for an unset level.
func (r RiskLevel) Severity() int {
	switch r.value {
	case "LOW":
		return 1
	case "MEDIUM":
		return 2
	case "HIGH":
		return 3
	case "CRITICAL":
		return 4
	default:
		return 0
	}
}

// String returns the string representation.
func (r RiskLevel) String() string {
	return r.value
}

// IsZero returns true if the RiskLevel has not been set.
func (r RiskLevel) IsZero() bool {
	return r.value == ""
}

// Equal checks equality with another RiskLevel.
func (r RiskLevel) Equal(other RiskLevel) bool {
	return r.value == other.value
}
