package valueobject

import "fmt"

// ProductStatus is the legitimacy verdict for a marketplace listing.
type ProductStatus struct {
	value string
}

var (
	ProductStatusApproved   = ProductStatus{value: "APPROVED"}
	ProductStatusSuspicious = ProductStatus{value: "SUSPICIOUS"}
	ProductStatusRejected   = ProductStatus{value: "REJECTED"}
)

// ProductStatusFromString reconstructs a ProductStatus from its string representation.
func ProductStatusFromString(s string) (ProductStatus, error) {
	switch s {
	case "APPROVED":
		return ProductStatusApproved, nil
	case "SUSPICIOUS":
		return ProductStatusSuspicious, nil
	case "REJECTED":
		return ProductStatusRejected, nil
	default:
		return ProductStatus{}, fmt.Errorf("invalid product status: %s", s)
	}
}

// ProductStatusFromScore maps a legitimacy score (100 = fully legitimate) to a status.
func ProductStatusFromScore(score int) ProductStatus {
	switch {
	case score < 40:
		return ProductStatusRejected
	case score < 80:
		return ProductStatusSuspicious
	default:
		return ProductStatusApproved
	}
}

// Standing orders statuses from REJECTED (1) to APPROVED (3).
func (p ProductStatus) Standing() int {
	switch p.value {
	case "REJECTED":
		return 1
	case "SUSPICIOUS":
		return 2
	case "APPROVED":
		return 3
	default:
		return 0
	}
}

func (p ProductStatus) String() string             { return p.value }
func (p ProductStatus) IsZero() bool               { return p.value == "" }
func (p ProductStatus) Equal(o ProductStatus) bool { return p.value == o.value }
