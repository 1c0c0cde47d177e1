package dto

// ScoreTransactionRequest is the input DTO for the ScoreTransaction use case.
// Values are raw strings as typed into a form.
type ScoreTransactionRequest struct {
	Amount           string `json:"amount"`
	TransactionType  string `json:"transaction_type"`
	OriginDescriptor string `json:"origin_descriptor"`
	TimeOfDay        string `json:"time_of_day"`
}

// ScoreProductRequest is the input DTO for the ScoreProduct use case.
type ScoreProductRequest struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// ScoreSellerRequest is the input DTO for the ScoreSeller use case.
type ScoreSellerRequest struct {
	TaxID           string `json:"tax_id"`
	ActivityMonths  string `json:"activity_months"`
	ComplaintsCount string `json:"complaints_count"`
	MonthlyRevenue  string `json:"monthly_revenue"`
}
