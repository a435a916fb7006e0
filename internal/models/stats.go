package models

// Stats represents portfolio-wide collection statistics
type Stats struct {
	TotalCustomers    int64   `json:"totalCustomers"`
	TotalAmountGiven  float64 `json:"totalAmountGiven"`
	AmountReceived    float64 `json:"amountReceived"`
	ThisWeekCollected float64 `json:"thisWeekCollected"`
	MissedPayments    int64   `json:"missedPayments"`
}
