package dto

// RecordCurrencyUseRequest defines the structure for touching a currency in
// the caller's recently-used list.
type RecordCurrencyUseRequest struct {
	Code string `json:"code" binding:"required,len=3,alpha"`
}

// RecentCurrenciesResponse defines the recently-used currency codes, most
// recent first.
type RecentCurrenciesResponse struct {
	Currencies []string `json:"currencies"`
}
