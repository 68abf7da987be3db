package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FxRate maps to the fx_rates cache table, unique per (rate_date, base_code,
// quote_code) triple.
type FxRate struct {
	FxRateID  string          `json:"fxRateID"`
	Date      time.Time       `json:"date"`
	BaseCode  string          `json:"base"`
	QuoteCode string          `json:"quote"`
	Rate      decimal.Decimal `json:"rate"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// RecentCurrency maps to the user_recent_currencies table.
type RecentCurrency struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userID"`
	Code      string    `json:"code"`
	UpdatedAt time.Time `json:"updatedAt"`
}
