package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FxRate is a cached historical rate, unique per (date, base, quote) triple.
// Rows are populated lazily from the external provider and never deleted.
type FxRate struct {
	FxRateID  string          `json:"fxRateID"` // Primary Key (UUID)
	Date      time.Time       `json:"date"`
	BaseCode  string          `json:"base"`  // e.g. "CAD"
	QuoteCode string          `json:"quote"` // e.g. "THB"
	Rate      decimal.Decimal `json:"rate"`  // Up to 8 fractional digits
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Rate lookup sources, surfaced to callers so the UI can show provenance.
const (
	RateSourceCache    = "cache"
	RateSourceFallback = "fallback"
)

// FxRateQuote is the result of a rate lookup: the rate plus where it came
// from. A fallback quote carries an explanatory note and rate 1.
type FxRateQuote struct {
	Date   time.Time       `json:"date"`
	Base   string          `json:"base"`
	Quote  string          `json:"quote"`
	Rate   decimal.Decimal `json:"rate"`
	Source string          `json:"source"` // "cache", "live-<provider>" or "fallback"
	Note   string          `json:"note,omitempty"`
}
