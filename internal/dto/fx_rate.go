package dto

import (
	"github.com/ckeeling/splitledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GetFxRateParams defines the query parameters for a rate lookup. All three
// are optional; the handler defaults date to today, base to the reference
// currency and quote to THB.
type GetFxRateParams struct {
	Date  string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Base  string `form:"base" binding:"omitempty,len=3,alpha"`
	Quote string `form:"quote" binding:"omitempty,len=3,alpha"`
}

// FxRateResponse defines the data returned for a rate lookup. Source is
// "cache", "live-frankfurter" or "fallback"; Note carries the upstream
// error text when the fallback rate was served.
type FxRateResponse struct {
	Date   string          `json:"date"`
	Base   string          `json:"base"`
	Quote  string          `json:"quote"`
	Rate   decimal.Decimal `json:"rate"`
	Source string          `json:"source"`
	Note   string          `json:"note,omitempty"`
}

// ToFxRateResponse converts a domain.FxRateQuote to FxRateResponse.
func ToFxRateResponse(q *domain.FxRateQuote) FxRateResponse {
	return FxRateResponse{
		Date:   q.Date.Format(DateFormat),
		Base:   q.Base,
		Quote:  q.Quote,
		Rate:   q.Rate,
		Source: q.Source,
		Note:   q.Note,
	}
}
