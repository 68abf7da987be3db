package services

import (
	"context"
	"time"

	"github.com/ckeeling/splitledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FxRateProvider is the external rate-lookup collaborator. Any shape
// deviation, timeout or non-2xx response surfaces as an error, which the
// rate service absorbs into a fallback quote.
type FxRateProvider interface {
	// FetchRate returns the historical rate from base to quote for the date.
	FetchRate(ctx context.Context, date time.Time, baseCode, quoteCode string) (decimal.Decimal, error)

	// Name identifies the provider in the "live-<provider>" source tag.
	Name() string
}

// FxRateSvcFacade is the date-keyed rate lookup with provider fallback.
type FxRateSvcFacade interface {
	// GetRate returns the rate for (date, base, quote): cached when a row
	// exists, live (and cached) after a successful provider call, and a
	// fallback rate of 1 with a note on any provider failure. Provider
	// failures never surface as errors; expense entry must not be blocked
	// by an FX outage.
	GetRate(ctx context.Context, date time.Time, baseCode, quoteCode string) (*domain.FxRateQuote, error)
}

// RecentCurrencySvcFacade is the per-user MRU currency tracker.
type RecentCurrencySvcFacade interface {
	// RecordCurrencyUse upserts the (user, code) pair with the current time.
	RecordCurrencyUse(ctx context.Context, userID, code string) error

	// ListRecentCurrencies returns up to five codes, most recent first.
	ListRecentCurrencies(ctx context.Context, userID string) ([]string, error)
}
