package repositories

import (
	"context"
	"time"

	"github.com/ckeeling/splitledger/internal/core/domain"
)

// FxRateReader defines read operations for the fx rate cache
type FxRateReader interface {
	// FindRate retrieves the cached rate for the exact (date, base, quote)
	// triple, or apperrors.ErrNotFound when no row exists.
	FindRate(ctx context.Context, date time.Time, baseCode, quoteCode string) (*domain.FxRate, error)
}

// FxRateWriter defines write operations for the fx rate cache
type FxRateWriter interface {
	// UpsertRate atomically inserts or updates the rate for its
	// (date, base, quote) triple. A second upsert for the same triple must
	// not create a duplicate row.
	UpsertRate(ctx context.Context, rate domain.FxRate) error
}

// FxRateRepositoryFacade combines all fx-rate-related repository interfaces
type FxRateRepositoryFacade interface {
	FxRateReader
	FxRateWriter
}
