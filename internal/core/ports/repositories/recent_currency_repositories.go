package repositories

import (
	"context"
	"time"

	"github.com/ckeeling/splitledger/internal/core/domain"
)

// RecentCurrencyRepositoryFacade defines the MRU currency tracker storage.
type RecentCurrencyRepositoryFacade interface {
	// UpsertRecentCurrency records a use of the code by the user at the
	// given time, keyed on the unique (user, code) pair.
	UpsertRecentCurrency(ctx context.Context, userID, code string, usedAt time.Time) error

	// ListRecentCurrencies retrieves up to limit codes for the user ordered
	// by most recent use, ties broken by insertion id.
	ListRecentCurrencies(ctx context.Context, userID string, limit int) ([]domain.RecentCurrency, error)
}
