package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ckeeling/splitledger/internal/apperrors"
	portsrepo "github.com/ckeeling/splitledger/internal/core/ports/repositories"
	portssvc "github.com/ckeeling/splitledger/internal/core/ports/services"
)

// RecentCurrencyService tracks each user's most recently used currency codes
// for entry-form suggestions. It plays no part in balance math.
type RecentCurrencyService struct {
	recentRepo portsrepo.RecentCurrencyRepositoryFacade
	maxEntries int
}

// NewRecentCurrencyService creates a new RecentCurrencyService.
func NewRecentCurrencyService(recentRepo portsrepo.RecentCurrencyRepositoryFacade, maxEntries int) *RecentCurrencyService {
	if maxEntries <= 0 {
		maxEntries = 5
	}
	return &RecentCurrencyService{recentRepo: recentRepo, maxEntries: maxEntries}
}

var _ portssvc.RecentCurrencySvcFacade = (*RecentCurrencyService)(nil)

// RecordCurrencyUse upserts the (user, code) pair with the current time.
// Re-using a tracked code moves it to the front without creating a duplicate.
func (s *RecentCurrencyService) RecordCurrencyUse(ctx context.Context, userID, code string) error {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if len(normalized) != 3 {
		return fmt.Errorf("%w: currency code must be three letters", apperrors.ErrValidation)
	}
	return s.recentRepo.UpsertRecentCurrency(ctx, userID, normalized, time.Now())
}

// ListRecentCurrencies returns up to five codes, most recent first.
func (s *RecentCurrencyService) ListRecentCurrencies(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.recentRepo.ListRecentCurrencies(ctx, userID, s.maxEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent currencies: %w", err)
	}
	codes := make([]string, len(rows))
	for i, row := range rows {
		codes[i] = row.Code
	}
	return codes, nil
}
