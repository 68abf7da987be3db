package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ckeeling/splitledger/internal/apperrors"
	"github.com/ckeeling/splitledger/internal/core/domain"
	portsrepo "github.com/ckeeling/splitledger/internal/core/ports/repositories"
	portssvc "github.com/ckeeling/splitledger/internal/core/ports/services"
	"github.com/ckeeling/splitledger/internal/middleware"
	"github.com/ckeeling/splitledger/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FxRateService serves date-keyed rate lookups from the cache, going to the
// external provider on a miss and degrading to a fallback rate of 1 when the
// provider fails. A lookup never returns a provider error to the caller.
type FxRateService struct {
	rateRepo portsrepo.FxRateRepositoryFacade
	provider portssvc.FxRateProvider
}

// NewFxRateService creates a new FxRateService.
func NewFxRateService(rateRepo portsrepo.FxRateRepositoryFacade, provider portssvc.FxRateProvider) *FxRateService {
	return &FxRateService{rateRepo: rateRepo, provider: provider}
}

var _ portssvc.FxRateSvcFacade = (*FxRateService)(nil)

// GetRate returns the rate for (date, base, quote). Cache hits are served as
// "cache"; a miss triggers a provider fetch whose result is upserted and
// served as "live-<provider>"; any provider failure yields rate 1 tagged
// "fallback" with the error in the note.
func (s *FxRateService) GetRate(ctx context.Context, date time.Time, baseCode, quoteCode string) (*domain.FxRateQuote, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	base := strings.ToUpper(strings.TrimSpace(baseCode))
	quote := strings.ToUpper(strings.TrimSpace(quoteCode))
	if len(base) != 3 || len(quote) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be three letters", apperrors.ErrValidation)
	}
	day := date.Truncate(24 * time.Hour)

	// The identity rate never touches the cache or the provider.
	if base == quote {
		metrics.FxRateLookups.WithLabelValues("cache").Inc()
		return &domain.FxRateQuote{
			Date: day, Base: base, Quote: quote,
			Rate:   decimal.NewFromInt(1),
			Source: domain.RateSourceCache,
		}, nil
	}

	cached, err := s.rateRepo.FindRate(ctx, day, base, quote)
	if err == nil {
		metrics.FxRateLookups.WithLabelValues("cache").Inc()
		return &domain.FxRateQuote{
			Date: day, Base: base, Quote: quote,
			Rate:   cached.Rate,
			Source: domain.RateSourceCache,
		}, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to read rate cache: %w", err)
	}

	rate, fetchErr := s.provider.FetchRate(ctx, day, base, quote)
	if fetchErr != nil {
		logger.Warn("Rate provider failed, serving fallback rate", "base", base, "quote", quote, "error", fetchErr)
		metrics.FxRateLookups.WithLabelValues("fallback").Inc()
		return &domain.FxRateQuote{
			Date: day, Base: base, Quote: quote,
			Rate:   decimal.NewFromInt(1),
			Source: domain.RateSourceFallback,
			Note:   fmt.Sprintf("fx upstream error: %v", fetchErr),
		}, nil
	}

	now := time.Now()
	if err := s.rateRepo.UpsertRate(ctx, domain.FxRate{
		FxRateID:  uuid.NewString(),
		Date:      day,
		BaseCode:  base,
		QuoteCode: quote,
		Rate:      rate,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		// The fetched rate is still good; losing the cache write only costs
		// a refetch next time.
		logger.Error("Failed to cache fetched rate", "base", base, "quote", quote, "error", err)
	}

	metrics.FxRateLookups.WithLabelValues("live").Inc()
	return &domain.FxRateQuote{
		Date: day, Base: base, Quote: quote,
		Rate:   rate,
		Source: "live-" + s.provider.Name(),
	}, nil
}
