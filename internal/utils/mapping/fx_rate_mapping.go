package mapping

import (
	"github.com/ckeeling/splitledger/internal/core/domain"
	"github.com/ckeeling/splitledger/internal/models"
)

// ToModelFxRate converts a domain FxRate to a model FxRate
func ToModelFxRate(d domain.FxRate) models.FxRate {
	return models.FxRate{
		FxRateID:  d.FxRateID,
		Date:      d.Date,
		BaseCode:  d.BaseCode,
		QuoteCode: d.QuoteCode,
		Rate:      d.Rate,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDomainFxRate converts a model FxRate to a domain FxRate
func ToDomainFxRate(m models.FxRate) domain.FxRate {
	return domain.FxRate{
		FxRateID:  m.FxRateID,
		Date:      m.Date,
		BaseCode:  m.BaseCode,
		QuoteCode: m.QuoteCode,
		Rate:      m.Rate,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToDomainRecentCurrency converts a model RecentCurrency to a domain RecentCurrency
func ToDomainRecentCurrency(m models.RecentCurrency) domain.RecentCurrency {
	return domain.RecentCurrency{
		ID:        m.ID,
		UserID:    m.UserID,
		Code:      m.Code,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToDomainRecentCurrencySlice converts a slice of model RecentCurrency to domain RecentCurrency
func ToDomainRecentCurrencySlice(ms []models.RecentCurrency) []domain.RecentCurrency {
	ds := make([]domain.RecentCurrency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRecentCurrency(m)
	}
	return ds
}
