package repositories

import (
	"context"

	"github.com/ckeeling/splitledger/internal/core/domain"
)

// SettlementReader defines read operations for settlement data
type SettlementReader interface {
	// FindSettlementByID retrieves a specific settlement by its ID.
	FindSettlementByID(ctx context.Context, settlementID string) (*domain.Settlement, error)

	// ListSettlements retrieves all settlements ordered by date descending.
	ListSettlements(ctx context.Context) ([]domain.Settlement, error)
}

// SettlementWriter defines write operations for settlement data
type SettlementWriter interface {
	// SaveSettlement persists a new settlement.
	SaveSettlement(ctx context.Context, settlement domain.Settlement) error

	// UpdateSettlement updates an existing settlement.
	UpdateSettlement(ctx context.Context, settlement domain.Settlement) error

	// DeleteSettlement removes a settlement.
	DeleteSettlement(ctx context.Context, settlementID string) error
}

// SettlementRepositoryFacade combines all settlement-related repository interfaces
type SettlementRepositoryFacade interface {
	SettlementReader
	SettlementWriter
}
