package dto

import (
	"time"

	"github.com/ckeeling/splitledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSettlementRequest defines the structure for recording a transfer
// between the two parties. Either party IDs or person IDs may be supplied;
// person IDs are resolved to the owning party.
type CreateSettlementRequest struct {
	Date         string          `json:"date" binding:"required,datetime=2006-01-02"`
	FromPartyID  string          `json:"fromPartyID"`
	ToPartyID    string          `json:"toPartyID"`
	FromPersonID string          `json:"fromPersonID"`
	ToPersonID   string          `json:"toPersonID"`
	AmountCad    decimal.Decimal `json:"amountCad" binding:"required"`
	Notes        string          `json:"notes"`
}

// UpdateSettlementRequest defines the updatable fields of a settlement.
type UpdateSettlementRequest struct {
	Date        *string          `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	FromPartyID *string          `json:"fromPartyID,omitempty"`
	ToPartyID   *string          `json:"toPartyID,omitempty"`
	AmountCad   *decimal.Decimal `json:"amountCad,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
}

// SettlementResponse defines the data returned for a settlement.
type SettlementResponse struct {
	SettlementID string          `json:"settlementID"`
	Date         string          `json:"date"`
	FromPartyID  string          `json:"fromPartyID"`
	ToPartyID    string          `json:"toPartyID"`
	AmountCad    decimal.Decimal `json:"amountCad"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToSettlementResponse converts a domain.Settlement to SettlementResponse.
func ToSettlementResponse(s *domain.Settlement) SettlementResponse {
	return SettlementResponse{
		SettlementID: s.SettlementID,
		Date:         s.Date.Format(DateFormat),
		FromPartyID:  s.FromPartyID,
		ToPartyID:    s.ToPartyID,
		AmountCad:    s.AmountCAD,
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt,
	}
}

// ToListSettlementResponse converts a slice of settlements.
func ToListSettlementResponse(settlements []domain.Settlement) []SettlementResponse {
	res := make([]SettlementResponse, len(settlements))
	for i := range settlements {
		res[i] = ToSettlementResponse(&settlements[i])
	}
	return res
}
