package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settlement is a direct payment between the two parties, always recorded in
// the reference currency. No FX conversion applies.
type Settlement struct {
	SettlementID    string          `json:"settlementID"` // Primary Key (UUID)
	Date            time.Time       `json:"date"`
	FromPartyID     string          `json:"fromPartyID"` // FK -> Party.PartyID, must differ from ToPartyID
	ToPartyID       string          `json:"toPartyID"`
	AmountCAD       decimal.Decimal `json:"amountCad"`
	Notes           string          `json:"notes"`
	CreatedByUserID *string         `json:"createdByUserID,omitempty"`
	AuditFields
}
