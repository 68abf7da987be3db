package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Party maps to the parties table.
type Party struct {
	PartyID     string `json:"partyID"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	IsHousehold bool   `json:"isHousehold"`
	AuditFields
}

// Person maps to the people table.
type Person struct {
	PersonID string `json:"personID"`
	Name     string `json:"name"`
	PartyID  string `json:"partyID"`
	AuditFields
}

// Expense maps to the expenses table.
// Note: monetary columns use a precise decimal type, never float.
type Expense struct {
	ExpenseID       string          `json:"expenseID"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	CurrencyCode    string          `json:"currencyCode"`
	FxToCAD         decimal.Decimal `json:"fxToCad"`
	Amount          decimal.Decimal `json:"amount"`
	PaidByPersonID  string          `json:"paidBy"`
	WeightHousehold int64           `json:"weightHousehold"`
	WeightBev       int64           `json:"weightBev"`
	Notes           string          `json:"notes"`
	CreatedByUserID *string         `json:"createdByUserID,omitempty"`
	AuditFields
}

// Settlement maps to the settlements table.
type Settlement struct {
	SettlementID    string          `json:"settlementID"`
	Date            time.Time       `json:"date"`
	FromPartyID     string          `json:"fromPartyID"`
	ToPartyID       string          `json:"toPartyID"`
	AmountCAD       decimal.Decimal `json:"amountCad"`
	Notes           string          `json:"notes"`
	CreatedByUserID *string         `json:"createdByUserID,omitempty"`
	AuditFields
}
