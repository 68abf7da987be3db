package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory enumerates the supported spend categories.
type ExpenseCategory string

const (
	CategoryLodging    ExpenseCategory = "lodging"
	CategoryFood       ExpenseCategory = "food"
	CategoryTransport  ExpenseCategory = "transport"
	CategoryActivities ExpenseCategory = "activities"
	CategoryOther      ExpenseCategory = "other"
)

// Expense is a single spend event. FxToCAD is captured when the expense is
// created and never recomputed afterwards; editing an expense does not
// re-fetch the rate.
type Expense struct {
	ExpenseID       string          `json:"expenseID"` // Primary Key (UUID)
	Date            time.Time       `json:"date"`
	Description     string          `json:"description"`
	Category        ExpenseCategory `json:"category"`
	CurrencyCode    string          `json:"currencyCode"` // ISO 4217, uppercase
	FxToCAD         decimal.Decimal `json:"fxToCad"`      // Rate to the reference currency, up to 8 fractional digits
	Amount          decimal.Decimal `json:"amount"`       // As entered, 2 fractional digits
	PaidByPersonID  string          `json:"paidBy"`       // FK -> Person.PersonID
	WeightHousehold int64           `json:"weightHousehold"`
	WeightBev       int64           `json:"weightBev"`
	Notes           string          `json:"notes"`
	CreatedByUserID *string         `json:"createdByUserID,omitempty"` // Optional weak back-reference, set-null on user delete
	AuditFields
}

// ExpenseWithPayer is an Expense joined with its payer and the payer's party,
// as loaded for valuation and display.
type ExpenseWithPayer struct {
	Expense
	Payer      Person `json:"payer"`
	PayerParty Party  `json:"payerParty"`
}
