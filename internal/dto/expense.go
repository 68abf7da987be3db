package dto

import (
	"fmt"
	"time"

	"github.com/ckeeling/splitledger/internal/core/domain"
	"github.com/ckeeling/splitledger/internal/utils/money"
	"github.com/shopspring/decimal"
)

// DateFormat is the wire format for ledger dates.
const DateFormat = "2006-01-02"

// CreateExpenseRequest defines the structure for creating a new expense.
// FxToCad is optional: when omitted, the service derives it from the rate
// cache for the expense date and fixes it on the expense permanently.
type CreateExpenseRequest struct {
	Date            string           `json:"date" binding:"required,datetime=2006-01-02"`
	Description     string           `json:"description" binding:"required,max=200"`
	Category        string           `json:"category" binding:"required,oneof=lodging food transport activities other"`
	Currency        string           `json:"currency" binding:"required,len=3,alpha"`
	FxToCad         *decimal.Decimal `json:"fxToCad,omitempty"`
	Amount          decimal.Decimal  `json:"amount" binding:"required"`
	PaidBy          string           `json:"paidBy" binding:"required"`
	WeightHousehold *int64           `json:"weightHousehold,omitempty" binding:"omitempty,gte=0"`
	WeightBev       *int64           `json:"weightBev,omitempty" binding:"omitempty,gte=0"`
	Notes           string           `json:"notes"`
}

// UpdateExpenseRequest defines the updatable fields of an expense. The stored
// fx_to_cad is fixed at creation time and deliberately absent here; editing
// an expense never re-fetches FX.
type UpdateExpenseRequest struct {
	Date            *string          `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Description     *string          `json:"description,omitempty" binding:"omitempty,max=200"`
	Category        *string          `json:"category,omitempty" binding:"omitempty,oneof=lodging food transport activities other"`
	Currency        *string          `json:"currency,omitempty" binding:"omitempty,len=3,alpha"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	PaidBy          *string          `json:"paidBy,omitempty"`
	WeightHousehold *int64           `json:"weightHousehold,omitempty" binding:"omitempty,gte=0"`
	WeightBev       *int64           `json:"weightBev,omitempty" binding:"omitempty,gte=0"`
	Notes           *string          `json:"notes,omitempty"`
}

// ListExpensesParams defines the query parameters for listing expenses.
type ListExpensesParams struct {
	Limit     int    `form:"limit,default=50" binding:"omitempty,gte=1,lte=200"`
	NextToken string `form:"nextToken"`
}

// ExpenseResponse defines the data returned for an expense, including the
// derived reference-currency amount and both weighted shares.
type ExpenseResponse struct {
	ExpenseID         string          `json:"expenseID"`
	Date              string          `json:"date"`
	Description       string          `json:"description"`
	Category          string          `json:"category"`
	Currency          string          `json:"currency"`
	FxToCad           decimal.Decimal `json:"fxToCad"`
	Amount            decimal.Decimal `json:"amount"`
	AmountCad         decimal.Decimal `json:"amountCad"`
	PaidBy            string          `json:"paidBy"`
	PaidByDisplay     string          `json:"paidByDisplay"`
	PaidByParty       PartyResponse   `json:"paidByParty"`
	WeightHousehold   int64           `json:"weightHousehold"`
	WeightBev         int64           `json:"weightBev"`
	ShareHouseholdCad decimal.Decimal `json:"shareHouseholdCad"`
	ShareBevCad       decimal.Decimal `json:"shareBevCad"`
	Notes             string          `json:"notes"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ToExpenseResponse converts a domain.ExpenseWithPayer to ExpenseResponse,
// computing the valuation fields.
func ToExpenseResponse(e *domain.ExpenseWithPayer) ExpenseResponse {
	amountCad := money.AmountCAD(e.Amount, e.FxToCAD)
	shareHousehold, shareBev := money.SplitShares(amountCad, e.WeightHousehold, e.WeightBev)

	return ExpenseResponse{
		ExpenseID:         e.ExpenseID,
		Date:              e.Date.Format(DateFormat),
		Description:       e.Description,
		Category:          string(e.Category),
		Currency:          e.CurrencyCode,
		FxToCad:           e.FxToCAD,
		Amount:            e.Amount,
		AmountCad:         amountCad,
		PaidBy:            e.PaidByPersonID,
		PaidByDisplay:     fmt.Sprintf("%s (%s)", e.Payer.Name, e.PayerParty.Name),
		PaidByParty:       ToPartyResponse(&e.PayerParty),
		WeightHousehold:   e.WeightHousehold,
		WeightBev:         e.WeightBev,
		ShareHouseholdCad: shareHousehold,
		ShareBevCad:       shareBev,
		Notes:             e.Notes,
		CreatedAt:         e.CreatedAt,
	}
}

// ListExpensesResponse wraps a page of expenses with the next page token.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken string            `json:"nextToken,omitempty"`
}

// ToListExpensesResponse converts a page of expenses to the list DTO.
func ToListExpensesResponse(expenses []domain.ExpenseWithPayer, nextToken string) ListExpensesResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return ListExpensesResponse{Expenses: res, NextToken: nextToken}
}
