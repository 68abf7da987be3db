package domain

import "github.com/shopspring/decimal"

// BalanceSummary is the full breakdown returned by the balance aggregator.
// Sign convention for Net: positive means the counterpart still owes the
// household, negative means the household owes the counterpart.
type BalanceSummary struct {
	BevOwesFromExpenses       decimal.Decimal `json:"bevOwesFromExpenses"`
	HouseholdOwesFromExpenses decimal.Decimal `json:"householdOwesFromExpenses"`
	SettlementsBevToHousehold decimal.Decimal `json:"settlementsBevToHousehold"`
	SettlementsHouseholdToBev decimal.Decimal `json:"settlementsHouseholdToBev"`
	Net                       decimal.Decimal `json:"net"`
}
