package dto

import "github.com/ckeeling/splitledger/internal/core/domain"

// SummaryResponse defines the whole-ledger balance summary. Amounts are
// serialized as fixed two-decimal strings in the reference currency.
type SummaryResponse struct {
	BevOwesFromExpenses       string `json:"bev_owes_from_expenses"`
	HouseholdOwesFromExpenses string `json:"household_owes_from_expenses"`
	SettlementsBevToHousehold string `json:"settlements_bev_to_household"`
	SettlementsHouseholdToBev string `json:"settlements_household_to_bev"`
	Net                       string `json:"net"`
}

// ToSummaryResponse converts a domain.BalanceSummary to SummaryResponse.
func ToSummaryResponse(s *domain.BalanceSummary) SummaryResponse {
	return SummaryResponse{
		BevOwesFromExpenses:       s.BevOwesFromExpenses.StringFixed(2),
		HouseholdOwesFromExpenses: s.HouseholdOwesFromExpenses.StringFixed(2),
		SettlementsBevToHousehold: s.SettlementsBevToHousehold.StringFixed(2),
		SettlementsHouseholdToBev: s.SettlementsHouseholdToBev.StringFixed(2),
		Net:                       s.Net.StringFixed(2),
	}
}
