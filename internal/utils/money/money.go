// Package money implements the fixed-point valuation rules for the ledger:
// exact decimal arithmetic throughout, with a single half-up rounding step
// when a value is exposed as a reference-currency total.
package money

import "github.com/shopspring/decimal"

// Quantize rounds a decimal to 2 fractional digits, half away from zero.
// Every public monetary output goes through this single entry point so that
// display rounding stays centralized and consistent. Intermediate per-unit
// rates and stored fx_to_cad values are never quantized.
func Quantize(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// AmountCAD converts an expense amount into the reference currency using the
// fx rate captured at creation time. Only the final product is rounded.
func AmountCAD(amount, fxToCAD decimal.Decimal) decimal.Decimal {
	return Quantize(amount.Mul(fxToCAD))
}

// SplitShares divides a reference-currency amount between the household and
// the counterpart according to their weights. A zero weight sum substitutes a
// denominator of 1 so both shares become zero instead of raising a division
// error. The two shares are rounded independently and may differ from the
// total by up to one cent; that discrepancy is accepted, not redistributed.
func SplitShares(amountCAD decimal.Decimal, weightHousehold, weightBev int64) (household, bev decimal.Decimal) {
	denom := decimal.NewFromInt(weightHousehold + weightBev)
	if denom.IsZero() {
		denom = decimal.NewFromInt(1)
	}
	household = Quantize(amountCAD.Mul(decimal.NewFromInt(weightHousehold)).Div(denom))
	bev = Quantize(amountCAD.Mul(decimal.NewFromInt(weightBev)).Div(denom))
	return household, bev
}
