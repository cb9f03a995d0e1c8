package commission

import "github.com/shopspring/decimal"

var (
	cashInRate          = decimal.RequireFromString("0.0003")
	cashInMaxCommission = decimal.RequireFromString("5.00")

	cashOutRate          = decimal.RequireFromString("0.003")
	cashOutMinCommission = decimal.RequireFromString("0.50")

	// CashOutFreeWeekLimit is the weekly cash-out amount a natural user withdraws free of charge.
	CashOutFreeWeekLimit = decimal.RequireFromString("1000.00")
)

// RoundUpToCent rounds the amount up to whole cents. Fees are never rounded down.
func RoundUpToCent(amount decimal.Decimal) decimal.Decimal {
	return amount.RoundCeil(2)
}

func CashInCommission(amount decimal.Decimal) decimal.Decimal {
	commission := amount.Mul(cashInRate)
	return RoundUpToCent(decimal.Min(commission, cashInMaxCommission))
}

// CashOutNaturalCommission prices a natural-person cash-out given the amount
// the user already cashed out earlier in the same week. Only the part above
// the free weekly limit is charged.
func CashOutNaturalCommission(amount, weeklyTotal decimal.Decimal) decimal.Decimal {
	if weeklyTotal.GreaterThanOrEqual(CashOutFreeWeekLimit) {
		return RoundUpToCent(amount.Mul(cashOutRate))
	}

	total := weeklyTotal.Add(amount)
	if total.LessThanOrEqual(CashOutFreeWeekLimit) {
		return decimal.Zero
	}

	overLimitAmount := total.Sub(CashOutFreeWeekLimit)
	return RoundUpToCent(overLimitAmount.Mul(cashOutRate))
}

func CashOutLegalCommission(amount decimal.Decimal) decimal.Decimal {
	commission := amount.Mul(cashOutRate)
	return RoundUpToCent(decimal.Max(commission, cashOutMinCommission))
}
