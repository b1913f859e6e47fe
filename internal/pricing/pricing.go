// Package pricing holds the money arithmetic shared by bookings, discounts,
// attrition and estimates. Amounts are rounded half-up to whole currency units.
package pricing

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RoundHalfUp rounds a non-negative amount to whole units, halves away from zero.
func RoundHalfUp(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(0)
}

// ApplyDiscount returns round_half_up(amount * (1 - pct/100)).
func ApplyDiscount(amount, pct decimal.Decimal) decimal.Decimal {
	if pct.LessThanOrEqual(decimal.Zero) {
		return RoundHalfUp(amount)
	}
	if pct.GreaterThanOrEqual(hundred) {
		return decimal.Zero
	}
	factor := decimal.NewFromInt(1).Sub(pct.Div(hundred))
	return RoundHalfUp(amount.Mul(factor))
}

// CeilPercentOf returns ceil(qty * pct / 100).
func CeilPercentOf(qty int, pct decimal.Decimal) int {
	if qty <= 0 || pct.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return int(decimal.NewFromInt(int64(qty)).Mul(pct).Div(hundred).Ceil().IntPart())
}

// CeilDiv returns ceil(a / b) for positive b.
func CeilDiv(a, b int) int {
	if b <= 0 || a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// WeightedRate averages rates weighted by quantity. A zero total falls back
// to the plain mean of rates.
func WeightedRate(rates []decimal.Decimal, qty []int) decimal.Decimal {
	if len(rates) == 0 {
		return decimal.Zero
	}

	sum := decimal.Zero
	total := 0
	for i, r := range rates {
		sum = sum.Add(r.Mul(decimal.NewFromInt(int64(qty[i]))))
		total += qty[i]
	}
	if total > 0 {
		return sum.DivRound(decimal.NewFromInt(int64(total)), 2)
	}

	plain := decimal.Zero
	for _, r := range rates {
		plain = plain.Add(r)
	}
	return plain.DivRound(decimal.NewFromInt(int64(len(rates))), 2)
}

// ValidPercent reports whether pct lies in [0, 100].
func ValidPercent(pct decimal.Decimal) bool {
	return !pct.IsNegative() && pct.LessThanOrEqual(hundred)
}
