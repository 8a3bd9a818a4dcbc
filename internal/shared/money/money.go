// Package money holds the decimal arithmetic shared by fee computations.
// Amounts are kept at two decimal places.
package money

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Round2 rounds half away from zero to cents.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// PercentOf returns round(base * percent / 100, 2).
func PercentOf(base, percent decimal.Decimal) decimal.Decimal {
	if percent.IsZero() || base.IsZero() {
		return decimal.Zero
	}
	return Round2(base.Mul(percent).Div(hundred))
}

// ValidPercent reports whether p lies in [0, 100].
func ValidPercent(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(hundred)
}

func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}
