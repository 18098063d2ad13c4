// Package money provides fixed-point currency arithmetic helpers.
//
// All engine amounts are shopspring decimals rounded to two decimal
// places at published boundaries. Intermediate products keep full
// precision; only the values handed back to callers are rounded.
package money

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// Round2 rounds an amount to two decimal places, half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percent applies rate (expressed as a percentage, e.g. 18 for 18%)
// to amount and rounds the result to two decimal places.
func Percent(amount, rate decimal.Decimal) decimal.Decimal {
	return Round2(amount.Mul(rate).Div(hundred))
}

// Half returns amount/2 rounded to two decimal places.
func Half(amount decimal.Decimal) decimal.Decimal {
	return Round2(amount.Div(two))
}

// WithinTolerance reports whether a and b differ by at most tol.
func WithinTolerance(a, b, tol decimal.Decimal) bool {
	return a.Sub(b).Abs().Cmp(tol) <= 0
}

// Sum adds the given amounts without intermediate rounding.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
